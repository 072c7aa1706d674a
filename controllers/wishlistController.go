package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/initializers"
	"github.com/seoulglow/seoulglow-api/middlewares"
	"github.com/seoulglow/seoulglow-api/models"
	"gorm.io/gorm"
)

func GetWishlist(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var items []models.WishlistItem
	result := initializers.DB.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch wishlist")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"wishlist": items})
}

func AddToWishlist(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	var body struct {
		ProductID int `json:"productId" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid input")
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, body.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to validate product")
		}
		return
	}

	// Adding twice is a no-op, not an error.
	var existing models.WishlistItem
	err := initializers.DB.Where("user_id = ? AND product_id = ?", userID, body.ProductID).First(&existing).Error
	if err == nil {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": product.Name + " is already in your wishlist",
			"id":      existing.ID,
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to check wishlist")
		return
	}

	item := models.WishlistItem{UserID: userID, ProductID: body.ProductID}
	if err := initializers.DB.Create(&item).Error; err != nil {
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add to wishlist")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": product.Name + " added to wishlist",
		"id":      item.ID,
	})
}

func RemoveFromWishlist(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	productId, err := strconv.Atoi(ctx.Param("productId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	result := initializers.DB.
		Where("user_id = ? AND product_id = ?", userID, productId).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove from wishlist")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Item not in wishlist")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Removed from wishlist"})
}
