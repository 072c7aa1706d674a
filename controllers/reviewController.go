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

func GetProductReviews(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var reviews []models.Review
	result := initializers.DB.Where("product_id = ?", productId).Order("created_at desc").Find(&reviews)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}

	var average float64
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		average = float64(sum) / float64(len(reviews))
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"reviews":       reviews,
		"averageRating": average,
	})
}

func CreateReview(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var input models.ReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		} else {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to validate product")
		}
		return
	}

	var existing models.Review
	err = initializers.DB.Where("product_id = ? AND user_id = ?", productId, userID).First(&existing).Error
	if err == nil {
		sendErrorResponse(ctx, http.StatusConflict, "You have already reviewed this product")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to check existing review")
		return
	}

	review := models.Review{
		ProductID: productId,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := initializers.DB.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			sendErrorResponse(ctx, http.StatusConflict, "You have already reviewed this product")
			return
		}
		log.Println("Create error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create review")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, review)
}

func DeleteReview(ctx *gin.Context) {
	userID, ok := middlewares.AuthUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "Authentication required")
		return
	}

	reviewId, err := strconv.Atoi(ctx.Param("reviewId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid review ID")
		return
	}

	var review models.Review
	if err := initializers.DB.First(&review, reviewId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Review not found")
		} else {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch review")
		}
		return
	}

	if review.UserID != userID && !middlewares.IsAdmin(ctx) {
		sendErrorResponse(ctx, http.StatusForbidden, "You can only delete your own reviews")
		return
	}

	if err := initializers.DB.Delete(&review).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
