package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/initializers"
	"github.com/seoulglow/seoulglow-api/models"
	"gorm.io/gorm"
)

func GetSocialFeed(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 50 {
		limit = 20
	}

	var posts []models.SocialPost
	result := initializers.DB.Order("created_at desc").Limit(limit).Find(&posts)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch social feed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"posts": posts})
}

func CreateSocialPost(ctx *gin.Context) {
	var post models.SocialPost
	if err := ctx.ShouldBindJSON(&post); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := initializers.DB.Create(&post).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to create social post")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, post)
}

func UpdateSocialPost(ctx *gin.Context) {
	postId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var post models.SocialPost
	if err := initializers.DB.First(&post, postId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Post not found")
		} else {
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch post")
		}
		return
	}

	var update models.SocialPost
	if err := ctx.ShouldBindJSON(&update); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	post.Platform = update.Platform
	post.MediaURL = update.MediaURL
	post.Caption = update.Caption

	if err := initializers.DB.Save(&post).Error; err != nil {
		log.Println(err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to update social post")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, post)
}

func DeleteSocialPost(ctx *gin.Context) {
	postId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid post ID")
		return
	}

	result := initializers.DB.Delete(&models.SocialPost{}, postId)
	if result.Error != nil {
		log.Println(result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to delete social post")
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "Post not found")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Post deleted successfully"})
}
