package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/initializers"
	"github.com/seoulglow/seoulglow-api/models"
	"github.com/seoulglow/seoulglow-api/utils"
)

// SendTestEmail pushes a test message through the mail queue so admins can
// verify SMTP credentials without placing an order.
func SendTestEmail(ctx *gin.Context) {
	var body struct {
		To string `json:"to" binding:"required,email"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "A valid recipient email is required")
		return
	}

	emailData := utils.EmailData{
		Name:    body.To,
		Message: "This is a test email from the SeoulGlow admin panel. If you are reading this, SMTP is configured correctly.",
		LogoURL: os.Getenv("FRONTEND_URL") + "/images/logo.png",
	}

	templatePath := filepath.Join("templates", "test_email.html")
	enqueueMail(body.To, "SeoulGlow Test Email", emailData, templatePath)

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Test email queued for delivery"})
}

// GetAdminStats returns the back-office dashboard counters.
func GetAdminStats(ctx *gin.Context) {
	var productCount, orderCount, userCount, undelivered int64

	db := initializers.DB
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to load stats", err)
		return
	}
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Order{}).
		Where("status NOT IN ?", []string{models.OrderStatusDelivered, models.OrderStatusCancelled}).
		Count(&undelivered)

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"products":          productCount,
		"orders":            orderCount,
		"users":             userCount,
		"undeliveredOrders": undelivered,
	})
}
