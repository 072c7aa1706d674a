package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/controllers"
	"github.com/seoulglow/seoulglow-api/middlewares"
)

func CheckoutRoutes(server *gin.Engine) {
	server.POST("/checkout/session", middlewares.RequireAuth(), controllers.CreateCheckoutSession)
	server.POST("/webhook/payment", controllers.HandlePaymentWebhook)
}
