package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/controllers"
	"github.com/seoulglow/seoulglow-api/middlewares"
)

func OrderRoutes(server *gin.Engine) {
	server.GET("/user/:userId/orders", middlewares.RequireAuth(), controllers.GetOrdersByCustomerId)
	server.GET("/order/:orderId", middlewares.RequireAuth(), controllers.GetOrderById)
}
