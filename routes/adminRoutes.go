package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/controllers"
	"github.com/seoulglow/seoulglow-api/middlewares"
)

// AdminRoutes gates the whole back office behind auth + admin role.
func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin", middlewares.RequireAuth(), middlewares.RequireAdmin())
	{
		admin.POST("/product", controllers.CreateProduct)
		admin.PUT("/product/:id", controllers.UpdateProduct)
		admin.DELETE("/product/:id", controllers.DeleteProduct)
		admin.POST("/product-images", controllers.UploadProductImages)

		admin.GET("/order", controllers.GetOrders)
		admin.PATCH("/order/:orderId", controllers.UpdateOrderStatus)
		admin.DELETE("/order/:orderId", controllers.DeleteOrder)
		admin.GET("/orders/undelivered", controllers.GetUndeliveredOrders)

		admin.POST("/social", controllers.CreateSocialPost)
		admin.PUT("/social/:id", controllers.UpdateSocialPost)
		admin.DELETE("/social/:id", controllers.DeleteSocialPost)

		admin.POST("/email/test", controllers.SendTestEmail)
		admin.GET("/stats", controllers.GetAdminStats)
	}
}
