package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/controllers"
	"github.com/seoulglow/seoulglow-api/middlewares"
)

func ProductRoutes(server *gin.Engine) {
	server.GET("/product", controllers.GetProducts)
	server.GET("/product/bestsellers", controllers.GetBestsellers)
	server.GET("/product/:id", controllers.GetProduct)
	server.GET("/product/:id/reviews", controllers.GetProductReviews)
	server.POST("/product/:id/reviews", middlewares.RequireAuth(), controllers.CreateReview)
	server.DELETE("/review/:reviewId", middlewares.RequireAuth(), controllers.DeleteReview)
}
