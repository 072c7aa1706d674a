package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/seoulglow/seoulglow-api/controllers"
)

func SocialRoutes(server *gin.Engine) {
	server.GET("/social", controllers.GetSocialFeed)
}
