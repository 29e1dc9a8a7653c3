package routes

import (
	"lagnasohalaa/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterProfileRoutes(api *gin.RouterGroup, profileController *controllers.ProfileController) {
	profiles := api.Group("/profiles")
	{
		profiles.GET("", profileController.List)
		profiles.POST("", profileController.Create)
		profiles.GET("/stats", profileController.Stats)
		profiles.GET("/:id", profileController.Get)
		profiles.PUT("/:id", profileController.Update)
		profiles.DELETE("/:id", profileController.Delete)
	}
}
