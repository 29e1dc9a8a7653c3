package routes

import (
	"lagnasohalaa/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterStoryRoutes(api *gin.RouterGroup, storyController *controllers.StoryController) {
	stories := api.Group("/stories")
	{
		stories.GET("", storyController.List)
		stories.POST("", storyController.Create)
		stories.GET("/:id", storyController.Get)
		stories.PUT("/:id", storyController.Update)
		stories.DELETE("/:id", storyController.Delete)
	}
}
