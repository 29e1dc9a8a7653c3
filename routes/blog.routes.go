package routes

import (
	"lagnasohalaa/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterBlogRoutes(api *gin.RouterGroup, blogController *controllers.BlogController) {
	blog := api.Group("/blog")
	{
		blog.GET("", blogController.List)
		blog.POST("", blogController.Create)
		blog.GET("/:slug", blogController.Get)
		blog.PUT("/:slug", blogController.Update)
		blog.DELETE("/:slug", blogController.Delete)
	}
}
