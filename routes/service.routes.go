package routes

import (
	"lagnasohalaa/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterServiceRoutes(api *gin.RouterGroup, serviceController *controllers.ServiceController) {
	services := api.Group("/services")
	{
		services.GET("", serviceController.List)
		services.POST("", serviceController.Create)
		services.GET("/:id", serviceController.Get)
		services.PUT("/:id", serviceController.Update)
		services.DELETE("/:id", serviceController.Delete)
	}
}
