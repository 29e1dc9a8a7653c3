package routes

import (
	"lagnasohalaa/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterPricingRoutes(api *gin.RouterGroup, pricingController *controllers.PricingController) {
	pricing := api.Group("/pricing")
	{
		pricing.GET("", pricingController.List)
		pricing.POST("", pricingController.Create)
		pricing.GET("/:id", pricingController.Get)
		pricing.PUT("/:id", pricingController.Update)
		pricing.DELETE("/:id", pricingController.Delete)
	}
}
