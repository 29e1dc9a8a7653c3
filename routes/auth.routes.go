package routes

import (
	"lagnasohalaa/internal/controllers"
	"lagnasohalaa/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRoutes(api *gin.RouterGroup, authController *controllers.AuthController) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	users := auth.Group("/users", middleware.AuthMiddleware())
	{
		users.GET("", middleware.RequireAdmin(), authController.ListUsers)
		users.GET("/stats/overview", middleware.RequireAdmin(), authController.GetUserStats)
		users.GET("/:userId", authController.GetProfile)
		users.PUT("/:userId", authController.UpdateProfile)
		users.PUT("/:userId/password", authController.ChangePassword)
		users.DELETE("/:userId", middleware.RequireAdmin(), authController.DeleteUser)
	}
}
