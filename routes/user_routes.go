package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/moments-social/api-go/controllers"
	"github.com/moments-social/api-go/middleware"
)

func SetupUserRoutes(r *gin.Engine, userController *controllers.UserController, authController *controllers.AuthController, jwtSecret string) {
	users := r.Group("/users")
	{
		users.GET("", userController.GetUsers)
		users.GET("/:userId", userController.GetUserByID)
		users.GET("/:userId/followers", userController.GetFollowers)
		users.GET("/:userId/follows", userController.GetFollows)
		users.POST("/signup", authController.Signup)
		users.POST("/login", authController.Login)
	}

	protected := r.Group("/users")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.POST("/follow", userController.Follow)
		protected.POST("/unfollow", userController.Unfollow)
	}
}
