package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/moments-social/api-go/controllers"
	"github.com/moments-social/api-go/middleware"
)

func SetupPlaceRoutes(r *gin.Engine, placeController *controllers.PlaceController, jwtSecret string) {
	places := r.Group("/places")
	{
		places.GET("", placeController.GetPlaces)
		places.GET("/:id", placeController.GetPlaceByID)
		places.GET("/user/:userId", placeController.GetPlacesByUser)
	}

	protected := r.Group("/places")
	protected.Use(middleware.AuthMiddleware(jwtSecret))
	{
		protected.POST("", placeController.CreatePlace)
		protected.PATCH("/:id", placeController.UpdatePlace)
		protected.DELETE("/:id", placeController.DeletePlace)
	}
}
