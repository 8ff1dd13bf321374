package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/moments-social/api-go/config"
	"github.com/moments-social/api-go/controllers"
	"github.com/moments-social/api-go/geocoding"
	"github.com/moments-social/api-go/middleware"
	"github.com/moments-social/api-go/repositories"
	"github.com/moments-social/api-go/services"
	"github.com/moments-social/api-go/storage"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, db *gorm.DB) {
	store := repositories.NewGormStore(db)
	media := storage.NewR2Storage(&cfg.R2)
	geocoder := geocoding.NewClient(cfg.GeocodingAPIKey)

	placeService := services.NewPlaceService(store, geocoder, media)
	userService := services.NewUserService(store)

	placeController := controllers.NewPlaceController(placeService, media)
	userController := controllers.NewUserController(userService)
	authController := controllers.NewAuthController(store, media, cfg.JWTSecret)

	r.Use(middleware.CORS())

	SetupPlaceRoutes(r, placeController, cfg.JWTSecret)
	SetupUserRoutes(r, userController, authController, cfg.JWTSecret)
}
