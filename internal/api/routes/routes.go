// Package routes handles the setup and configuration of API routes
package routes

import (
	_ "futurecrop/docs" // Import swagger docs
	"futurecrop/internal/api/handlers"
	"futurecrop/internal/api/middleware"
	"futurecrop/internal/config"
	"futurecrop/internal/forecast"
	"futurecrop/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes and their handlers
func SetupRoutes(cfg *config.Config, repo repository.PriceRepository, predictor *forecast.Predictor) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestID())

	// Development posture: any origin may call the API.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	// Routes without rate limiting
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Apply rate limiting to all other routes
	r.Use(middleware.NewRateLimiter(cfg).Middleware())

	// Initialize handlers
	infoHandler := handlers.NewInfoHandler()
	healthHandler := handlers.NewHealthHandler(repo)
	predictHandler := handlers.NewPredictHandler(repo, predictor, nil)

	r.GET("/", infoHandler.Info)
	r.GET("/health", healthHandler.Health)
	r.POST("/predict", predictHandler.Predict)

	return r
}
