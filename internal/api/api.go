package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/pageza/flavorgen/backend/config"
	"github.com/pageza/flavorgen/backend/internal/middleware"
	"github.com/pageza/flavorgen/backend/internal/service"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "FlavorGen API is running",
		"version": "v1.0.0",
	})
}

// SetupAPI wires services, middleware and routes onto the router. A nil Redis
// client disables rate limiting instead of failing startup.
func SetupAPI(router *gin.Engine, cfg *config.Config, redisClient *redis.Client) error {
	router.GET("/health", HealthCheck)

	llmService, err := service.NewLLMService(cfg)
	if err != nil {
		return err
	}

	var generateMiddleware []gin.HandlerFunc
	if redisClient != nil {
		limiter := middleware.NewRecipeGenerationRateLimiter(redisClient)
		generateMiddleware = append(generateMiddleware, limiter.RateLimitMiddleware())
	} else {
		log.Printf("Warning: Redis unavailable, recipe generation is not rate limited")
	}

	v1 := router.Group("/api/v1")
	{
		recipeHandler := NewRecipeHandler(llmService)
		recipeHandler.RegisterRoutes(v1, generateMiddleware...)
	}

	return nil
}
