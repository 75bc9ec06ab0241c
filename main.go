package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/levelup/levelup-api/config"
	"github.com/levelup/levelup-api/routes"
	"github.com/levelup/levelup-api/utils/logger"
)

// setupRouter initializes Gin routes and middleware
func setupRouter(cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Config error: %v", err)
	}

	if _, err := config.SetupDatabase(cfg.DatabaseURL); err != nil {
		logger.Fatalf("Failed to set up database: %v", err)
	}

	router := setupRouter(cfg)

	logger.Infof("Level Up API server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
