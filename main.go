package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"cafeadmin/client"
	"cafeadmin/config"
	"cafeadmin/controller"
	"cafeadmin/database"
	"cafeadmin/route"
	"cafeadmin/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm/logger"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg.DatabaseDSN, logger.Warn)
	if err != nil {
		log.Fatalf("Failed to open activity log: %v", err)
	}
	log.Println("Activity log ready")

	// Set Gin mode
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	router := gin.Default()

	corsConfig := cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", utils.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", utils.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	router.Use(utils.RequestIDMiddleware())
	log.Println("CORS configured")

	api := client.New(cfg.APIBaseURL, nil)
	route.ConsoleRoutes(router, controller.NewHandler(api, db))
	log.Printf("Routes configured, cafe API at %s", cfg.APIBaseURL)

	if _, err := os.Stat(cfg.FrontendPath); os.IsNotExist(err) {
		log.Println("Warning: Frontend build directory not found, static file serving may fail")
	}
	router.StaticFS("/static", http.Dir(filepath.Join(cfg.FrontendPath, "static")))
	router.NoRoute(func(c *gin.Context) {
		c.File(filepath.Join(cfg.FrontendPath, "index.html"))
	})

	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
