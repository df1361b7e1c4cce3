package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/adamsai/video-summarizer/config"
	"github.com/adamsai/video-summarizer/routes"
)

func main() {
	// Load .env when present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log := config.NewLogger()

	if err := cfg.EnsureStorageDirs(); err != nil {
		log.WithError(err).Fatal("failed to create storage directories")
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r = routes.SetupRouter(r, db, cfg, log)

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
