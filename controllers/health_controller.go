package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/adamsai/video-summarizer/config"
)

type HealthController struct {
	db  *gorm.DB
	cfg config.Config
}

func NewHealthController(db *gorm.DB, cfg config.Config) *HealthController {
	return &HealthController{db: db, cfg: cfg}
}

// Root handles GET /.
func (ctl *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "video-summarizer",
		"status":  "healthy",
		"version": "1.0.0",
	})
}

// Health handles GET /health with database and storage detail.
func (ctl *HealthController) Health(c *gin.Context) {
	dbStatus := "connected"
	if sqlDB, err := ctl.db.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unavailable"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbStatus,
		"storage": gin.H{
			"videos_dir": ctl.cfg.VideosDir,
			"audios_dir": ctl.cfg.AudiosDir,
		},
		"services": gin.H{
			"stt_model":    ctl.cfg.DefaultWhisperModel,
			"llm_provider": ctl.cfg.LLMProvider,
		},
	})
}
