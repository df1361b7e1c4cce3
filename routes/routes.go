package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/adamsai/video-summarizer/config"
	"github.com/adamsai/video-summarizer/controllers"
	"github.com/adamsai/video-summarizer/gateways"
	"github.com/adamsai/video-summarizer/middleware"
	"github.com/adamsai/video-summarizer/services"
)

// SetupRouter wires gateways, services and controllers and registers every
// route. All dependencies are constructed here and injected downward.
func SetupRouter(r *gin.Engine, db *gorm.DB, cfg config.Config, log *logrus.Logger) *gin.Engine {
	r.Use(middleware.RequestLogger(log))

	extractor := gateways.NewFFmpegExtractor()
	downloader := gateways.NewVideoDownloader(cfg.UserAgent, cfg.DownloadThreads, log)
	transcriber := gateways.NewWhisperTranscriber(cfg.OpenAIAPIKey, cfg.DefaultWhisperModel)

	var completer services.Completer
	if cfg.LLMProvider == "gemini" {
		completer = gateways.NewGeminiCompleter(cfg.GeminiAPIKey)
	} else {
		completer = gateways.NewOpenRouterCompleter(cfg.OpenRouterAPIKey)
	}

	templateSvc := services.NewPromptTemplateService(db, log)
	videoSvc := services.NewVideoService(db, downloader, extractor, cfg, log)
	audioSvc := services.NewAudioService(db, extractor, cfg, log)
	transcriptSvc := services.NewTranscriptService(db, transcriber, cfg, log)
	summarySvc := services.NewSummaryService(db, completer, templateSvc, cfg, log)

	health := controllers.NewHealthController(db, cfg)
	videos := controllers.NewVideoController(videoSvc)
	audios := controllers.NewAudioController(audioSvc)
	transcripts := controllers.NewTranscriptController(transcriptSvc)
	summaries := controllers.NewSummaryController(summarySvc)
	templates := controllers.NewPromptTemplateController(templateSvc)

	r.GET("/", health.Root)
	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	v := api.Group("/videos")
	{
		v.POST("/upload", videos.Upload)
		v.POST("/download", videos.Download)
		v.GET("", videos.List)
		v.GET("/:id", videos.Get)
		v.PATCH("/:id/status", videos.UpdateStatus)
		v.DELETE("/:id", videos.Delete)
	}

	a := api.Group("/audios")
	{
		a.POST("/extract", audios.Extract)
		a.GET("", audios.List)
		a.GET("/:id", audios.Get)
		a.PATCH("/:id/status", audios.UpdateStatus)
		a.DELETE("/:id", audios.Delete)
	}

	t := api.Group("/transcripts")
	{
		t.POST("/create", transcripts.Create)
		t.GET("", transcripts.List)
		t.GET("/search", transcripts.Search)
		t.GET("/:id", transcripts.Get)
		t.DELETE("/:id", transcripts.Delete)
	}

	s := api.Group("/summaries")
	{
		s.POST("/create", summaries.Create)
		s.GET("", summaries.List)
		s.GET("/search/by-model", summaries.SearchByModel)
		s.GET("/:id", summaries.Get)
		s.DELETE("/:id", summaries.Delete)
	}

	p := api.Group("/prompt-templates")
	{
		p.POST("", templates.Create)
		p.GET("", templates.List)
		p.GET("/name/:name", templates.GetByName)
		p.GET("/:id", templates.Get)
		p.PUT("/:id", templates.Update)
		p.PATCH("/:id/toggle", templates.ToggleActive)
		p.DELETE("/:id", templates.Delete)
	}

	return r
}
