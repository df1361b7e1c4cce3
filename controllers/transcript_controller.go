package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adamsai/video-summarizer/apperr"
	"github.com/adamsai/video-summarizer/services"
)

type TranscriptController struct {
	transcripts *services.TranscriptService
}

func NewTranscriptController(transcripts *services.TranscriptService) *TranscriptController {
	return &TranscriptController{transcripts: transcripts}
}

type transcribeRequest struct {
	AudioID  uint   `json:"audio_id" binding:"required"`
	Language string `json:"language"`
}

// Create handles POST /api/transcripts/create.
func (ctl *TranscriptController) Create(c *gin.Context) {
	var req transcribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "audio_id is required"))
		return
	}

	transcript, err := ctl.transcripts.Transcribe(c.Request.Context(), req.AudioID, req.Language)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, transcript)
}

// List handles GET /api/transcripts with optional audio_id and language
// filters.
func (ctl *TranscriptController) List(c *gin.Context) {
	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}
	audioID, ok := parseOptionalID(c, "audio_id")
	if !ok {
		return
	}

	transcripts, total, err := ctl.transcripts.List(c.Request.Context(), audioID, c.Query("language"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": transcripts})
}

// Search handles GET /api/transcripts/search?q=.
func (ctl *TranscriptController) Search(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "invalid limit: %s", c.Query("limit")))
		return
	}

	transcripts, total, err := ctl.transcripts.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": transcripts})
}

// Get handles GET /api/transcripts/:id.
func (ctl *TranscriptController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	transcript, err := ctl.transcripts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transcript)
}

// Delete handles DELETE /api/transcripts/:id.
func (ctl *TranscriptController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.transcripts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
