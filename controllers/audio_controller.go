package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adamsai/video-summarizer/apperr"
	"github.com/adamsai/video-summarizer/services"
)

type AudioController struct {
	audios *services.AudioService
}

func NewAudioController(audios *services.AudioService) *AudioController {
	return &AudioController{audios: audios}
}

type extractRequest struct {
	VideoID uint `json:"video_id" binding:"required"`
}

// Extract handles POST /api/audios/extract.
func (ctl *AudioController) Extract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "video_id is required"))
		return
	}

	audio, err := ctl.audios.Extract(c.Request.Context(), req.VideoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, audio)
}

// List handles GET /api/audios with an optional video_id filter.
func (ctl *AudioController) List(c *gin.Context) {
	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}
	videoID, ok := parseOptionalID(c, "video_id")
	if !ok {
		return
	}

	audios, total, err := ctl.audios.List(c.Request.Context(), videoID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": audios})
}

// Get handles GET /api/audios/:id.
func (ctl *AudioController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	audio, err := ctl.audios.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, audio)
}

// UpdateStatus handles PATCH /api/audios/:id/status.
func (ctl *AudioController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "status is required"))
		return
	}

	audio, err := ctl.audios.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, audio)
}

// Delete handles DELETE /api/audios/:id.
func (ctl *AudioController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.audios.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
