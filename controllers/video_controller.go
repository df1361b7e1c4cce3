package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adamsai/video-summarizer/apperr"
	"github.com/adamsai/video-summarizer/services"
)

type VideoController struct {
	videos *services.VideoService
}

func NewVideoController(videos *services.VideoService) *VideoController {
	return &VideoController{videos: videos}
}

// Upload handles POST /api/videos/upload (multipart).
func (ctl *VideoController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "no file attached"))
		return
	}

	video, err := ctl.videos.Upload(c.Request.Context(), file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, video)
}

type downloadRequest struct {
	URL   string `json:"url" binding:"required"`
	Title string `json:"title"`
}

// Download handles POST /api/videos/download.
func (ctl *VideoController) Download(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "url is required"))
		return
	}

	video, err := ctl.videos.Download(c.Request.Context(), req.URL, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, video)
}

// List handles GET /api/videos.
func (ctl *VideoController) List(c *gin.Context) {
	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}

	videos, total, err := ctl.videos.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": videos})
}

// Get handles GET /api/videos/:id.
func (ctl *VideoController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	video, err := ctl.videos.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PATCH /api/videos/:id/status.
func (ctl *VideoController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "status is required"))
		return
	}

	video, err := ctl.videos.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// Delete handles DELETE /api/videos/:id.
func (ctl *VideoController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.videos.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
