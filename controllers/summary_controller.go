package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adamsai/video-summarizer/apperr"
	"github.com/adamsai/video-summarizer/services"
)

type SummaryController struct {
	summaries *services.SummaryService
}

func NewSummaryController(summaries *services.SummaryService) *SummaryController {
	return &SummaryController{summaries: summaries}
}

type summarizeRequest struct {
	TranscriptID       uint   `json:"transcript_id" binding:"required"`
	ModelName          string `json:"model_name"`
	PromptTemplateName string `json:"prompt_template_name"`
	PromptTemplateID   *uint  `json:"prompt_template_id"`
}

// Create handles POST /api/summaries/create.
func (ctl *SummaryController) Create(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "transcript_id is required"))
		return
	}

	summary, err := ctl.summaries.Summarize(
		c.Request.Context(),
		req.TranscriptID,
		req.ModelName,
		req.PromptTemplateName,
		req.PromptTemplateID,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// List handles GET /api/summaries with an optional transcript_id filter.
func (ctl *SummaryController) List(c *gin.Context) {
	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}
	transcriptID, ok := parseOptionalID(c, "transcript_id")
	if !ok {
		return
	}

	summaries, total, err := ctl.summaries.List(c.Request.Context(), transcriptID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": summaries})
}

// SearchByModel handles GET /api/summaries/search/by-model?model=.
func (ctl *SummaryController) SearchByModel(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "invalid limit: %s", c.Query("limit")))
		return
	}

	summaries, total, err := ctl.summaries.SearchByModel(c.Request.Context(), c.Query("model"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": summaries})
}

// Get handles GET /api/summaries/:id.
func (ctl *SummaryController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := ctl.summaries.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Delete handles DELETE /api/summaries/:id.
func (ctl *SummaryController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.summaries.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
