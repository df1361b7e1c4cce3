package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adamsai/video-summarizer/apperr"
	"github.com/adamsai/video-summarizer/services"
)

type PromptTemplateController struct {
	templates *services.PromptTemplateService
}

func NewPromptTemplateController(templates *services.PromptTemplateService) *PromptTemplateController {
	return &PromptTemplateController{templates: templates}
}

// List handles GET /api/prompt-templates with optional is_active and
// category filters.
func (ctl *PromptTemplateController) List(c *gin.Context) {
	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}

	var isActive *bool
	if raw := c.Query("is_active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, apperr.New(apperr.KindInvalidInput, "invalid is_active: %s", raw))
			return
		}
		isActive = &v
	}

	templates, total, err := ctl.templates.List(c.Request.Context(), isActive, c.Query("category"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "items": templates})
}

// Get handles GET /api/prompt-templates/:id.
func (ctl *PromptTemplateController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	template, err := ctl.templates.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

// GetByName handles GET /api/prompt-templates/name/:name.
func (ctl *PromptTemplateController) GetByName(c *gin.Context) {
	template, err := ctl.templates.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

// Create handles POST /api/prompt-templates.
func (ctl *PromptTemplateController) Create(c *gin.Context) {
	var input services.TemplateCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "name and content are required"))
		return
	}

	template, err := ctl.templates.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, template)
}

// Update handles PUT /api/prompt-templates/:id.
func (ctl *PromptTemplateController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var updates services.TemplateUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "invalid request body"))
		return
	}

	template, err := ctl.templates.Update(c.Request.Context(), id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

// ToggleActive handles PATCH /api/prompt-templates/:id/toggle?is_active=.
func (ctl *PromptTemplateController) ToggleActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	isActive, err := strconv.ParseBool(c.Query("is_active"))
	if err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "invalid is_active: %s", c.Query("is_active")))
		return
	}

	template, err := ctl.templates.ToggleActive(c.Request.Context(), id, isActive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

// Delete handles DELETE /api/prompt-templates/:id.
func (ctl *PromptTemplateController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.templates.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
