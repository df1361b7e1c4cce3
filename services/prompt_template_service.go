package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/adamsai/video-summarizer/apperr"
	"github.com/adamsai/video-summarizer/models"
)

// PromptTemplateService manages reusable summarization prompts and resolves
// which one a summarization call should use.
type PromptTemplateService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewPromptTemplateService(db *gorm.DB, log *logrus.Logger) *PromptTemplateService {
	return &PromptTemplateService{db: db, log: log}
}

// TemplateCreate carries the fields accepted on template creation.
type TemplateCreate struct {
	Name        string  `json:"name" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
	Category    string  `json:"category"`
}

// TemplateUpdate carries optional fields for partial updates.
type TemplateUpdate struct {
	Name        *string `json:"name"`
	Content     *string `json:"content"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
	Category    *string `json:"category"`
}

// Resolve decides which template content a summarization call uses.
// Precedence: explicit id, then explicit name, then the most recently created
// active template. An inactive template is rejected even when addressed by
// id or name.
func (s *PromptTemplateService) Resolve(ctx context.Context, templateID *uint, templateName string) (string, uint, error) {
	var (
		template models.PromptTemplate
		err      error
	)

	switch {
	case templateID != nil:
		err = s.db.WithContext(ctx).First(&template, *templateID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, apperr.New(apperr.KindTemplateError, "Prompt template not found: %d", *templateID)
		}
	case templateName != "":
		err = s.db.WithContext(ctx).Where("name = ?", templateName).First(&template).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, apperr.New(apperr.KindTemplateError, "Prompt template not found: %s", templateName)
		}
	default:
		err = s.db.WithContext(ctx).
			Where("is_active = ?", true).
			Order("created_at DESC").
			First(&template).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", 0, apperr.New(apperr.KindTemplateError, "no active prompt template available")
		}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", 0, err
	}

	if !template.IsActive {
		return "", 0, apperr.New(apperr.KindTemplateError, "template '%s' is inactive", template.Name)
	}

	return template.Content, template.ID, nil
}

// List returns templates with optional active and category filters.
func (s *PromptTemplateService) List(ctx context.Context, isActive *bool, category string, limit, offset int) ([]models.PromptTemplate, int64, error) {
	limit, offset, ok := normalizePage(limit, offset)
	if !ok {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "limit and offset must not be negative")
	}

	query := s.db.WithContext(ctx).Model(&models.PromptTemplate{})
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var templates []models.PromptTemplate
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&templates).Error; err != nil {
		return nil, 0, err
	}
	return templates, total, nil
}

func (s *PromptTemplateService) Get(ctx context.Context, id uint) (*models.PromptTemplate, error) {
	var template models.PromptTemplate
	if err := s.db.WithContext(ctx).First(&template, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Template not found with id: %d", id)
		}
		return nil, err
	}
	return &template, nil
}

func (s *PromptTemplateService) GetByName(ctx context.Context, name string) (*models.PromptTemplate, error) {
	var template models.PromptTemplate
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Template not found with name: %s", name)
		}
		return nil, err
	}
	return &template, nil
}

// Create inserts a template, enforcing the unique name.
func (s *PromptTemplateService) Create(ctx context.Context, input TemplateCreate) (*models.PromptTemplate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.New(apperr.KindInvalidInput, "template name must not be empty")
	}

	template := &models.PromptTemplate{
		Name:        name,
		Content:     input.Content,
		Description: input.Description,
		IsActive:    true,
		Category:    "general",
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}
	if input.Category != "" {
		template.Category = input.Category
	}

	if err := s.db.WithContext(ctx).Create(template).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, apperr.New(apperr.KindConflict, "template with name '%s' already exists", name)
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"template_id": template.ID, "name": name}).Info("prompt template created")
	return template, nil
}

// Update applies the provided fields, rejecting a rename onto an existing
// name.
func (s *PromptTemplateService) Update(ctx context.Context, id uint, updates TemplateUpdate) (*models.PromptTemplate, error) {
	template, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if updates.Name != nil && *updates.Name != template.Name {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.PromptTemplate{}).
			Where("name = ? AND id <> ?", *updates.Name, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperr.New(apperr.KindConflict, "template with name '%s' already exists", *updates.Name)
		}
		template.Name = *updates.Name
	}
	if updates.Content != nil {
		template.Content = *updates.Content
	}
	if updates.Description != nil {
		template.Description = updates.Description
	}
	if updates.IsActive != nil {
		template.IsActive = *updates.IsActive
	}
	if updates.Category != nil {
		template.Category = *updates.Category
	}

	if err := s.db.WithContext(ctx).Save(template).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, apperr.New(apperr.KindConflict, "template with name '%s' already exists", template.Name)
		}
		return nil, err
	}
	return template, nil
}

// ToggleActive flips or sets the active flag.
func (s *PromptTemplateService) ToggleActive(ctx context.Context, id uint, isActive bool) (*models.PromptTemplate, error) {
	template, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	template.IsActive = isActive
	if err := s.db.WithContext(ctx).Save(template).Error; err != nil {
		return nil, err
	}
	return template, nil
}

// Delete removes a template. Summaries referencing it keep their rows with a
// nulled template reference.
func (s *PromptTemplateService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.PromptTemplate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "Template not found with id: %d", id)
	}
	return nil
}
