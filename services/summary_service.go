package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/adamsai/video-summarizer/apperr"
	"github.com/adamsai/video-summarizer/config"
	"github.com/adamsai/video-summarizer/models"
	"github.com/adamsai/video-summarizer/utils"
)

// SummaryService runs the summarization stage: Transcript -> Summary.
type SummaryService struct {
	db        *gorm.DB
	completer Completer
	templates *PromptTemplateService
	cfg       config.Config
	log       *logrus.Logger
}

func NewSummaryService(db *gorm.DB, completer Completer, templates *PromptTemplateService, cfg config.Config, log *logrus.Logger) *SummaryService {
	return &SummaryService{db: db, completer: completer, templates: templates, cfg: cfg, log: log}
}

// Summarize resolves the prompt template, renders it with the transcript
// text and runs it through the LLM. The summary row records the model used
// and the resolved template id, so the lineage survives a later rename.
func (s *SummaryService) Summarize(ctx context.Context, transcriptID uint, model string, templateName string, templateID *uint) (*models.Summary, error) {
	start := time.Now()
	status := "failed"
	defer observeStage("summarize", start, &status)

	var transcript models.Transcript
	if err := s.db.WithContext(ctx).First(&transcript, transcriptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Transcript not found with id: %d", transcriptID)
		}
		return nil, err
	}

	// Template resolution happens before any LLM call; a failure here
	// short-circuits the stage.
	content, resolvedID, err := s.templates.Resolve(ctx, templateID, templateName)
	if err != nil {
		return nil, err
	}

	prompt, err := utils.RenderPrompt(content, transcript.Text)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindTemplateError, err, "prompt rendering failed")
	}

	if model == "" {
		model = s.cfg.DefaultLLMModel
	}

	llmCtx, cancel := context.WithTimeout(ctx, s.cfg.SummarizeTimeout)
	defer cancel()

	summaryText, err := s.completer.Complete(llmCtx, prompt, model)
	if err != nil {
		s.log.WithError(err).WithField("transcript_id", transcriptID).Error("summarization failed")
		return nil, apperr.Wrap(apperr.KindSummarizationFailed, err, "summarization failed")
	}
	if summaryText == "" {
		s.log.WithField("transcript_id", transcriptID).Warn("summarization returned empty text")
		return nil, apperr.New(apperr.KindEmptyResult, "summarization returned empty text")
	}

	summary := &models.Summary{
		TranscriptID:     transcriptID,
		SummaryText:      summaryText,
		ModelName:        model,
		PromptTemplateID: &resolvedID,
	}
	if err := s.db.WithContext(ctx).Create(summary).Error; err != nil {
		return nil, err
	}

	status = "success"
	s.log.WithFields(logrus.Fields{
		"summary_id":    summary.ID,
		"transcript_id": transcriptID,
		"model":         model,
		"template_id":   resolvedID,
	}).Info("transcript summarized")
	return summary, nil
}

// List returns a page of summaries, optionally scoped to one transcript.
func (s *SummaryService) List(ctx context.Context, transcriptID uint, limit, offset int) ([]models.Summary, int64, error) {
	limit, offset, ok := normalizePage(limit, offset)
	if !ok {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "limit and offset must not be negative")
	}

	query := s.db.WithContext(ctx).Model(&models.Summary{})
	if transcriptID != 0 {
		query = query.Where("transcript_id = ?", transcriptID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var summaries []models.Summary
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&summaries).Error; err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

func (s *SummaryService) Get(ctx context.Context, id uint) (*models.Summary, error) {
	var summary models.Summary
	if err := s.db.WithContext(ctx).First(&summary, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Summary not found with id: %d", id)
		}
		return nil, err
	}
	return &summary, nil
}

// SearchByModel matches summaries whose model name contains the query.
func (s *SummaryService) SearchByModel(ctx context.Context, model string, limit int) ([]models.Summary, int64, error) {
	if strings.TrimSpace(model) == "" {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "model query must not be empty")
	}
	limit, _, ok := normalizePage(limit, 0)
	if !ok {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "limit must not be negative")
	}

	query := s.db.WithContext(ctx).Model(&models.Summary{}).Where("model_name LIKE ?", "%"+model+"%")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var summaries []models.Summary
	if err := query.Order("created_at DESC").Limit(limit).Find(&summaries).Error; err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

// Delete removes a summary row.
func (s *SummaryService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Summary{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "Summary not found with id: %d", id)
	}
	return nil
}
