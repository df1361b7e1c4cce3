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

// TranscriptService runs the transcription stage: Audio -> Transcript.
type TranscriptService struct {
	db          *gorm.DB
	transcriber Transcriber
	cfg         config.Config
	log         *logrus.Logger
}

func NewTranscriptService(db *gorm.DB, transcriber Transcriber, cfg config.Config, log *logrus.Logger) *TranscriptService {
	return &TranscriptService{db: db, transcriber: transcriber, cfg: cfg, log: log}
}

// Transcribe sends the audio artifact to the STT gateway and records the
// text. An empty result is rejected without creating a row; it is logged
// separately from a hard gateway failure.
func (s *TranscriptService) Transcribe(ctx context.Context, audioID uint, language string) (*models.Transcript, error) {
	start := time.Now()
	status := "failed"
	defer observeStage("transcribe", start, &status)

	if language == "" {
		language = s.cfg.DefaultLanguage
	}
	language = strings.ToLower(strings.TrimSpace(language))
	if !utils.IsValidLanguageCode(language) {
		return nil, apperr.New(apperr.KindInvalidInput, "invalid language code: %s", language)
	}

	var audio models.Audio
	if err := s.db.WithContext(ctx).First(&audio, audioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Audio not found with id: %d", audioID)
		}
		return nil, err
	}

	sttCtx, cancel := context.WithTimeout(ctx, s.cfg.TranscribeTimeout)
	defer cancel()

	text, err := s.transcriber.Transcribe(sttCtx, audio.Filepath, language)
	if err != nil {
		s.log.WithError(err).WithField("audio_id", audioID).Error("transcription failed")
		return nil, apperr.Wrap(apperr.KindTranscriptionFailed, err, "transcription failed")
	}
	if text == "" {
		s.log.WithField("audio_id", audioID).Warn("transcription returned empty text")
		return nil, apperr.New(apperr.KindEmptyResult, "transcription returned empty text")
	}

	transcript := &models.Transcript{
		AudioID:  audioID,
		Text:     text,
		Language: language,
		Model:    s.transcriber.Model(),
	}
	if err := s.db.WithContext(ctx).Create(transcript).Error; err != nil {
		return nil, err
	}

	status = "success"
	s.log.WithFields(logrus.Fields{"transcript_id": transcript.ID, "audio_id": audioID, "language": language}).Info("audio transcribed")
	return transcript, nil
}

// List returns a page of transcripts, optionally scoped to one audio or one
// language.
func (s *TranscriptService) List(ctx context.Context, audioID uint, language string, limit, offset int) ([]models.Transcript, int64, error) {
	limit, offset, ok := normalizePage(limit, offset)
	if !ok {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "limit and offset must not be negative")
	}
	if language != "" && !utils.IsValidLanguageCode(language) {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "invalid language code: %s", language)
	}

	query := s.db.WithContext(ctx).Model(&models.Transcript{})
	if audioID != 0 {
		query = query.Where("audio_id = ?", audioID)
	}
	if language != "" {
		query = query.Where("language = ?", strings.ToLower(language))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transcripts []models.Transcript
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&transcripts).Error; err != nil {
		return nil, 0, err
	}
	return transcripts, total, nil
}

func (s *TranscriptService) Get(ctx context.Context, id uint) (*models.Transcript, error) {
	var transcript models.Transcript
	if err := s.db.WithContext(ctx).First(&transcript, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Transcript not found with id: %d", id)
		}
		return nil, err
	}
	return &transcript, nil
}

// Search matches transcripts whose text contains the query, newest first.
func (s *TranscriptService) Search(ctx context.Context, q string, limit int) ([]models.Transcript, int64, error) {
	if strings.TrimSpace(q) == "" {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "search query must not be empty")
	}
	limit, _, ok := normalizePage(limit, 0)
	if !ok {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "limit must not be negative")
	}

	query := s.db.WithContext(ctx).Model(&models.Transcript{}).Where("text LIKE ?", "%"+q+"%")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var transcripts []models.Transcript
	if err := query.Order("created_at DESC").Limit(limit).Find(&transcripts).Error; err != nil {
		return nil, 0, err
	}
	return transcripts, total, nil
}

// Delete removes the transcript and its summaries.
func (s *TranscriptService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Transcript{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "Transcript not found with id: %d", id)
	}
	return nil
}
