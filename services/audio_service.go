package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/adamsai/video-summarizer/apperr"
	"github.com/adamsai/video-summarizer/config"
	"github.com/adamsai/video-summarizer/models"
	"github.com/adamsai/video-summarizer/utils"
)

// AudioService runs the extraction stage: Video -> Audio.
type AudioService struct {
	db        *gorm.DB
	extractor AudioExtractor
	cfg       config.Config
	log       *logrus.Logger
}

func NewAudioService(db *gorm.DB, extractor AudioExtractor, cfg config.Config, log *logrus.Logger) *AudioService {
	return &AudioService{db: db, extractor: extractor, cfg: cfg, log: log}
}

// Extract pulls the audio track out of an existing video and records the
// artifact with status "extracted". On gateway failure no row is created and
// the parent video's status is left untouched; a partial file on disk is
// accepted and not cleaned up.
func (s *AudioService) Extract(ctx context.Context, videoID uint) (*models.Audio, error) {
	start := time.Now()
	status := "failed"
	defer observeStage("extract", start, &status)

	var video models.Video
	if err := s.db.WithContext(ctx).First(&video, videoID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Video not found with id: %d", videoID)
		}
		return nil, err
	}

	if err := os.MkdirAll(s.cfg.AudiosDir, 0o755); err != nil {
		return nil, err
	}

	base := strings.TrimSuffix(video.Filename, filepath.Ext(video.Filename))
	filename := utils.UniqueFilename(base + ".mp3")
	outputPath := filepath.Join(s.cfg.AudiosDir, filename)

	extractCtx, cancel := context.WithTimeout(ctx, s.cfg.ExtractTimeout)
	defer cancel()

	duration, err := s.extractor.ExtractAudio(extractCtx, video.Filepath, outputPath, s.cfg.DefaultAudioBitrate)
	if err != nil {
		s.log.WithError(err).WithField("video_id", videoID).Error("audio extraction failed")
		return nil, apperr.Wrap(apperr.KindExtractionFailed, err, "audio extraction failed")
	}

	size, err := utils.FileSize(outputPath)
	if err != nil {
		s.log.WithError(err).WithField("filepath", outputPath).Error("extracted audio file missing")
		return nil, apperr.Wrap(apperr.KindExtractionFailed, err, "audio extraction failed")
	}

	// Some containers report no duration; fall back to walking the MP3 frames.
	if duration == 0 {
		if d, err := utils.MP3Duration(outputPath); err == nil {
			duration = d
		}
	}

	audio := &models.Audio{
		VideoID:  videoID,
		Filename: filename,
		Filepath: outputPath,
		FileSize: &size,
		Duration: &duration,
		Status:   "extracted",
	}
	if err := s.db.WithContext(ctx).Create(audio).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, apperr.New(apperr.KindConflict, "audio with filepath '%s' already exists", outputPath)
		}
		return nil, err
	}

	status = "success"
	s.log.WithFields(logrus.Fields{"audio_id": audio.ID, "video_id": videoID}).Info("audio extracted")
	return audio, nil
}

// List returns a page of audios, optionally scoped to one video.
func (s *AudioService) List(ctx context.Context, videoID uint, limit, offset int) ([]models.Audio, int64, error) {
	limit, offset, ok := normalizePage(limit, offset)
	if !ok {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "limit and offset must not be negative")
	}

	query := s.db.WithContext(ctx).Model(&models.Audio{})
	if videoID != 0 {
		query = query.Where("video_id = ?", videoID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var audios []models.Audio
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&audios).Error; err != nil {
		return nil, 0, err
	}
	return audios, total, nil
}

func (s *AudioService) Get(ctx context.Context, id uint) (*models.Audio, error) {
	var audio models.Audio
	if err := s.db.WithContext(ctx).First(&audio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Audio not found with id: %d", id)
		}
		return nil, err
	}
	return &audio, nil
}

func (s *AudioService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Audio, error) {
	if !utils.IsValidStatus(status, models.AudioStatuses) {
		return nil, apperr.New(apperr.KindInvalidInput, "invalid status: %s", status)
	}

	audio, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	audio.Status = status
	if err := s.db.WithContext(ctx).Save(audio).Error; err != nil {
		return nil, err
	}
	return audio, nil
}

// Delete removes the audio row (cascading to transcripts and summaries) and
// best-effort removes the file.
func (s *AudioService) Delete(ctx context.Context, id uint) error {
	audio, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Delete(&models.Audio{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "Audio not found with id: %d", id)
	}

	if err := utils.DeleteFileSafe(audio.Filepath); err != nil {
		s.log.WithError(err).WithField("filepath", audio.Filepath).Warn("failed to delete audio file")
	}
	return nil
}
