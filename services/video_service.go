package services

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/adamsai/video-summarizer/apperr"
	"github.com/adamsai/video-summarizer/config"
	"github.com/adamsai/video-summarizer/models"
	"github.com/adamsai/video-summarizer/utils"
)

// VideoService owns the entry points of the pipeline: direct uploads and URL
// downloads both produce a Video row with status "uploaded".
type VideoService struct {
	db         *gorm.DB
	downloader Downloader
	prober     MediaProber
	cfg        config.Config
	log        *logrus.Logger
}

func NewVideoService(db *gorm.DB, downloader Downloader, prober MediaProber, cfg config.Config, log *logrus.Logger) *VideoService {
	return &VideoService{db: db, downloader: downloader, prober: prober, cfg: cfg, log: log}
}

// Upload stores a multipart video upload on disk, probes its metadata and
// creates the Video row. A failed metadata probe removes the just-written
// file before returning.
func (s *VideoService) Upload(ctx context.Context, file *multipart.FileHeader) (*models.Video, error) {
	if !utils.IsValidVideoFile(file.Filename) {
		return nil, apperr.New(apperr.KindInvalidInput, "unsupported file format: %s", file.Filename)
	}

	maxBytes := s.cfg.MaxUploadSizeMB * 1024 * 1024
	if file.Size > maxBytes {
		return nil, apperr.New(apperr.KindInvalidInput, "file size exceeds maximum allowed size of %dMB", s.cfg.MaxUploadSizeMB)
	}

	if err := os.MkdirAll(s.cfg.VideosDir, 0o755); err != nil {
		return nil, err
	}

	filename := utils.UniqueFilename(file.Filename)
	destination := filepath.Join(s.cfg.VideosDir, filename)

	size, err := saveUploadedFile(file, destination)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInvalidInput, err, "failed to save uploaded file")
	}

	duration, err := s.prober.ProbeDuration(ctx, destination)
	if err != nil {
		// Unreadable upload: remove the file so no orphan stays behind.
		if derr := utils.DeleteFileSafe(destination); derr != nil {
			s.log.WithError(derr).WithField("filepath", destination).Warn("failed to remove unreadable upload")
		}
		return nil, apperr.Wrap(apperr.KindInvalidInput, err, "failed to process video file")
	}

	video := &models.Video{
		Filename:   filename,
		Filepath:   destination,
		SourceType: models.SourceTypeUpload,
		FileSize:   &size,
		Duration:   &duration,
		Status:     "uploaded",
	}
	if err := s.db.WithContext(ctx).Create(video).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, apperr.New(apperr.KindConflict, "video with filepath '%s' already exists", destination)
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"video_id": video.ID, "filename": filename}).Info("video uploaded")
	return video, nil
}

// Download fetches a remote video and records it with source kind
// "download". The URL is validated before the gateway is invoked.
func (s *VideoService) Download(ctx context.Context, url, title string) (*models.Video, error) {
	start := time.Now()
	status := "failed"
	defer observeStage("download", start, &status)

	if !utils.IsValidURL(url) {
		return nil, apperr.New(apperr.KindInvalidInput, "invalid URL: %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.DownloadTimeout)
	defer cancel()

	result, err := s.downloader.Download(ctx, url, s.cfg.VideosDir, title)
	if err != nil {
		s.log.WithError(err).WithField("url", url).Error("video download failed")
		return nil, apperr.Wrap(apperr.KindDownloadFailed, err, "download failed")
	}

	video := &models.Video{
		Filename:   result.Filename,
		Filepath:   result.Filepath,
		SourceType: models.SourceTypeDownload,
		SourceURL:  &url,
		FileSize:   &result.FileSize,
		Duration:   result.Duration,
		Status:     "uploaded",
	}
	if err := s.db.WithContext(ctx).Create(video).Error; err != nil {
		if isDuplicateErr(err) {
			return nil, apperr.New(apperr.KindConflict, "video with filepath '%s' already exists", result.Filepath)
		}
		return nil, err
	}

	status = "success"
	s.log.WithFields(logrus.Fields{"video_id": video.ID, "url": url}).Info("video downloaded")
	return video, nil
}

// List returns a page of videos plus the total count matching the filter.
func (s *VideoService) List(ctx context.Context, statusFilter string, limit, offset int) ([]models.Video, int64, error) {
	limit, offset, ok := normalizePage(limit, offset)
	if !ok {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "limit and offset must not be negative")
	}
	if statusFilter != "" && !utils.IsValidStatus(statusFilter, models.VideoStatuses) {
		return nil, 0, apperr.New(apperr.KindInvalidInput, "invalid status: %s", statusFilter)
	}

	query := s.db.WithContext(ctx).Model(&models.Video{})
	if statusFilter != "" {
		query = query.Where("status = ?", statusFilter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var videos []models.Video
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&videos).Error; err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (s *VideoService) Get(ctx context.Context, id uint) (*models.Video, error) {
	var video models.Video
	if err := s.db.WithContext(ctx).First(&video, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "Video not found with id: %d", id)
		}
		return nil, err
	}
	return &video, nil
}

// UpdateStatus is the administrative status transition; pipeline stages never
// call it.
func (s *VideoService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Video, error) {
	if !utils.IsValidStatus(status, models.VideoStatuses) {
		return nil, apperr.New(apperr.KindInvalidInput, "invalid status: %s", status)
	}

	video, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	video.Status = status
	if err := s.db.WithContext(ctx).Save(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

// Delete removes the video row (cascading to audios, transcripts and
// summaries) and best-effort removes the physical file. A concurrent delete
// of the same id surfaces as NotFound for the loser.
func (s *VideoService) Delete(ctx context.Context, id uint) error {
	video, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Delete(&models.Video{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.New(apperr.KindNotFound, "Video not found with id: %d", id)
	}

	if err := utils.DeleteFileSafe(video.Filepath); err != nil {
		s.log.WithError(err).WithField("filepath", video.Filepath).Warn("failed to delete video file")
	}
	return nil
}

func saveUploadedFile(file *multipart.FileHeader, destination string) (int64, error) {
	src, err := file.Open()
	if err != nil {
		return 0, err
	}
	defer src.Close()

	dst, err := os.Create(destination)
	if err != nil {
		return 0, err
	}
	defer dst.Close()

	return io.Copy(dst, src)
}
