package models

import "time"

const (
	SourceTypeUpload   = "upload"
	SourceTypeDownload = "download"
)

// VideoStatuses is the allowed status vocabulary for videos.
var VideoStatuses = []string{"uploaded", "processing", "completed", "failed"}

type Video struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Filename   string    `gorm:"size:255;not null" json:"filename"`
	Filepath   string    `gorm:"size:512;not null;uniqueIndex" json:"filepath"`
	SourceType string    `gorm:"size:50;not null" json:"source_type"` // upload | download
	SourceURL  *string   `gorm:"size:1024" json:"source_url"`         // original URL when downloaded
	FileSize   *int64    `json:"file_size"`                           // bytes
	Duration   *float64  `json:"duration"`                            // seconds
	Status     string    `gorm:"size:50;not null;default:'uploaded'" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Audios []Audio `gorm:"constraint:OnDelete:CASCADE" json:"audios,omitempty"`
}
