package models

import "time"

// AudioStatuses is the allowed status vocabulary for audios.
var AudioStatuses = []string{"extracted", "processing", "completed", "failed"}

type Audio struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	VideoID   uint      `gorm:"not null;index" json:"video_id"`
	Video     Video     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Filename  string    `gorm:"size:255;not null" json:"filename"`
	Filepath  string    `gorm:"size:512;not null;uniqueIndex" json:"filepath"`
	FileSize  *int64    `json:"file_size"` // bytes
	Duration  *float64  `json:"duration"`  // seconds
	Status    string    `gorm:"size:50;not null;default:'extracted'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Transcripts []Transcript `gorm:"constraint:OnDelete:CASCADE" json:"transcripts,omitempty"`
}
