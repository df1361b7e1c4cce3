package models

import "time"

type Transcript struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AudioID   uint      `gorm:"not null;index" json:"audio_id"`
	Audio     Audio     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Language  string    `gorm:"size:10;not null;default:'ko'" json:"language"`
	Model     string    `gorm:"size:50;not null;default:'whisper-1'" json:"model"` // STT model used
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Summaries []Summary `gorm:"constraint:OnDelete:CASCADE" json:"summaries,omitempty"`
}
