package models

import "time"

// PromptTemplate is a reusable summarization prompt. Content carries a single
// {transcript} placeholder that is filled with the transcript text.
type PromptTemplate struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"size:500" json:"description"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	Category    string    `gorm:"size:50;not null;default:'general'" json:"category"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
