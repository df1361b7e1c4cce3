package models

import "time"

type Summary struct {
	ID               uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	TranscriptID     uint            `gorm:"not null;index" json:"transcript_id"`
	Transcript       Transcript      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	SummaryText      string          `gorm:"type:text;not null" json:"summary_text"`
	ModelName        string          `gorm:"size:100;not null" json:"model_name"` // LLM used, e.g. 'anthropic/claude-3.5-sonnet'
	PromptTemplateID *uint           `json:"prompt_template_id"`
	PromptTemplate   *PromptTemplate `gorm:"constraint:OnDelete:SET NULL" json:"-"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
}
