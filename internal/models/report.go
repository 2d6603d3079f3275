package models

import (
	"time"
)

// Report states.
const (
	ReportOpen     = "open"
	ReportResolved = "resolved"
)

type Report struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Shop       string `gorm:"size:120;not null;index" json:"shop"`
	TargetType string `gorm:"size:20;not null" json:"target_type"` // "thread", "comment"
	TargetID   uint   `gorm:"not null;index" json:"target_id"`
	Reason     string `gorm:"size:500;not null" json:"reason"`
	ReporterID string `gorm:"size:64" json:"reporter_id"`
	Status     string `gorm:"size:20;not null;default:'open';index" json:"status"`
	Notes      string `gorm:"size:500" json:"notes"` // resolver notes

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
