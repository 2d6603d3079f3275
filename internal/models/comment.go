package models

import (
	"time"
)

type Comment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Shop     string `gorm:"size:120;not null;index" json:"shop"`
	ThreadID uint   `gorm:"not null;index" json:"thread_id"`
	ParentID *uint  `gorm:"index" json:"parent_id"` // flat reply reference, nil for top-level
	Body     string `gorm:"type:text;not null" json:"body"`

	CustomerID  string `gorm:"size:64;index" json:"customer_id"`
	AuthorName  string `gorm:"size:100" json:"author_name"`
	IsAnonymous bool   `gorm:"default:false" json:"is_anonymous"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Votes  int    `gorm:"default:0" json:"votes"`

	CreatedAt time.Time `json:"created_at"`
}
