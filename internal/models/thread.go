package models

import (
	"time"
)

// Moderation states shared by Thread and Comment.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Field limits applied before persistence.
const (
	MaxTitleLen        = 180
	MaxTagLen          = 30
	MaxTags            = 10
	MaxCategoryNameLen = 60
	MaxCategorySlugLen = 80
)

type Thread struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Shop       string   `gorm:"size:120;not null;index" json:"shop"`
	CategoryID *uint    `gorm:"index" json:"category_id"`
	Title      string   `gorm:"size:180;not null" json:"title"`
	Body       string   `gorm:"type:text" json:"body"`
	Tags       []string `gorm:"serializer:json" json:"tags"`

	// Author: a logged-in customer id, or a display name with the
	// anonymous flag set. Both may be present (named customer).
	CustomerID  string `gorm:"size:64;index" json:"customer_id"`
	AuthorName  string `gorm:"size:100" json:"author_name"`
	IsAnonymous bool   `gorm:"default:false" json:"is_anonymous"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Pinned bool   `gorm:"default:false" json:"pinned"`
	Closed bool   `gorm:"default:false" json:"closed"`

	Votes        int `gorm:"default:0" json:"votes"`
	CommentCount int `gorm:"default:0" json:"comment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
