package models

import (
	"time"
)

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Shop      string    `gorm:"size:120;not null;index" json:"shop"`
	Name      string    `gorm:"size:60;not null" json:"name"`
	Slug      string    `gorm:"size:80;not null" json:"slug"`
	Order     int       `gorm:"default:0" json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
