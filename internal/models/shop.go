package models

import (
	"time"
)

// Shop is the tenant record created by the OAuth install flow.
// Every other entity is scoped by the shop domain rather than a
// foreign key, so uninstall/reinstall keeps content addressable.
type Shop struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Domain      string    `gorm:"uniqueIndex;size:120;not null" json:"domain"`
	AccessToken string    `gorm:"type:text" json:"-"`

	// Per-shop posting policy, consulted on every storefront mutation.
	AllowAnonymous    bool `gorm:"default:true" json:"allow_anonymous"`
	AutoApprove       bool `gorm:"default:false" json:"auto_approve"`
	EditWindowMinutes int  `gorm:"default:15" json:"edit_window_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Settings is the slice of Shop the mutation services actually consume.
type Settings struct {
	AllowAnonymous    bool
	AutoApprove       bool
	EditWindowMinutes int
}

func (s *Shop) Settings() Settings {
	return Settings{
		AllowAnonymous:    s.AllowAnonymous,
		AutoApprove:       s.AutoApprove,
		EditWindowMinutes: s.EditWindowMinutes,
	}
}
