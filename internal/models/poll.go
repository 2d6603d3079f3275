package models

import (
	"time"
)

// Poll states. Closing is one-way; there is no reopen.
const (
	PollOpen   = "open"
	PollClosed = "closed"
)

type Poll struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Shop     string `gorm:"size:120;not null;index" json:"shop"`
	ThreadID uint   `gorm:"not null;index" json:"thread_id"`
	Question string `gorm:"size:300;not null" json:"question"`
	Status   string `gorm:"size:20;not null;default:'open'" json:"status"`

	Options []PollOption `gorm:"foreignKey:PollID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"options"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PollOption rows carry their own vote counter so a ballot is a single
// targeted increment keyed by (poll_id, option_id), never a rewrite of
// the whole option set.
type PollOption struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	PollID   uint   `gorm:"not null;uniqueIndex:idx_poll_option" json:"-"`
	OptionID int    `gorm:"not null;uniqueIndex:idx_poll_option" json:"id"` // sequential per poll, from 1
	Text     string `gorm:"size:200;not null" json:"text"`
	Votes    int    `gorm:"default:0" json:"votes"`
}

// PollVoter records which identity already voted on which poll. The
// unique index enforces one ballot per identity per poll.
type PollVoter struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Shop     string `gorm:"size:120;not null;index" json:"shop"`
	PollID   uint   `gorm:"not null;uniqueIndex:idx_poll_voter" json:"poll_id"`
	VoterKey string `gorm:"size:128;not null;uniqueIndex:idx_poll_voter" json:"voter_key"`
	Options  []int  `gorm:"serializer:json" json:"options"` // option ids chosen

	CreatedAt time.Time `json:"created_at"`
}
