package models

import (
	"time"
)

// Vote target types.
const (
	TargetThread  = "thread"
	TargetComment = "comment"
)

// Vote is upvote-only. The composite unique index is the sole
// de-duplication mechanism: a second vote from the same identity on the
// same target fails the insert instead of incrementing anything.
type Vote struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Shop       string `gorm:"size:120;not null;uniqueIndex:idx_vote_identity" json:"shop"`
	TargetType string `gorm:"size:20;not null;uniqueIndex:idx_vote_identity" json:"target_type"`
	TargetID   uint   `gorm:"not null;uniqueIndex:idx_vote_identity" json:"target_id"`

	// Voter identity: customer id for logged-in customers, browser
	// fingerprint for anonymous ones. Both columns are part of the
	// uniqueness tuple; the empty string stands in for "absent".
	CustomerID  string `gorm:"size:64;uniqueIndex:idx_vote_identity" json:"customer_id"`
	Fingerprint string `gorm:"size:128;uniqueIndex:idx_vote_identity" json:"fingerprint"`

	Value     int       `gorm:"not null;default:1" json:"value"`
	CreatedAt time.Time `json:"created_at"`
}
