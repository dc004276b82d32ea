package models

import (
	"slices"
	"time"
)

// Channel groups messages and members. MemberIDs is a set: no duplicates,
// order irrelevant, never empty (the creator is always an initial member).
type Channel struct {
	ID          string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   time.Time
	IsPrivate   bool
	MemberIDs   []string
}

// HasMember reports whether userID belongs to the channel's member set.
func (c *Channel) HasMember(userID string) bool {
	return slices.Contains(c.MemberIDs, userID)
}
