package models

import "time"

// Message is an immutable chat message. Username holds the author's display
// name at send time; later profile changes do not alter historical messages.
// There is no edit operation, only removal.
type Message struct {
	ID        string
	ChannelID string
	UserID    string
	Username  string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
