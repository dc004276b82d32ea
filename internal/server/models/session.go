package models

import "time"

// Session maps an opaque token to a user. A session is valid only while the
// owning user exists and is active; that is re-checked on every use.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}
