package models

import "time"

// User is a registered account. Username is unique; DisplayName is what
// other users see and is denormalized into messages at send time.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
	IsActive     bool
}
