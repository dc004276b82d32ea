// Package common defines shared constants and sentinel errors used across
// the chat server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Session / token errors.
	ErrorUnauthenticated = errors.New("unauthenticated")

	// Login / registration errors.
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorUserDeactivated    = errors.New("user deactivated")
	ErrorUsernameTaken      = errors.New("username already taken")

	// Authorization errors.
	ErrorNotOwner   = errors.New("not resource owner")
	ErrorNotAMember = errors.New("not a channel member")

	// Lookup errors surfaced to callers.
	ErrorChannelNotFound = errors.New("channel not found")
	ErrorMessageNotFound = errors.New("message not found")
	ErrorUserNotFound    = errors.New("user not found")

	// Membership invariant errors.
	ErrorCreatorRemoval = errors.New("channel creator cannot be removed")
)
