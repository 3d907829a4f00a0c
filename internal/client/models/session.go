// Package models defines client-side data models used by the SyncVeil CLI.
package models

// Session is the client-held authentication state that gates access to
// protected operations. It is created from a successful signup or login
// response and persisted to the local store immediately.
type Session struct {
	// AccessToken is the opaque bearer credential. Its presence is the sole
	// authentication predicate; no expiry is tracked client-side.
	AccessToken string

	// RefreshToken is optional and currently unused by the client.
	RefreshToken string

	UserID    string
	UserEmail string
}

// SessionUser is the identity subset of a session readable without
// authentication checks. Empty fields mean "no session".
type SessionUser struct {
	ID    string
	Email string
}
