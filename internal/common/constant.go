// Package common contains shared constants and sentinel errors used across
// SyncVeil client components.
package common

// Keys under which session fields are persisted in the local store.
// They mirror the field names the backend uses in its auth responses.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
	UserIDKey       = "user_id"
	UserEmailKey    = "user_email"
)

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"
