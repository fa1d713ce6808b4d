// Package credstore persists backend credentials behind a small key-value
// port so callers (and tests) can swap the storage medium.
package credstore

// Fixed keys under which the session coordinator persists tokens.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Store is a minimal key-value port for credential persistence.
// Get returns the empty string for missing keys; Delete of a missing key is
// not an error.
type Store interface {
	Get(key string) string
	Set(key, value string) error
	Delete(key string) error
}
