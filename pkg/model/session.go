package model

import "time"

// Session is a portal web session. A session is created in a pending state
// when the backend demands a second factor, and becomes authenticated once a
// token pair has been issued.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`

	// Backend credentials, never exposed via JSON.
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	TokenExp     time.Time `json:"-"` // access token expiry, zero if unknown

	// PendingUserID is set while the login awaits a 2FA code.
	PendingUserID string `json:"-"`
}

// Authenticated reports whether the session holds backend credentials.
func (s *Session) Authenticated() bool {
	return s.AccessToken != ""
}

// AwaitingTwoFactor reports whether the session is a half-open login waiting
// for a one-time code.
func (s *Session) AwaitingTwoFactor() bool {
	return !s.Authenticated() && s.PendingUserID != ""
}

// IsExpired reports whether the session has expired.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// IsTokenExpired reports whether the backend access token has expired.
// Sessions with an unknown token expiry are never considered token-expired.
func (s *Session) IsTokenExpired() bool {
	return !s.TokenExp.IsZero() && time.Now().After(s.TokenExp)
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
