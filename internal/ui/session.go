package ui

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/optivus-protocol/portal/internal/store"
	"github.com/optivus-protocol/portal/pkg/model"
	"github.com/optivus-protocol/portal/pkg/optivus"
)

const (
	// SessionCookieName is the name of the session cookie.
	SessionCookieName = "optivus_session"
	// DefaultSessionDuration is the session lifetime when none is configured.
	DefaultSessionDuration = 24 * time.Hour
	// PendingSessionDuration bounds how long a half-open 2FA login stays valid.
	PendingSessionDuration = 10 * time.Minute
)

// SessionManager handles session creation, validation, and cleanup.
type SessionManager struct {
	store    store.Store
	duration time.Duration
}

// NewSessionManager creates a new session manager. A non-positive duration
// falls back to DefaultSessionDuration.
func NewSessionManager(st store.Store, duration time.Duration) *SessionManager {
	if duration <= 0 {
		duration = DefaultSessionDuration
	}
	return &SessionManager{store: st, duration: duration}
}

// CreateSession creates an authenticated session for a user holding a token
// pair. The session never outlives the access token.
func (sm *SessionManager) CreateSession(ctx context.Context, user *model.User, pair optivus.TokenPair) (*model.Session, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	now := time.Now()
	sess := &model.Session{
		ID:           sessionID,
		UserID:       user.ID,
		Email:        user.Email,
		Username:     user.Username,
		Role:         user.Role,
		AccessToken:  pair.Access,
		RefreshToken: pair.Refresh,
		TokenExp:     optivus.ParseToken(pair.Access).Expiry,
		CreatedAt:    now,
		ExpiresAt:    now.Add(sm.duration),
	}

	// Limit session expiry to token expiry if the token expires sooner.
	if !sess.TokenExp.IsZero() && sess.TokenExp.Before(sess.ExpiresAt) {
		sess.ExpiresAt = sess.TokenExp
	}

	if err := sm.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return sess, nil
}

// CreatePendingSession creates a short-lived session carrying only the
// pending identity of a login that awaits a 2FA code.
func (sm *SessionManager) CreatePendingSession(ctx context.Context, email, pendingUserID string) (*model.Session, error) {
	sessionID, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("generate session id: %w", err)
	}

	now := time.Now()
	sess := &model.Session{
		ID:            sessionID,
		Email:         email,
		PendingUserID: pendingUserID,
		CreatedAt:     now,
		ExpiresAt:     now.Add(PendingSessionDuration),
	}

	if err := sm.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	return sess, nil
}

// UpgradeSession turns a pending 2FA session into an authenticated one, once
// the backend has issued a token pair. The session gets a fresh ID; the
// pre-authentication ID stops resolving, so callers must set a new cookie.
func (sm *SessionManager) UpgradeSession(ctx context.Context, sess *model.Session, user *model.User, pair optivus.TokenPair) error {
	newID, err := generateSessionID()
	if err != nil {
		return fmt.Errorf("generate session id: %w", err)
	}

	oldID := sess.ID
	now := time.Now()
	sess.ID = newID
	sess.UserID = user.ID
	sess.Email = user.Email
	sess.Username = user.Username
	sess.Role = user.Role
	sess.AccessToken = pair.Access
	sess.RefreshToken = pair.Refresh
	sess.TokenExp = optivus.ParseToken(pair.Access).Expiry
	sess.PendingUserID = ""
	sess.ExpiresAt = now.Add(sm.duration)

	if !sess.TokenExp.IsZero() && sess.TokenExp.Before(sess.ExpiresAt) {
		sess.ExpiresAt = sess.TokenExp
	}

	if err := sm.store.CreateSession(ctx, sess); err != nil {
		sess.ID = oldID
		return fmt.Errorf("upgrade session: %w", err)
	}
	_ = sm.store.DeleteSession(ctx, oldID)
	return nil
}

// GetSession retrieves a session by ID from the store.
// Returns nil if the session doesn't exist or has expired.
func (sm *SessionManager) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	sess, err := sm.store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess == nil {
		return nil, nil
	}

	// Check if session or token has expired.
	if sess.IsExpired() || sess.IsTokenExpired() {
		_ = sm.store.DeleteSession(ctx, sessionID)
		return nil, nil
	}

	return sess, nil
}

// DeleteSession removes a session from the store.
func (sm *SessionManager) DeleteSession(ctx context.Context, sessionID string) error {
	return sm.store.DeleteSession(ctx, sessionID)
}

// RevokeUserSessions removes every session belonging to a user, e.g. after an
// administrator freezes the account.
func (sm *SessionManager) RevokeUserSessions(ctx context.Context, userID string) (int64, error) {
	return sm.store.DeleteSessionsByUserID(ctx, userID)
}

// CleanupExpiredSessions removes all expired sessions from the store.
func (sm *SessionManager) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	return sm.store.DeleteExpiredSessions(ctx)
}

// GetSessionFromRequest extracts the session from the request cookie.
func (sm *SessionManager) GetSessionFromRequest(r *http.Request) (*model.Session, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil, nil // No cookie, no session
	}
	return sm.GetSession(r.Context(), cookie.Value)
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, sess *model.Session, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
		Expires:  sess.ExpiresAt,
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// generateSessionID generates a cryptographically secure random session ID.
func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return "sess_" + hex.EncodeToString(b), nil
}
