// Package session owns the single authenticated-identity state of a running
// client and exposes the state transitions the views drive: login, admin
// login, two-factor verification, signup, logout.
//
// The coordinator performs no retries and no backoff. Every network-backed
// operation either succeeds or surfaces its error once to the caller.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/optivus-protocol/portal/internal/credstore"
	"github.com/optivus-protocol/portal/internal/logging"
	"github.com/optivus-protocol/portal/pkg/model"
	"github.com/optivus-protocol/portal/pkg/optivus"
)

// ErrAccessDenied is returned by AdminLogin when the authenticated profile
// does not carry the administrator role.
var ErrAccessDenied = errors.New("access denied: user is not an administrator")

// API is the slice of the Optivus backend the coordinator drives.
// *optivus.Client satisfies it.
type API interface {
	Login(ctx context.Context, email, password string) (*optivus.LoginResult, error)
	VerifyTwoFactor(ctx context.Context, userID, code string) (*optivus.TokenPair, error)
	Register(ctx context.Context, req optivus.RegisterRequest) (*model.User, error)
	Profile(ctx context.Context, token string) (*model.User, error)
}

// State is a snapshot of the coordinator. The zero value is the
// unauthenticated initial state.
type State struct {
	User          *model.User
	Authenticated bool
	Admin         bool
	PendingUserID string // set while a login awaits a 2FA code
	AccessToken   string
	RefreshToken  string
}

// LoginOutcome reports how a login attempt resolved: either an authenticated
// user, or a two-factor challenge to complete with VerifyTwoFactor.
type LoginOutcome struct {
	TwoFactorRequired bool
	UserID            string // pending identity when TwoFactorRequired
	User              *model.User
}

// Manager is the session coordinator. Overlapping operations are serialized;
// the last completed transition wins.
type Manager struct {
	api    API
	creds  credstore.Store
	logger *slog.Logger

	mu    sync.Mutex
	state State
	subs  map[int]func(State)
	nextS int
}

// NewManager creates a coordinator in the unauthenticated state. A nil
// logger disables logging.
func NewManager(api API, creds credstore.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Manager{
		api:    api,
		creds:  creds,
		logger: logger.With("component", "session"),
		subs:   map[int]func(State){},
	}
}

// Current returns a snapshot of the session state. The cached user is copied
// so callers cannot mutate coordinator state.
func (m *Manager) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Subscribe registers fn to be called after every state transition. The
// returned cancel function removes the subscription.
func (m *Manager) Subscribe(fn func(State)) (cancel func()) {
	m.mu.Lock()
	id := m.nextS
	m.nextS++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Initialize restores a persisted session at startup. If a persisted access
// token exists the profile is fetched once; a failed fetch clears all
// persisted tokens and leaves the session unauthenticated. Never retried.
func (m *Manager) Initialize(ctx context.Context) {
	token := m.creds.Get(credstore.KeyAccessToken)
	if token == "" {
		return
	}

	user, err := m.api.Profile(ctx, token)
	if err != nil {
		m.logger.Warn("session check failed, clearing tokens", "error", err)
		m.Logout()
		return
	}

	m.mu.Lock()
	m.state = State{
		User:          user,
		Authenticated: true,
		Admin:         user.IsAdmin(),
		AccessToken:   token,
		RefreshToken:  m.creds.Get(credstore.KeyRefreshToken),
	}
	m.notifyLocked()
	m.mu.Unlock()

	m.logger.Info("session restored", "user", user.Email, "admin", user.IsAdmin())
}

// Login checks credentials against the backend. A token pair authenticates
// the session; a two-factor marker leaves it unauthenticated with the
// pending identity recorded. Backend errors surface unmodified.
func (m *Manager) Login(ctx context.Context, email, password string) (*LoginOutcome, error) {
	result, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	if result.TwoFactorRequired {
		m.mu.Lock()
		m.state.PendingUserID = result.UserID
		m.state.Authenticated = false
		m.notifyLocked()
		m.mu.Unlock()

		m.logger.Info("login pending two-factor", "user_id", result.UserID)
		return &LoginOutcome{TwoFactorRequired: true, UserID: result.UserID}, nil
	}

	user, err := m.completeLogin(ctx, result.TokenPair)
	if err != nil {
		return nil, err
	}
	return &LoginOutcome{User: user}, nil
}

// AdminLogin is Login plus a role gate: if the fetched profile is not an
// administrator the session is torn down immediately and ErrAccessDenied is
// returned. A non-admin session never persists past this check.
func (m *Manager) AdminLogin(ctx context.Context, email, password string) (*LoginOutcome, error) {
	outcome, err := m.Login(ctx, email, password)
	if err != nil {
		m.Logout()
		return nil, err
	}
	if outcome.TwoFactorRequired {
		return outcome, nil
	}

	if !outcome.User.IsAdmin() {
		m.logger.Warn("admin login rejected", "email", email)
		m.Logout()
		return nil, ErrAccessDenied
	}
	return outcome, nil
}

// VerifyTwoFactor completes a pending login with a one-time code. On failure
// the session keeps its pre-call state, pending identity included.
func (m *Manager) VerifyTwoFactor(ctx context.Context, userID, code string) (*model.User, error) {
	pair, err := m.api.VerifyTwoFactor(ctx, userID, code)
	if err != nil {
		return nil, err
	}
	return m.completeLogin(ctx, *pair)
}

// Signup registers a new account and immediately logs in with the same
// credentials. Either step failing is a signup failure; the second step is
// not masked.
func (m *Manager) Signup(ctx context.Context, req optivus.RegisterRequest) (*LoginOutcome, error) {
	if _, err := m.api.Register(ctx, req); err != nil {
		return nil, err
	}
	return m.Login(ctx, req.Email, req.Password)
}

// Logout resets the session to its unauthenticated default and removes the
// persisted tokens. It always succeeds and performs no network call.
func (m *Manager) Logout() {
	_ = m.creds.Delete(credstore.KeyAccessToken)
	_ = m.creds.Delete(credstore.KeyRefreshToken)

	m.mu.Lock()
	m.state = State{}
	m.notifyLocked()
	m.mu.Unlock()
}

// UpdateUser merges a partial user into the cached profile without a network
// round-trip. A no-op when no user is cached.
func (m *Manager) UpdateUser(partial model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.User == nil {
		return
	}
	m.state.User.Merge(partial)
	m.state.Admin = m.state.User.IsAdmin()
	m.notifyLocked()
}

// completeLogin runs the persist tokens → fetch profile → populate state
// sequence shared by Login and VerifyTwoFactor.
func (m *Manager) completeLogin(ctx context.Context, pair optivus.TokenPair) (*model.User, error) {
	if err := m.creds.Set(credstore.KeyAccessToken, pair.Access); err != nil {
		return nil, err
	}
	if err := m.creds.Set(credstore.KeyRefreshToken, pair.Refresh); err != nil {
		return nil, err
	}

	user, err := m.api.Profile(ctx, pair.Access)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.state = State{
		User:          user,
		Authenticated: true,
		Admin:         user.IsAdmin(),
		AccessToken:   pair.Access,
		RefreshToken:  pair.Refresh,
	}
	m.notifyLocked()
	m.mu.Unlock()

	m.logger.Info("user logged in", "user", user.Email, "admin", user.IsAdmin())
	return user, nil
}

// snapshotLocked copies the state; callers must hold mu.
func (m *Manager) snapshotLocked() State {
	snap := m.state
	if m.state.User != nil {
		u := *m.state.User
		snap.User = &u
	}
	return snap
}

// notifyLocked invokes subscribers with a snapshot; callers must hold mu.
// Subscribers run synchronously and must not call back into the manager.
func (m *Manager) notifyLocked() {
	snap := m.snapshotLocked()
	for _, fn := range m.subs {
		fn(snap)
	}
}
