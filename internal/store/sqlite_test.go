package store

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/optivus-protocol/portal/pkg/model"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := NewSQLiteStore(":memory:", logger)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleSession() *model.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &model.Session{
		ID:           "sess_test-1",
		UserID:       "u1",
		Email:        "a@b.com",
		Username:     "alice",
		Role:         model.RoleUser,
		AccessToken:  "acc-token",
		RefreshToken: "ref-token",
		TokenExp:     now.Add(30 * time.Minute),
		CreatedAt:    now,
		ExpiresAt:    now.Add(12 * time.Hour),
	}
}

func TestSessionRoundTrip(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	want := sampleSession()
	if err := st.CreateSession(ctx, want); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := st.GetSession(ctx, want.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("session not found")
	}
	if got.UserID != want.UserID || got.Email != want.Email || got.Username != want.Username {
		t.Errorf("identity mismatch: got %+v", got)
	}
	if got.Role != model.RoleUser {
		t.Errorf("role = %q, want %q", got.Role, model.RoleUser)
	}
	if got.AccessToken != want.AccessToken || got.RefreshToken != want.RefreshToken {
		t.Errorf("tokens mismatch: got %+v", got)
	}
	if !got.TokenExp.Equal(want.TokenExp) {
		t.Errorf("token_exp = %v, want %v", got.TokenExp, want.TokenExp)
	}
	if !got.ExpiresAt.Equal(want.ExpiresAt) {
		t.Errorf("expires_at = %v, want %v", got.ExpiresAt, want.ExpiresAt)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	st := testStore(t)

	got, err := st.GetSession(context.Background(), "sess_missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing session, got %+v", got)
	}
}

func TestZeroTokenExpRoundTrips(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	sess := sampleSession()
	sess.TokenExp = time.Time{}
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := st.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.TokenExp.IsZero() {
		t.Errorf("unknown token expiry must stay zero, got %v", got.TokenExp)
	}
	if got.IsTokenExpired() {
		t.Error("unknown token expiry must never count as expired")
	}
}

func TestCreateSessionDuplicateID(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	sess := sampleSession()
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.CreateSession(ctx, sess); err == nil {
		t.Fatal("expected error inserting duplicate session id")
	}
}

func TestDeleteSession(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	sess := sampleSession()
	if err := st.CreateSession(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := st.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("session survived delete: %+v", got)
	}

	// Deleting again is a no-op.
	if err := st.DeleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestDeleteSessionsByUserID(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		sess := sampleSession()
		sess.ID = fmt.Sprintf("sess_test-%d", i)
		if err := st.CreateSession(ctx, sess); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	other := sampleSession()
	other.ID = "sess_other"
	other.UserID = "u2"
	if err := st.CreateSession(ctx, other); err != nil {
		t.Fatalf("create other: %v", err)
	}

	n, err := st.DeleteSessionsByUserID(ctx, "u1")
	if err != nil {
		t.Fatalf("delete by user: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted %d sessions, want 3", n)
	}

	got, err := st.GetSession(ctx, "sess_other")
	if err != nil {
		t.Fatalf("get other: %v", err)
	}
	if got == nil {
		t.Error("unrelated user's session was deleted")
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	expired := sampleSession()
	expired.ID = "sess_expired"
	expired.ExpiresAt = time.Now().Add(-time.Hour)
	if err := st.CreateSession(ctx, expired); err != nil {
		t.Fatalf("create expired: %v", err)
	}

	live := sampleSession()
	live.ID = "sess_live"
	if err := st.CreateSession(ctx, live); err != nil {
		t.Fatalf("create live: %v", err)
	}

	n, err := st.DeleteExpiredSessions(ctx)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d sessions, want 1", n)
	}

	if got, _ := st.GetSession(ctx, "sess_expired"); got != nil {
		t.Error("expired session survived sweep")
	}
	if got, _ := st.GetSession(ctx, "sess_live"); got == nil {
		t.Error("live session removed by sweep")
	}
}

func TestMigrateIdempotent(t *testing.T) {
	st := testStore(t)
	if err := st.Migrate(context.Background()); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
