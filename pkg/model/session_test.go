package model

import (
	"testing"
	"time"
)

func TestSession_States(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		sess          Session
		authenticated bool
		awaiting      bool
	}{
		{
			"authenticated",
			Session{AccessToken: "tok", ExpiresAt: now.Add(time.Hour)},
			true, false,
		},
		{
			"awaiting 2fa",
			Session{PendingUserID: "42", ExpiresAt: now.Add(time.Hour)},
			false, true,
		},
		{
			"empty",
			Session{ExpiresAt: now.Add(time.Hour)},
			false, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sess.Authenticated(); got != tt.authenticated {
				t.Errorf("Authenticated() = %v, want %v", got, tt.authenticated)
			}
			if got := tt.sess.AwaitingTwoFactor(); got != tt.awaiting {
				t.Errorf("AwaitingTwoFactor() = %v, want %v", got, tt.awaiting)
			}
		})
	}
}

func TestSession_IsTokenExpired(t *testing.T) {
	tests := []struct {
		name     string
		exp      time.Time
		expected bool
	}{
		{"future", time.Now().Add(time.Hour), false},
		{"past", time.Now().Add(-time.Hour), true},
		{"unknown", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{TokenExp: tt.exp}
			if got := s.IsTokenExpired(); got != tt.expected {
				t.Errorf("IsTokenExpired() = %v, want %v", got, tt.expected)
			}
		})
	}
}
