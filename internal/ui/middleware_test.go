package ui

import (
	"testing"
	"time"
)

func TestLoginLimiterPrunesIdleClients(t *testing.T) {
	l := newLoginLimiter(5)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first attempt must be allowed")
	}
	if !l.Allow("10.0.0.2") {
		t.Fatal("first attempt must be allowed")
	}

	// Age one client past the idle TTL and force the next prune cycle.
	l.mu.Lock()
	l.clients["10.0.0.1"].lastSeen = time.Now().Add(-2 * limiterIdleTTL)
	l.lastPrune = time.Now().Add(-2 * limiterIdleTTL)
	l.mu.Unlock()

	if !l.Allow("10.0.0.3") {
		t.Fatal("first attempt must be allowed")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.clients["10.0.0.1"]; ok {
		t.Error("idle client survived prune")
	}
	if _, ok := l.clients["10.0.0.2"]; !ok {
		t.Error("active client was pruned")
	}
	if _, ok := l.clients["10.0.0.3"]; !ok {
		t.Error("new client missing after prune")
	}
}

func TestLoginLimiterDisabled(t *testing.T) {
	l := newLoginLimiter(0)
	for i := 0; i < 100; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatal("disabled limiter must always allow")
		}
	}
	if len(l.clients) != 0 {
		t.Errorf("disabled limiter must not track clients, got %d", len(l.clients))
	}
}
