package ui

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/optivus-protocol/portal/pkg/model"
	"github.com/optivus-protocol/portal/pkg/optivus"
)

// Context keys for session data.
type contextKey string

const (
	sessionContextKey   contextKey = "session"
	requestIDContextKey contextKey = "request_id"
)

// RequestIDFromContext extracts the request ID from context.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDContextKey).(string); ok {
		return id
	}
	return ""
}

// RequestIDMiddleware generates a request_id and stores it in context.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := "req_" + uuid.New().String()[:8]
		ctx := context.WithValue(r.Context(), requestIDContextKey, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggingMiddleware logs HTTP requests at INFO level (method, path, status, duration).
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start).String(),
				"request_id", RequestIDFromContext(r.Context()),
			)
		})
	}
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// SessionFromContext retrieves the session from the request context.
func SessionFromContext(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// AuthMiddleware validates the session and adds it to the request context.
// If no valid authenticated session exists, it redirects to the login page.
func (ui *UI) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := ui.sessions.GetSessionFromRequest(r)
		if err != nil {
			ui.logger.Error("session lookup failed", "error", err)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if sess == nil || !sess.Authenticated() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware ensures the session belongs to an administrator.
// Must be used after AuthMiddleware.
func (ui *UI) AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		if sess == nil {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}

		if !sess.IsAdmin() {
			http.Error(w, "Forbidden: Admin access required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// OptionalAuthMiddleware adds the session to context if available but doesn't require it.
func (ui *UI) OptionalAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := ui.sessions.GetSessionFromRequest(r)
		if sess != nil {
			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// expireOnUnauthorized tears down the web session when the backend rejects
// its access token, so the next request lands on the login page instead of a
// broken dashboard.
func (ui *UI) expireOnUnauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !optivus.IsUnauthorized(err) {
		return false
	}
	if sess := SessionFromContext(r.Context()); sess != nil {
		_ = ui.sessions.DeleteSession(r.Context(), sess.ID)
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

// limiterIdleTTL is how long a client entry may sit unused before the
// limiter forgets about it.
const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// loginLimiter bounds login attempts per client IP. Entries idle for more
// than limiterIdleTTL are pruned so the map does not grow without bound.
type loginLimiter struct {
	mu        sync.Mutex
	perMin    int
	clients   map[string]*limiterEntry
	lastPrune time.Time
}

func newLoginLimiter(perMin int) *loginLimiter {
	return &loginLimiter{
		perMin:    perMin,
		clients:   make(map[string]*limiterEntry),
		lastPrune: time.Now(),
	}
}

// Allow reports whether the client may attempt another login.
func (l *loginLimiter) Allow(ip string) bool {
	if l.perMin <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.Sub(l.lastPrune) > limiterIdleTTL {
		l.pruneLocked(now)
	}

	entry, ok := l.clients[ip]
	if !ok {
		entry = &limiterEntry{lim: rate.NewLimiter(rate.Limit(float64(l.perMin)/60.0), l.perMin)}
		l.clients[ip] = entry
	}
	entry.lastSeen = now
	return entry.lim.Allow()
}

func (l *loginLimiter) pruneLocked(now time.Time) {
	for ip, entry := range l.clients {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(l.clients, ip)
		}
	}
	l.lastPrune = now
}

// LoginRateMiddleware rejects clients hammering the login endpoints.
func (ui *UI) LoginRateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !ui.limiter.Allow(ip) {
			ui.logger.Warn("login rate limited", "ip", ip)
			http.Error(w, "Too many login attempts, try again later", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
