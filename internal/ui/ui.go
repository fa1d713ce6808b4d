package ui

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"runtime"
	"time"

	"github.com/optivus-protocol/portal/internal/store"
	"github.com/optivus-protocol/portal/pkg/optivus"
)

// UI serves the member dashboard and the admin console.
type UI struct {
	api       *optivus.Client
	store     store.Store
	sessions  *SessionManager
	logger    *slog.Logger
	limiter   *loginLimiter
	startTime time.Time
	secure    bool // Use secure cookies (HTTPS)
}

// Config holds UI configuration.
type Config struct {
	Secure          bool          // Use secure cookies for HTTPS
	SessionTTL      time.Duration // web session lifetime
	LoginRatePerMin int           // login attempts per client IP, 0 disables
}

// New creates a new UI handler.
func New(api *optivus.Client, st store.Store, logger *slog.Logger, cfg Config) *UI {
	return &UI{
		api:       api,
		store:     st,
		sessions:  NewSessionManager(st, cfg.SessionTTL),
		logger:    logger.With("component", "ui"),
		limiter:   newLoginLimiter(cfg.LoginRatePerMin),
		startTime: time.Now(),
		secure:    cfg.Secure,
	}
}

// Sessions exposes the session manager for background cleanup loops.
func (ui *UI) Sessions() *SessionManager {
	return ui.sessions
}

// HandleHealth serves a liveness probe with basic process info.
func (ui *UI) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":     "healthy",
		"go_version": runtime.Version(),
		"uptime":     time.Since(ui.startTime).Round(time.Second).String(),
	})
}

// --- Render helpers ---

func (ui *UI) render(w http.ResponseWriter, template string, data map[string]any) {
	ui.renderStatus(w, http.StatusOK, template, data)
}

func (ui *UI) renderStatus(w http.ResponseWriter, status int, template string, data map[string]any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := renderTemplate(&buf, template, data); err != nil {
		ui.logger.Error("template render failed", "template", template, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (ui *UI) renderError(w http.ResponseWriter, message string, err error) {
	ui.logger.Error(message, "error", err)
	data := map[string]any{
		"Title":   "Error - Optivus",
		"Message": message,
	}
	ui.renderStatus(w, http.StatusInternalServerError, "error", data)
}

func (ui *UI) renderNotFound(w http.ResponseWriter, message string) {
	data := map[string]any{
		"Title":   "Not Found - Optivus",
		"Message": message,
	}
	ui.renderStatus(w, http.StatusNotFound, "error", data)
}

// redirectWithError sends the user back to a form page with the backend's
// error message in the query string. Backend messages surface verbatim.
func redirectWithError(w http.ResponseWriter, r *http.Request, path string, err error) {
	msg := "Something went wrong, please try again"
	if apiErr, ok := optivus.AsAPIError(err); ok && apiErr.Detail != "" {
		msg = apiErr.Detail
	}
	http.Redirect(w, r, path+"?error="+url.QueryEscape(msg), http.StatusSeeOther)
}

func redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	http.Redirect(w, r, path+"?notice="+url.QueryEscape(notice), http.StatusSeeOther)
}
