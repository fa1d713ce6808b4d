package ui

import (
	"net/http"
	"strings"

	"github.com/optivus-protocol/portal/pkg/optivus"
)

// HandleLogin renders the login page.
func (ui *UI) HandleLogin(w http.ResponseWriter, r *http.Request) {
	// If already logged in, redirect to the dashboard.
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil && sess.Authenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"Title":  "Login - Optivus",
		"Error":  r.URL.Query().Get("error"),
		"Notice": r.URL.Query().Get("notice"),
	}
	ui.render(w, "login", data)
}

// HandleLoginPost processes the login form. A two-factor marker in the
// backend response parks the login in a pending session and sends the user
// to the code entry page.
func (ui *UI) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=Invalid+request", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		http.Redirect(w, r, "/login?error=Email+and+password+required", http.StatusSeeOther)
		return
	}

	result, err := ui.api.Login(r.Context(), email, password)
	if err != nil {
		ui.logger.Warn("login failed", "email", email, "error", err)
		redirectWithError(w, r, "/login", err)
		return
	}

	if result.TwoFactorRequired {
		sess, err := ui.sessions.CreatePendingSession(r.Context(), email, result.UserID)
		if err != nil {
			ui.logger.Error("create pending session failed", "error", err)
			http.Redirect(w, r, "/login?error=Session+creation+failed", http.StatusSeeOther)
			return
		}
		SetSessionCookie(w, sess, ui.secure)
		http.Redirect(w, r, "/2fa", http.StatusSeeOther)
		return
	}

	ui.establishSession(w, r, result.TokenPair, "/")
}

// HandleTwoFactor renders the 2FA code entry page.
func (ui *UI) HandleTwoFactor(w http.ResponseWriter, r *http.Request) {
	sess, _ := ui.sessions.GetSessionFromRequest(r)
	if sess == nil || !sess.AwaitingTwoFactor() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"Title": "Two-Factor Verification - Optivus",
		"Email": sess.Email,
		"Error": r.URL.Query().Get("error"),
	}
	ui.render(w, "twofactor", data)
}

// HandleTwoFactorPost verifies the submitted 2FA code. A failed verification
// keeps the pending session so the user can retry.
func (ui *UI) HandleTwoFactorPost(w http.ResponseWriter, r *http.Request) {
	sess, _ := ui.sessions.GetSessionFromRequest(r)
	if sess == nil || !sess.AwaitingTwoFactor() {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/2fa?error=Invalid+request", http.StatusSeeOther)
		return
	}
	code := strings.TrimSpace(r.FormValue("code"))
	if code == "" {
		http.Redirect(w, r, "/2fa?error=Code+required", http.StatusSeeOther)
		return
	}

	pair, err := ui.api.VerifyTwoFactor(r.Context(), sess.PendingUserID, code)
	if err != nil {
		ui.logger.Warn("2fa verification failed", "user_id", sess.PendingUserID, "error", err)
		redirectWithError(w, r, "/2fa", err)
		return
	}

	user, err := ui.api.Profile(r.Context(), pair.Access)
	if err != nil {
		ui.logger.Error("profile fetch failed after 2fa", "error", err)
		redirectWithError(w, r, "/2fa", err)
		return
	}

	if err := ui.sessions.UpgradeSession(r.Context(), sess, user, *pair); err != nil {
		ui.logger.Error("session upgrade failed", "error", err)
		http.Redirect(w, r, "/login?error=Session+creation+failed", http.StatusSeeOther)
		return
	}
	SetSessionCookie(w, sess, ui.secure)

	ui.logger.Info("user logged in", "user_id", user.ID, "session", sess.ID, "2fa", true)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleSignup renders the registration page. An invite referral code may be
// carried in the query string.
func (ui *UI) HandleSignup(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title":    "Sign Up - Optivus",
		"Error":    r.URL.Query().Get("error"),
		"Referral": r.URL.Query().Get("ref"),
	}
	ui.render(w, "signup", data)
}

// HandleSignupPost registers the account and, on success, logs the user in
// with the same credentials.
func (ui *UI) HandleSignupPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/signup?error=Invalid+request", http.StatusSeeOther)
		return
	}

	req := optivus.RegisterRequest{
		Email:      strings.TrimSpace(r.FormValue("email")),
		Username:   strings.TrimSpace(r.FormValue("username")),
		Password:   r.FormValue("password"),
		ReferredBy: strings.TrimSpace(r.FormValue("referred_by")),
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		http.Redirect(w, r, "/signup?error=All+fields+are+required", http.StatusSeeOther)
		return
	}

	if _, err := ui.api.Register(r.Context(), req); err != nil {
		ui.logger.Warn("registration failed", "email", req.Email, "error", err)
		redirectWithError(w, r, "/signup", err)
		return
	}

	result, err := ui.api.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Account exists but login failed; send them to the login page.
		ui.logger.Warn("post-signup login failed", "email", req.Email, "error", err)
		redirectWithError(w, r, "/login", err)
		return
	}
	if result.TwoFactorRequired {
		// Fresh accounts should not have 2FA, but follow the backend.
		sess, err := ui.sessions.CreatePendingSession(r.Context(), req.Email, result.UserID)
		if err != nil {
			http.Redirect(w, r, "/login?error=Session+creation+failed", http.StatusSeeOther)
			return
		}
		SetSessionCookie(w, sess, ui.secure)
		http.Redirect(w, r, "/2fa", http.StatusSeeOther)
		return
	}

	ui.establishSession(w, r, result.TokenPair, "/")
}

// HandleForgotPassword renders the password recovery page.
func (ui *UI) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title":  "Forgot Password - Optivus",
		"Error":  r.URL.Query().Get("error"),
		"Notice": r.URL.Query().Get("notice"),
	}
	ui.render(w, "forgot_password", data)
}

// HandleForgotPasswordPost requests a recovery email.
func (ui *UI) HandleForgotPasswordPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/forgot-password?error=Invalid+request", http.StatusSeeOther)
		return
	}
	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		http.Redirect(w, r, "/forgot-password?error=Email+required", http.StatusSeeOther)
		return
	}

	if err := ui.api.ForgotPassword(r.Context(), email); err != nil {
		redirectWithError(w, r, "/forgot-password", err)
		return
	}
	redirectWithNotice(w, r, "/forgot-password", "If the address exists, a recovery email is on its way")
}

// HandleResetPassword renders the reset form reached from the recovery email.
func (ui *UI) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title": "Reset Password - Optivus",
		"Token": r.URL.Query().Get("token"),
		"Error": r.URL.Query().Get("error"),
	}
	ui.render(w, "reset_password", data)
}

// HandleResetPasswordPost sets the new password using the emailed token.
func (ui *UI) HandleResetPasswordPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/reset-password?error=Invalid+request", http.StatusSeeOther)
		return
	}
	token := r.FormValue("token")
	password := r.FormValue("password")
	if token == "" || password == "" {
		http.Redirect(w, r, "/reset-password?error=Token+and+password+required", http.StatusSeeOther)
		return
	}

	if err := ui.api.ResetPassword(r.Context(), token, password); err != nil {
		redirectWithError(w, r, "/reset-password", err)
		return
	}
	redirectWithNotice(w, r, "/login", "Password updated, please log in")
}

// HandleAdminLogin renders the admin console login page.
func (ui *UI) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil && sess.Authenticated() && sess.IsAdmin() {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"Title": "Admin Login - Optivus",
		"Error": r.URL.Query().Get("error"),
	}
	ui.render(w, "admin/login", data)
}

// HandleAdminLoginPost processes the admin login form. Valid credentials
// belonging to a non-administrator are rejected and no session survives.
func (ui *UI) HandleAdminLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/login?error=Invalid+request", http.StatusSeeOther)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	if email == "" || password == "" {
		http.Redirect(w, r, "/admin/login?error=Email+and+password+required", http.StatusSeeOther)
		return
	}

	result, err := ui.api.Login(r.Context(), email, password)
	if err != nil {
		ui.logger.Warn("admin login failed", "email", email, "error", err)
		redirectWithError(w, r, "/admin/login", err)
		return
	}
	if result.TwoFactorRequired {
		sess, err := ui.sessions.CreatePendingSession(r.Context(), email, result.UserID)
		if err != nil {
			http.Redirect(w, r, "/admin/login?error=Session+creation+failed", http.StatusSeeOther)
			return
		}
		SetSessionCookie(w, sess, ui.secure)
		http.Redirect(w, r, "/2fa", http.StatusSeeOther)
		return
	}

	user, err := ui.api.Profile(r.Context(), result.Access)
	if err != nil {
		ui.logger.Error("profile fetch failed", "error", err)
		redirectWithError(w, r, "/admin/login", err)
		return
	}

	if !user.IsAdmin() {
		ui.logger.Warn("admin login rejected", "email", email, "role", user.Role)
		http.Redirect(w, r, "/admin/login?error=Access+denied%3A+user+is+not+an+administrator", http.StatusSeeOther)
		return
	}

	sess, err := ui.sessions.CreateSession(r.Context(), user, result.TokenPair)
	if err != nil {
		ui.logger.Error("create session failed", "error", err)
		http.Redirect(w, r, "/admin/login?error=Session+creation+failed", http.StatusSeeOther)
		return
	}
	SetSessionCookie(w, sess, ui.secure)

	ui.logger.Info("admin logged in", "user_id", user.ID, "session", sess.ID)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// HandleLogout clears the session and redirects to login. Always succeeds;
// no backend call is made.
func (ui *UI) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, _ := ui.sessions.GetSessionFromRequest(r); sess != nil {
		_ = ui.sessions.DeleteSession(r.Context(), sess.ID)
		ui.logger.Info("user logged out", "user_id", sess.UserID, "session", sess.ID)
	}
	ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// establishSession fetches the profile for a fresh token pair, stores the
// session, and sets the cookie.
func (ui *UI) establishSession(w http.ResponseWriter, r *http.Request, pair optivus.TokenPair, target string) {
	user, err := ui.api.Profile(r.Context(), pair.Access)
	if err != nil {
		ui.logger.Error("profile fetch failed", "error", err)
		redirectWithError(w, r, "/login", err)
		return
	}

	sess, err := ui.sessions.CreateSession(r.Context(), user, pair)
	if err != nil {
		ui.logger.Error("create session failed", "error", err)
		http.Redirect(w, r, "/login?error=Session+creation+failed", http.StatusSeeOther)
		return
	}
	SetSessionCookie(w, sess, ui.secure)

	ui.logger.Info("user logged in", "user_id", user.ID, "session", sess.ID)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
