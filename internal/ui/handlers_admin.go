package ui

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/optivus-protocol/portal/pkg/model"
	"github.com/optivus-protocol/portal/pkg/optivus"
)

// HandleAdminStats renders the admin overview with platform aggregates.
func (ui *UI) HandleAdminStats(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	stats, err := ui.api.AdminStats(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load platform stats", err)
		return
	}

	data := map[string]any{
		"Title":   "Admin - Optivus",
		"Session": sess,
		"Stats":   stats,
	}
	ui.render(w, "admin/stats", data)
}

// HandleAdminUsers renders the account management table.
func (ui *UI) HandleAdminUsers(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	users, err := ui.api.AdminUsers(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load users", err)
		return
	}

	data := map[string]any{
		"Title":   "Users - Optivus Admin",
		"Session": sess,
		"Users":   users,
		"Error":   r.URL.Query().Get("error"),
		"Notice":  r.URL.Query().Get("notice"),
	}
	ui.render(w, "admin/users", data)
}

// HandleAdminUserCreate creates an account from the admin console.
func (ui *UI) HandleAdminUserCreate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/users?error=Invalid+request", http.StatusSeeOther)
		return
	}

	req := optivus.AdminCreateUser{
		Email:     strings.TrimSpace(r.FormValue("email")),
		Username:  strings.TrimSpace(r.FormValue("username")),
		Password:  r.FormValue("password"),
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
	}
	if req.Email == "" || req.Username == "" || req.Password == "" {
		http.Redirect(w, r, "/admin/users?error=Email%2C+username+and+password+required", http.StatusSeeOther)
		return
	}

	user, err := ui.api.AdminCreateUserAccount(r.Context(), sess.AccessToken, req)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		redirectWithError(w, r, "/admin/users", err)
		return
	}

	ui.logger.Info("admin created user", "admin", sess.UserID, "user_id", user.ID)
	redirectWithNotice(w, r, "/admin/users", "Account created")
}

// HandleAdminUserUpdate applies a partial account change: freeze/unfreeze,
// pause withdrawals, balance adjustment, or role change. Freezing an account
// also revokes its portal sessions.
func (ui *UI) HandleAdminUserUpdate(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/users?error=Invalid+request", http.StatusSeeOther)
		return
	}

	update := optivus.AdminUserUpdate{
		Status:           model.AccountStatus(r.FormValue("status")),
		WithdrawalStatus: model.WithdrawalStatus(r.FormValue("withdrawal_status")),
		Balance:          strings.TrimSpace(r.FormValue("balance")),
		Role:             model.Role(r.FormValue("role")),
	}

	user, err := ui.api.AdminUpdateUserAccount(r.Context(), sess.AccessToken, id, update)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		redirectWithError(w, r, "/admin/users", err)
		return
	}

	if update.Status == model.AccountFrozen {
		if n, err := ui.sessions.RevokeUserSessions(r.Context(), id); err == nil && n > 0 {
			ui.logger.Info("revoked sessions of frozen account", "user_id", id, "count", n)
		}
	}

	ui.logger.Info("admin updated user", "admin", sess.UserID, "user_id", user.ID)
	redirectWithNotice(w, r, "/admin/users", "Account updated")
}

// HandleAdminWithdrawals renders the withdrawal approval queue.
func (ui *UI) HandleAdminWithdrawals(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	withdrawals, err := ui.api.Withdrawals(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load withdrawals", err)
		return
	}

	pending := 0
	for i := range withdrawals {
		if withdrawals[i].Status == model.WithdrawalPending {
			pending++
		}
	}

	data := map[string]any{
		"Title":       "Withdrawals - Optivus Admin",
		"Session":     sess,
		"Withdrawals": withdrawals,
		"Pending":     pending,
		"Error":       r.URL.Query().Get("error"),
		"Notice":      r.URL.Query().Get("notice"),
	}
	ui.render(w, "admin/withdrawals", data)
}

// HandleAdminWithdrawalApprove approves a pending withdrawal.
func (ui *UI) HandleAdminWithdrawalApprove(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := ui.api.ApproveWithdrawal(r.Context(), sess.AccessToken, id); err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		redirectWithError(w, r, "/admin/withdrawals", err)
		return
	}

	ui.logger.Info("withdrawal approved", "admin", sess.UserID, "withdrawal", id)
	redirectWithNotice(w, r, "/admin/withdrawals", "Withdrawal approved")
}

// HandleAdminWithdrawalDeny denies a pending withdrawal with a reason.
func (ui *UI) HandleAdminWithdrawalDeny(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/withdrawals?error=Invalid+request", http.StatusSeeOther)
		return
	}
	reason := strings.TrimSpace(r.FormValue("reason"))

	if err := ui.api.DenyWithdrawal(r.Context(), sess.AccessToken, id, reason); err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		redirectWithError(w, r, "/admin/withdrawals", err)
		return
	}

	ui.logger.Info("withdrawal denied", "admin", sess.UserID, "withdrawal", id)
	redirectWithNotice(w, r, "/admin/withdrawals", "Withdrawal denied")
}

// HandleAdminKyc renders the verification review queue.
func (ui *UI) HandleAdminKyc(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	requests, err := ui.api.AdminKycRequests(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load verification queue", err)
		return
	}

	data := map[string]any{
		"Title":    "KYC Review - Optivus Admin",
		"Session":  sess,
		"Requests": requests,
		"Error":    r.URL.Query().Get("error"),
		"Notice":   r.URL.Query().Get("notice"),
	}
	ui.render(w, "admin/kyc", data)
}

// HandleAdminKycProcess approves or rejects a verification submission. A
// rejection requires a reason.
func (ui *UI) HandleAdminKycProcess(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	userID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin/kyc?error=Invalid+request", http.StatusSeeOther)
		return
	}

	action := optivus.KycAction(r.FormValue("action"))
	reason := strings.TrimSpace(r.FormValue("reason"))
	if action != optivus.KycApprove && action != optivus.KycReject {
		http.Redirect(w, r, "/admin/kyc?error=Unknown+action", http.StatusSeeOther)
		return
	}
	if action == optivus.KycReject && reason == "" {
		http.Redirect(w, r, "/admin/kyc?error=Rejection+reason+required", http.StatusSeeOther)
		return
	}

	if err := ui.api.ProcessKyc(r.Context(), sess.AccessToken, userID, action, reason); err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		redirectWithError(w, r, "/admin/kyc", err)
		return
	}

	ui.logger.Info("kyc processed", "admin", sess.UserID, "user_id", userID, "action", action)
	redirectWithNotice(w, r, "/admin/kyc", "Verification "+string(action)+"d")
}

// HandleAdminTransactions renders the paginated platform ledger.
func (ui *UI) HandleAdminTransactions(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}

	txPage, err := ui.api.AdminTransactions(r.Context(), sess.AccessToken, page)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load transactions", err)
		return
	}

	data := map[string]any{
		"Title":        "Transactions - Optivus Admin",
		"Session":      sess,
		"Transactions": txPage.Transactions,
		"Page":         page,
		"TotalPages":   txPage.TotalPages,
		"HasPrev":      page > 1,
		"HasNext":      page < txPage.TotalPages,
	}
	ui.render(w, "admin/transactions", data)
}
