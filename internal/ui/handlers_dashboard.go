package ui

import (
	"io"
	"net/http"
	"strings"

	"github.com/optivus-protocol/portal/pkg/model"
	"github.com/optivus-protocol/portal/pkg/optivus"
)

// HandleDashboard renders the member overview: earnings, team size, and the
// referral link. Stats and the downline tree are fetched concurrently.
func (ui *UI) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	type statsResult struct {
		stats *model.DashboardStats
		err   error
	}
	type teamResult struct {
		team []model.TeamMember
		err  error
	}

	statsCh := make(chan statsResult, 1)
	teamCh := make(chan teamResult, 1)
	go func() {
		stats, err := ui.api.DashboardStats(r.Context(), sess.AccessToken)
		statsCh <- statsResult{stats, err}
	}()
	go func() {
		team, err := ui.api.TeamTree(r.Context(), sess.AccessToken)
		teamCh <- teamResult{team, err}
	}()

	sr := <-statsCh
	tr := <-teamCh
	if sr.err != nil {
		if ui.expireOnUnauthorized(w, r, sr.err) {
			return
		}
		ui.renderError(w, "Failed to load dashboard stats", sr.err)
		return
	}

	user, err := ui.api.Profile(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load profile", err)
		return
	}

	data := map[string]any{
		"Title":        "Dashboard - Optivus",
		"Session":      sess,
		"User":         user,
		"Stats":        sr.stats,
		"Team":         tr.team,
		"TeamError":    tr.err != nil,
		"ReferralLink": referralLink(r, user.ReferralCode),
	}
	ui.render(w, "dashboard", data)
}

// HandleTeam renders the full referral downline tree.
func (ui *UI) HandleTeam(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	team, err := ui.api.TeamTree(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load team", err)
		return
	}

	total := 0
	for i := range team {
		total += 1 + team[i].CountDownline()
	}

	data := map[string]any{
		"Title":     "My Team - Optivus",
		"Session":   sess,
		"Team":      team,
		"TeamTotal": total,
	}
	ui.render(w, "team", data)
}

// HandleHistory renders the member's transaction ledger.
func (ui *UI) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	txs, err := ui.api.Transactions(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load transactions", err)
		return
	}

	data := map[string]any{
		"Title":        "History - Optivus",
		"Session":      sess,
		"Transactions": txs,
	}
	ui.render(w, "history", data)
}

// HandleWithdraw renders the withdrawal form along with past requests.
func (ui *UI) HandleWithdraw(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	user, err := ui.api.Profile(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load profile", err)
		return
	}

	withdrawals, err := ui.api.Withdrawals(r.Context(), sess.AccessToken)
	if err != nil {
		ui.logger.Warn("withdrawal list failed", "error", err)
	}

	data := map[string]any{
		"Title":       "Withdraw - Optivus",
		"Session":     sess,
		"User":        user,
		"KycRequired": !user.KycVerified,
		"Paused":      user.WithdrawalStatus == model.WithdrawalsPaused,
		"Withdrawals": withdrawals,
		"Error":       r.URL.Query().Get("error"),
		"Notice":      r.URL.Query().Get("notice"),
	}
	ui.render(w, "withdraw", data)
}

// HandleWithdrawPost submits a withdrawal request. Withdrawals are only open
// to verified accounts, and each request must carry the transaction PIN.
func (ui *UI) HandleWithdrawPost(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	user, err := ui.api.Profile(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load profile", err)
		return
	}
	if !user.KycVerified {
		http.Redirect(w, r, "/withdraw?error=Complete+identity+verification+before+withdrawing", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/withdraw?error=Invalid+request", http.StatusSeeOther)
		return
	}

	pin := strings.TrimSpace(r.FormValue("pin"))
	req := model.NewWithdrawal{
		Amount:        strings.TrimSpace(r.FormValue("amount")),
		BankName:      strings.TrimSpace(r.FormValue("bank_name")),
		AccountNumber: strings.TrimSpace(r.FormValue("account_number")),
		AccountName:   strings.TrimSpace(r.FormValue("account_name")),
	}
	if pin == "" || req.Amount == "" || req.BankName == "" || req.AccountNumber == "" || req.AccountName == "" {
		http.Redirect(w, r, "/withdraw?error=All+fields+are+required", http.StatusSeeOther)
		return
	}

	if err := ui.api.VerifyPin(r.Context(), sess.Email, pin); err != nil {
		ui.logger.Warn("pin verification failed", "user_id", sess.UserID, "error", err)
		redirectWithError(w, r, "/withdraw", err)
		return
	}

	if _, err := ui.api.CreateWithdrawal(r.Context(), sess.AccessToken, req); err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.logger.Warn("withdrawal request failed", "user_id", sess.UserID, "error", err)
		redirectWithError(w, r, "/withdraw", err)
		return
	}

	ui.logger.Info("withdrawal requested", "user_id", sess.UserID, "amount", req.Amount)
	redirectWithNotice(w, r, "/withdraw", "Withdrawal request submitted")
}

// HandleKyc renders the verification page: the current status, and the
// submission form when a (re)submission is possible.
func (ui *UI) HandleKyc(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	status, err := ui.api.KycStatus(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load verification status", err)
		return
	}

	canSubmit := status.Status == model.KycUnverified || status.Status == model.KycRejected

	data := map[string]any{
		"Title":     "Verification - Optivus",
		"Session":   sess,
		"Status":    status,
		"CanSubmit": canSubmit,
		"Error":     r.URL.Query().Get("error"),
		"Notice":    r.URL.Query().Get("notice"),
	}
	ui.render(w, "kyc", data)
}

// maxKycUpload bounds the identity document size.
const maxKycUpload = 10 << 20 // 10 MiB

// HandleKycPost submits the identity verification form with its document
// upload.
func (ui *UI) HandleKycPost(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxKycUpload)
	if err := r.ParseMultipartForm(maxKycUpload); err != nil {
		http.Redirect(w, r, "/kyc?error=Upload+too+large+or+malformed", http.StatusSeeOther)
		return
	}

	sub := model.KycSubmission{
		Address:    strings.TrimSpace(r.FormValue("address")),
		City:       strings.TrimSpace(r.FormValue("city")),
		PostalCode: strings.TrimSpace(r.FormValue("postal_code")),
		Country:    strings.TrimSpace(r.FormValue("country")),
	}
	if sub.Address == "" || sub.City == "" || sub.PostalCode == "" || sub.Country == "" {
		http.Redirect(w, r, "/kyc?error=All+fields+are+required", http.StatusSeeOther)
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		http.Redirect(w, r, "/kyc?error=Identity+document+required", http.StatusSeeOther)
		return
	}
	defer file.Close()

	doc, err := io.ReadAll(file)
	if err != nil {
		http.Redirect(w, r, "/kyc?error=Failed+to+read+document", http.StatusSeeOther)
		return
	}
	sub.DocumentName = header.Filename
	sub.Document = doc

	if _, err := ui.api.SubmitKyc(r.Context(), sess.AccessToken, sub); err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.logger.Warn("kyc submission failed", "user_id", sess.UserID, "error", err)
		redirectWithError(w, r, "/kyc", err)
		return
	}

	ui.logger.Info("kyc submitted", "user_id", sess.UserID)
	redirectWithNotice(w, r, "/kyc", "Verification submitted for review")
}

// HandleSettings renders account settings: profile, 2FA, and PIN.
func (ui *UI) HandleSettings(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	user, err := ui.api.Profile(r.Context(), sess.AccessToken)
	if err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		ui.renderError(w, "Failed to load profile", err)
		return
	}

	data := map[string]any{
		"Title":   "Settings - Optivus",
		"Session": sess,
		"User":    user,
		"Error":   r.URL.Query().Get("error"),
		"Notice":  r.URL.Query().Get("notice"),
	}

	// Show a fresh 2FA secret when the user asked to enable it.
	if r.URL.Query().Get("setup_2fa") == "1" && !user.TwoFactorEnabled {
		secret, err := ui.api.GenerateTwoFactor(r.Context(), sess.AccessToken)
		if err != nil {
			ui.renderError(w, "Failed to generate 2FA secret", err)
			return
		}
		data["TwoFactorSecret"] = secret
	}

	ui.render(w, "settings", data)
}

// HandleProfilePost applies a partial profile update.
func (ui *UI) HandleProfilePost(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/settings/?error=Invalid+request", http.StatusSeeOther)
		return
	}

	update := optivus.ProfileUpdate{
		FirstName: strings.TrimSpace(r.FormValue("first_name")),
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
		Username:  strings.TrimSpace(r.FormValue("username")),
	}

	if _, err := ui.api.UpdateProfile(r.Context(), sess.AccessToken, update); err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		redirectWithError(w, r, "/settings/", err)
		return
	}
	redirectWithNotice(w, r, "/settings/", "Profile updated")
}

// HandleEnableTwoFactor confirms the generated secret with a first code.
func (ui *UI) HandleEnableTwoFactor(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/settings/?error=Invalid+request", http.StatusSeeOther)
		return
	}
	code := strings.TrimSpace(r.FormValue("code"))
	if code == "" {
		http.Redirect(w, r, "/settings/?error=Code+required", http.StatusSeeOther)
		return
	}

	if err := ui.api.EnableTwoFactor(r.Context(), sess.AccessToken, code); err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		redirectWithError(w, r, "/settings/", err)
		return
	}

	ui.logger.Info("2fa enabled", "user_id", sess.UserID)
	redirectWithNotice(w, r, "/settings/", "Two-factor authentication enabled")
}

// HandleDisableTwoFactor turns 2FA off after verifying a current code.
func (ui *UI) HandleDisableTwoFactor(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/settings/?error=Invalid+request", http.StatusSeeOther)
		return
	}
	code := strings.TrimSpace(r.FormValue("code"))
	if code == "" {
		http.Redirect(w, r, "/settings/?error=Code+required", http.StatusSeeOther)
		return
	}

	if err := ui.api.DisableTwoFactor(r.Context(), sess.AccessToken, code); err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		redirectWithError(w, r, "/settings/", err)
		return
	}

	ui.logger.Info("2fa disabled", "user_id", sess.UserID)
	redirectWithNotice(w, r, "/settings/", "Two-factor authentication disabled")
}

// HandleSetPin sets the transaction PIN using an emailed PIN token.
func (ui *UI) HandleSetPin(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/settings/?error=Invalid+request", http.StatusSeeOther)
		return
	}

	// Step one: request the email token.
	if r.FormValue("request_token") == "1" {
		if err := ui.api.RequestPinToken(r.Context(), sess.Email); err != nil {
			redirectWithError(w, r, "/settings/", err)
			return
		}
		redirectWithNotice(w, r, "/settings/", "A PIN token has been emailed to you")
		return
	}

	pinToken := strings.TrimSpace(r.FormValue("pin_token"))
	pin := strings.TrimSpace(r.FormValue("pin"))
	if pinToken == "" || pin == "" {
		http.Redirect(w, r, "/settings/?error=Token+and+PIN+required", http.StatusSeeOther)
		return
	}

	if err := ui.api.SetPin(r.Context(), sess.Email, pinToken, pin); err != nil {
		redirectWithError(w, r, "/settings/", err)
		return
	}

	ui.logger.Info("pin set", "user_id", sess.UserID)
	redirectWithNotice(w, r, "/settings/", "Transaction PIN set")
}

// HandleChangePin replaces the transaction PIN after checking the current one.
func (ui *UI) HandleChangePin(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/settings/?error=Invalid+request", http.StatusSeeOther)
		return
	}

	currentPin := strings.TrimSpace(r.FormValue("current_pin"))
	newPin := strings.TrimSpace(r.FormValue("new_pin"))
	if currentPin == "" || newPin == "" {
		http.Redirect(w, r, "/settings/?error=Current+and+new+PIN+required", http.StatusSeeOther)
		return
	}

	if err := ui.api.ChangePin(r.Context(), sess.AccessToken, currentPin, newPin); err != nil {
		if ui.expireOnUnauthorized(w, r, err) {
			return
		}
		redirectWithError(w, r, "/settings/", err)
		return
	}

	ui.logger.Info("pin changed", "user_id", sess.UserID)
	redirectWithNotice(w, r, "/settings/", "Transaction PIN changed")
}

// referralLink builds the invite URL members share.
func referralLink(r *http.Request, code string) string {
	if code == "" {
		return ""
	}
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}
	return scheme + "://" + r.Host + "/signup?ref=" + code
}
