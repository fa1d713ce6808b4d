package ui

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all UI routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	// Public routes (no auth required). Credential endpoints are rate limited.
	r.Group(func(r chi.Router) {
		r.Use(ui.LoginRateMiddleware)
		r.Post("/login", ui.HandleLoginPost)
		r.Post("/signup", ui.HandleSignupPost)
		r.Post("/2fa", ui.HandleTwoFactorPost)
		r.Post("/admin/login", ui.HandleAdminLoginPost)
	})

	r.Get("/healthz", ui.HandleHealth)

	r.Get("/login", ui.HandleLogin)
	r.Get("/signup", ui.HandleSignup)
	r.Get("/2fa", ui.HandleTwoFactor)
	r.Get("/forgot-password", ui.HandleForgotPassword)
	r.Post("/forgot-password", ui.HandleForgotPasswordPost)
	r.Get("/reset-password", ui.HandleResetPassword)
	r.Post("/reset-password", ui.HandleResetPasswordPost)
	r.Get("/admin/login", ui.HandleAdminLogin)

	// Member routes (auth required).
	r.Group(func(r chi.Router) {
		r.Use(ui.AuthMiddleware)

		r.Get("/", ui.HandleDashboard)
		r.Get("/logout", ui.HandleLogout)

		r.Get("/team", ui.HandleTeam)
		r.Get("/history", ui.HandleHistory)

		r.Get("/withdraw", ui.HandleWithdraw)
		r.Post("/withdraw", ui.HandleWithdrawPost)

		r.Get("/kyc", ui.HandleKyc)
		r.Post("/kyc", ui.HandleKycPost)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", ui.HandleSettings)
			r.Post("/profile", ui.HandleProfilePost)
			r.Post("/2fa/enable", ui.HandleEnableTwoFactor)
			r.Post("/2fa/disable", ui.HandleDisableTwoFactor)
			r.Post("/pin", ui.HandleSetPin)
			r.Post("/pin/change", ui.HandleChangePin)
		})

		// Admin console (admin role required).
		r.Route("/admin", func(r chi.Router) {
			r.Use(ui.AdminMiddleware)
			r.Get("/", ui.HandleAdminStats)
			r.Get("/stats", ui.HandleAdminStats)

			r.Get("/users", ui.HandleAdminUsers)
			r.Post("/users", ui.HandleAdminUserCreate)
			r.Post("/users/{id}", ui.HandleAdminUserUpdate)

			r.Get("/withdrawals", ui.HandleAdminWithdrawals)
			r.Post("/withdrawals/{id}/approve", ui.HandleAdminWithdrawalApprove)
			r.Post("/withdrawals/{id}/deny", ui.HandleAdminWithdrawalDeny)

			r.Get("/kyc", ui.HandleAdminKyc)
			r.Post("/kyc/{id}", ui.HandleAdminKycProcess)

			r.Get("/transactions", ui.HandleAdminTransactions)
		})
	})
}
