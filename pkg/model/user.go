package model

// Role represents the role of an account on the platform.
type Role string

const (
	// RoleUser is a standard platform member.
	RoleUser Role = "user"
	// RoleAdmin has access to the admin console and approval queues.
	RoleAdmin Role = "admin"
)

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

const (
	AccountActive AccountStatus = "active"
	AccountFrozen AccountStatus = "frozen"
)

// WithdrawalStatus controls whether an account may request withdrawals.
type WithdrawalStatus string

const (
	WithdrawalsActive WithdrawalStatus = "active"
	WithdrawalsPaused WithdrawalStatus = "paused"
)

// User is the profile held by the Optivus backend. The portal only caches a
// possibly partial copy; every field beyond the identity core is optional and
// must not be assumed present.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	ReferralCode string `json:"referral_code"`
	KycVerified  bool   `json:"is_kyc_verified"`

	FirstName        string           `json:"first_name,omitempty"`
	LastName         string           `json:"last_name,omitempty"`
	Balance          string           `json:"balance,omitempty"` // decimal string, display only
	HasPin           bool             `json:"has_pin,omitempty"`
	TwoFactorEnabled bool             `json:"is_2fa_enabled,omitempty"`
	Role             Role             `json:"role,omitempty"`
	Status           AccountStatus    `json:"status,omitempty"`
	WithdrawalStatus WithdrawalStatus `json:"withdrawal_status,omitempty"`
}

// IsAdmin reports whether the profile carries the administrator role.
// A missing role is never treated as admin.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName returns the best human-readable name available for the user.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

// Merge applies the non-zero fields of partial onto u. A sparse backend
// response must never wipe cached data, so zero values are skipped.
func (u *User) Merge(partial User) {
	if partial.ID != "" {
		u.ID = partial.ID
	}
	if partial.Email != "" {
		u.Email = partial.Email
	}
	if partial.Username != "" {
		u.Username = partial.Username
	}
	if partial.ReferralCode != "" {
		u.ReferralCode = partial.ReferralCode
	}
	if partial.FirstName != "" {
		u.FirstName = partial.FirstName
	}
	if partial.LastName != "" {
		u.LastName = partial.LastName
	}
	if partial.Balance != "" {
		u.Balance = partial.Balance
	}
	if partial.Role != "" {
		u.Role = partial.Role
	}
	if partial.Status != "" {
		u.Status = partial.Status
	}
	if partial.WithdrawalStatus != "" {
		u.WithdrawalStatus = partial.WithdrawalStatus
	}
	if partial.KycVerified {
		u.KycVerified = true
	}
	if partial.HasPin {
		u.HasPin = true
	}
	if partial.TwoFactorEnabled {
		u.TwoFactorEnabled = true
	}
}
