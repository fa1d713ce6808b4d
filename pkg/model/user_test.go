package model

import "testing"

func TestUser_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"admin", RoleAdmin, true},
		{"user", RoleUser, false},
		{"missing role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{Role: tt.role}
			if got := u.IsAdmin(); got != tt.expected {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUser_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
	}{
		{"full name", User{FirstName: "Ada", LastName: "Lovelace", Username: "ada", Email: "ada@example.com"}, "Ada Lovelace"},
		{"first only", User{FirstName: "Ada", Email: "ada@example.com"}, "Ada"},
		{"username fallback", User{Username: "ada", Email: "ada@example.com"}, "ada"},
		{"email fallback", User{Email: "ada@example.com"}, "ada@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestUser_Merge(t *testing.T) {
	u := User{
		ID:       "u1",
		Email:    "ada@example.com",
		Username: "ada",
		Balance:  "100.00",
		Role:     RoleUser,
	}

	u.Merge(User{Balance: "250.50", HasPin: true})

	if u.Balance != "250.50" {
		t.Errorf("expected merged balance %q, got %q", "250.50", u.Balance)
	}
	if !u.HasPin {
		t.Error("expected HasPin to be set after merge")
	}
	// Fields absent from the partial must survive.
	if u.Email != "ada@example.com" {
		t.Errorf("expected email to be preserved, got %q", u.Email)
	}
	if u.Role != RoleUser {
		t.Errorf("expected role to be preserved, got %q", u.Role)
	}
}

func TestUser_MergeSparseDoesNotWipe(t *testing.T) {
	u := User{ID: "u1", Username: "ada", Balance: "9.99", KycVerified: true}
	u.Merge(User{})

	if u.Username != "ada" || u.Balance != "9.99" || !u.KycVerified {
		t.Errorf("empty merge mutated user: %+v", u)
	}
}

func TestTransaction_IsDebit(t *testing.T) {
	tests := []struct {
		name     string
		tx       Transaction
		expected bool
	}{
		{"withdrawal", Transaction{Type: TxWithdrawal, Amount: "200.00"}, true},
		{"fee", Transaction{Type: TxFee, Amount: "5.00"}, true},
		{"commission", Transaction{Type: TxCommission, Amount: "50.00"}, false},
		{"negative adjustment", Transaction{Type: TxAdjustment, Amount: "-10.00"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tx.IsDebit(); got != tt.expected {
				t.Errorf("IsDebit() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTeamMember_CountDownline(t *testing.T) {
	tree := TeamMember{
		ID: "root",
		Children: []TeamMember{
			{ID: "a", Children: []TeamMember{{ID: "a1"}, {ID: "a2"}}},
			{ID: "b"},
		},
	}

	if got := tree.CountDownline(); got != 4 {
		t.Errorf("CountDownline() = %d, want 4", got)
	}
}
