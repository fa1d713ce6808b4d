package optivus

import (
	"context"
	"fmt"

	"github.com/optivus-protocol/portal/pkg/model"
)

// AdminCreateUser is the payload for creating an account from the admin
// console.
type AdminCreateUser struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// AdminUserUpdate is a partial account change applied by an administrator.
type AdminUserUpdate struct {
	Status           model.AccountStatus    `json:"status,omitempty"`
	WithdrawalStatus model.WithdrawalStatus `json:"withdrawal_status,omitempty"`
	Balance          string                 `json:"balance,omitempty"`
	Role             model.Role             `json:"role,omitempty"`
}

// userEnvelope wraps user-management responses.
type userEnvelope struct {
	User model.User `json:"user"`
}

// AdminUsers lists all platform accounts.
func (c *Client) AdminUsers(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	if err := c.get(ctx, "/admin/users/", token, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminCreateUserAccount creates an account from the admin console.
func (c *Client) AdminCreateUserAccount(ctx context.Context, token string, req AdminCreateUser) (*model.User, error) {
	var env userEnvelope
	if err := c.post(ctx, "/admin/users/create/", token, req, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// AdminUpdateUserAccount applies a partial change to an account.
func (c *Client) AdminUpdateUserAccount(ctx context.Context, token, userID string, update AdminUserUpdate) (*model.User, error) {
	var env userEnvelope
	if err := c.patch(ctx, "/admin/users/"+userID+"/", token, update, &env); err != nil {
		return nil, err
	}
	return &env.User, nil
}

// AdminStats fetches platform-wide aggregates.
func (c *Client) AdminStats(ctx context.Context, token string) (*model.AdminStats, error) {
	var stats model.AdminStats
	if err := c.get(ctx, "/admin/stats/", token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AdminTransactions fetches a page of the platform-wide ledger.
func (c *Client) AdminTransactions(ctx context.Context, token string, page int) (*model.TransactionPage, error) {
	var result model.TransactionPage
	path := fmt.Sprintf("/admin/transactions/?page=%d", page)
	if err := c.get(ctx, path, token, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ApproveWithdrawal settles a pending withdrawal.
func (c *Client) ApproveWithdrawal(ctx context.Context, token, id string) error {
	return c.post(ctx, "/withdrawals/admin/approve/"+id+"/", token, nil, nil)
}

// DenyWithdrawal rejects a pending withdrawal with a reason shown to the
// member.
func (c *Client) DenyWithdrawal(ctx context.Context, token, id, reason string) error {
	return c.post(ctx, "/withdrawals/admin/deny/"+id+"/", token, map[string]string{"reason": reason}, nil)
}

// AdminKycRequests lists pending KYC submissions.
func (c *Client) AdminKycRequests(ctx context.Context, token string) ([]model.KycRequest, error) {
	var reqs []model.KycRequest
	if err := c.get(ctx, "/kyc/admin/list/", token, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// KycAction is an admin adjudication of a KYC submission.
type KycAction string

const (
	KycApprove KycAction = "approve"
	KycReject  KycAction = "reject"
)

// ProcessKyc adjudicates a member's KYC submission. Reason is required for
// rejections and ignored for approvals.
func (c *Client) ProcessKyc(ctx context.Context, token, userID string, action KycAction, reason string) error {
	body := map[string]string{
		"user_id": userID,
		"action":  string(action),
	}
	if reason != "" {
		body["reason"] = reason
	}
	return c.post(ctx, "/kyc/admin/process/", token, body, nil)
}
