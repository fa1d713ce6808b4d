package optivus

import (
	"context"

	"github.com/optivus-protocol/portal/pkg/model"
)

// Transactions lists the authenticated member's ledger entries.
func (c *Client) Transactions(ctx context.Context, token string) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := c.get(ctx, "/transactions/", token, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Transaction fetches a single ledger entry.
func (c *Client) Transaction(ctx context.Context, token, id string) (*model.Transaction, error) {
	var tx model.Transaction
	if err := c.get(ctx, "/transactions/"+id+"/", token, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// WithdrawalReceipt acknowledges a withdrawal request.
type WithdrawalReceipt struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// CreateWithdrawal submits a payout request.
func (c *Client) CreateWithdrawal(ctx context.Context, token string, req model.NewWithdrawal) (*WithdrawalReceipt, error) {
	var receipt WithdrawalReceipt
	if err := c.post(ctx, "/withdrawals/", token, req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Withdrawals lists withdrawal requests. The backend scopes the listing by
// role: members see their own requests, administrators see all of them.
func (c *Client) Withdrawals(ctx context.Context, token string) ([]model.WithdrawalRequest, error) {
	var reqs []model.WithdrawalRequest
	if err := c.get(ctx, "/withdrawals/", token, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}
