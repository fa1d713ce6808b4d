package model

import "time"

// TxType classifies a ledger entry.
type TxType string

const (
	TxDeposit    TxType = "deposit"
	TxWithdrawal TxType = "withdrawal"
	TxCommission TxType = "commission"
	TxBonus      TxType = "bonus"
	TxFee        TxType = "fee"
	TxAdjustment TxType = "adjustment"
	TxReversal   TxType = "reversal"
)

// TxStatus is the settlement state of a transaction.
type TxStatus string

const (
	TxCompleted TxStatus = "completed"
	TxPending   TxStatus = "pending"
	TxFailed    TxStatus = "failed"
)

// Transaction is a read-only ledger entry fetched from the backend.
// Amount is a decimal string; it is parsed for display only.
type Transaction struct {
	ID        string    `json:"id"`
	Type      TxType    `json:"tx_type"`
	Reference string    `json:"reference"`
	Amount    string    `json:"amount"`
	Status    TxStatus  `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// User is populated on admin listings only.
	User *TxUser `json:"user,omitempty"`
}

// TxUser identifies the account a transaction belongs to in admin views.
type TxUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsDebit reports whether the entry reduces the account balance.
func (t *Transaction) IsDebit() bool {
	switch t.Type {
	case TxWithdrawal, TxFee:
		return true
	}
	return len(t.Amount) > 0 && t.Amount[0] == '-'
}

// TransactionPage is a paginated admin transaction listing.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	TotalPages   int           `json:"total_pages"`
}
