package model

// WithdrawalState is the settlement state of a withdrawal request.
type WithdrawalState string

const (
	WithdrawalPending  WithdrawalState = "pending"
	WithdrawalApproved WithdrawalState = "approved"
	WithdrawalRejected WithdrawalState = "rejected"
	WithdrawalPaid     WithdrawalState = "paid"
)

// WithdrawalRequest is a payout request as returned by the backend.
// Amount is a decimal string parsed for display only.
type WithdrawalRequest struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	UserName      string          `json:"user_name"`
	UserEmail     string          `json:"user_email"`
	Amount        string          `json:"amount"`
	Date          string          `json:"date"`
	Status        WithdrawalState `json:"status"`
	BankName      string          `json:"bank_name"`
	AccountNumber string          `json:"account_number"`
	AccountName   string          `json:"account_name"`
}

// NewWithdrawal is the payload for creating a withdrawal request.
type NewWithdrawal struct {
	Amount        string `json:"amount"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
}
