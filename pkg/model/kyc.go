package model

// KycState is the verification state of an account's KYC submission.
type KycState string

const (
	KycUnverified KycState = "unverified"
	KycPending    KycState = "pending"
	KycApproved   KycState = "approved"
	KycRejected   KycState = "rejected"
)

// KycStatus is the per-account verification status returned by the backend.
type KycStatus struct {
	Status          KycState `json:"status"`
	RejectionReason string   `json:"rejection_reason"`
}

// KycRequest is a pending verification in the admin queue.
type KycRequest struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name"`
	UserEmail     string `json:"user_email"`
	DateSubmitted string `json:"date_submitted"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	DocumentURL   string `json:"document_url"`
}

// KycSubmission is the multipart payload for a verification submission.
// Document carries the raw bytes of the identity document.
type KycSubmission struct {
	Address      string
	City         string
	PostalCode   string
	Country      string
	DocumentName string
	Document     []byte
}
