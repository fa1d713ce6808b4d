package optivus

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/optivus-protocol/portal/pkg/model"
)

// KycReceipt acknowledges a KYC submission.
type KycReceipt struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// SubmitKyc uploads a verification document plus address details as a
// multipart form.
func (c *Client) SubmitKyc(ctx context.Context, token string, sub model.KycSubmission) (*KycReceipt, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"address":     sub.Address,
		"city":        sub.City,
		"postal_code": sub.PostalCode,
		"country":     sub.Country,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write field %s: %w", name, err)
		}
	}

	part, err := w.CreateFormFile("document", sub.DocumentName)
	if err != nil {
		return nil, fmt.Errorf("create document part: %w", err)
	}
	if _, err := part.Write(sub.Document); err != nil {
		return nil, fmt.Errorf("write document: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/kyc/submit/", &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var receipt KycReceipt
	if err := c.send(req, token, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// KycStatus fetches the member's verification status.
func (c *Client) KycStatus(ctx context.Context, token string) (*model.KycStatus, error) {
	var status model.KycStatus
	if err := c.get(ctx, "/kyc/status/", token, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
