package optivus

import "context"

// TwoFactorSecret is a freshly generated 2FA secret awaiting confirmation.
type TwoFactorSecret struct {
	Secret     string `json:"secret"`
	OtpauthURL string `json:"otpauth_url"`
}

// GenerateTwoFactor asks the backend for a new 2FA secret. The secret is not
// active until EnableTwoFactor confirms it with a valid code.
func (c *Client) GenerateTwoFactor(ctx context.Context, token string) (*TwoFactorSecret, error) {
	var secret TwoFactorSecret
	if err := c.post(ctx, "/users/2fa/generate/", token, nil, &secret); err != nil {
		return nil, err
	}
	return &secret, nil
}

// EnableTwoFactor activates 2FA by confirming a code from the new secret.
func (c *Client) EnableTwoFactor(ctx context.Context, token, code string) error {
	return c.post(ctx, "/users/2fa/enable/", token, map[string]string{"token": code}, nil)
}

// DisableTwoFactor deactivates 2FA after confirming a current code.
func (c *Client) DisableTwoFactor(ctx context.Context, token, code string) error {
	return c.post(ctx, "/users/2fa/disable/", token, map[string]string{"token": code}, nil)
}

// RequestPinToken emails a one-time token for setting the withdrawal PIN.
func (c *Client) RequestPinToken(ctx context.Context, email string) error {
	return c.post(ctx, "/users/pin/request-token/", "", map[string]string{"email": email}, nil)
}

// SetPin sets the withdrawal PIN using an emailed token.
func (c *Client) SetPin(ctx context.Context, email, pinToken, pin string) error {
	return c.post(ctx, "/users/pin/set/", "", map[string]string{
		"email": email,
		"token": pinToken,
		"pin":   pin,
	}, nil)
}

// ChangePin replaces the withdrawal PIN, authorized by the current one.
func (c *Client) ChangePin(ctx context.Context, token, currentPin, newPin string) error {
	return c.post(ctx, "/users/pin/change/", token, map[string]string{
		"current_pin": currentPin,
		"new_pin":     newPin,
	}, nil)
}

// VerifyPin checks the withdrawal PIN for the given account.
func (c *Client) VerifyPin(ctx context.Context, email, pin string) error {
	return c.post(ctx, "/users/pin/verify/", "", map[string]string{
		"email": email,
		"pin":   pin,
	}, nil)
}
