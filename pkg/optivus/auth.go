package optivus

import (
	"context"

	"github.com/optivus-protocol/portal/pkg/model"
)

// TokenPair is an access/refresh token pair issued by the backend.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// LoginResult is the backend's answer to a credential check: either a token
// pair, or a two-factor marker carrying the pending identity.
type LoginResult struct {
	TokenPair
	TwoFactorRequired bool   `json:"two_factor_required"`
	UserID            string `json:"user_id"`
}

// RegisterRequest is the payload for account registration. ReferredBy carries
// the referral code of the sponsoring member, if any.
type RegisterRequest struct {
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	ReferredBy string `json:"referred_by,omitempty"`
}

// ProfileUpdate is a partial profile change. Empty fields are omitted.
type ProfileUpdate struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// Login checks credentials. The result either carries a token pair or the
// two-factor marker; invalid credentials surface as an *APIError.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	err := c.post(ctx, "/users/login/", "", map[string]string{
		"email":    email,
		"password": password,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// VerifyTwoFactor exchanges a pending identity and a one-time code for a
// token pair.
func (c *Client) VerifyTwoFactor(ctx context.Context, userID, code string) (*TokenPair, error) {
	var pair TokenPair
	err := c.post(ctx, "/users/2fa/verify/", "", map[string]string{
		"user_id": userID,
		"token":   code,
	}, &pair)
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

// Register creates a new account. It does not authenticate; callers log in
// separately.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	var user model.User
	if err := c.post(ctx, "/users/register/", "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := c.get(ctx, "/users/profile/", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a partial profile change and returns the updated user.
func (c *Client) UpdateProfile(ctx context.Context, token string, update ProfileUpdate) (*model.User, error) {
	var user model.User
	if err := c.patch(ctx, "/users/profile/", token, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ForgotPassword requests a password reset email. The backend answers the
// same way whether or not the account exists.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.post(ctx, "/users/password/forgot/", "", map[string]string{"email": email}, nil)
}

// ResetPassword sets a new password using an emailed reset token.
func (c *Client) ResetPassword(ctx context.Context, resetToken, password string) error {
	return c.post(ctx, "/users/password/reset/", "", map[string]string{
		"token":    resetToken,
		"password": password,
	}, nil)
}
