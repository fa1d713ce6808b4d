package optivus

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is the portal-relevant slice of a backend JWT: who it belongs to
// and when it stops working. Signature verification is the backend's job; the
// portal only reads claims to bound session lifetimes.
type TokenInfo struct {
	Subject string
	Expiry  time.Time
}

// ParseToken extracts claims from a backend access token without verifying
// the signature. Unparseable tokens yield a zero TokenInfo; callers fall back
// to their own session limits.
func ParseToken(token string) TokenInfo {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}
	}

	var info TokenInfo
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.Expiry = exp.Time
	}
	return info
}
