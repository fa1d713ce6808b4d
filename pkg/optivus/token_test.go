package optivus

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

func TestParseToken(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	tok := signedToken(t, jwt.MapClaims{
		"sub": "user-42",
		"exp": exp.Unix(),
	})

	info := ParseToken(tok)
	assert.Equal(t, "user-42", info.Subject)
	assert.True(t, info.Expiry.Equal(exp), "expiry %v != %v", info.Expiry, exp)
}

func TestParseToken_NoClaims(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{})

	info := ParseToken(tok)
	assert.Empty(t, info.Subject)
	assert.True(t, info.Expiry.IsZero())
}

func TestParseToken_Garbage(t *testing.T) {
	tests := []string{"", "not-a-jwt", "a.b", "a.b.c"}
	for _, tok := range tests {
		info := ParseToken(tok)
		assert.Empty(t, info.Subject, "token %q", tok)
		assert.True(t, info.Expiry.IsZero(), "token %q", tok)
	}
}
