package optivus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optivus-protocol/portal/pkg/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(DefaultConfig(srv.URL), nil)
}

func TestLogin_TokenPair(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/users/login/", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.com", body["email"])
		assert.Equal(t, "secret", body["password"])

		json.NewEncoder(w).Encode(map[string]string{
			"access":  "acc-token",
			"refresh": "ref-token",
		})
	})

	result, err := client.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "acc-token", result.Access)
	assert.Equal(t, "ref-token", result.Refresh)
	assert.False(t, result.TwoFactorRequired)
}

func TestLogin_TwoFactorMarker(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"two_factor_required": true,
			"user_id":             "42",
		})
	})

	result, err := client.Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.True(t, result.TwoFactorRequired)
	assert.Equal(t, "42", result.UserID)
	assert.Empty(t, result.Access)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password."})
	})

	_, err := client.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)
	// The backend detail must surface unmodified.
	assert.Equal(t, "Invalid email or password.", err.Error())
	assert.True(t, IsUnauthorized(err))
}

func TestErrorDecoding(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"detail field", http.StatusNotFound, `{"detail":"Not found"}`, "Not found"},
		{"message fallback", http.StatusBadRequest, `{"message":"Bad amount"}`, "Bad amount"},
		{"no body", http.StatusBadGateway, ``, "request failed with status 502"},
		{"unparseable body", http.StatusInternalServerError, `<html>boom</html>`, "request failed with status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.Profile(context.Background(), "tok")
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())

			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(model.User{ID: "u1", Email: "a@b.com"})
	})

	_, err := client.Profile(context.Background(), "acc-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer acc-token", gotAuth)
}

func TestNoBearerWithoutToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"two_factor_required": true, "user_id": "1"})
	})

	_, err := client.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestNoContentResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.ForgotPassword(context.Background(), "a@b.com")
	require.NoError(t, err)
}

func TestEmptyBodyResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// 200 with an empty body must not attempt JSON decoding.
	err := client.EnableTwoFactor(context.Background(), "tok", "123456")
	require.NoError(t, err)
}

func TestSubmitKyc_Multipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/kyc/submit/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "12 High St", r.FormValue("address"))
		assert.Equal(t, "London", r.FormValue("city"))
		assert.Equal(t, "SW1A 1AA", r.FormValue("postal_code"))
		assert.Equal(t, "UK", r.FormValue("country"))

		file, header, err := r.FormFile("document")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "passport.png", header.Filename)

		json.NewEncoder(w).Encode(KycReceipt{ID: "k1", Status: "pending"})
	})

	receipt, err := client.SubmitKyc(context.Background(), "tok", model.KycSubmission{
		Address:      "12 High St",
		City:         "London",
		PostalCode:   "SW1A 1AA",
		Country:      "UK",
		DocumentName: "passport.png",
		Document:     []byte{0x89, 0x50, 0x4e, 0x47},
	})
	require.NoError(t, err)
	assert.Equal(t, "k1", receipt.ID)
	assert.Equal(t, "pending", receipt.Status)
}

func TestAdminEndpoints(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotBody = nil
		if r.Body != nil {
			json.NewDecoder(r.Body).Decode(&gotBody)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{}`))
	})

	ctx := context.Background()

	require.NoError(t, client.ApproveWithdrawal(ctx, "tok", "w1"))
	assert.Equal(t, "/withdrawals/admin/approve/w1/", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)

	require.NoError(t, client.DenyWithdrawal(ctx, "tok", "w2", "insufficient KYC"))
	assert.Equal(t, "/withdrawals/admin/deny/w2/", gotPath)
	assert.Equal(t, "insufficient KYC", gotBody["reason"])

	require.NoError(t, client.ProcessKyc(ctx, "tok", "u9", KycReject, "blurry document"))
	assert.Equal(t, "/kyc/admin/process/", gotPath)
	assert.Equal(t, "u9", gotBody["user_id"])
	assert.Equal(t, "reject", gotBody["action"])
	assert.Equal(t, "blurry document", gotBody["reason"])
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Transactions(ctx, "tok")
	require.Error(t, err)
}
