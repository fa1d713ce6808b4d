package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/optivus-protocol/portal/pkg/model"
)

// fakeBackend serves the endpoints the CLI exercises.
func fakeBackend(t *testing.T, twoFactor bool) *httptest.Server {
	t.Helper()

	user := model.User{
		ID:           "u1",
		Email:        "a@b.com",
		Username:     "alice",
		FirstName:    "Alice",
		ReferralCode: "ALICE1",
		Balance:      "250.00",
		KycVerified:  true,
		Role:         model.RoleUser,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login/", func(w http.ResponseWriter, r *http.Request) {
		var creds map[string]string
		json.NewDecoder(r.Body).Decode(&creds)
		if creds["password"] != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid email or password."})
			return
		}
		if twoFactor {
			json.NewEncoder(w).Encode(map[string]any{"two_factor_required": true, "user_id": "u1"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access": "acc-token", "refresh": "ref-token"})
	})
	mux.HandleFunc("POST /users/2fa/verify/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["token"] != "123456" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid code."})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"access": "acc-token", "refresh": "ref-token"})
	})
	mux.HandleFunc("GET /users/profile/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer acc-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Token expired."})
			return
		}
		json.NewEncoder(w).Encode(user)
	})
	mux.HandleFunc("GET /dashboard/stats/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(model.DashboardStats{TotalEarnings: 1500, TotalTeamSize: 12, DirectReferrals: 4})
	})
	mux.HandleFunc("GET /transactions/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]model.Transaction{
			{ID: "t1", Type: model.TxCommission, Amount: "25.00", Status: model.TxCompleted, CreatedAt: time.Now().Add(-time.Hour), Reference: "ref-1"},
			{ID: "t2", Type: model.TxWithdrawal, Amount: "10.00", Status: model.TxPending, CreatedAt: time.Now(), Reference: "ref-2"},
		})
	})
	mux.HandleFunc("POST /users/pin/verify/", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["pin"] != "2468" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect PIN."})
			return
		}
		w.Write([]byte(`{}`))
	})
	mux.HandleFunc("POST /withdrawals/", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "w1", "status": "pending"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func runCLI(t *testing.T, backendURL, credFile, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--backend", backendURL, "--credentials", credFile}, args...))

	err := root.Execute()
	return buf.String(), err
}

func TestLoginCommand(t *testing.T) {
	srv := fakeBackend(t, false)
	credFile := filepath.Join(t.TempDir(), "credentials.json")

	out, err := runCLI(t, srv.URL, credFile, "", "login", "--email", "a@b.com", "--password", "correct")
	if err != nil {
		t.Fatalf("login failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Logged in as Alice") {
		t.Errorf("unexpected output: %s", out)
	}

	// Tokens must be stored for later commands.
	out, err = runCLI(t, srv.URL, credFile, "", "whoami")
	if err != nil {
		t.Fatalf("whoami failed: %v\n%s", err, out)
	}
	for _, want := range []string{"a@b.com", "ALICE1", "250.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("whoami output missing %q:\n%s", want, out)
		}
	}
}

func TestLoginCommand_TwoFactor(t *testing.T) {
	srv := fakeBackend(t, true)
	credFile := filepath.Join(t.TempDir(), "credentials.json")

	out, err := runCLI(t, srv.URL, credFile, "123456\n", "login", "--email", "a@b.com", "--password", "correct")
	if err != nil {
		t.Fatalf("login failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Logged in as Alice") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestLoginCommand_BadCredentials(t *testing.T) {
	srv := fakeBackend(t, false)
	credFile := filepath.Join(t.TempDir(), "credentials.json")

	out, err := runCLI(t, srv.URL, credFile, "", "login", "--email", "a@b.com", "--password", "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	// The backend's message surfaces verbatim.
	if !strings.Contains(err.Error(), "Invalid email or password.") {
		t.Errorf("error %q does not carry the backend message\n%s", err, out)
	}
}

func TestWhoami_NotLoggedIn(t *testing.T) {
	srv := fakeBackend(t, false)
	credFile := filepath.Join(t.TempDir(), "credentials.json")

	_, err := runCLI(t, srv.URL, credFile, "", "whoami")
	if err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("expected 'not logged in' error, got %v", err)
	}
}

func TestStatsCommand(t *testing.T) {
	srv := fakeBackend(t, false)
	credFile := filepath.Join(t.TempDir(), "credentials.json")

	if _, err := runCLI(t, srv.URL, credFile, "", "login", "--email", "a@b.com", "--password", "correct"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	out, err := runCLI(t, srv.URL, credFile, "", "stats")
	if err != nil {
		t.Fatalf("stats failed: %v\n%s", err, out)
	}
	for _, want := range []string{"1,500.00", "12", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q:\n%s", want, out)
		}
	}
}

func TestTransactionsCommand(t *testing.T) {
	srv := fakeBackend(t, false)
	credFile := filepath.Join(t.TempDir(), "credentials.json")

	if _, err := runCLI(t, srv.URL, credFile, "", "login", "--email", "a@b.com", "--password", "correct"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	out, err := runCLI(t, srv.URL, credFile, "", "transactions")
	if err != nil {
		t.Fatalf("transactions failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "commission") || !strings.Contains(out, "withdrawal") {
		t.Errorf("transactions output incomplete:\n%s", out)
	}
	// Withdrawals render as debits.
	if !strings.Contains(out, "-$10.00") {
		t.Errorf("expected debit sign on withdrawal:\n%s", out)
	}

	out, err = runCLI(t, srv.URL, credFile, "", "transactions", "--limit", "1")
	if err != nil {
		t.Fatalf("transactions --limit failed: %v", err)
	}
	if strings.Contains(out, "ref-2") && strings.Contains(out, "ref-1") {
		t.Errorf("--limit 1 returned both entries:\n%s", out)
	}
}

func TestWithdrawCommand(t *testing.T) {
	srv := fakeBackend(t, false)
	credFile := filepath.Join(t.TempDir(), "credentials.json")

	if _, err := runCLI(t, srv.URL, credFile, "", "login", "--email", "a@b.com", "--password", "correct"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	out, err := runCLI(t, srv.URL, credFile, "", "withdraw",
		"--amount", "50.00", "--bank", "First Bank",
		"--account-number", "0123456789", "--account-name", "Alice A",
		"--pin", "2468")
	if err != nil {
		t.Fatalf("withdraw failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "w1") || !strings.Contains(out, "pending") {
		t.Errorf("unexpected output: %s", out)
	}

	// Missing flags are rejected before any network call.
	_, err = runCLI(t, srv.URL, credFile, "", "withdraw", "--amount", "50.00")
	if err == nil {
		t.Fatal("expected error for missing bank details")
	}
}

func TestWithdrawCommand_RejectedPin(t *testing.T) {
	srv := fakeBackend(t, false)
	credFile := filepath.Join(t.TempDir(), "credentials.json")

	if _, err := runCLI(t, srv.URL, credFile, "", "login", "--email", "a@b.com", "--password", "correct"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	_, err := runCLI(t, srv.URL, credFile, "", "withdraw",
		"--amount", "50.00", "--bank", "First Bank",
		"--account-number", "0123456789", "--account-name", "Alice A",
		"--pin", "0000")
	if err == nil {
		t.Fatal("expected error for rejected pin")
	}
	// The backend's message surfaces verbatim.
	if !strings.Contains(err.Error(), "Incorrect PIN.") {
		t.Errorf("error %q does not carry the backend message", err)
	}
}

func TestLogoutCommand(t *testing.T) {
	srv := fakeBackend(t, false)
	credFile := filepath.Join(t.TempDir(), "credentials.json")

	if _, err := runCLI(t, srv.URL, credFile, "", "login", "--email", "a@b.com", "--password", "correct"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	out, err := runCLI(t, srv.URL, credFile, "", "logout")
	if err != nil {
		t.Fatalf("logout failed: %v\n%s", err, out)
	}

	if _, err := runCLI(t, srv.URL, credFile, "", "whoami"); err == nil {
		t.Fatal("expected whoami to fail after logout")
	}
}
