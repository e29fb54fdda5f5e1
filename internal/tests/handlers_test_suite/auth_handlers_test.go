package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/motohub/moto-catalog/internal/http"
	handler "github.com/motohub/moto-catalog/internal/http/handlers"
	rl "github.com/motohub/moto-catalog/internal/http/rate_limiter"
)

// resetRateLimiter empties the per-address buckets so sequential auth tests
// do not trip the login throttle.
func resetRateLimiter() {
	rl.CleanupAllVisitors()
}

func TestRegisterHandler(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/register", "", handler.CredentialsRequest{Username: "newrider", Password: "pw"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a token on registration")
	}

	// The username is now taken.
	w = doJSON(r, http.MethodPost, "/register", "", handler.CredentialsRequest{Username: "newrider", Password: "other"})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", w.Code)
	}
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/register", "", handler.CredentialsRequest{Username: "", Password: "pw"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
}

func TestLoginHandler(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{Username: "admin", Password: "secret"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Token == "" || resp.RefreshToken == "" {
		t.Errorf("expected both tokens, got %+v", resp)
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{Username: "admin", Password: "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{Username: "ghost", Password: "pw"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for an unknown user, got %d", w.Code)
	}
}

func TestRefreshHandler_RotatesToken(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{Username: "admin", Password: "secret"})
	var login handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&login); err != nil {
		t.Fatalf("error decoding login: %v", err)
	}

	w = doJSON(r, http.MethodPost, "/refresh", "", handler.RefreshRequest{RefreshToken: login.RefreshToken})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var refreshed handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&refreshed); err != nil {
		t.Fatalf("error decoding refresh: %v", err)
	}
	if refreshed.Token == "" || refreshed.RefreshToken == "" {
		t.Errorf("expected a fresh token pair, got %+v", refreshed)
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Error("expected the refresh token to rotate")
	}

	// The old refresh token is spent.
	w = doJSON(r, http.MethodPost, "/refresh", "", handler.RefreshRequest{RefreshToken: login.RefreshToken})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a spent token, got %d", w.Code)
	}
}

func TestLoginHandler_RateLimited(t *testing.T) {
	resetRateLimiter()
	t.Cleanup(resetRateLimiter)
	r := api.NewRouter()

	// The auth throttle allows a burst of 5 per address.
	limited := false
	for i := 0; i < 10; i++ {
		w := doJSON(r, http.MethodPost, "/login", "", handler.CredentialsRequest{Username: "admin", Password: "wrong"})
		if w.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("expected the login throttle to kick in")
	}
}

func TestRefreshHandler_UnknownToken(t *testing.T) {
	resetRateLimiter()
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/refresh", "", handler.RefreshRequest{RefreshToken: "not-a-token"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}
