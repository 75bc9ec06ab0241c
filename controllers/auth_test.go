package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisterIssuesToken(t *testing.T) {
	r := setupTestRouter(t)

	token := registerGamer(t, r, "alice")

	// The token must authenticate subsequent requests.
	w := doRequest(t, r, http.MethodGet, "/gametypes", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated list: got status %d", w.Code)
	}
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	r := setupTestRouter(t)
	registerGamer(t, r, "alice")

	w := doRequest(t, r, http.MethodPost, "/register", "", gin.H{
		"username": "alice",
		"password": "another",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: got status %d", w.Code)
	}
}

func TestRegisterRequiresFields(t *testing.T) {
	r := setupTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/register", "", gin.H{"username": "bob"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("register without password: got status %d", w.Code)
	}
}

func TestLogin(t *testing.T) {
	r := setupTestRouter(t)
	registered := registerGamer(t, r, "alice")

	w := doRequest(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "alice",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: got status %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Valid bool   `json:"valid"`
		Token string `json:"token"`
	}
	decodeJSON(t, w, &resp)
	if !resp.Valid {
		t.Error("login response valid = false")
	}
	if resp.Token != registered {
		t.Errorf("login token = %q, want the registered token %q", resp.Token, registered)
	}
}

func TestLoginBadPassword(t *testing.T) {
	r := setupTestRouter(t)
	registerGamer(t, r, "alice")

	w := doRequest(t, r, http.MethodPost, "/login", "", gin.H{
		"username": "alice",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad password login: got status %d", w.Code)
	}

	var resp struct {
		Valid bool `json:"valid"`
	}
	decodeJSON(t, w, &resp)
	if resp.Valid {
		t.Error("bad password login reported valid = true")
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	r := setupTestRouter(t)

	for _, path := range []string{"/gametypes", "/games", "/events"} {
		w := doRequest(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: got status %d, want 401", path, w.Code)
		}
	}

	w := doRequest(t, r, http.MethodGet, "/gametypes", "not-a-real-token", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("GET /gametypes with bogus token: got status %d, want 401", w.Code)
	}
}
