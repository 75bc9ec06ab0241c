package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/levelup/levelup-api/config"
	"github.com/levelup/levelup-api/models"
	"github.com/levelup/levelup-api/routes"
)

// setupTestRouter wires the full route table against a fresh in-memory
// database named after the test, so tests stay isolated from each other.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

// doRequest performs a JSON request against the router. An empty token
// leaves the Authorization header unset.
func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerGamer registers a user through the API and returns its token.
func registerGamer(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/register", "", gin.H{
		"username":   username,
		"password":   "secret123",
		"first_name": "Test",
		"last_name":  "Gamer",
		"bio":        "plays everything",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: got status %d, body %s", username, w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("register returned an empty token")
	}
	return resp.Token
}

// gamerID looks up the gamer created for a username.
func gamerID(t *testing.T, username string) uint {
	t.Helper()

	var user models.User
	if err := config.DB.Where("username = ?", username).First(&user).Error; err != nil {
		t.Fatalf("find user %s: %v", username, err)
	}
	var gamer models.Gamer
	if err := config.DB.Where("user_id = ?", user.ID).First(&gamer).Error; err != nil {
		t.Fatalf("find gamer for %s: %v", username, err)
	}
	return gamer.ID
}

// seedGameType inserts a game type directly, the way fixtures would.
func seedGameType(t *testing.T, label string) models.GameType {
	t.Helper()

	gameType := models.GameType{Label: label}
	if err := config.DB.Create(&gameType).Error; err != nil {
		t.Fatalf("seed game type: %v", err)
	}
	return gameType
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
