// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Maheesh07/Bech-De/auth"
	"github.com/Maheesh07/Bech-De/cliparse"
	"github.com/Maheesh07/Bech-De/db"
)

// SetupTestDB creates a fresh sqlite-backed store with the full schema in a
// per-test temp dir, so tests need no external services.
func SetupTestDB(t *testing.T) *db.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bechde_test.db")
	store, err := db.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := db.CreateSchema(store); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseType:  db.TypeSQLite,
		CodesCSV:      "codes.csv",
		SessionSecret: "test-session-secret",
		AdminPass:     "test-admin-pass",
	}
}

// CreateTestPlayer registers a player directly in the database and returns
// the player id and a valid session token for it.
func CreateTestPlayer(t *testing.T, store *db.Store, cfg cliparse.Config, name, password string) (playerID int64, token string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if _, err := store.Exec(`
		INSERT INTO players (name, password_hash, score) VALUES (?, ?, 0)
	`, name, hash); err != nil {
		t.Fatalf("Failed to create test player: %v", err)
	}

	row, err := store.QueryOne(`SELECT id FROM players WHERE name = ?`, name)
	if err != nil || row == nil {
		t.Fatalf("Failed to read back test player: %v", err)
	}
	playerID = row["id"].(int64)

	return playerID, auth.GenerateSessionToken(playerID, cfg.SessionSecret)
}

// AddTestCode inserts a redeemable code and returns its id
func AddTestCode(t *testing.T, store *db.Store, code string) int64 {
	t.Helper()

	if _, err := store.Exec(`INSERT INTO codes (code) VALUES (?)`, code); err != nil {
		t.Fatalf("Failed to create test code: %v", err)
	}

	row, err := store.QueryOne(`SELECT id FROM codes WHERE code = ?`, code)
	if err != nil || row == nil {
		t.Fatalf("Failed to read back test code: %v", err)
	}
	return row["id"].(int64)
}

// ClaimTestCode marks a code as already claimed by the given player
func ClaimTestCode(t *testing.T, store *db.Store, codeID, playerID int64) {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := store.Exec(`
		UPDATE codes SET used_by_player_id = ?, used_at = ? WHERE id = ?
	`, playerID, now, codeID); err != nil {
		t.Fatalf("Failed to claim test code: %v", err)
	}
}

// WriteCodesCSV writes a codes CSV into a temp dir and returns its path
func WriteCodesCSV(t *testing.T, codes []string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "codes.csv")
	content := "code\n"
	for _, c := range codes {
		content += c + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write codes CSV: %v", err)
	}
	return path
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
