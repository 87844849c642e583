// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Maheesh07/Bech-De/middleware"
	"github.com/Maheesh07/Bech-De/models"
	"github.com/Maheesh07/Bech-De/testutil"
)

// scanThroughAuth runs the scan handler behind the same auth middleware the
// router installs.
func scanThroughAuth(t *testing.T, h *ScanHandler, secret, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	headers := map[string]string{}
	if token != "" {
		headers["X-Session-Token"] = token
	}
	req := testutil.MakeRequest("POST", "/api/scan", body, headers)
	w := httptest.NewRecorder()
	middleware.RequireAuth(secret, h.Scan)(w, req)
	return w
}

func TestScan_OK(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewScanHandler(store, cfg)
	_, token := testutil.CreateTestPlayer(t, store, cfg, "alice", "pw")
	testutil.AddTestCode(t, store, "X1")

	w := scanThroughAuth(t, h, cfg.SessionSecret, token, models.ScanRequest{Code: "X1"})

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ScanResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != models.ScanOK {
		t.Errorf("expected status ok, got %s", resp.Status)
	}
	if resp.Score != 1 {
		t.Errorf("expected score 1, got %d", resp.Score)
	}
}

func TestScan_Invalid(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewScanHandler(store, cfg)
	_, token := testutil.CreateTestPlayer(t, store, cfg, "alice", "pw")

	w := scanThroughAuth(t, h, cfg.SessionSecret, token, models.ScanRequest{Code: "ZZZ"})

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ScanResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != models.ScanInvalid {
		t.Errorf("expected status invalid, got %s", resp.Status)
	}
}

func TestScan_Used(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewScanHandler(store, cfg)
	claimerID, _ := testutil.CreateTestPlayer(t, store, cfg, "first", "pw")
	_, token := testutil.CreateTestPlayer(t, store, cfg, "second", "pw")
	codeID := testutil.AddTestCode(t, store, "X1")
	testutil.ClaimTestCode(t, store, codeID, claimerID)

	w := scanThroughAuth(t, h, cfg.SessionSecret, token, models.ScanRequest{Code: "X1"})

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ScanResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Status != models.ScanUsed {
		t.Errorf("expected status used, got %s", resp.Status)
	}
	if resp.Score != 0 {
		t.Errorf("used response should not carry a score, got %d", resp.Score)
	}
}

func TestScan_EmptyCode(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewScanHandler(store, cfg)
	_, token := testutil.CreateTestPlayer(t, store, cfg, "alice", "pw")

	for _, code := range []string{"", "   "} {
		w := scanThroughAuth(t, h, cfg.SessionSecret, token, models.ScanRequest{Code: code})

		testutil.AssertStatus(t, w, http.StatusBadRequest)

		var resp models.ScanResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Status != models.ScanError {
			t.Errorf("expected status error for empty code, got %s", resp.Status)
		}
		if resp.Message != "No code detected" {
			t.Errorf("expected no-code message, got %q", resp.Message)
		}
	}
}

func TestScan_RequiresAuth(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewScanHandler(store, cfg)
	testutil.AddTestCode(t, store, "X1")

	// No token
	w := scanThroughAuth(t, h, cfg.SessionSecret, "", models.ScanRequest{Code: "X1"})
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Garbage token
	w = scanThroughAuth(t, h, cfg.SessionSecret, "not-a-token", models.ScanRequest{Code: "X1"})
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// The code stays unclaimed
	row, err := store.QueryOne(`SELECT used_by_player_id FROM codes WHERE code = ?`, "X1")
	if err != nil {
		t.Fatal(err)
	}
	if row["used_by_player_id"] != nil {
		t.Error("unauthenticated requests must not claim codes")
	}
}

func TestScan_InvalidJSON(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewScanHandler(store, cfg)
	_, token := testutil.CreateTestPlayer(t, store, cfg, "alice", "pw")

	req := testutil.MakeRequest("POST", "/api/scan", nil, map[string]string{"X-Session-Token": token})
	w := httptest.NewRecorder()
	middleware.RequireAuth(cfg.SessionSecret, h.Scan)(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
