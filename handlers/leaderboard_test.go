// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Maheesh07/Bech-De/game"
	"github.com/Maheesh07/Bech-De/models"
	"github.com/Maheesh07/Bech-De/testutil"
)

func TestGetLeaderboard(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewLeaderboardHandler(store, cfg)

	bobID, _ := testutil.CreateTestPlayer(t, store, cfg, "bob", "pw")
	testutil.CreateTestPlayer(t, store, cfg, "ann", "pw")
	testutil.AddTestCode(t, store, "C1")
	if _, err := game.Redeem(store, bobID, "C1"); err != nil {
		t.Fatal(err)
	}

	req := testutil.MakeRequest("GET", "/leaderboard", nil, nil)
	w := httptest.NewRecorder()
	h.GetLeaderboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var entries []models.LeaderboardEntry
	testutil.AssertJSON(t, w, &entries)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Name != "bob" || entries[0].Score != 1 {
		t.Errorf("expected bob leading with 1, got %+v", entries[0])
	}
}

func TestGetLeaderboard_Empty(t *testing.T) {
	store := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	h := NewLeaderboardHandler(store, cfg)

	req := testutil.MakeRequest("GET", "/leaderboard", nil, nil)
	w := httptest.NewRecorder()
	h.GetLeaderboard(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var entries []models.LeaderboardEntry
	testutil.AssertJSON(t, w, &entries)
	if len(entries) != 0 {
		t.Errorf("expected empty leaderboard, got %v", entries)
	}
}
