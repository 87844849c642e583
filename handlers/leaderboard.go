// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Maheesh07/Bech-De/cliparse"
	"github.com/Maheesh07/Bech-De/db"
	"github.com/Maheesh07/Bech-De/game"
	"github.com/Maheesh07/Bech-De/middleware"
)

type LeaderboardHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewLeaderboardHandler(store *db.Store, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{store: store, cfg: cfg}
}

// GetLeaderboard handles GET /leaderboard (public)
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := game.Leaderboard(h.store)
	if err != nil {
		slog.Error("failed to query leaderboard", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
