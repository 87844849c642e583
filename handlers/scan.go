// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Maheesh07/Bech-De/cliparse"
	"github.com/Maheesh07/Bech-De/db"
	"github.com/Maheesh07/Bech-De/game"
	"github.com/Maheesh07/Bech-De/middleware"
	"github.com/Maheesh07/Bech-De/models"
)

type ScanHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewScanHandler(store *db.Store, cfg cliparse.Config) *ScanHandler {
	return &ScanHandler{store: store, cfg: cfg}
}

// Scan handles POST /api/scan (requires auth)
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	playerID, ok := middleware.PlayerID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Login required")
		return
	}

	var req models.ScanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result, err := game.Redeem(h.store, playerID, req.Code)
	if errors.Is(err, game.ErrEmptyCode) {
		middleware.JSONResponse(w, http.StatusBadRequest, models.ScanResponse{
			Status:  models.ScanError,
			Message: "No code detected",
		})
		return
	}
	if err != nil {
		slog.Error("redemption failed", "error", err, "player_id", playerID)
		middleware.JSONResponse(w, http.StatusInternalServerError, models.ScanResponse{
			Status:  models.ScanError,
			Message: "Server error (try again)",
		})
		return
	}

	switch result.Status {
	case models.ScanInvalid:
		middleware.JSONResponse(w, http.StatusOK, models.ScanResponse{
			Status:  models.ScanInvalid,
			Message: "Invalid code",
		})
	case models.ScanUsed:
		middleware.JSONResponse(w, http.StatusOK, models.ScanResponse{
			Status:  models.ScanUsed,
			Message: "Already claimed!",
		})
	default:
		slog.Info("code captured", "player_id", playerID, "score", result.Score)
		middleware.JSONResponse(w, http.StatusOK, models.ScanResponse{
			Status:  models.ScanOK,
			Message: "You captured this code!",
			Score:   result.Score,
		})
	}
}
