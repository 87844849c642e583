// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/Maheesh07/Bech-De/cliparse"
	"github.com/Maheesh07/Bech-De/db"
	"github.com/Maheesh07/Bech-De/game"
	"github.com/Maheesh07/Bech-De/middleware"
	"github.com/Maheesh07/Bech-De/models"
)

type AdminHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewAdminHandler(store *db.Store, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{store: store, cfg: cfg}
}

func (h *AdminHandler) authorized(r *http.Request) bool {
	pass := r.Header.Get("X-Admin-Pass")
	return subtle.ConstantTimeCompare([]byte(pass), []byte(h.cfg.AdminPass)) == 1
}

// Reset handles POST /admin/reset - drops all data, recreates the schema,
// and reloads the codes from the CSV. Requires ?confirm=yes.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Pass header required")
		return
	}

	if r.URL.Query().Get("confirm") != "yes" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Add ?confirm=yes to confirm reset")
		return
	}

	if err := db.ResetSchema(h.store); err != nil {
		slog.Error("failed to drop tables", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Reset failed")
		return
	}

	if err := db.CreateSchema(h.store); err != nil {
		slog.Error("failed to recreate schema", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Reset failed")
		return
	}

	loaded, err := db.BootstrapCodes(h.store, h.cfg.CodesCSV)
	if err != nil {
		slog.Error("failed to reload codes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Reset failed")
		return
	}

	slog.Info("data reset", "codes_loaded", loaded)

	middleware.JSONResponse(w, http.StatusOK, models.ResetResponse{
		Message:     "Reset complete! All data cleared.",
		CodesLoaded: loaded,
	})
}

// ListPlayers handles GET /admin/players
func (h *AdminHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(r) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Pass header required")
		return
	}

	players, err := game.ListPlayers(h.store)
	if err != nil {
		slog.Error("failed to query players", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, players)
}
