// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Maheesh07/Bech-De/auth"
	"github.com/Maheesh07/Bech-De/cliparse"
	"github.com/Maheesh07/Bech-De/db"
	"github.com/Maheesh07/Bech-De/middleware"
	"github.com/Maheesh07/Bech-De/models"
)

type PlayerHandler struct {
	store *db.Store
	cfg   cliparse.Config
}

func NewPlayerHandler(store *db.Store, cfg cliparse.Config) *PlayerHandler {
	return &PlayerHandler{store: store, cfg: cfg}
}

// Register handles POST /register
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name and password required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	_, err = h.store.Exec(`
		INSERT INTO players (name, password_hash, score) VALUES (?, ?, 0)
	`, name, hash)

	if err != nil {
		// Only a genuine uniqueness conflict means the name is taken;
		// infrastructure failures stay server errors.
		if errors.Is(err, db.ErrConstraint) {
			middleware.ErrorResponse(w, http.StatusConflict, "Name already taken")
			return
		}
		slog.Error("failed to insert player", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	row, err := h.store.QueryOne(`SELECT id FROM players WHERE name = ?`, name)
	if err != nil || row == nil {
		slog.Error("failed to read back player", "error", err, "name", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}
	playerID, _ := row["id"].(int64)

	slog.Info("player registered", "player_id", playerID, "name", name)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		PlayerID: playerID,
		Name:     name,
	})
}

// Login handles POST /login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name and password required")
		return
	}

	row, err := h.store.QueryOne(`
		SELECT id, password_hash FROM players WHERE name = ?
	`, name)
	if err != nil {
		slog.Error("failed to query player", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if row == nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid login")
		return
	}

	hash, _ := row["password_hash"].(string)
	if err := auth.CheckPassword(hash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid login")
		return
	}

	playerID, _ := row["id"].(int64)
	token := auth.GenerateSessionToken(playerID, h.cfg.SessionSecret)

	slog.Info("player logged in", "player_id", playerID, "name", name)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		Token:    token,
		PlayerID: playerID,
		Name:     name,
	})
}
