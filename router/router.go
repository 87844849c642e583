// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Maheesh07/Bech-De/cliparse"
	"github.com/Maheesh07/Bech-De/db"
	"github.com/Maheesh07/Bech-De/handlers"
	"github.com/Maheesh07/Bech-De/middleware"
)

func NewRouter(store *db.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	playerHandler := handlers.NewPlayerHandler(store, cfg)
	scanHandler := handlers.NewScanHandler(store, cfg)
	leaderboardHandler := handlers.NewLeaderboardHandler(store, cfg)
	adminHandler := handlers.NewAdminHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Account operations (public)
	mux.HandleFunc("POST /register", middleware.WithLogging(playerHandler.Register))
	mux.HandleFunc("POST /login", middleware.WithLogging(playerHandler.Login))

	// Scanning (authenticated)
	mux.HandleFunc("POST /api/scan",
		middleware.WithLogging(middleware.RequireAuth(cfg.SessionSecret, scanHandler.Scan)))

	// Leaderboard (public)
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(leaderboardHandler.GetLeaderboard))

	// Admin operations
	mux.HandleFunc("POST /admin/reset", middleware.WithLogging(adminHandler.Reset))
	mux.HandleFunc("GET /admin/players", middleware.WithLogging(adminHandler.ListPlayers))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Bech De API v1"))
	})

	return mux
}
