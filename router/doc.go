// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

	POST /register        register a player
	POST /login           log in, returns a session token
	POST /api/scan        redeem a scanned code (X-Session-Token)
	GET  /leaderboard     public leaderboard
	POST /admin/reset     drop and re-bootstrap all data (X-Admin-Pass)
	GET  /admin/players   list players (X-Admin-Pass)
	GET  /health          liveness probe
*/
package router
