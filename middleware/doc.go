// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

  - WithLogging: request start/completion logging via slog
  - RequireAuth: session token validation; rejects 401 before the handler
    runs and exposes the player id through PlayerID
  - CORS: cross-origin support for the scanner frontend
  - JSONResponse / ErrorResponse / ParseJSONBody: JSON plumbing shared by
    all handlers
*/
package middleware
