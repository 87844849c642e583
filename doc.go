// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Bech De API server.

Bech De is a scavenger-hunt game: participants register, log in, and scan
QR codes hidden around the venue. Each unique code credits one point to the
first player who redeems it, tracked on a public leaderboard.

# Starting the Server

The server runs on SQLite by default:

	SESSION_SECRET=... ADMIN_PASS=... go run main.go

Or against Postgres (a DATABASE_URL implies postgres):

	DATABASE_URL=postgres://... SESSION_SECRET=... ADMIN_PASS=... go run main.go

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): HMAC key for session tokens
  - ADMIN_PASS (-admin-pass): password for admin routes

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Postgres connection string
  - SQLITE_PATH (-sqlite): SQLite file path (default: bechde.db)
  - CODES_CSV (-codes): codes file (default: codes.csv)

On start the server creates the schema if needed and, while the codes table
is empty, loads the codes from the CSV exactly once.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (players, scan, leaderboard, admin)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth, CORS, logging, JSON helpers
  - game: redemption engine and leaderboard queries
  - models: request/response types
  - auth: password hashing and session tokens
  - db: dual-backend storage adapter, schema, code bootstrap
  - cliparse: configuration parsing

The companion tool cmd/qrgen renders the provisioned codes as QR images.

See package documentation for each component.
*/
package main
