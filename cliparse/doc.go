// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and environment
variables. A .env file in the working directory is loaded first when present.

# Settings

Storage:

  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - DATABASE_URL (-d): Postgres connection string; setting it implies
    DATABASE_TYPE=postgres unless overridden
  - SQLITE_PATH (-sqlite): SQLite file path (default: bechde.db)
  - CODES_CSV (-codes): CSV of redeemable codes (default: codes.csv)

Network:

  - PORT (-p): server port (default: 5000)

Secrets (required, prefer env):

  - SESSION_SECRET (-session-secret): HMAC key for session tokens
  - ADMIN_PASS (-admin-pass): password for /admin routes

CLI flags take precedence over environment variables.
*/
package cliparse
