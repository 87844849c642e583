// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Bech De API.

# Handlers

  - PlayerHandler: registration and login
  - ScanHandler: code redemption (the authenticated scan endpoint)
  - LeaderboardHandler: public score listing
  - AdminHandler: data reset and player listing, behind X-Admin-Pass

# Error Conventions

Business outcomes of a scan (invalid, used) are 200 responses with a status
string - they are normal results, not errors. Only infrastructure failures
produce 500, with a retryable "error" status. A duplicate name at
registration is a 409; backend failures during registration are never
reported as "name taken".
*/
package handlers
