// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the Bech De API.

# Scan Statuses

The /api/scan endpoint always answers with one of four status strings:

  - ok: the code was unclaimed and is now credited to the caller
  - invalid: no such code exists
  - used: the code was already claimed (by anyone, including the caller)
  - error: infrastructure failure or empty submission; retryable

Both sides of a redemption race receive a definitive status (ok to the
winner, used to the loser) - the race itself is never reported as an error.

# Domain Types

  - Player: registered participant with a unique name and a score counter
  - Code: a redeemable token; UsedByPlayerID/UsedAt form its claim record,
    set at most once
  - Scan: append-only audit record of one successful redemption

Sensitive fields (password hashes) are excluded from JSON with the "-" tag.
*/
package models
