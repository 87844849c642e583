// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package game implements the redemption engine and leaderboard queries.

Redeem enforces first-scan-wins: an unclaimed code goes to exactly one of
any number of concurrent redeemers, decided by an atomic conditional update
in the storage layer rather than by any in-process lock. Once claimed, a
code stays claimed until a full data reset; repeated redemptions of a
claimed code always report "used" and never re-credit the score.
*/
package game
