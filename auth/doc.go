// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential hashing and session tokens.

# Passwords

Passwords are hashed with bcrypt (default cost) and verified with a
constant-time compare. Cleartext passwords are never persisted.

# Session Tokens

Sessions are stateless: a token is the player id plus an HMAC-SHA256
signature over it, keyed by the server's SESSION_SECRET. The server can
verify any token it issued without a session table, and tokens cannot be
forged or re-pointed at another player without the secret.

Tokens ride in the X-Session-Token header; see the middleware package.
*/
package auth
