// Copyright (c) 2025 Maheesh.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid session token")
)

// HashPassword hashes a password with bcrypt at the default cost.
// The cleartext is never stored.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword verifies a password against its stored hash.
// Returns ErrInvalidCredentials on mismatch.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateSessionToken creates a stateless signed token identifying a
// player: "<player_id>.<hmac>". Deterministic and verifiable, so no
// session table is needed.
func GenerateSessionToken(playerID int64, secret string) string {
	id := strconv.FormatInt(playerID, 10)
	return id + "." + sign(id, secret)
}

// ParseSessionToken verifies a session token and returns the player id.
func ParseSessionToken(token, secret string) (int64, error) {
	id, sig, ok := strings.Cut(token, ".")
	if !ok {
		return 0, ErrInvalidToken
	}
	if !hmac.Equal([]byte(sig), []byte(sign(id, secret))) {
		return 0, ErrInvalidToken
	}
	playerID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return playerID, nil
}

func sign(payload, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(payload))
	sum := h.Sum(nil)
	// Use URL-safe base64 and trim padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}
