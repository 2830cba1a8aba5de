// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Some0ne11/pollhub-voting-system/models"
)

// IdentityBytes is the entropy of a device identity (192 bits).
const IdentityBytes = 24

// GenerateIdentity creates a random opaque identity for this device.
// Votes are deduplicated on this value, so it must never come from a weak PRNG.
func GenerateIdentity() (string, error) {
	b := make([]byte, IdentityBytes)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate identity: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// NewPollID returns a random (v4) UUID string for a poll.
func NewPollID() string {
	return uuid.NewString()
}

// NewOptionID returns a random (v4) UUID string for a poll option.
func NewOptionID() string {
	return uuid.NewString()
}

// CheckCredentials compares supplied admin credentials against the configured pair.
// This gates the admin UI only; it is not a security boundary.
func CheckCredentials(got, want models.AdminCredentials) bool {
	if want.Username == "" || want.Password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(got.Username), []byte(want.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(got.Password), []byte(want.Password)) == 1
	return userOK && passOK
}
