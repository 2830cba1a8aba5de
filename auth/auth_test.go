// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/Some0ne11/pollhub-voting-system/models"
)

func TestGenerateIdentity(t *testing.T) {
	id, err := GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity() error = %v", err)
	}

	if id == "" {
		t.Error("GenerateIdentity() returned empty string")
	}

	// Should be URL-safe (no padding)
	if strings.Contains(id, "=") {
		t.Error("GenerateIdentity() contains padding characters")
	}

	// 24 bytes encode to 32 base64 characters
	if len(id) != 32 {
		t.Errorf("GenerateIdentity() length = %d, want 32", len(id))
	}

	// Test randomness - should not produce duplicates
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := GenerateIdentity()
		if err != nil {
			t.Fatalf("GenerateIdentity() error on iteration %d: %v", i, err)
		}
		if seen[id] {
			t.Errorf("GenerateIdentity() produced duplicate identity: %s", id)
		}
		seen[id] = true
	}
}

func TestNewIDs(t *testing.T) {
	pollID := NewPollID()
	if _, err := uuid.Parse(pollID); err != nil {
		t.Errorf("NewPollID() = %q is not a UUID: %v", pollID, err)
	}

	optionID := NewOptionID()
	if _, err := uuid.Parse(optionID); err != nil {
		t.Errorf("NewOptionID() = %q is not a UUID: %v", optionID, err)
	}

	if NewOptionID() == NewOptionID() {
		t.Error("NewOptionID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestCheckCredentials(t *testing.T) {
	want := models.AdminCredentials{Username: "admin", Password: "admin123"}

	tests := []struct {
		name string
		got  models.AdminCredentials
		want models.AdminCredentials
		ok   bool
	}{
		{"valid", models.AdminCredentials{Username: "admin", Password: "admin123"}, want, true},
		{"wrong password", models.AdminCredentials{Username: "admin", Password: "admin"}, want, false},
		{"wrong username", models.AdminCredentials{Username: "root", Password: "admin123"}, want, false},
		{"case sensitive", models.AdminCredentials{Username: "Admin", Password: "admin123"}, want, false},
		{"empty", models.AdminCredentials{}, want, false},
		{"unconfigured", models.AdminCredentials{}, models.AdminCredentials{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckCredentials(tt.got, tt.want); got != tt.ok {
				t.Errorf("CheckCredentials() = %v, want %v", got, tt.ok)
			}
		})
	}
}

// Benchmark tests
func BenchmarkGenerateIdentity(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateIdentity()
	}
}
