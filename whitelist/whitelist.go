// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package whitelist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Some0ne11/pollhub-voting-system/db"
	"github.com/Some0ne11/pollhub-voting-system/models"
)

// Store persists the whitelist under db.KeyWhitelist.
type Store struct {
	kv db.Store
}

func NewStore(kv db.Store) *Store {
	return &Store{kv: kv}
}

// Load returns the stored whitelist. A missing or unreadable value yields an
// empty list; only store failures are returned as errors.
func (s *Store) Load(ctx context.Context) ([]models.WhitelistUser, error) {
	raw, err := s.kv.Get(ctx, db.KeyWhitelist)
	if errors.Is(err, db.ErrNotFound) {
		return []models.WhitelistUser{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load whitelist: %w", err)
	}

	var users []models.WhitelistUser
	if err := json.Unmarshal(raw, &users); err != nil {
		slog.Warn("stored whitelist is corrupt, treating as empty", "error", err)
		return []models.WhitelistUser{}, nil
	}
	if users == nil {
		users = []models.WhitelistUser{}
	}
	return users, nil
}

// Replace overwrites the whole whitelist. Replace(ctx, nil) clears it.
func (s *Store) Replace(ctx context.Context, users []models.WhitelistUser) error {
	if len(users) == 0 {
		if err := s.kv.Delete(ctx, db.KeyWhitelist); err != nil {
			return fmt.Errorf("failed to clear whitelist: %w", err)
		}
		return nil
	}
	if err := db.SetJSON(ctx, s.kv, db.KeyWhitelist, Dedupe(users)); err != nil {
		return fmt.Errorf("failed to save whitelist: %w", err)
	}
	return nil
}

// IsAuthorized reports whether email is on the whitelist, ignoring case.
func (s *Store) IsAuthorized(ctx context.Context, email string) (bool, error) {
	users, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return Contains(users, email), nil
}

// Emails returns the whitelisted addresses in stored order.
func (s *Store) Emails(ctx context.Context) ([]string, error) {
	users, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return EmailsOf(users), nil
}

// Contains reports whether email matches any user, ignoring case and
// surrounding spaces.
func Contains(users []models.WhitelistUser, email string) bool {
	key := normalize(email)
	if key == "" {
		return false
	}
	for _, u := range users {
		if normalize(u.Email) == key {
			return true
		}
	}
	return false
}

func EmailsOf(users []models.WhitelistUser) []string {
	emails := make([]string, 0, len(users))
	for _, u := range users {
		emails = append(emails, u.Email)
	}
	return emails
}

// Dedupe drops later entries whose email repeats an earlier one, ignoring case.
// Order is preserved.
func Dedupe(users []models.WhitelistUser) []models.WhitelistUser {
	seen := make(map[string]struct{}, len(users))
	result := make([]models.WhitelistUser, 0, len(users))
	for _, u := range users {
		key := normalize(u.Email)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, u)
	}
	return result
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
