// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Some0ne11/pollhub-voting-system/auth"
	"github.com/Some0ne11/pollhub-voting-system/db"
	"github.com/Some0ne11/pollhub-voting-system/models"
	"github.com/Some0ne11/pollhub-voting-system/whitelist"
)

var (
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrNotWhitelisted     = errors.New("email is not on the whitelist")
	ErrEmailRequired      = errors.New("email is required")
)

// Resolver decides who the current device user is.
type Resolver struct {
	kv        db.Store
	whitelist *whitelist.Store
	admin     models.AdminCredentials
}

func NewResolver(kv db.Store, wl *whitelist.Store, admin models.AdminCredentials) *Resolver {
	return &Resolver{kv: kv, whitelist: wl, admin: admin}
}

// Resolve returns the persisted current user. Without one it falls back to a
// plain user built on the device identity, minting that identity on first use.
func (r *Resolver) Resolve(ctx context.Context) (models.User, error) {
	raw, err := r.kv.Get(ctx, db.KeyCurrentUser)
	switch {
	case err == nil:
		var u models.User
		jerr := json.Unmarshal(raw, &u)
		if jerr == nil && u.ID != "" {
			if u.Role != models.RoleAdmin {
				u.Role = models.RoleUser
			}
			return u, nil
		}
		slog.Warn("stored current user is unusable, falling back to device identity", "error", jerr)
	case !errors.Is(err, db.ErrNotFound):
		return models.User{}, fmt.Errorf("failed to load current user: %w", err)
	}

	id, err := r.deviceID(ctx)
	if err != nil {
		return models.User{}, err
	}
	return models.User{ID: id, Role: models.RoleUser}, nil
}

func (r *Resolver) deviceID(ctx context.Context) (string, error) {
	raw, err := r.kv.Get(ctx, db.KeyUserID)
	if err == nil && strings.TrimSpace(string(raw)) != "" {
		return strings.TrimSpace(string(raw)), nil
	}
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return "", fmt.Errorf("failed to load device identity: %w", err)
	}

	id, err := auth.GenerateIdentity()
	if err != nil {
		return "", err
	}
	if err := r.kv.Set(ctx, db.KeyUserID, []byte(id)); err != nil {
		return "", fmt.Errorf("failed to save device identity: %w", err)
	}
	slog.Info("minted device identity")
	return id, nil
}

// AuthenticateAdmin checks creds against the configured admin pair.
func (r *Resolver) AuthenticateAdmin(creds models.AdminCredentials) bool {
	return auth.CheckCredentials(creds, r.admin)
}

// UpgradeToAdmin promotes the current identity to admin. The id is kept.
func (r *Resolver) UpgradeToAdmin(ctx context.Context, creds models.AdminCredentials) (models.User, error) {
	if !r.AuthenticateAdmin(creds) {
		return models.User{}, ErrInvalidCredentials
	}

	current, err := r.Resolve(ctx)
	if err != nil {
		return models.User{}, err
	}

	u := models.User{ID: current.ID, Role: models.RoleAdmin, Username: creds.Username}
	if err := r.save(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// VerifyEmail attaches a whitelisted email and name to the current identity.
// Id and role are unchanged.
func (r *Resolver) VerifyEmail(ctx context.Context, email, name string) (models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.User{}, ErrEmailRequired
	}

	ok, err := r.whitelist.IsAuthorized(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, ErrNotWhitelisted
	}

	u, err := r.Resolve(ctx)
	if err != nil {
		return models.User{}, err
	}
	u.Email = email
	u.Name = strings.TrimSpace(name)
	if err := r.save(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Logout forgets the current user. The device identity survives, so the
// returned user has the same id with role user and no email.
func (r *Resolver) Logout(ctx context.Context) (models.User, error) {
	if err := r.kv.Delete(ctx, db.KeyCurrentUser); err != nil {
		return models.User{}, fmt.Errorf("failed to clear current user: %w", err)
	}
	return r.Resolve(ctx)
}

func (r *Resolver) save(ctx context.Context, u models.User) error {
	if err := db.SetJSON(ctx, r.kv, db.KeyCurrentUser, u); err != nil {
		return fmt.Errorf("failed to save current user: %w", err)
	}
	// Keep the device identity in step so Logout returns the same id
	if err := r.kv.Set(ctx, db.KeyUserID, []byte(u.ID)); err != nil {
		return fmt.Errorf("failed to save device identity: %w", err)
	}
	return nil
}
