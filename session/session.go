// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Some0ne11/pollhub-voting-system/db"
	"github.com/Some0ne11/pollhub-voting-system/identity"
	"github.com/Some0ne11/pollhub-voting-system/models"
	"github.com/Some0ne11/pollhub-voting-system/poll"
	"github.com/Some0ne11/pollhub-voting-system/results"
	"github.com/Some0ne11/pollhub-voting-system/whitelist"
)

var (
	ErrAdminRequired = errors.New("admin access required")
	ErrPollNotFound  = errors.New("poll not found")
	ErrInvalidStatus = errors.New("invalid poll status")
)

type Config struct {
	Admin models.AdminCredentials
}

// Session owns the device's polls, whitelist and current user. Every
// operation holds the session lock and writes changes through to the store
// before they become visible.
type Session struct {
	mu        sync.Mutex
	kv        db.Store
	whitelist *whitelist.Store
	identity  *identity.Resolver
	polls     []models.Poll
	user      models.User
}

// Open loads the stored state. Unreadable poll data starts an empty collection.
func Open(ctx context.Context, kv db.Store, cfg Config) (*Session, error) {
	wl := whitelist.NewStore(kv)
	s := &Session{
		kv:        kv,
		whitelist: wl,
		identity:  identity.NewResolver(kv, wl, cfg.Admin),
	}

	polls, err := loadPolls(ctx, kv)
	if err != nil {
		return nil, err
	}
	s.polls = polls

	user, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve current user: %w", err)
	}
	s.user = user

	stats := results.CountStats(polls)
	slog.Info("session opened",
		"polls", stats.TotalPolls,
		"votes", humanize.Comma(int64(stats.TotalVotes)),
		"role", user.Role,
	)
	return s, nil
}

func loadPolls(ctx context.Context, kv db.Store) ([]models.Poll, error) {
	raw, err := kv.Get(ctx, db.KeyPolls)
	if errors.Is(err, db.ErrNotFound) {
		return []models.Poll{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load polls: %w", err)
	}

	var polls []models.Poll
	if err := json.Unmarshal(raw, &polls); err != nil {
		slog.Warn("stored polls are corrupt, starting empty", "error", err)
		return []models.Poll{}, nil
	}

	for i := range polls {
		upgrade(&polls[i])
	}
	if polls == nil {
		polls = []models.Poll{}
	}
	return polls, nil
}

// upgrade fills fields that older stored polls may lack.
func upgrade(p *models.Poll) {
	if p.Status == "" {
		p.Status = models.StatusActive
	}
	if p.EditHistory == nil {
		p.EditHistory = []models.EditRecord{}
	}
	if p.VotedUsers == nil {
		p.VotedUsers = []string{}
	}
	if p.Options == nil {
		p.Options = []models.PollOption{}
	}
	switch {
	case !p.IsRestricted:
		p.AllowedUsers = nil
	case p.AllowedUsers == nil:
		p.AllowedUsers = []string{}
	}
}

func (s *Session) savePolls(ctx context.Context, polls []models.Poll) error {
	if err := db.SetJSON(ctx, s.kv, db.KeyPolls, polls); err != nil {
		return fmt.Errorf("failed to save polls: %w", err)
	}
	s.polls = polls
	return nil
}

func (s *Session) find(id string) int {
	return slices.IndexFunc(s.polls, func(p models.Poll) bool { return p.ID == id })
}

// replace persists a copy of the collection with polls[idx] set to p.
func (s *Session) replace(ctx context.Context, idx int, p models.Poll) error {
	polls := slices.Clone(s.polls)
	polls[idx] = p
	return s.savePolls(ctx, polls)
}

func (s *Session) requireAdmin() error {
	if !s.user.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// Polls returns every poll, newest first.
func (s *Session) Polls() []models.Poll {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Poll, len(s.polls))
	for i, p := range s.polls {
		out[i] = p.Clone()
	}
	return out
}

func (s *Session) Poll(id string) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.find(id)
	if idx < 0 {
		return models.Poll{}, ErrPollNotFound
	}
	return s.polls[idx].Clone(), nil
}

func (s *Session) CurrentUser() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Session) Login(ctx context.Context, creds models.AdminCredentials) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.identity.UpgradeToAdmin(ctx, creds)
	if err != nil {
		slog.Warn("admin login failed", "username", creds.Username)
		return models.User{}, err
	}
	s.user = u
	slog.Info("admin logged in", "username", u.Username)
	return u, nil
}

func (s *Session) Logout(ctx context.Context) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.identity.Logout(ctx)
	if err != nil {
		return models.User{}, err
	}
	s.user = u
	return u, nil
}

func (s *Session) VerifyEmail(ctx context.Context, email, name string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.identity.VerifyEmail(ctx, email, name)
	if err != nil {
		return models.User{}, err
	}
	s.user = u
	return u, nil
}

// CreatePoll validates data and adds the poll at the front of the list.
// Restricted polls capture the whitelist as it is now.
func (s *Session) CreatePoll(ctx context.Context, data models.CreatePollData) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		return models.Poll{}, err
	}

	users, err := s.whitelist.Load(ctx)
	if err != nil {
		return models.Poll{}, err
	}
	input, err := poll.ValidateCreate(data, len(users))
	if err != nil {
		return models.Poll{}, err
	}

	p := poll.CreatePoll(input, whitelist.EmailsOf(users))

	polls := make([]models.Poll, 0, len(s.polls)+1)
	polls = append(polls, p)
	polls = append(polls, s.polls...)
	if err := s.savePolls(ctx, polls); err != nil {
		return models.Poll{}, err
	}

	slog.Info("poll created", "poll_id", p.ID, "options", len(p.Options), "restricted", p.IsRestricted)
	return p.Clone(), nil
}

func (s *Session) UpdatePoll(ctx context.Context, id string, data models.EditPollData) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		return models.Poll{}, err
	}
	idx := s.find(id)
	if idx < 0 {
		return models.Poll{}, ErrPollNotFound
	}

	input, err := poll.ValidateEdit(data)
	if err != nil {
		return models.Poll{}, err
	}

	updated := poll.UpdatePoll(s.polls[idx], input, s.user.ID)
	if err := s.replace(ctx, idx, updated); err != nil {
		return models.Poll{}, err
	}

	last := updated.EditHistory[len(updated.EditHistory)-1]
	slog.Info("poll edited", "poll_id", id, "changes", len(last.Changes))
	return updated.Clone(), nil
}

func (s *Session) DeletePoll(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		return err
	}
	idx := s.find(id)
	if idx < 0 {
		return ErrPollNotFound
	}

	polls := slices.Delete(slices.Clone(s.polls), idx, idx+1)
	if err := s.savePolls(ctx, polls); err != nil {
		return err
	}

	slog.Info("poll deleted", "poll_id", id)
	return nil
}

func (s *Session) SetStatus(ctx context.Context, id, status string) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		return models.Poll{}, err
	}
	if !models.ValidStatus(status) {
		return models.Poll{}, ErrInvalidStatus
	}
	idx := s.find(id)
	if idx < 0 {
		return models.Poll{}, ErrPollNotFound
	}

	updated := s.polls[idx].Clone()
	updated.Status = status
	if err := s.replace(ctx, idx, updated); err != nil {
		return models.Poll{}, err
	}

	slog.Info("poll status changed", "poll_id", id, "status", status)
	return updated.Clone(), nil
}

// Vote casts the current user's vote. Rejections leave everything unchanged.
func (s *Session) Vote(ctx context.Context, id, optionID string) (models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.find(id)
	if idx < 0 {
		return models.Poll{}, ErrPollNotFound
	}

	updated, err := poll.CastVote(s.polls[idx], s.user, optionID)
	if err != nil {
		return models.Poll{}, err
	}
	if err := s.replace(ctx, idx, updated); err != nil {
		return models.Poll{}, err
	}

	slog.Info("vote recorded", "poll_id", id, "total_votes", updated.TotalVotes)
	return updated.Clone(), nil
}

func (s *Session) Whitelist(ctx context.Context) ([]models.WhitelistUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.whitelist.Load(ctx)
}

// UploadWhitelist replaces the whitelist with the users in the file. The
// format comes from the filename extension. A rejected file leaves the
// current whitelist in place.
func (s *Session) UploadWhitelist(ctx context.Context, filename string, r io.Reader) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		return 0, err
	}

	users, err := whitelist.Parse(filename, r)
	if err != nil {
		return 0, err
	}
	users = whitelist.Dedupe(users)
	if err := s.whitelist.Replace(ctx, users); err != nil {
		return 0, err
	}

	slog.Info("whitelist replaced", "file", filename, "users", len(users))
	return len(users), nil
}

func (s *Session) ClearWhitelist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := s.whitelist.Replace(ctx, nil); err != nil {
		return err
	}
	slog.Info("whitelist cleared")
	return nil
}

// Export summarizes every poll as of now.
func (s *Session) Export(now time.Time) results.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return results.Summarize(s.polls, now)
}

func (s *Session) Stats() results.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return results.CountStats(s.polls)
}
