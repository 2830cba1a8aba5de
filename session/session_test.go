// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/Some0ne11/pollhub-voting-system/db"
	"github.com/Some0ne11/pollhub-voting-system/identity"
	"github.com/Some0ne11/pollhub-voting-system/models"
	"github.com/Some0ne11/pollhub-voting-system/poll"
	"github.com/Some0ne11/pollhub-voting-system/whitelist"
)

var testCfg = Config{Admin: models.AdminCredentials{Username: "admin", Password: "admin123"}}

type SessionSuite struct {
	suite.Suite
	ctx  context.Context
	kv   *db.MemoryStore
	sess *Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.ctx = context.Background()
	s.kv = db.NewMemoryStore()
	s.sess = s.open()
}

func (s *SessionSuite) open() *Session {
	sess, err := Open(s.ctx, s.kv, testCfg)
	s.Require().NoError(err)
	return sess
}

func (s *SessionSuite) login() {
	_, err := s.sess.Login(s.ctx, testCfg.Admin)
	s.Require().NoError(err)
}

func (s *SessionSuite) createPoll(title string, restricted bool, options ...string) models.Poll {
	p, err := s.sess.CreatePoll(s.ctx, models.CreatePollData{
		Title:        title,
		Description:  "Description of " + title,
		Options:      options,
		IsRestricted: restricted,
	})
	s.Require().NoError(err)
	return p
}

func (s *SessionSuite) TestOpenEmpty() {
	s.Empty(s.sess.Polls())
	u := s.sess.CurrentUser()
	s.NotEmpty(u.ID)
	s.Equal(models.RoleUser, u.Role)
}

func (s *SessionSuite) TestAdminRequired() {
	_, err := s.sess.CreatePoll(s.ctx, models.CreatePollData{Title: "T", Description: "D", Options: []string{"A", "B"}})
	s.ErrorIs(err, ErrAdminRequired)

	_, err = s.sess.UpdatePoll(s.ctx, "x", models.EditPollData{})
	s.ErrorIs(err, ErrAdminRequired)

	s.ErrorIs(s.sess.DeletePoll(s.ctx, "x"), ErrAdminRequired)

	_, err = s.sess.SetStatus(s.ctx, "x", models.StatusClosed)
	s.ErrorIs(err, ErrAdminRequired)

	_, err = s.sess.UploadWhitelist(s.ctx, "users.csv", strings.NewReader("email\na@example.com\n"))
	s.ErrorIs(err, ErrAdminRequired)

	s.ErrorIs(s.sess.ClearWhitelist(s.ctx), ErrAdminRequired)
}

func (s *SessionSuite) TestLoginKeepsIdentity() {
	before := s.sess.CurrentUser()

	_, err := s.sess.Login(s.ctx, models.AdminCredentials{Username: "admin", Password: "bad"})
	s.ErrorIs(err, identity.ErrInvalidCredentials)
	s.False(s.sess.CurrentUser().IsAdmin())

	s.login()
	s.Equal(before.ID, s.sess.CurrentUser().ID)
	s.True(s.sess.CurrentUser().IsAdmin())

	u, err := s.sess.Logout(s.ctx)
	s.Require().NoError(err)
	s.Equal(before.ID, u.ID)
	s.False(u.IsAdmin())
}

func (s *SessionSuite) TestCreatePollNewestFirst() {
	s.login()
	first := s.createPoll("First", false, "A", "B")
	second := s.createPoll("Second", false, "C", "D")

	polls := s.sess.Polls()
	s.Require().Len(polls, 2)
	s.Equal(second.ID, polls[0].ID)
	s.Equal(first.ID, polls[1].ID)
}

func (s *SessionSuite) TestCreatePollValidation() {
	s.login()
	_, err := s.sess.CreatePoll(s.ctx, models.CreatePollData{Title: "T", Description: "D", Options: []string{"A", "", "  "}})

	var verr *poll.ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Equal("At least 2 options are required", verr.Fields["options"])
	s.Empty(s.sess.Polls())

	_, err = s.sess.CreatePoll(s.ctx, models.CreatePollData{Title: "T", Description: "D", Options: []string{"A", "B"}, IsRestricted: true})
	s.Require().True(errors.As(err, &verr))
	s.Contains(verr.Fields, "isRestricted")
}

func (s *SessionSuite) TestWriteThroughAndReload() {
	s.login()
	p := s.createPoll("Lunch", false, "Tacos", "Sushi")

	_, err := s.sess.Vote(s.ctx, p.ID, p.Options[1].ID)
	s.Require().NoError(err)

	reopened := s.open()
	polls := reopened.Polls()
	s.Require().Len(polls, 1)
	s.Equal(1, polls[0].Options[1].Votes)
	s.Equal(1, polls[0].TotalVotes)
	s.True(reopened.CurrentUser().IsAdmin())
	s.Equal(s.sess.CurrentUser().ID, reopened.CurrentUser().ID)
}

func (s *SessionSuite) TestVoteOnce() {
	s.login()
	p := s.createPoll("Colour", false, "A", "B")

	voted, err := s.sess.Vote(s.ctx, p.ID, p.Options[0].ID)
	s.Require().NoError(err)
	s.Equal(1, voted.Options[0].Votes)

	_, err = s.sess.Vote(s.ctx, p.ID, p.Options[1].ID)
	s.ErrorIs(err, poll.ErrAlreadyVoted)

	got, err := s.sess.Poll(p.ID)
	s.Require().NoError(err)
	s.Equal(voted, got)

	_, err = s.sess.Vote(s.ctx, "missing", p.Options[0].ID)
	s.ErrorIs(err, ErrPollNotFound)
}

func (s *SessionSuite) TestRestrictedPollFlow() {
	s.login()
	n, err := s.sess.UploadWhitelist(s.ctx, "users.csv", strings.NewReader("email,name\nmember@example.com,Member\n"))
	s.Require().NoError(err)
	s.Equal(1, n)

	p := s.createPoll("Board", true, "For", "Against")
	s.Equal([]string{"member@example.com"}, p.AllowedUsers)

	_, err = s.sess.Logout(s.ctx)
	s.Require().NoError(err)

	_, err = s.sess.Vote(s.ctx, p.ID, p.Options[0].ID)
	s.ErrorIs(err, poll.ErrNeedsVerification)

	_, err = s.sess.VerifyEmail(s.ctx, "stranger@example.com", "")
	s.ErrorIs(err, identity.ErrNotWhitelisted)

	_, err = s.sess.VerifyEmail(s.ctx, "member@example.com", "Member")
	s.Require().NoError(err)

	voted, err := s.sess.Vote(s.ctx, p.ID, p.Options[0].ID)
	s.Require().NoError(err)
	s.Equal(1, voted.TotalVotes)
}

func (s *SessionSuite) TestRestrictedSnapshot() {
	s.login()
	_, err := s.sess.UploadWhitelist(s.ctx, "users.json", strings.NewReader(`[{"email":"early@example.com"}]`))
	s.Require().NoError(err)
	p := s.createPoll("Board", true, "For", "Against")

	// A later whitelist does not change who may vote in p
	_, err = s.sess.UploadWhitelist(s.ctx, "users.json", strings.NewReader(`[{"email":"late@example.com"}]`))
	s.Require().NoError(err)

	_, err = s.sess.VerifyEmail(s.ctx, "late@example.com", "")
	s.Require().NoError(err)
	_, err = s.sess.Vote(s.ctx, p.ID, p.Options[0].ID)
	s.ErrorIs(err, poll.ErrNotAllowed)
}

func (s *SessionSuite) TestUploadWhitelistRejectsBatch() {
	s.login()
	_, err := s.sess.UploadWhitelist(s.ctx, "users.csv", strings.NewReader("email\nkeep@example.com\n"))
	s.Require().NoError(err)

	_, err = s.sess.UploadWhitelist(s.ctx, "users.csv", strings.NewReader("email,name\nnew@example.com,New\n,Nobody\n"))
	s.ErrorIs(err, whitelist.ErrMissingEmail)

	_, err = s.sess.UploadWhitelist(s.ctx, "users.txt", strings.NewReader("email\nnew@example.com\n"))
	s.ErrorIs(err, whitelist.ErrUnsupportedFormat)

	users, err := s.sess.Whitelist(s.ctx)
	s.Require().NoError(err)
	s.Equal([]models.WhitelistUser{{Email: "keep@example.com"}}, users)

	s.Require().NoError(s.sess.ClearWhitelist(s.ctx))
	users, err = s.sess.Whitelist(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *SessionSuite) TestUpdatePoll() {
	s.login()
	p := s.createPoll("Colour", false, "Red", "Blue")
	_, err := s.sess.Vote(s.ctx, p.ID, p.Options[0].ID)
	s.Require().NoError(err)

	updated, err := s.sess.UpdatePoll(s.ctx, p.ID, models.EditPollData{
		Title:       "Colour",
		Description: p.Description,
		Options: []models.EditOption{
			{ID: p.Options[0].ID, Text: "Crimson"},
			{Text: "Green"},
		},
	})
	s.Require().NoError(err)
	s.Equal(1, updated.Options[0].Votes)
	s.Equal("Crimson", updated.Options[0].Text)
	s.Require().Len(updated.EditHistory, 1)
	s.Equal(s.sess.CurrentUser().ID, updated.EditHistory[0].AdminID)

	_, err = s.sess.UpdatePoll(s.ctx, "missing", models.EditPollData{})
	s.ErrorIs(err, ErrPollNotFound)

	_, err = s.sess.UpdatePoll(s.ctx, p.ID, models.EditPollData{Title: "Colour", Description: "D", Options: []models.EditOption{{Text: "Only"}}})
	var verr *poll.ValidationError
	s.True(errors.As(err, &verr))
}

func (s *SessionSuite) TestSetStatusAndDelete() {
	s.login()
	p := s.createPoll("Colour", false, "A", "B")

	_, err := s.sess.SetStatus(s.ctx, p.ID, "paused")
	s.ErrorIs(err, ErrInvalidStatus)

	held, err := s.sess.SetStatus(s.ctx, p.ID, models.StatusOnHold)
	s.Require().NoError(err)
	s.Equal(models.StatusOnHold, held.Status)

	_, err = s.sess.Vote(s.ctx, p.ID, p.Options[0].ID)
	s.ErrorIs(err, poll.ErrPollNotActive)

	s.Require().NoError(s.sess.DeletePoll(s.ctx, p.ID))
	s.Empty(s.sess.Polls())
	s.ErrorIs(s.sess.DeletePoll(s.ctx, p.ID), ErrPollNotFound)
}

func (s *SessionSuite) TestExportAndStats() {
	s.login()
	p := s.createPoll("Colour", false, "A", "B")
	_, err := s.sess.Vote(s.ctx, p.ID, p.Options[1].ID)
	s.Require().NoError(err)

	at := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	summary := s.sess.Export(at)
	s.Equal(at, summary.ExportDate)
	s.Equal(1, summary.TotalPolls)
	s.Equal(1, summary.TotalVotes)
	s.Equal("B", summary.Polls[0].WinningOption)

	stats := s.sess.Stats()
	s.Equal(1, stats.TotalPolls)
	s.Equal(1, stats.TotalVotes)
}

func (s *SessionSuite) TestOpenUpgradesOldPolls() {
	legacy := `[{
		"id": "p1",
		"title": "Old",
		"description": "Saved before status existed",
		"options": [{"id": "o1", "text": "A", "votes": 1}, {"id": "o2", "text": "B", "votes": 0}],
		"createdAt": "2024-01-01T00:00:00Z",
		"totalVotes": 1,
		"isRestricted": false
	}]`
	s.Require().NoError(s.kv.Set(s.ctx, db.KeyPolls, []byte(legacy)))

	polls := s.open().Polls()
	s.Require().Len(polls, 1)
	s.Equal(models.StatusActive, polls[0].Status)
	s.NotNil(polls[0].EditHistory)
	s.NotNil(polls[0].VotedUsers)
	s.Nil(polls[0].AllowedUsers)
}

func (s *SessionSuite) TestOpenCorruptPolls() {
	s.Require().NoError(s.kv.Set(s.ctx, db.KeyPolls, []byte("[{broken")))
	s.Empty(s.open().Polls())
}

func (s *SessionSuite) TestPollsReturnsCopies() {
	s.login()
	p := s.createPoll("Colour", false, "A", "B")

	polls := s.sess.Polls()
	polls[0].Options[0].Votes = 99
	polls[0].Title = "Changed"

	got, err := s.sess.Poll(p.ID)
	s.Require().NoError(err)
	s.Equal("Colour", got.Title)
	s.Zero(got.Options[0].Votes)
}
