// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"errors"
	"slices"
	"strings"

	"github.com/Some0ne11/pollhub-voting-system/models"
)

// Vote rejections. None of them change the poll.
var (
	ErrPollNotActive     = errors.New("poll is not accepting votes")
	ErrNeedsVerification = errors.New("email verification required for restricted poll")
	ErrNotAllowed        = errors.New("email is not authorized for this poll")
	ErrAlreadyVoted      = errors.New("already voted in this poll")
	ErrUnknownOption     = errors.New("option does not belong to this poll")
)

// CastVote records one vote by voter for optionID and returns the new poll value.
// The input poll is not modified; on rejection it is returned unchanged.
func CastVote(p models.Poll, voter models.User, optionID string) (models.Poll, error) {
	if p.Status != models.StatusActive {
		return p, ErrPollNotActive
	}

	if p.IsRestricted {
		if voter.Email == "" {
			return p, ErrNeedsVerification
		}
		if !containsFold(p.AllowedUsers, voter.Email) {
			return p, ErrNotAllowed
		}
	}

	if HasVoted(p, voter.ID) {
		return p, ErrAlreadyVoted
	}

	idx := slices.IndexFunc(p.Options, func(o models.PollOption) bool { return o.ID == optionID })
	if idx < 0 {
		return p, ErrUnknownOption
	}

	updated := p.Clone()
	updated.Options[idx].Votes++
	updated.TotalVotes++
	updated.VotedUsers = append(updated.VotedUsers, voter.ID)
	return updated, nil
}

// HasVoted reports whether voterID has already voted in p.
func HasVoted(p models.Poll, voterID string) bool {
	return slices.Contains(p.VotedUsers, voterID)
}

func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}
