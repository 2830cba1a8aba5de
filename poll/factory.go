// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"time"

	"github.com/Some0ne11/pollhub-voting-system/auth"
	"github.com/Some0ne11/pollhub-voting-system/models"
)

// now is replaced in tests
var now = time.Now

// CreatePoll builds a new active poll from already validated input.
// allowedUsers is attached only when the poll is restricted.
func CreatePoll(data models.CreatePollData, allowedUsers []string) models.Poll {
	options := make([]models.PollOption, 0, len(data.Options))
	for _, text := range data.Options {
		options = append(options, models.PollOption{
			ID:   auth.NewOptionID(),
			Text: text,
		})
	}

	p := models.Poll{
		ID:           auth.NewPollID(),
		Title:        data.Title,
		Description:  data.Description,
		Options:      options,
		CreatedAt:    now(),
		VotedUsers:   []string{},
		EditHistory:  []models.EditRecord{},
		IsRestricted: data.IsRestricted,
		Status:       models.StatusActive,
	}
	if data.IsRestricted {
		p.AllowedUsers = append([]string{}, allowedUsers...)
	}
	return p
}
