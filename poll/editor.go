// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"fmt"
	"slices"

	"github.com/Some0ne11/pollhub-voting-system/auth"
	"github.com/Some0ne11/pollhub-voting-system/models"
)

// UpdatePoll applies an admin edit and returns the new poll value.
// Votes carry over for every submitted option whose id matches an existing
// option; options left out of the edit are dropped along with their votes.
// The input poll is not modified.
func UpdatePoll(p models.Poll, data models.EditPollData, adminID string) models.Poll {
	changes := diff(p, data)

	existing := make(map[string]models.PollOption, len(p.Options))
	for _, opt := range p.Options {
		existing[opt.ID] = opt
	}

	// Submitted order wins. An id claimed twice only carries its votes once.
	options := make([]models.PollOption, 0, len(data.Options))
	claimed := make(map[string]bool, len(data.Options))
	total := 0
	for _, in := range data.Options {
		opt := models.PollOption{Text: in.Text}
		if old, ok := existing[in.ID]; ok && in.ID != "" && !claimed[in.ID] {
			claimed[in.ID] = true
			opt.ID = old.ID
			opt.Votes = old.Votes
		} else {
			opt.ID = auth.NewOptionID()
		}
		total += opt.Votes
		options = append(options, opt)
	}

	editedAt := now()

	updated := p.Clone()
	updated.Title = data.Title
	updated.Description = data.Description
	updated.Options = options
	updated.TotalVotes = total
	updated.LastEditedAt = &editedAt
	updated.EditHistory = append(updated.EditHistory, models.EditRecord{
		Timestamp: editedAt,
		Changes:   changes,
		AdminID:   adminID,
	})
	return updated
}

// diff builds the change log for an edit. Added and removed options are
// detected by text, renames by id, so a renamed option can show up as both.
func diff(p models.Poll, data models.EditPollData) []string {
	changes := []string{}

	if p.Title != data.Title {
		changes = append(changes, fmt.Sprintf(`Title changed from "%s" to "%s"`, p.Title, data.Title))
	}
	if p.Description != data.Description {
		changes = append(changes, "Description updated")
	}

	oldTexts := make([]string, 0, len(p.Options))
	for _, opt := range p.Options {
		oldTexts = append(oldTexts, opt.Text)
	}
	newTexts := make([]string, 0, len(data.Options))
	for _, opt := range data.Options {
		newTexts = append(newTexts, opt.Text)
	}

	for _, text := range newTexts {
		if !slices.Contains(oldTexts, text) {
			changes = append(changes, fmt.Sprintf(`Added option: "%s"`, text))
		}
	}
	for _, text := range oldTexts {
		if !slices.Contains(newTexts, text) {
			changes = append(changes, fmt.Sprintf(`Removed option: "%s"`, text))
		}
	}

	for _, old := range p.Options {
		idx := slices.IndexFunc(data.Options, func(o models.EditOption) bool { return o.ID == old.ID })
		if idx >= 0 && data.Options[idx].Text != old.Text {
			changes = append(changes, fmt.Sprintf(`Changed option from "%s" to "%s"`, old.Text, data.Options[idx].Text))
		}
	}

	return changes
}
