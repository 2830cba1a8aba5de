// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"errors"
	"time"

	"github.com/Some0ne11/pollhub-voting-system/models"
)

// Export formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

var ErrUnsupportedFormat = errors.New("unsupported export format, use csv or json")

type OptionExport struct {
	Text       string `json:"text"`
	Votes      int    `json:"votes"`
	Percentage int    `json:"percentage"`
}

type EditExport struct {
	Timestamp time.Time `json:"timestamp"`
	Changes   []string  `json:"changes"`
	AdminID   string    `json:"adminId"`
}

// PollExport is the exported view of a poll. Voter ids and the allow list are
// never part of it.
type PollExport struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	CreatedAt     time.Time      `json:"createdAt"`
	LastEditedAt  *time.Time     `json:"lastEditedAt"`
	TotalVotes    int            `json:"totalVotes"`
	IsRestricted  bool           `json:"isRestricted"`
	Status        string         `json:"status"`
	Options       []OptionExport `json:"options"`
	WinningOption string         `json:"winningOption"`
	EditHistory   []EditExport   `json:"editHistory"`
}

type Summary struct {
	ExportDate time.Time    `json:"exportDate"`
	TotalPolls int          `json:"totalPolls"`
	TotalVotes int          `json:"totalVotes"`
	Polls      []PollExport `json:"polls"`
}

// Stats are the aggregate counters shown next to the poll list.
type Stats struct {
	TotalPolls      int `json:"totalPolls"`
	TotalVotes      int `json:"totalVotes"`
	RestrictedPolls int `json:"restrictedPolls"`
}

// Percentage returns votes as a whole percent of total, rounding halves up.
// Returns 0 when total is 0. The result is kept within [0, 100].
func Percentage(votes, total int) int {
	if total <= 0 || votes <= 0 {
		return 0
	}
	if votes >= total {
		return 100
	}
	return (200*votes + total) / (2 * total)
}

// WinningOption returns the text of the first option with the most votes, or
// "" when the poll has no options.
func WinningOption(p models.Poll) string {
	if len(p.Options) == 0 {
		return ""
	}
	winner := p.Options[0]
	for _, opt := range p.Options[1:] {
		if opt.Votes > winner.Votes {
			winner = opt
		}
	}
	return winner.Text
}

// CountStats totals polls, votes and restricted polls.
func CountStats(polls []models.Poll) Stats {
	s := Stats{TotalPolls: len(polls)}
	for _, p := range polls {
		s.TotalVotes += p.TotalVotes
		if p.IsRestricted {
			s.RestrictedPolls++
		}
	}
	return s
}

// Summarize builds the export view of polls as of now.
func Summarize(polls []models.Poll, now time.Time) Summary {
	stats := CountStats(polls)
	s := Summary{
		ExportDate: now,
		TotalPolls: stats.TotalPolls,
		TotalVotes: stats.TotalVotes,
		Polls:      make([]PollExport, 0, len(polls)),
	}

	for _, p := range polls {
		pe := PollExport{
			ID:            p.ID,
			Title:         p.Title,
			Description:   p.Description,
			CreatedAt:     p.CreatedAt,
			TotalVotes:    p.TotalVotes,
			IsRestricted:  p.IsRestricted,
			Status:        p.Status,
			Options:       make([]OptionExport, 0, len(p.Options)),
			WinningOption: WinningOption(p),
			EditHistory:   make([]EditExport, 0, len(p.EditHistory)),
		}
		if p.LastEditedAt != nil {
			t := *p.LastEditedAt
			pe.LastEditedAt = &t
		}
		for _, opt := range p.Options {
			pe.Options = append(pe.Options, OptionExport{
				Text:       opt.Text,
				Votes:      opt.Votes,
				Percentage: Percentage(opt.Votes, p.TotalVotes),
			})
		}
		for _, rec := range p.EditHistory {
			pe.EditHistory = append(pe.EditHistory, EditExport{
				Timestamp: rec.Timestamp,
				Changes:   append([]string{}, rec.Changes...),
				AdminID:   rec.AdminID,
			})
		}
		s.Polls = append(s.Polls, pe)
	}
	return s
}

// Filename returns the download name for an export, e.g.
// poll-results-2025-03-14.csv.
func Filename(format string, now time.Time) string {
	return "poll-results-" + now.UTC().Format("2006-01-02") + "." + format
}

// ContentType returns the MIME type for an export format.
func ContentType(format string) string {
	if format == FormatCSV {
		return "text/csv; charset=utf-8"
	}
	return "application/json"
}
