// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package results

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// CSVDateLayout is how dates appear in CSV exports.
const CSVDateLayout = "Jan 2, 2006, 03:04 PM"

var (
	summaryHeader = []string{"Poll ID", "Title", "Description", "Created At", "Total Votes", "Winning Option", "Is Restricted"}
	detailHeader  = []string{"Poll ID", "Poll Title", "Option", "Votes", "Percentage"}
)

// Write encodes s in the given format.
func Write(w io.Writer, format string, s Summary) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, s)
	case FormatJSON:
		return WriteJSON(w, s)
	default:
		return ErrUnsupportedFormat
	}
}

// WriteCSV writes one summary row per poll, a blank line, then a
// "Detailed Results:" section with one row per option.
func WriteCSV(w io.Writer, s Summary) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range s.Polls {
		row := []string{
			p.ID,
			p.Title,
			p.Description,
			p.CreatedAt.Format(CSVDateLayout),
			strconv.Itoa(p.TotalVotes),
			p.WinningOption,
			strconv.FormatBool(p.IsRestricted),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	if _, err := io.WriteString(w, "\nDetailed Results:\n"); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	if err := cw.Write(detailHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, p := range s.Polls {
		for _, opt := range p.Options {
			row := []string{
				p.ID,
				p.Title,
				opt.Text,
				strconv.Itoa(opt.Votes),
				strconv.Itoa(opt.Percentage) + "%",
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

// WriteJSON writes s as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
