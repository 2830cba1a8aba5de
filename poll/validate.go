// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Some0ne11/pollhub-voting-system/models"
)

// Input length limits
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 300
	MaxOptionLen      = 80
)

// ValidationError carries one message per invalid field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid poll: " + strings.Join(parts, "; ")
}

// ValidateCreate trims the input, drops blank options and checks it.
// whitelistSize is the number of users currently on the whitelist; a
// restricted poll needs at least one.
func ValidateCreate(in models.CreatePollData, whitelistSize int) (models.CreatePollData, error) {
	out := models.CreatePollData{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		IsRestricted: in.IsRestricted,
	}
	for _, text := range in.Options {
		if t := strings.TrimSpace(text); t != "" {
			out.Options = append(out.Options, t)
		}
	}

	fields := make(map[string]string)
	checkText(fields, out.Title, out.Description)
	checkOptions(fields, out.Options)
	if out.IsRestricted && whitelistSize == 0 {
		fields["isRestricted"] = "Upload a user whitelist to create restricted polls"
	}

	if len(fields) > 0 {
		return out, &ValidationError{Fields: fields}
	}
	return out, nil
}

// ValidateEdit trims the input, drops blank options and checks it.
func ValidateEdit(in models.EditPollData) (models.EditPollData, error) {
	out := models.EditPollData{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
	}
	texts := []string{}
	for _, opt := range in.Options {
		t := strings.TrimSpace(opt.Text)
		if t == "" {
			continue
		}
		out.Options = append(out.Options, models.EditOption{ID: strings.TrimSpace(opt.ID), Text: t})
		texts = append(texts, t)
	}

	fields := make(map[string]string)
	checkText(fields, out.Title, out.Description)
	checkOptions(fields, texts)

	if len(fields) > 0 {
		return out, &ValidationError{Fields: fields}
	}
	return out, nil
}

func checkText(fields map[string]string, title, description string) {
	switch {
	case title == "":
		fields["title"] = "Title is required"
	case utf8.RuneCountInString(title) > MaxTitleLen:
		fields["title"] = fmt.Sprintf("Title must be at most %d characters", MaxTitleLen)
	}

	switch {
	case description == "":
		fields["description"] = "Description is required"
	case utf8.RuneCountInString(description) > MaxDescriptionLen:
		fields["description"] = fmt.Sprintf("Description must be at most %d characters", MaxDescriptionLen)
	}
}

func checkOptions(fields map[string]string, texts []string) {
	if len(texts) < models.MinOptions {
		fields["options"] = "At least 2 options are required"
		return
	}
	if len(texts) > models.MaxOptions {
		fields["options"] = fmt.Sprintf("At most %d options are allowed", models.MaxOptions)
		return
	}

	seen := make(map[string]bool, len(texts))
	for _, t := range texts {
		if utf8.RuneCountInString(t) > MaxOptionLen {
			fields["options"] = fmt.Sprintf("Options must be at most %d characters", MaxOptionLen)
			return
		}
		key := strings.ToLower(t)
		if seen[key] {
			fields["options"] = "All options must be unique"
			return
		}
		seen[key] = true
	}
}
