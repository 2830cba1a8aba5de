// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package whitelist

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Some0ne11/pollhub-voting-system/models"
)

// Import formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, use .csv or .json")
	ErrMissingEmail      = errors.New("every user needs an email")
	ErrMissingEmailCol   = errors.New("CSV header must include an email column")
	ErrEmptyBatch        = errors.New("no users found in file")
	ErrInvalidFile       = errors.New("whitelist file could not be read")
)

// Parse reads a whitelist file, choosing the format from the file extension.
func Parse(filename string, r io.Reader) ([]models.WhitelistUser, error) {
	return ParseFormat(FormatOf(filename), r)
}

// ParseFormat reads a whitelist in the named format ("csv" or "json").
func ParseFormat(format string, r io.Reader) ([]models.WhitelistUser, error) {
	switch strings.ToLower(format) {
	case FormatCSV:
		return ParseCSV(r)
	case FormatJSON:
		return ParseJSON(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// FormatOf maps a filename to its import format, or "" when unknown.
func FormatOf(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV
	case ".json":
		return FormatJSON
	}
	return ""
}

// ParseCSV reads a header row followed by one user per row. The header is
// matched case-insensitively and must contain "email"; "name" and
// "department" are optional. Any row without an email rejects the batch.
func ParseCSV(r io.Reader) ([]models.WhitelistUser, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyBatch
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	col := map[string]int{"email": -1, "name": -1, "department": -1}
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if idx, ok := col[key]; ok && idx < 0 {
			col[key] = i
		}
	}
	if col["email"] < 0 {
		return nil, ErrMissingEmailCol
	}

	field := func(record []string, name string) string {
		i := col[name]
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var users []models.WhitelistUser
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
		}

		if isBlank(record) {
			continue
		}
		u := models.WhitelistUser{
			Email:      field(record, "email"),
			Name:       field(record, "name"),
			Department: field(record, "department"),
		}
		if u.Email == "" {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, ErrMissingEmail)
		}
		users = append(users, u)
	}

	if len(users) == 0 {
		return nil, ErrEmptyBatch
	}
	return users, nil
}

// ParseJSON reads an array of {email, name?, department?} objects.
func ParseJSON(r io.Reader) ([]models.WhitelistUser, error) {
	var raw []models.WhitelistUser
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyBatch
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	users := make([]models.WhitelistUser, 0, len(raw))
	for i, u := range raw {
		u.Email = strings.TrimSpace(u.Email)
		u.Name = strings.TrimSpace(u.Name)
		u.Department = strings.TrimSpace(u.Department)
		if u.Email == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrMissingEmail)
		}
		users = append(users, u)
	}

	if len(users) == 0 {
		return nil, ErrEmptyBatch
	}
	return users, nil
}

var templateUsers = []models.WhitelistUser{
	{Email: "john.doe@company.com", Name: "John Doe", Department: "Engineering"},
	{Email: "jane.smith@company.com", Name: "Jane Smith", Department: "Marketing"},
	{Email: "bob.wilson@company.com", Name: "Bob Wilson", Department: "Sales"},
}

// Template returns a sample whitelist file in the given format along with its
// download filename.
func Template(format string) (filename string, body []byte, err error) {
	switch strings.ToLower(format) {
	case FormatCSV:
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		w.Write([]string{"email", "name", "department"})
		for _, u := range templateUsers {
			w.Write([]string{u.Email, u.Name, u.Department})
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return "", nil, fmt.Errorf("failed to write CSV template: %w", err)
		}
		return "user-template.csv", buf.Bytes(), nil
	case FormatJSON:
		body, err := json.MarshalIndent(templateUsers, "", "  ")
		if err != nil {
			return "", nil, fmt.Errorf("failed to write JSON template: %w", err)
		}
		return "user-template.json", body, nil
	default:
		return "", nil, ErrUnsupportedFormat
	}
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
