// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Poll status constants
const (
	StatusActive = "active"
	StatusOnHold = "on-hold"
	StatusClosed = "closed"
)

// Identity roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Option count bounds for a poll
const (
	MinOptions = 2
	MaxOptions = 8
)

// ValidStatus reports whether s is one of the known poll statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusOnHold, StatusClosed:
		return true
	}
	return false
}

// Domain types

type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

type EditRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Changes   []string  `json:"changes"`
	AdminID   string    `json:"adminId"`
}

type Poll struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Options      []PollOption `json:"options"`
	CreatedAt    time.Time    `json:"createdAt"`
	TotalVotes   int          `json:"totalVotes"`
	VotedUsers   []string     `json:"votedUsers"`
	LastEditedAt *time.Time   `json:"lastEditedAt,omitempty"`
	EditHistory  []EditRecord `json:"editHistory"`
	AllowedUsers []string     `json:"allowedUsers,omitempty"` // nil unless IsRestricted
	IsRestricted bool         `json:"isRestricted"`
	Status       string       `json:"status"`
}

// Clone returns a deep copy so callers can derive a new poll value without
// sharing slices with p.
func (p Poll) Clone() Poll {
	c := p
	c.Options = append([]PollOption(nil), p.Options...)
	c.VotedUsers = append([]string{}, p.VotedUsers...)
	c.EditHistory = make([]EditRecord, len(p.EditHistory))
	for i, rec := range p.EditHistory {
		rec.Changes = append([]string{}, rec.Changes...)
		c.EditHistory[i] = rec
	}
	if p.AllowedUsers != nil {
		c.AllowedUsers = append([]string{}, p.AllowedUsers...)
	}
	if p.LastEditedAt != nil {
		t := *p.LastEditedAt
		c.LastEditedAt = &t
	}
	return c
}

type User struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name,omitempty"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type WhitelistUser struct {
	Email      string `json:"email"`
	Name       string `json:"name,omitempty"`
	Department string `json:"department,omitempty"`
}

// Input types for the poll factory and editor

type CreatePollData struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Options      []string `json:"options"`
	IsRestricted bool     `json:"isRestricted,omitempty"`
}

type EditOption struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
}

type EditPollData struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Options     []EditOption `json:"options"`
}

// Request types

type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type VoteRequest struct {
	OptionID string `json:"optionId"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

// Response types

type PollListResponse struct {
	Polls           []Poll   `json:"polls"`
	TotalPolls      int      `json:"totalPolls"`
	TotalVotes      int      `json:"totalVotes"`
	RestrictedPolls int      `json:"restrictedPolls"`
	VotedPolls      []string `json:"votedPolls"` // ids the current user has voted in
}

type PollResponse struct {
	Poll     Poll `json:"poll"`
	HasVoted bool `json:"hasVoted"`
}

type WhitelistResponse struct {
	Users []WhitelistUser `json:"users"`
	Count int             `json:"count"`
}

type UploadWhitelistResponse struct {
	Imported int    `json:"imported"`
	Message  string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}
