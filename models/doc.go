// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for PollHub.

# Domain Types

Values passed between the core packages and persisted as JSON:

  - Poll: question, ordered options, tallies, voters, edit history, access control
  - PollOption: option text and vote count
  - EditRecord: append-only audit entry for one admin edit
  - User: device identity, role, optional verified email
  - WhitelistUser: authorized email with optional name and department

JSON field names match the persisted layout (createdAt, totalVotes,
votedUsers, editHistory, allowedUsers, isRestricted, adminId).

# Input Types

  - CreatePollData: title, description, option texts, isRestricted
  - EditPollData: title, description, options as {id, text}

# Request and Response Types

  - AdminCredentials, VerifyEmailRequest, VoteRequest, SetStatusRequest
  - PollListResponse, PollResponse, WhitelistResponse, UploadWhitelistResponse
  - ErrorResponse: error, message, code, fields

# Constants

Status values:

	StatusActive = "active"
	StatusOnHold = "on-hold"
	StatusClosed = "closed"

Roles:

	RoleAdmin = "admin"
	RoleUser  = "user"

Option bounds:

	MinOptions = 2
	MaxOptions = 8
*/
package models
