// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Some0ne11/pollhub-voting-system/identity"
	"github.com/Some0ne11/pollhub-voting-system/middleware"
	"github.com/Some0ne11/pollhub-voting-system/poll"
	"github.com/Some0ne11/pollhub-voting-system/results"
	"github.com/Some0ne11/pollhub-voting-system/session"
	"github.com/Some0ne11/pollhub-voting-system/whitelist"
)

// Error codes returned in the "code" field
const (
	CodeValidation         = "validation_failed"
	CodeUnknownOption      = "unknown_option"
	CodeInvalidStatus      = "invalid_status"
	CodeEmailRequired      = "email_required"
	CodeInvalidWhitelist   = "invalid_whitelist"
	CodeUnsupportedFormat  = "unsupported_format"
	CodeInvalidCredentials = "invalid_credentials"
	CodeAdminRequired      = "admin_required"
	CodeNeedsVerification  = "needs_verification"
	CodeNotAllowed         = "not_allowed"
	CodeNotWhitelisted     = "not_whitelisted"
	CodePollNotFound       = "poll_not_found"
	CodeAlreadyVoted       = "already_voted"
	CodePollNotActive      = "poll_not_active"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var errorMappings = []errorMapping{
	{poll.ErrUnknownOption, http.StatusBadRequest, CodeUnknownOption, "Option not found in this poll"},
	{session.ErrInvalidStatus, http.StatusBadRequest, CodeInvalidStatus, "Status must be active, on-hold or closed"},
	{identity.ErrEmailRequired, http.StatusBadRequest, CodeEmailRequired, "Email is required"},
	{whitelist.ErrUnsupportedFormat, http.StatusBadRequest, CodeUnsupportedFormat, "Please upload a CSV or JSON file"},
	{results.ErrUnsupportedFormat, http.StatusBadRequest, CodeUnsupportedFormat, "Export format must be csv or json"},
	{whitelist.ErrEmptyBatch, http.StatusBadRequest, CodeInvalidWhitelist, ""},
	{whitelist.ErrMissingEmail, http.StatusBadRequest, CodeInvalidWhitelist, ""},
	{whitelist.ErrMissingEmailCol, http.StatusBadRequest, CodeInvalidWhitelist, ""},
	{whitelist.ErrInvalidFile, http.StatusBadRequest, CodeInvalidWhitelist, ""},
	{identity.ErrInvalidCredentials, http.StatusUnauthorized, CodeInvalidCredentials, "Invalid username or password"},
	{session.ErrAdminRequired, http.StatusForbidden, CodeAdminRequired, "Admin login required"},
	{poll.ErrNeedsVerification, http.StatusForbidden, CodeNeedsVerification, "Verify your email to vote in this poll"},
	{poll.ErrNotAllowed, http.StatusForbidden, CodeNotAllowed, "You are not authorized to vote in this poll"},
	{identity.ErrNotWhitelisted, http.StatusForbidden, CodeNotWhitelisted, "Email is not on the authorized user list"},
	{session.ErrPollNotFound, http.StatusNotFound, CodePollNotFound, "Poll not found"},
	{poll.ErrAlreadyVoted, http.StatusConflict, CodeAlreadyVoted, "You have already voted in this poll"},
	{poll.ErrPollNotActive, http.StatusConflict, CodePollNotActive, "This poll is not accepting votes"},
}

// writeError maps a session error to its HTTP response. Unknown errors are
// logged and reported as 500 with the fallback message.
func writeError(w http.ResponseWriter, err error, fallback string) {
	var verr *poll.ValidationError
	if errors.As(err, &verr) {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, CodeValidation, "Invalid poll", verr.Fields)
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			message := m.message
			if message == "" {
				message = err.Error()
			}
			middleware.CodedErrorResponse(w, m.status, m.code, message, nil)
			return
		}
	}

	slog.Error(fallback, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
}
