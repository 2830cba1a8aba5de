// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the PollHub API.

# Handler Types

Each handler is a struct holding the device session:

  - PollHandler: Poll listing and admin management (create, edit, delete, status)
  - VotingHandler: Vote casting
  - IdentityHandler: Current user, admin login, logout, email verification
  - WhitelistHandler: Authorized user list upload, listing, clearing, templates
  - ResultsHandler: Result export and stats

Handlers are created via constructor functions that accept the session:

	pollHandler := handlers.NewPollHandler(sess)

# Poll Lifecycle

Polls move between three statuses: active, on-hold and closed. Only active
polls accept votes.

	GET    /polls             → ListPolls (with stats and the ids already voted in)
	POST   /polls             → CreatePoll (admin)
	GET    /polls/{id}        → GetPoll
	PUT    /polls/{id}        → UpdatePoll (admin, votes carried over by option id)
	DELETE /polls/{id}        → DeletePoll (admin)
	POST   /polls/{id}/status → SetStatus (admin)
	POST   /polls/{id}/votes  → Vote

# Identity

There is one user per device. Admin access is gained by posting the configured
credentials to /admin/login. Restricted polls require the voter to verify an
email from the whitelist via /verify-email first.

# Errors

Errors are JSON bodies with a machine-readable code:

	{"error": "Conflict", "message": "You have already voted in this poll", "code": "already_voted"}

Validation failures carry per-field messages under "fields".
*/
package handlers
