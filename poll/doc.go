// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll implements the poll lifecycle: creation, admin edits, and voting.

Every function takes a poll value and returns a new one. Nothing here holds
state or touches storage; the session package owns the collection.

# Creation

	input, err := poll.ValidateCreate(raw, whitelistSize)
	p := poll.CreatePoll(input, allowedEmails)

CreatePoll does not validate. Callers run ValidateCreate first, which trims
fields, drops blank options, and reports field errors as *ValidationError.

# Edits

	input, err := poll.ValidateEdit(raw)
	p = poll.UpdatePoll(p, input, adminID)

UpdatePoll reconciles the submitted options with the existing ones:

  - an option whose id matches an existing option keeps its votes
  - an option with a blank or unknown id starts at zero votes
  - existing options missing from the edit are dropped with their votes
  - options take the submitted order
  - TotalVotes is recomputed from the surviving options

Each edit appends one EditRecord with a change log:

	Title changed from "<old>" to "<new>"
	Description updated
	Added option: "<text>"          (text not present before)
	Removed option: "<text>"        (text no longer present)
	Changed option from "<a>" to "<b>"  (same id, new text)

# Voting

	p, err = poll.CastVote(p, voter, optionID)

Rejections, checked in this order, leave the poll unchanged:

  - ErrPollNotActive: status is not active
  - ErrNeedsVerification: restricted poll, voter has no verified email
  - ErrNotAllowed: restricted poll, email not in AllowedUsers
  - ErrAlreadyVoted: voter id already in VotedUsers
  - ErrUnknownOption: option id not in the poll
*/
package poll
