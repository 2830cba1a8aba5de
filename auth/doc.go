// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identifier generation and the admin credential check.

# Device Identities

Identities are random 24-byte (192-bit) secrets:

	id, err := auth.GenerateIdentity()

They are URL-safe base64 encoded without padding. An identity is minted once
per device and is the key for one-vote-per-poll deduplication.

# Poll and Option IDs

Polls and options use random UUIDs:

	pollID := auth.NewPollID()
	optionID := auth.NewOptionID()

# Admin Credentials

CheckCredentials compares a submitted username/password against the
configured pair using constant-time comparison:

	ok := auth.CheckCredentials(submitted, configured)

There is no hashing, lockout, or rate limiting. The admin role only gates
which operations the local UI offers.
*/
package auth
