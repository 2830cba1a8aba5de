// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package whitelist stores the list of users allowed to vote in restricted polls
and parses whitelist import files.

The list is kept as one JSON array under the "userWhitelist" key. Emails are
compared case-insensitively; the first entry wins when an email repeats.

Import files are either CSV with a header row:

	email,name,department
	john.doe@company.com,John Doe,Engineering

or a JSON array:

	[{"email": "john.doe@company.com", "name": "John Doe"}]

An import is all-or-nothing. A file with no users, or with any user missing an
email, is rejected as a whole and the stored list is left alone.
*/
package whitelist
