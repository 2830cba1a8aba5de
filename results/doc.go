// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package results computes percentages and winners and renders poll exports.

	summary := results.Summarize(polls, time.Now())
	err := results.Write(w, results.FormatCSV, summary)

Percentages are whole numbers rounded half up per option. They are not
adjusted to add up to 100.

The CSV export has two sections:

	Poll ID,Title,Description,Created At,Total Votes,Winning Option,Is Restricted
	<one row per poll>

	Detailed Results:
	Poll ID,Poll Title,Option,Votes,Percentage
	<one row per option, percentage with a % suffix>

The JSON export is the Summary value, indented.
*/
package results
