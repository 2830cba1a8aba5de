// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the PollHub API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(sess)

# Endpoints

Health:

	GET /health

Identity:

	GET  /me           - Current device user
	POST /admin/login  - Promote to admin
	POST /logout       - Back to a plain user, same id
	POST /verify-email - Attach a whitelisted email

Polls (writes require admin):

	GET    /polls             - List with stats
	POST   /polls             - Create
	GET    /polls/{id}        - Get one
	PUT    /polls/{id}        - Edit
	DELETE /polls/{id}        - Delete
	POST   /polls/{id}/status - Set active, on-hold or closed
	POST   /polls/{id}/votes  - Vote

Whitelist (writes require admin):

	GET    /whitelist                      - List
	POST   /whitelist                      - Replace from CSV or JSON
	DELETE /whitelist                      - Clear
	GET    /whitelist/template?format=csv  - Sample file

Results:

	GET /export?format=csv|json - Download
	GET /stats                  - Totals
*/
package router
