// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs one line per request with method, path, status, client and duration_ms.
Server errors are logged at error level.

# CORS Middleware

Lets a UI served from another local origin call the API:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Preflight requests are answered with 204. Content-Disposition is exposed so
browsers can read export filenames.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.CodedErrorResponse(w, http.StatusForbidden, "not_whitelisted", "message", nil)

Parse JSON request bodies (capped at MaxBodyBytes):

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
