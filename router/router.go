// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Some0ne11/pollhub-voting-system/handlers"
	"github.com/Some0ne11/pollhub-voting-system/middleware"
	"github.com/Some0ne11/pollhub-voting-system/session"
)

func NewRouter(sess *session.Session) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(sess)
	votingHandler := handlers.NewVotingHandler(sess)
	identityHandler := handlers.NewIdentityHandler(sess)
	whitelistHandler := handlers.NewWhitelistHandler(sess)
	resultsHandler := handlers.NewResultsHandler(sess)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Identity
	mux.HandleFunc("GET /me", middleware.WithLogging(identityHandler.Me))
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(identityHandler.Login))
	mux.HandleFunc("POST /logout", middleware.WithLogging(identityHandler.Logout))
	mux.HandleFunc("POST /verify-email", middleware.WithLogging(identityHandler.VerifyEmail))

	// Polls (writes are admin only)
	mux.HandleFunc("GET /polls", middleware.WithLogging(pollHandler.ListPolls))
	mux.HandleFunc("POST /polls", middleware.WithLogging(pollHandler.CreatePoll))
	mux.HandleFunc("GET /polls/{id}", middleware.WithLogging(pollHandler.GetPoll))
	mux.HandleFunc("PUT /polls/{id}", middleware.WithLogging(pollHandler.UpdatePoll))
	mux.HandleFunc("DELETE /polls/{id}", middleware.WithLogging(pollHandler.DeletePoll))
	mux.HandleFunc("POST /polls/{id}/status", middleware.WithLogging(pollHandler.SetStatus))

	// Voting
	mux.HandleFunc("POST /polls/{id}/votes", middleware.WithLogging(votingHandler.Vote))

	// Whitelist
	mux.HandleFunc("GET /whitelist", middleware.WithLogging(whitelistHandler.List))
	mux.HandleFunc("POST /whitelist", middleware.WithLogging(whitelistHandler.Upload))
	mux.HandleFunc("DELETE /whitelist", middleware.WithLogging(whitelistHandler.Clear))
	mux.HandleFunc("GET /whitelist/template", middleware.WithLogging(whitelistHandler.Template))

	// Results
	mux.HandleFunc("GET /export", middleware.WithLogging(resultsHandler.Export))
	mux.HandleFunc("GET /stats", middleware.WithLogging(resultsHandler.Stats))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pollhub API v1"))
	})

	return mux
}
