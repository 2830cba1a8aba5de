// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/Some0ne11/pollhub-voting-system/middleware"
	"github.com/Some0ne11/pollhub-voting-system/models"
	"github.com/Some0ne11/pollhub-voting-system/session"
)

type VotingHandler struct {
	sess *session.Session
}

func NewVotingHandler(sess *session.Session) *VotingHandler {
	return &VotingHandler{sess: sess}
}

// Vote handles POST /polls/{id}/votes
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	optionID := strings.TrimSpace(req.OptionID)
	if optionID == "" {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, CodeValidation, "optionId is required", nil)
		return
	}

	p, err := h.sess.Vote(r.Context(), r.PathValue("id"), optionID)
	if err != nil {
		writeError(w, err, "Failed to record vote")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{Poll: p, HasVoted: true})
}
