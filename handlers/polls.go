// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/Some0ne11/pollhub-voting-system/middleware"
	"github.com/Some0ne11/pollhub-voting-system/models"
	"github.com/Some0ne11/pollhub-voting-system/poll"
	"github.com/Some0ne11/pollhub-voting-system/session"
)

type PollHandler struct {
	sess *session.Session
}

func NewPollHandler(sess *session.Session) *PollHandler {
	return &PollHandler{sess: sess}
}

// ListPolls handles GET /polls
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls := h.sess.Polls()
	user := h.sess.CurrentUser()
	stats := h.sess.Stats()

	voted := []string{}
	for _, p := range polls {
		if poll.HasVoted(p, user.ID) {
			voted = append(voted, p.ID)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollListResponse{
		Polls:           polls,
		TotalPolls:      stats.TotalPolls,
		TotalVotes:      stats.TotalVotes,
		RestrictedPolls: stats.RestrictedPolls,
		VotedPolls:      voted,
	})
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	p, err := h.sess.Poll(r.PathValue("id"))
	if err != nil {
		writeError(w, err, "Failed to load poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PollResponse{
		Poll:     p,
		HasVoted: poll.HasVoted(p, h.sess.CurrentUser().ID),
	})
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollData
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	p, err := h.sess.CreatePoll(r.Context(), req)
	if err != nil {
		writeError(w, err, "Failed to create poll")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, p)
}

// UpdatePoll handles PUT /polls/{id}
func (h *PollHandler) UpdatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.EditPollData
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	p, err := h.sess.UpdatePoll(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeError(w, err, "Failed to update poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}

// DeletePoll handles DELETE /polls/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	if err := h.sess.DeletePoll(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err, "Failed to delete poll")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetStatus handles POST /polls/{id}/status
func (h *PollHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req models.SetStatusRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	p, err := h.sess.SetStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeError(w, err, "Failed to update poll status")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, p)
}
