// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/Some0ne11/pollhub-voting-system/middleware"
	"github.com/Some0ne11/pollhub-voting-system/models"
	"github.com/Some0ne11/pollhub-voting-system/session"
)

type IdentityHandler struct {
	sess *session.Session
}

func NewIdentityHandler(sess *session.Session) *IdentityHandler {
	return &IdentityHandler{sess: sess}
}

// Me handles GET /me
func (h *IdentityHandler) Me(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.sess.CurrentUser())
}

// Login handles POST /admin/login
func (h *IdentityHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AdminCredentials
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	u, err := h.sess.Login(r.Context(), req)
	if err != nil {
		writeError(w, err, "Failed to log in")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, u)
}

// Logout handles POST /logout
func (h *IdentityHandler) Logout(w http.ResponseWriter, r *http.Request) {
	u, err := h.sess.Logout(r.Context())
	if err != nil {
		writeError(w, err, "Failed to log out")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, u)
}

// VerifyEmail handles POST /verify-email
func (h *IdentityHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyEmailRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	u, err := h.sess.VerifyEmail(r.Context(), req.Email, req.Name)
	if err != nil {
		writeError(w, err, "Failed to verify email")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, u)
}
