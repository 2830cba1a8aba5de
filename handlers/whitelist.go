// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Some0ne11/pollhub-voting-system/middleware"
	"github.com/Some0ne11/pollhub-voting-system/models"
	"github.com/Some0ne11/pollhub-voting-system/session"
	"github.com/Some0ne11/pollhub-voting-system/whitelist"
)

// MaxUploadBytes caps whitelist uploads
const MaxUploadBytes = 10 << 20

type WhitelistHandler struct {
	sess *session.Session
}

func NewWhitelistHandler(sess *session.Session) *WhitelistHandler {
	return &WhitelistHandler{sess: sess}
}

// List handles GET /whitelist
func (h *WhitelistHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.sess.Whitelist(r.Context())
	if err != nil {
		writeError(w, err, "Failed to load whitelist")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.WhitelistResponse{Users: users, Count: len(users)})
}

// Upload handles POST /whitelist
// Accepts a multipart form with a "file" field, or a raw body with
// ?format=csv|json.
func (h *WhitelistHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		h.uploadForm(w, r)
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		middleware.CodedErrorResponse(w, http.StatusBadRequest, CodeUnsupportedFormat,
			"format query parameter is required for raw uploads (csv or json)", nil)
		return
	}
	h.replace(w, r, "upload."+format, r.Body, -1)
}

func (h *WhitelistHandler) uploadForm(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	h.replace(w, r, header.Filename, file, header.Size)
}

func (h *WhitelistHandler) replace(w http.ResponseWriter, r *http.Request, filename string, body io.Reader, size int64) {
	n, err := h.sess.UploadWhitelist(r.Context(), filename, body)
	if err != nil {
		writeError(w, err, "Failed to import whitelist")
		return
	}

	if size >= 0 {
		slog.Info("whitelist file imported", "file", filename, "size", humanize.Bytes(uint64(size)))
	}

	middleware.JSONResponse(w, http.StatusOK, models.UploadWhitelistResponse{
		Imported: n,
		Message:  fmt.Sprintf("Successfully imported %s users", humanize.Comma(int64(n))),
	})
}

// Clear handles DELETE /whitelist
func (h *WhitelistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.sess.ClearWhitelist(r.Context()); err != nil {
		writeError(w, err, "Failed to clear whitelist")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Template handles GET /whitelist/template?format=csv|json
func (h *WhitelistHandler) Template(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = whitelist.FormatCSV
	}

	filename, body, err := whitelist.Template(format)
	if err != nil {
		writeError(w, err, "Failed to build template")
		return
	}

	contentType := "text/csv; charset=utf-8"
	if format == whitelist.FormatJSON {
		contentType = "application/json"
	}
	writeAttachment(w, filename, contentType, body)
}

func writeAttachment(w http.ResponseWriter, filename, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write attachment", "file", filename, "error", err)
	}
}
