// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Some0ne11/pollhub-voting-system/middleware"
	"github.com/Some0ne11/pollhub-voting-system/results"
	"github.com/Some0ne11/pollhub-voting-system/session"
)

type ResultsHandler struct {
	sess *session.Session
	now  func() time.Time
}

func NewResultsHandler(sess *session.Session) *ResultsHandler {
	return &ResultsHandler{sess: sess, now: time.Now}
}

// Export handles GET /export?format=csv|json
// The body is a file download named poll-results-YYYY-MM-DD.<format>.
func (h *ResultsHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(r.URL.Query().Get("format"))
	if format == "" {
		format = results.FormatCSV
	}

	now := h.now()
	summary := h.sess.Export(now)

	var buf bytes.Buffer
	if err := results.Write(&buf, format, summary); err != nil {
		writeError(w, err, "Failed to export results")
		return
	}

	slog.Info("results exported",
		"format", format,
		"polls", summary.TotalPolls,
		"size", humanize.Bytes(uint64(buf.Len())),
	)

	writeAttachment(w, results.Filename(format, now), results.ContentType(format), buf.Bytes())
}

// Stats handles GET /stats
func (h *ResultsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, h.sess.Stats())
}
