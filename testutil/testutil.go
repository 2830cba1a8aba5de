// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Some0ne11/pollhub-voting-system/db"
	"github.com/Some0ne11/pollhub-voting-system/models"
	"github.com/Some0ne11/pollhub-voting-system/session"
)

// TestAdmin is the admin credential pair used by test sessions
var TestAdmin = models.AdminCredentials{Username: "admin", Password: "admin123"}

// GetTestConfig returns the session config used by tests
func GetTestConfig() session.Config {
	return session.Config{Admin: TestAdmin}
}

// SetupTestStore opens an in-memory SQLite database with the full schema
func SetupTestStore(t *testing.T) db.Store {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db.NewKVStore(conn)
}

// NewTestSession opens a session on a fresh SQLite store
func NewTestSession(t *testing.T) *session.Session {
	t.Helper()
	return OpenTestSession(t, SetupTestStore(t))
}

// OpenTestSession opens a session on an existing store
func OpenTestSession(t *testing.T, store db.Store) *session.Session {
	t.Helper()

	sess, err := session.Open(context.Background(), store, GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open session: %v", err)
	}
	return sess
}

// LoginAdmin promotes the session user to admin
func LoginAdmin(t *testing.T, sess *session.Session) models.User {
	t.Helper()

	u, err := sess.Login(context.Background(), TestAdmin)
	if err != nil {
		t.Fatalf("Failed to log in as admin: %v", err)
	}
	return u
}

// CreateTestPoll creates a poll as admin. The session must already be logged in.
func CreateTestPoll(t *testing.T, sess *session.Session, title string, restricted bool, options ...string) models.Poll {
	t.Helper()

	if len(options) == 0 {
		options = []string{"Option A", "Option B"}
	}
	p, err := sess.CreatePoll(context.Background(), models.CreatePollData{
		Title:        title,
		Description:  "Test poll " + title,
		Options:      options,
		IsRestricted: restricted,
	})
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return p
}

// UploadTestWhitelist replaces the whitelist with the given emails
func UploadTestWhitelist(t *testing.T, sess *session.Session, emails ...string) {
	t.Helper()

	csv := "email\n" + strings.Join(emails, "\n") + "\n"
	if _, err := sess.UploadWhitelist(context.Background(), "users.csv", strings.NewReader(csv)); err != nil {
		t.Fatalf("Failed to upload whitelist: %v", err)
	}
}

// MakeRequest creates an HTTP request with an optional JSON body
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into v
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v. Body: %s", err, w.Body.String())
	}
}

// AssertErrorCode checks the status and the "code" field of an error response
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	AssertStatus(t, w, status)

	var resp models.ErrorResponse
	AssertJSON(t, w, &resp)
	if resp.Code != code {
		t.Errorf("Expected error code %q, got %q (message %q)", code, resp.Code, resp.Message)
	}
}
