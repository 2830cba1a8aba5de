// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Some0ne11/pollhub-voting-system/models"
	"github.com/Some0ne11/pollhub-voting-system/testutil"
)

func TestMe(t *testing.T) {
	sess := testutil.NewTestSession(t)
	handler := NewIdentityHandler(sess)

	w := httptest.NewRecorder()
	handler.Me(w, httptest.NewRequest("GET", "/me", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var u models.User
	testutil.AssertJSON(t, w, &u)
	if u.ID == "" || u.Role != models.RoleUser {
		t.Errorf("Expected a plain user with an id, got %+v", u)
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		creds        models.AdminCredentials
		expectedCode int
	}{
		{"valid", testutil.TestAdmin, http.StatusOK},
		{"wrong password", models.AdminCredentials{Username: "admin", Password: "admin"}, http.StatusUnauthorized},
		{"wrong username", models.AdminCredentials{Username: "root", Password: "admin123"}, http.StatusUnauthorized},
		{"empty", models.AdminCredentials{}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := testutil.NewTestSession(t)
			before := sess.CurrentUser()
			handler := NewIdentityHandler(sess)

			w := httptest.NewRecorder()
			handler.Login(w, testutil.MakeRequest("POST", "/admin/login", tt.creds, nil))

			if tt.expectedCode != http.StatusOK {
				testutil.AssertErrorCode(t, w, tt.expectedCode, CodeInvalidCredentials)
				if sess.CurrentUser().IsAdmin() {
					t.Error("Failed login must not grant admin")
				}
				return
			}

			testutil.AssertStatus(t, w, http.StatusOK)
			var u models.User
			testutil.AssertJSON(t, w, &u)
			if !u.IsAdmin() || u.ID != before.ID {
				t.Errorf("Expected admin with id %s, got %+v", before.ID, u)
			}
		})
	}
}

func TestLogout(t *testing.T) {
	sess := testutil.NewTestSession(t)
	admin := testutil.LoginAdmin(t, sess)
	handler := NewIdentityHandler(sess)

	w := httptest.NewRecorder()
	handler.Logout(w, httptest.NewRequest("POST", "/logout", nil))

	testutil.AssertStatus(t, w, http.StatusOK)

	var u models.User
	testutil.AssertJSON(t, w, &u)
	if u.ID != admin.ID {
		t.Errorf("Expected identity %s to survive logout, got %s", admin.ID, u.ID)
	}
	if u.IsAdmin() || u.Email != "" {
		t.Errorf("Expected a plain user after logout, got %+v", u)
	}
}

func TestVerifyEmail(t *testing.T) {
	sess := testutil.NewTestSession(t)
	testutil.LoginAdmin(t, sess)
	testutil.UploadTestWhitelist(t, sess, "member@example.com")
	handler := NewIdentityHandler(sess)

	tests := []struct {
		name         string
		req          models.VerifyEmailRequest
		expectedCode int
		errorCode    string
	}{
		{"not whitelisted", models.VerifyEmailRequest{Email: "stranger@example.com"}, http.StatusForbidden, CodeNotWhitelisted},
		{"empty email", models.VerifyEmailRequest{Email: " "}, http.StatusBadRequest, CodeEmailRequired},
		{"whitelisted", models.VerifyEmailRequest{Email: "MEMBER@example.com", Name: "Member"}, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.VerifyEmail(w, testutil.MakeRequest("POST", "/verify-email", tt.req, nil))

			if tt.errorCode != "" {
				testutil.AssertErrorCode(t, w, tt.expectedCode, tt.errorCode)
				return
			}

			testutil.AssertStatus(t, w, tt.expectedCode)
			var u models.User
			testutil.AssertJSON(t, w, &u)
			if u.Email != "MEMBER@example.com" || u.Name != "Member" {
				t.Errorf("Expected verified email and name, got %+v", u)
			}
		})
	}
}
