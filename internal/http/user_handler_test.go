package http

import (
	"net/http"
	"testing"

	"arogya-ai/internal/domain"
)

func TestUserHandlerSessionLifecycle(t *testing.T) {
	srv := newTestServer(t)
	token := srv.signIn(t)

	rec := srv.do(t, http.MethodGet, "/me", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		User domain.User `json:"user"`
	}
	decode(t, rec, &resp)
	if resp.User.Name != "Asha" || resp.User.Role != domain.UserRolePatient {
		t.Fatalf("unexpected user %+v", resp.User)
	}

	rec = srv.do(t, http.MethodDelete, "/me", nil, token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = srv.do(t, http.MethodGet, "/me", nil, token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after sign out, got %d", rec.Code)
	}
}

func TestUserHandlerStartSessionValidation(t *testing.T) {
	srv := newTestServer(t)
	cases := []struct {
		name string
		body any
	}{
		{name: "missing fields", body: map[string]string{}},
		{name: "short name", body: map[string]string{"name": "A", "email": "a@example.com"}},
		{name: "bad email", body: map[string]string{"name": "Asha", "email": "asha"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodPost, "/session", tc.body, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestUserHandlerMeRequiresToken(t *testing.T) {
	srv := newTestServer(t)
	if rec := srv.do(t, http.MethodGet, "/me", nil, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestUserHandlerJournalSurvivesSignOut(t *testing.T) {
	srv := newTestServer(t)
	first := srv.signIn(t)

	rec := srv.do(t, http.MethodPost, "/journal", map[string]string{"prompt": "Today", "response": "walked by the river"}, first)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec := srv.do(t, http.MethodDelete, "/me", nil, first); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	second := srv.signIn(t)
	rec = srv.do(t, http.MethodGet, "/journal", nil, second)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Entries []domain.JournalEntry `json:"entries"`
	}
	decode(t, rec, &resp)
	if len(resp.Entries) != 1 || resp.Entries[0].Response != "walked by the river" {
		t.Fatalf("expected journal back after signing in again, got %+v", resp.Entries)
	}
}

func TestUserHandlerOtherUserSeesEmptyJournal(t *testing.T) {
	srv := newTestServer(t)
	asha := srv.signIn(t)
	if rec := srv.do(t, http.MethodPost, "/journal", map[string]string{"response": "private"}, asha); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec := srv.do(t, http.MethodPost, "/session", map[string]string{"name": "Bob", "email": "bob@example.com"}, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var session struct {
		Token string `json:"token"`
	}
	decode(t, rec, &session)

	rec = srv.do(t, http.MethodGet, "/journal", nil, session.Token)
	var resp struct {
		Entries []domain.JournalEntry `json:"entries"`
	}
	decode(t, rec, &resp)
	if len(resp.Entries) != 0 {
		t.Fatalf("bob must not see asha's journal, got %+v", resp.Entries)
	}
}
