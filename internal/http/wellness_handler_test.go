package http

import (
	"net/http"
	"net/url"
	"testing"

	"arogya-ai/internal/domain"
)

func TestWellnessHandlerRequiresSession(t *testing.T) {
	srv := newTestServer(t)
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/journal"},
		{http.MethodPost, "/journal"},
		{http.MethodDelete, "/journal/abc"},
		{http.MethodGet, "/mood/history"},
		{http.MethodGet, "/favorites"},
		{http.MethodPost, "/favorites"},
		{http.MethodDelete, "/favorites"},
		{http.MethodGet, "/theme"},
		{http.MethodPut, "/theme"},
	}
	for _, rt := range routes {
		if rec := srv.do(t, rt.method, rt.path, nil, ""); rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", rt.method, rt.path, rec.Code)
		}
	}
}

func TestWellnessHandlerJournal(t *testing.T) {
	srv := newTestServer(t)
	token := srv.signIn(t)

	rec := srv.do(t, http.MethodPost, "/journal", map[string]string{"prompt": "What made you smile?", "response": "   "}, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank response, got %d", rec.Code)
	}

	rec = srv.do(t, http.MethodPost, "/journal", map[string]string{"prompt": "What made you smile?", "response": "A walk in the park"}, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Entry domain.JournalEntry `json:"entry"`
	}
	decode(t, rec, &created)
	if created.Entry.ID == "" {
		t.Fatalf("expected entry id")
	}

	rec = srv.do(t, http.MethodGet, "/journal", nil, token)
	var list struct {
		Entries []domain.JournalEntry `json:"entries"`
	}
	decode(t, rec, &list)
	if len(list.Entries) != 1 || list.Entries[0].Response != "A walk in the park" {
		t.Fatalf("unexpected journal %+v", list.Entries)
	}

	if rec := srv.do(t, http.MethodDelete, "/journal/"+created.Entry.ID, nil, token); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec := srv.do(t, http.MethodDelete, "/journal/"+created.Entry.ID, nil, token); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestWellnessHandlerJournalPrompt(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/journal/prompt", nil, "")
	var resp struct {
		Category string `json:"category"`
		Prompt   string `json:"prompt"`
	}
	decode(t, rec, &resp)
	if resp.Category != "neutral" || resp.Prompt == "" {
		t.Fatalf("unexpected prompt %+v", resp)
	}

	rec = srv.do(t, http.MethodGet, "/journal/prompt?text="+url.QueryEscape("so anxious and worried and nervous"), nil, "")
	decode(t, rec, &resp)
	if resp.Category != "anxious" {
		t.Fatalf("expected anxious category, got %q", resp.Category)
	}
}

func TestWellnessHandlerFavorites(t *testing.T) {
	srv := newTestServer(t)
	token := srv.signIn(t)
	fav := domain.FavoriteAffirmation{Text: "I am enough", Category: "self-compassion"}

	for i := 0; i < 2; i++ {
		if rec := srv.do(t, http.MethodPost, "/favorites", fav, token); rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}
	rec := srv.do(t, http.MethodGet, "/favorites", nil, token)
	var resp struct {
		Favorites []domain.FavoriteAffirmation `json:"favorites"`
	}
	decode(t, rec, &resp)
	if len(resp.Favorites) != 1 || resp.Favorites[0] != fav {
		t.Fatalf("expected one deduplicated favorite, got %+v", resp.Favorites)
	}

	rec = srv.do(t, http.MethodDelete, "/favorites?text="+url.QueryEscape(fav.Text), nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	decode(t, rec, &resp)
	if len(resp.Favorites) != 0 {
		t.Fatalf("expected empty favorites, got %+v", resp.Favorites)
	}
	if rec := srv.do(t, http.MethodDelete, "/favorites?text=missing", nil, token); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestWellnessHandlerSuggestAffirmation(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/affirmations/suggest?category=calm", nil, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var aff domain.FavoriteAffirmation
	decode(t, rec, &aff)
	if aff.Category != "calm" || aff.Text == "" {
		t.Fatalf("unexpected affirmation %+v", aff)
	}

	if rec := srv.do(t, http.MethodGet, "/affirmations/suggest?category=unknown", nil, ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestWellnessHandlerTheme(t *testing.T) {
	srv := newTestServer(t)
	token := srv.signIn(t)

	rec := srv.do(t, http.MethodGet, "/theme", nil, token)
	var resp struct {
		Theme domain.Theme `json:"theme"`
	}
	decode(t, rec, &resp)
	if resp.Theme != domain.ThemeLight {
		t.Fatalf("expected default light, got %q", resp.Theme)
	}

	if rec := srv.do(t, http.MethodPut, "/theme", map[string]string{"theme": "Dark"}, token); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = srv.do(t, http.MethodGet, "/theme", nil, token)
	decode(t, rec, &resp)
	if resp.Theme != domain.ThemeDark {
		t.Fatalf("expected dark, got %q", resp.Theme)
	}

	if rec := srv.do(t, http.MethodPut, "/theme", map[string]string{"theme": "blue"}, token); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
