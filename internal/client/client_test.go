package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"tendesign/api/internal/content"
)

func jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func TestLoginStoresAndRestoresSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		jsonResponse(w, http.StatusOK, map[string]any{
			"token": "tok-123",
			"user":  map[string]any{"username": "admin"},
		})
	}))
	defer server.Close()

	sessionPath := filepath.Join(t.TempDir(), "session.json")
	c := New(server.URL, sessionPath)
	if err := c.Login(context.Background(), "admin", "Kiminato855"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !c.Authenticated() {
		t.Fatal("expected authenticated client")
	}

	// A fresh client restores the persisted token.
	restored := New(server.URL, sessionPath)
	if err := restored.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if !restored.Authenticated() {
		t.Fatal("restored client should be authenticated")
	}

	if err := restored.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	cleared := New(server.URL, sessionPath)
	if err := cleared.Restore(); err != nil {
		t.Fatalf("Restore after logout: %v", err)
	}
	if cleared.Authenticated() {
		t.Fatal("session file should be gone after logout")
	}
}

func TestRestoreMissingFileIsNotAnError(t *testing.T) {
	c := New("http://localhost:0", filepath.Join(t.TempDir(), "absent.json"))
	if err := c.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if c.Authenticated() {
		t.Fatal("expected unauthenticated client")
	}
}

func TestReplaceSendsBearerAndRetriesOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("Authorization = %q", got)
		}
		if atomic.AddInt32(&calls, 1) == 1 {
			jsonResponse(w, http.StatusInternalServerError, map[string]any{"code": "SERVER_ERROR", "error": "boom"})
			return
		}
		var body []content.SocialLink
		_ = json.NewDecoder(r.Body).Decode(&body)
		jsonResponse(w, http.StatusOK, body)
	}))
	defer server.Close()

	c := New(server.URL, "")
	if err := c.session.Store("tok-123", "admin"); err != nil {
		t.Fatalf("Store: %v", err)
	}

	links := []content.SocialLink{{Platform: "GitHub", URL: "https://github.com/x", Icon: "github", IsActive: true}}
	persisted, err := c.ReplaceSocialLinks(context.Background(), links)
	if err != nil {
		t.Fatalf("ReplaceSocialLinks: %v", err)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Fatalf("calls = %d, want retry", calls)
	}
	if len(persisted) != 1 || persisted[0].Platform != "GitHub" {
		t.Fatalf("persisted = %+v", persisted)
	}
}

func TestReplaceDoesNotRetryValidationErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{"code": "VALIDATION_ERROR", "error": "bad"})
	}))
	defer server.Close()

	c := New(server.URL, "")
	_ = c.session.Store("tok-123", "admin")

	_, err := c.ReplaceSocialLinks(context.Background(), nil)
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*APIError)
	if !ok || apiErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("err = %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("calls = %d, want no retry", calls)
	}
}

func TestReplaceRequiresLogin(t *testing.T) {
	c := New("http://localhost:0", "")
	if _, err := c.ReplaceSocialLinks(context.Background(), nil); err == nil {
		t.Fatal("expected error without a session")
	}
}

func TestLoadAllFallsBackPerCollection(t *testing.T) {
	served := []content.PortfolioProject{{
		ID:          7,
		Title:       content.Bilingual{EN: "Poster", KM: "ផ្ទាំងរូបភាព"},
		ImageURL:    "https://example.com/poster.png",
		Description: content.Bilingual{EN: "d", KM: "d"},
	}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/portfolio":
			jsonResponse(w, http.StatusOK, served)
		case "/api/social-links":
			jsonResponse(w, http.StatusOK, []content.SocialLink{})
		default:
			jsonResponse(w, http.StatusInternalServerError, map[string]any{"code": "SERVER_ERROR", "error": "down"})
		}
	}))
	defer server.Close()

	c := New(server.URL, "")
	result := c.LoadAll(context.Background())

	if len(result.Bundle.PortfolioProjects) != 1 || result.Bundle.PortfolioProjects[0].ID != 7 {
		t.Fatalf("portfolio = %+v", result.Bundle.PortfolioProjects)
	}
	if len(result.Bundle.SocialLinks) != 0 {
		t.Fatalf("social links = %+v", result.Bundle.SocialLinks)
	}
	defaults := content.DefaultBundle()
	if len(result.Bundle.ServiceCategories) != len(defaults.ServiceCategories) {
		t.Fatal("service categories should fall back to defaults")
	}
	if len(result.Bundle.DeveloperPortfolioProjects) != len(defaults.DeveloperPortfolioProjects) {
		t.Fatal("developer portfolio should fall back to defaults")
	}

	wantFallback := map[content.Kind]bool{
		content.KindServices:           true,
		content.KindDeveloperPortfolio: true,
	}
	if len(result.FellBack) != 2 {
		t.Fatalf("FellBack = %v", result.FellBack)
	}
	for _, kind := range result.FellBack {
		if !wantFallback[kind] {
			t.Fatalf("unexpected fallback %s", kind)
		}
	}
}

func TestInitReportsSeededCollections(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/init" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var bundle content.Bundle
		if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
			t.Fatalf("decode bundle: %v", err)
		}
		jsonResponse(w, http.StatusOK, map[string]any{
			"message": "Database initialized successfully",
			"seeded":  []content.Kind{content.KindServices},
		})
	}))
	defer server.Close()

	c := New(server.URL, "")
	_ = c.session.Store("tok-123", "admin")

	seeded, err := c.Init(context.Background(), content.DefaultBundle())
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if len(seeded) != 1 || seeded[0] != content.KindServices {
		t.Fatalf("seeded = %v", seeded)
	}
}
