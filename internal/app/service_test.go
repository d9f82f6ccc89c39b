package app

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"tendesign/api/internal/auth"
	"tendesign/api/internal/config"
	"tendesign/api/internal/content"
	"tendesign/api/internal/snapshot"
)

var errStoreDown = errors.New("store down")

type fakeStore struct {
	serviceCategories []content.ServiceCategory
	portfolio         []content.PortfolioProject
	developer         []content.DeveloperPortfolioProject
	socialLinks       []content.SocialLink
	pingErr           error
}

func (f *fakeStore) ListServiceCategories(context.Context) ([]content.ServiceCategory, error) {
	return f.serviceCategories, nil
}

func (f *fakeStore) ListPortfolioProjects(context.Context) ([]content.PortfolioProject, error) {
	return f.portfolio, nil
}

func (f *fakeStore) ListDeveloperProjects(context.Context) ([]content.DeveloperPortfolioProject, error) {
	return f.developer, nil
}

func (f *fakeStore) ListSocialLinks(context.Context) ([]content.SocialLink, error) {
	return f.socialLinks, nil
}

func (f *fakeStore) ReplaceServiceCategories(_ context.Context, items []content.ServiceCategory) ([]content.ServiceCategory, error) {
	f.serviceCategories = items
	return items, nil
}

func (f *fakeStore) ReplacePortfolioProjects(_ context.Context, items []content.PortfolioProject) ([]content.PortfolioProject, error) {
	f.portfolio = items
	return items, nil
}

func (f *fakeStore) ReplaceDeveloperProjects(_ context.Context, items []content.DeveloperPortfolioProject) ([]content.DeveloperPortfolioProject, error) {
	f.developer = items
	return items, nil
}

func (f *fakeStore) ReplaceSocialLinks(_ context.Context, items []content.SocialLink) ([]content.SocialLink, error) {
	f.socialLinks = items
	return items, nil
}

func (f *fakeStore) SeedEmptyCollections(_ context.Context, bundle content.Bundle) ([]content.Kind, error) {
	var seeded []content.Kind
	if len(f.serviceCategories) == 0 && len(bundle.ServiceCategories) > 0 {
		f.serviceCategories = bundle.ServiceCategories
		seeded = append(seeded, content.KindServices)
	}
	if len(f.portfolio) == 0 && len(bundle.PortfolioProjects) > 0 {
		f.portfolio = bundle.PortfolioProjects
		seeded = append(seeded, content.KindPortfolio)
	}
	if len(f.developer) == 0 && len(bundle.DeveloperPortfolioProjects) > 0 {
		f.developer = bundle.DeveloperPortfolioProjects
		seeded = append(seeded, content.KindDeveloperPortfolio)
	}
	if len(f.socialLinks) == 0 && len(bundle.SocialLinks) > 0 {
		f.socialLinks = bundle.SocialLinks
		seeded = append(seeded, content.KindSocialLinks)
	}
	return seeded, nil
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

type fakeLimiter struct {
	throttled bool
	failures  map[string]int
	resets    int
}

func (f *fakeLimiter) TooManyFailures(_ context.Context, identifier string) (bool, error) {
	return f.throttled, nil
}

func (f *fakeLimiter) RecordFailure(_ context.Context, identifier string) error {
	if f.failures == nil {
		f.failures = map[string]int{}
	}
	f.failures[identifier]++
	return nil
}

func (f *fakeLimiter) Reset(context.Context, string) error {
	f.resets++
	return nil
}

func (f *fakeLimiter) Ping(context.Context) error { return nil }

type fakeSnapshots struct {
	commits []string
}

func (f *fakeSnapshots) CommitCollection(collection string, _ any, _, _ string) (snapshot.CommitInfo, error) {
	f.commits = append(f.commits, collection)
	return snapshot.CommitInfo{Hash: "deadbeef", When: time.Now()}, nil
}

func (f *fakeSnapshots) History(collection string, limit int) ([]snapshot.CommitInfo, error) {
	return []snapshot.CommitInfo{{Hash: "deadbeef", Message: "replace " + collection}}, nil
}

type fakeImages struct {
	uploads int
}

func (f *fakeImages) Upload(_ context.Context, filename, _ string, r io.Reader, _ int64) (string, error) {
	_, _ = io.Copy(io.Discard, r)
	f.uploads++
	return "https://cdn.example.com/uploads/" + filename, nil
}

func testConfig() config.Config {
	return config.Config{
		TokenSecret:   "test-secret",
		TokenTTL:      time.Hour,
		AdminUser:     "admin",
		AdminPassword: "Kiminato855",
	}
}

func newTestService(t *testing.T, store *fakeStore, snapshots snapshotStore, limiter loginLimiter) *Service {
	t.Helper()
	service, err := New(testConfig(), store, snapshots, limiter, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return service
}

func validPortfolio() []content.PortfolioProject {
	return []content.PortfolioProject{
		{
			ID:          1,
			Title:       content.Bilingual{EN: "Brand Kit", KM: "កញ្ចប់ម៉ាក"},
			ImageURL:    "https://example.com/brand.png",
			Description: content.Bilingual{EN: "Full identity", KM: "អត្តសញ្ញាណពេញលេញ"},
			Tools:       []string{"Figma"},
			Categories:  []string{"Branding"},
		},
	}
}

func TestLoginIssuesToken(t *testing.T) {
	service := newTestService(t, &fakeStore{}, nil, nil)

	session, err := service.Login(context.Background(), "admin", "Kiminato855")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a token")
	}
	if session.UserName != "admin" {
		t.Fatalf("UserName = %q", session.UserName)
	}
	if until := time.Until(session.ExpiresAt); until < 59*time.Minute || until > time.Hour {
		t.Fatalf("unexpected expiry %v", session.ExpiresAt)
	}

	parsed, err := service.SessionFromToken(context.Background(), session.Token)
	if err != nil {
		t.Fatalf("SessionFromToken: %v", err)
	}
	if parsed.UserName != "admin" || parsed.JTI != session.JTI {
		t.Fatalf("parsed session mismatch: %+v", parsed)
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	limiter := &fakeLimiter{}
	service := newTestService(t, &fakeStore{}, nil, limiter)

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"someone", "Kiminato855"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := service.Login(context.Background(), tc.username, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("Login(%q, %q) = %v, want ErrInvalidCredentials", tc.username, tc.password, err)
		}
	}
	if limiter.failures["admin"] != 1 {
		t.Fatalf("failures recorded for admin = %d", limiter.failures["admin"])
	}
}

func TestLoginThrottled(t *testing.T) {
	service := newTestService(t, &fakeStore{}, nil, &fakeLimiter{throttled: true})

	_, err := service.Login(context.Background(), "admin", "Kiminato855")
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Status != http.StatusTooManyRequests {
		t.Fatalf("Login while throttled = %v", err)
	}
}

func TestLoginResetsLimiterOnSuccess(t *testing.T) {
	limiter := &fakeLimiter{}
	service := newTestService(t, &fakeStore{}, nil, limiter)

	if _, err := service.Login(context.Background(), "admin", "Kiminato855"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if limiter.resets != 1 {
		t.Fatalf("resets = %d", limiter.resets)
	}
}

func TestSessionFromTokenRejectsTampered(t *testing.T) {
	service := newTestService(t, &fakeStore{}, nil, nil)

	session, err := service.Login(context.Background(), "admin", "Kiminato855")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := service.SessionFromToken(context.Background(), session.Token+"x"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("tampered token = %v, want ErrInvalidToken", err)
	}
}

func TestReplacePortfolioNormalizesTokensAndSnapshots(t *testing.T) {
	store := &fakeStore{}
	snapshots := &fakeSnapshots{}
	service := newTestService(t, store, snapshots, nil)

	projects := validPortfolio()
	projects[0].Tools = []string{" Figma ", "figma", "Photoshop"}

	persisted, err := service.ReplacePortfolioProjects(context.Background(), projects, "admin")
	if err != nil {
		t.Fatalf("ReplacePortfolioProjects: %v", err)
	}
	got := persisted[0].Tools
	if len(got) != 2 || got[0] != "Figma" || got[1] != "Photoshop" {
		t.Fatalf("Tools = %v", got)
	}
	if len(snapshots.commits) != 1 || snapshots.commits[0] != "portfolio" {
		t.Fatalf("commits = %v", snapshots.commits)
	}
}

func TestReplacePortfolioRejectsDuplicateIDs(t *testing.T) {
	service := newTestService(t, &fakeStore{}, nil, nil)

	projects := append(validPortfolio(), validPortfolio()...)
	_, err := service.ReplacePortfolioProjects(context.Background(), projects, "admin")
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("duplicate ids = %v", err)
	}
}

func TestReplaceServiceCategoriesRejectsPartialLabels(t *testing.T) {
	service := newTestService(t, &fakeStore{}, nil, nil)

	categories := []content.ServiceCategory{{
		Category: content.Bilingual{EN: "Logo Design"},
		Items: []content.ServiceItem{{
			Name:  content.Bilingual{EN: "Basic", KM: "មូលដ្ឋាន"},
			Price: "$30",
		}},
	}}
	_, err := service.ReplaceServiceCategories(context.Background(), categories, "admin")
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("partial label = %v", err)
	}
}

func TestReplaceSocialLinksAllowsEmptySet(t *testing.T) {
	store := &fakeStore{socialLinks: []content.SocialLink{{Platform: "GitHub", URL: "https://github.com/x", Icon: "github"}}}
	service := newTestService(t, store, nil, nil)

	persisted, err := service.ReplaceSocialLinks(context.Background(), []content.SocialLink{}, "admin")
	if err != nil {
		t.Fatalf("ReplaceSocialLinks: %v", err)
	}
	if len(persisted) != 0 || len(store.socialLinks) != 0 {
		t.Fatalf("expected cleared collection, got %v", store.socialLinks)
	}
}

func TestInitSeedsOnlyEmptyCollections(t *testing.T) {
	store := &fakeStore{portfolio: validPortfolio()}
	snapshots := &fakeSnapshots{}
	service := newTestService(t, store, snapshots, nil)

	seeded, err := service.Init(context.Background(), content.DefaultBundle(), "admin")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	for _, kind := range seeded {
		if kind == content.KindPortfolio {
			t.Fatal("portfolio was already populated and must not reseed")
		}
	}
	if len(store.portfolio) != 1 {
		t.Fatalf("portfolio overwritten: %d items", len(store.portfolio))
	}
	if len(store.serviceCategories) == 0 || len(store.socialLinks) == 0 {
		t.Fatal("empty collections were not seeded")
	}
	if len(snapshots.commits) != len(seeded) {
		t.Fatalf("commits = %v for seeded %v", snapshots.commits, seeded)
	}
}

func TestContentHistoryRejectsUnknownCollection(t *testing.T) {
	service := newTestService(t, &fakeStore{}, &fakeSnapshots{}, nil)

	_, err := service.ContentHistory(context.Background(), "blog", 10)
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Status != http.StatusUnprocessableEntity {
		t.Fatalf("unknown collection = %v", err)
	}
}

func TestContentHistoryUnavailableWithoutSnapshots(t *testing.T) {
	service := newTestService(t, &fakeStore{}, nil, nil)

	_, err := service.ContentHistory(context.Background(), content.KindServices, 10)
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("history without snapshots = %v", err)
	}
}

func TestUploadImageUnavailableWithoutStore(t *testing.T) {
	service := newTestService(t, &fakeStore{}, nil, nil)

	_, err := service.UploadImage(context.Background(), "a.png", "image/png", nil, 0)
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Status != http.StatusServiceUnavailable {
		t.Fatalf("upload without store = %v", err)
	}
}
