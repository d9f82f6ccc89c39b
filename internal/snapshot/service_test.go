package snapshot

import (
	"testing"

	"tendesign/api/internal/content"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := New(t.TempDir())
	if err := svc.EnsureRepo(); err != nil {
		t.Fatalf("EnsureRepo() error = %v", err)
	}
	return svc
}

func TestCommitCollectionAndHistory(t *testing.T) {
	svc := newTestService(t)

	links := content.DefaultSocialLinks()
	first, err := svc.CommitCollection("social-links", links, "admin", "replace social-links (6 items)")
	if err != nil {
		t.Fatalf("CommitCollection() error = %v", err)
	}
	if first.Hash == "" || first.Author != "admin" {
		t.Fatalf("unexpected commit info: %+v", first)
	}

	links[0].URL = "https://t.me/tendesign"
	second, err := svc.CommitCollection("social-links", links, "admin", "replace social-links (6 items)")
	if err != nil {
		t.Fatalf("CommitCollection() second error = %v", err)
	}
	if second.Hash == first.Hash {
		t.Fatal("expected a new commit for changed content")
	}

	history, err := svc.History("social-links", 10)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(history))
	}
	if history[0].Hash != second.Hash {
		t.Fatalf("expected newest commit first, got %+v", history[0])
	}
}

func TestCommitCollectionUnchangedPayloadReusesHead(t *testing.T) {
	svc := newTestService(t)

	links := content.DefaultSocialLinks()
	first, err := svc.CommitCollection("social-links", links, "admin", "replace social-links")
	if err != nil {
		t.Fatalf("CommitCollection() error = %v", err)
	}
	second, err := svc.CommitCollection("social-links", links, "admin", "replace social-links")
	if err != nil {
		t.Fatalf("CommitCollection() repeat error = %v", err)
	}
	if second.Hash != first.Hash {
		t.Fatalf("expected identical payload to keep head %s, got %s", first.Hash, second.Hash)
	}
}

func TestHistoryIsScopedPerCollection(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.CommitCollection("services", content.DefaultServiceCategories(), "admin", "replace services"); err != nil {
		t.Fatalf("commit services: %v", err)
	}
	if _, err := svc.CommitCollection("portfolio", content.DefaultPortfolioProjects(), "admin", "replace portfolio"); err != nil {
		t.Fatalf("commit portfolio: %v", err)
	}

	history, err := svc.History("services", 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 services commit, got %d", len(history))
	}
}

func TestHistoryOnEmptyRepo(t *testing.T) {
	svc := newTestService(t)
	history, err := svc.History("services", 0)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(history))
	}
}
