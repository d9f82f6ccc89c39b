package editor

import (
	"context"
	"sync"

	"tendesign/api/internal/content"
)

// replacer is the slice of the API client SaveAll needs.
type replacer interface {
	ReplaceServiceCategories(ctx context.Context, items []content.ServiceCategory) ([]content.ServiceCategory, error)
	ReplacePortfolioProjects(ctx context.Context, items []content.PortfolioProject) ([]content.PortfolioProject, error)
	ReplaceDeveloperProjects(ctx context.Context, items []content.DeveloperPortfolioProject) ([]content.DeveloperPortfolioProject, error)
	ReplaceSocialLinks(ctx context.Context, items []content.SocialLink) ([]content.SocialLink, error)
}

// SaveReport records the per-collection outcome of a SaveAll.
type SaveReport struct {
	Errors map[content.Kind]error
}

// Failed lists the collections whose save did not go through.
func (r SaveReport) Failed() []content.Kind {
	var out []content.Kind
	for _, kind := range content.Kinds {
		if r.Errors[kind] != nil {
			out = append(out, kind)
		}
	}
	return out
}

func (r SaveReport) AllSaved() bool {
	return len(r.Errors) == 0
}

// SaveAll submits all four collections concurrently. Each collection
// settles on its own: a successful save adopts the server's echo and
// marks the collection saved, a failed one keeps the local copy and
// stays unsaved. A failure in one collection never rolls back another.
func (w *Workspace) SaveAll(ctx context.Context, api replacer) SaveReport {
	snapshot := w.Bundle()

	report := SaveReport{Errors: make(map[content.Kind]error)}
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	settle := func(kind content.Kind, err error, adopt func()) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			report.Errors[kind] = err
			return
		}
		adopt()
	}

	wg.Add(4)
	go func() {
		defer wg.Done()
		persisted, err := api.ReplaceServiceCategories(ctx, snapshot.ServiceCategories)
		settle(content.KindServices, err, func() {
			w.adoptServiceCategories(persisted)
		})
	}()
	go func() {
		defer wg.Done()
		persisted, err := api.ReplacePortfolioProjects(ctx, snapshot.PortfolioProjects)
		settle(content.KindPortfolio, err, func() {
			w.adoptPortfolioProjects(persisted)
		})
	}()
	go func() {
		defer wg.Done()
		persisted, err := api.ReplaceDeveloperProjects(ctx, snapshot.DeveloperPortfolioProjects)
		settle(content.KindDeveloperPortfolio, err, func() {
			w.adoptDeveloperProjects(persisted)
		})
	}()
	go func() {
		defer wg.Done()
		persisted, err := api.ReplaceSocialLinks(ctx, snapshot.SocialLinks)
		settle(content.KindSocialLinks, err, func() {
			w.adoptSocialLinks(persisted)
		})
	}()
	wg.Wait()
	return report
}

func (w *Workspace) adoptServiceCategories(items []content.ServiceCategory) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bundle.ServiceCategories = items
	delete(w.dirty, content.KindServices)
}

func (w *Workspace) adoptPortfolioProjects(items []content.PortfolioProject) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bundle.PortfolioProjects = items
	delete(w.dirty, content.KindPortfolio)
}

func (w *Workspace) adoptDeveloperProjects(items []content.DeveloperPortfolioProject) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bundle.DeveloperPortfolioProjects = items
	delete(w.dirty, content.KindDeveloperPortfolio)
}

func (w *Workspace) adoptSocialLinks(items []content.SocialLink) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bundle.SocialLinks = items
	delete(w.dirty, content.KindSocialLinks)
}
