// Package editor holds the admin-side working copy of the four content
// collections and the edit operations the dashboard exposes. All edits
// are local until SaveAll pushes them to the API.
package editor

import (
	"fmt"
	"sync"

	"tendesign/api/internal/content"
)

// Workspace is a mutable working copy of the content bundle. Every edit
// marks the touched collection unsaved until a successful SaveAll.
type Workspace struct {
	mu     sync.Mutex
	bundle content.Bundle
	dirty  map[content.Kind]bool
}

// NewWorkspace starts from bundle with every collection marked saved.
func NewWorkspace(bundle content.Bundle) *Workspace {
	return &Workspace{
		bundle: bundle,
		dirty:  make(map[content.Kind]bool, 4),
	}
}

// Saved reports whether every collection matches its last saved state.
func (w *Workspace) Saved() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, kind := range content.Kinds {
		if w.dirty[kind] {
			return false
		}
	}
	return true
}

// Unsaved lists the collections with local edits.
func (w *Workspace) Unsaved() []content.Kind {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out []content.Kind
	for _, kind := range content.Kinds {
		if w.dirty[kind] {
			out = append(out, kind)
		}
	}
	return out
}

// Bundle returns a deep copy of the current working state.
func (w *Workspace) Bundle() content.Bundle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return content.Bundle{
		ServiceCategories:          cloneCategories(w.bundle.ServiceCategories),
		PortfolioProjects:          clonePortfolio(w.bundle.PortfolioProjects),
		DeveloperPortfolioProjects: cloneDeveloper(w.bundle.DeveloperPortfolioProjects),
		SocialLinks:                append([]content.SocialLink(nil), w.bundle.SocialLinks...),
	}
}

func (w *Workspace) markDirty(kind content.Kind) {
	w.dirty[kind] = true
}

// copySuffix builds the duplicate title for both languages.
func copySuffix(title content.Bilingual) content.Bilingual {
	return content.Bilingual{
		EN: title.EN + " (Copy)",
		KM: title.KM + " (ចម្លង)",
	}
}

func indexError(collection string, i, length int) error {
	return fmt.Errorf("%s index %d out of range (len %d)", collection, i, length)
}

func removeAt[T any](items []T, i int) []T {
	return append(items[:i:i], items[i+1:]...)
}

// moveBy swaps the element at i with its neighbor delta away. Out-of-range
// destinations leave the slice untouched and report false.
func moveBy[T any](items []T, i, delta int) bool {
	j := i + delta
	if j < 0 || j >= len(items) {
		return false
	}
	items[i], items[j] = items[j], items[i]
	return true
}

func cloneCategories(in []content.ServiceCategory) []content.ServiceCategory {
	out := make([]content.ServiceCategory, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

func clonePortfolio(in []content.PortfolioProject) []content.PortfolioProject {
	out := make([]content.PortfolioProject, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func cloneDeveloper(in []content.DeveloperPortfolioProject) []content.DeveloperPortfolioProject {
	out := make([]content.DeveloperPortfolioProject, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
