package editor

import (
	"encoding/json"
	"fmt"

	"tendesign/api/internal/content"
	"tendesign/api/internal/export"
)

// AddServiceCategory appends a default-valued category and returns its index.
func (w *Workspace) AddServiceCategory() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bundle.ServiceCategories = append(w.bundle.ServiceCategories, content.ServiceCategory{
		Category: content.Bilingual{EN: "New Category", KM: "ប្រភេទថ្មី"},
		Items:    []content.ServiceItem{},
	})
	w.markDirty(content.KindServices)
	return len(w.bundle.ServiceCategories) - 1
}

func (w *Workspace) RemoveServiceCategory(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.ServiceCategories) {
		return indexError("service category", i, len(w.bundle.ServiceCategories))
	}
	w.bundle.ServiceCategories = removeAt(w.bundle.ServiceCategories, i)
	w.markDirty(content.KindServices)
	return nil
}

// MoveServiceCategory shifts a category one slot up (-1) or down (+1).
// Moving past either end is a no-op.
func (w *Workspace) MoveServiceCategory(i, delta int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.ServiceCategories) {
		return indexError("service category", i, len(w.bundle.ServiceCategories))
	}
	if moveBy(w.bundle.ServiceCategories, i, delta) {
		w.markDirty(content.KindServices)
	}
	return nil
}

// DuplicateServiceCategory appends a deep copy of the category at i with
// the duplicate suffix on both language labels.
func (w *Workspace) DuplicateServiceCategory(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.ServiceCategories) {
		return indexError("service category", i, len(w.bundle.ServiceCategories))
	}
	dup := w.bundle.ServiceCategories[i].Clone()
	dup.Category = copySuffix(dup.Category)
	w.bundle.ServiceCategories = append(w.bundle.ServiceCategories, dup)
	w.markDirty(content.KindServices)
	return nil
}

// UpdateServiceCategory applies a field edit to one category.
func (w *Workspace) UpdateServiceCategory(i int, apply func(*content.ServiceCategory)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.ServiceCategories) {
		return indexError("service category", i, len(w.bundle.ServiceCategories))
	}
	apply(&w.bundle.ServiceCategories[i])
	w.markDirty(content.KindServices)
	return nil
}

// AddServiceItem appends a default-valued item to one category.
func (w *Workspace) AddServiceItem(category int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if category < 0 || category >= len(w.bundle.ServiceCategories) {
		return indexError("service category", category, len(w.bundle.ServiceCategories))
	}
	c := &w.bundle.ServiceCategories[category]
	c.Items = append(c.Items, content.ServiceItem{
		Name:  content.Bilingual{EN: "New Service", KM: "សេវាកម្មថ្មី"},
		Price: "$0",
	})
	w.markDirty(content.KindServices)
	return nil
}

func (w *Workspace) RemoveServiceItem(category, item int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if category < 0 || category >= len(w.bundle.ServiceCategories) {
		return indexError("service category", category, len(w.bundle.ServiceCategories))
	}
	c := &w.bundle.ServiceCategories[category]
	if item < 0 || item >= len(c.Items) {
		return indexError("service item", item, len(c.Items))
	}
	c.Items = removeAt(c.Items, item)
	w.markDirty(content.KindServices)
	return nil
}

func (w *Workspace) UpdateServiceItem(category, item int, apply func(*content.ServiceItem)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if category < 0 || category >= len(w.bundle.ServiceCategories) {
		return indexError("service category", category, len(w.bundle.ServiceCategories))
	}
	c := &w.bundle.ServiceCategories[category]
	if item < 0 || item >= len(c.Items) {
		return indexError("service item", item, len(c.Items))
	}
	apply(&c.Items[item])
	w.markDirty(content.KindServices)
	return nil
}

// ImportServiceCategory parses raw JSON and appends the category. The
// payload must carry both the category label and an items list; anything
// else leaves the workspace untouched.
func (w *Workspace) ImportServiceCategory(raw []byte) error {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return fmt.Errorf("invalid category file: %w", err)
	}
	if _, ok := keys["category"]; !ok {
		return fmt.Errorf("invalid category file: missing category")
	}
	if _, ok := keys["items"]; !ok {
		return fmt.Errorf("invalid category file: missing items")
	}
	var category content.ServiceCategory
	if err := json.Unmarshal(raw, &category); err != nil {
		return fmt.Errorf("invalid category file: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.bundle.ServiceCategories = append(w.bundle.ServiceCategories, category)
	w.markDirty(content.KindServices)
	return nil
}

// ExportServiceCategory renders one category as a downloadable JSON file.
func (w *Workspace) ExportServiceCategory(i int) (*export.Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.ServiceCategories) {
		return nil, indexError("service category", i, len(w.bundle.ServiceCategories))
	}
	return export.CategoryJSON(w.bundle.ServiceCategories[i])
}
