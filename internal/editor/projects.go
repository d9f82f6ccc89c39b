package editor

import (
	"tendesign/api/internal/content"
)

func nextPortfolioID(items []content.PortfolioProject) int {
	max := 0
	for _, p := range items {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func nextDeveloperID(items []content.DeveloperPortfolioProject) int {
	max := 0
	for _, p := range items {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

// AddPortfolioProject appends a default-valued project with the next free
// id and returns that id.
func (w *Workspace) AddPortfolioProject() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := nextPortfolioID(w.bundle.PortfolioProjects)
	w.bundle.PortfolioProjects = append(w.bundle.PortfolioProjects, content.PortfolioProject{
		ID:         id,
		Title:      content.Bilingual{EN: "New Project", KM: "គម្រោងថ្មី"},
		Tools:      []string{},
		Categories: []string{},
	})
	w.markDirty(content.KindPortfolio)
	return id
}

func (w *Workspace) RemovePortfolioProject(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.PortfolioProjects) {
		return indexError("portfolio project", i, len(w.bundle.PortfolioProjects))
	}
	w.bundle.PortfolioProjects = removeAt(w.bundle.PortfolioProjects, i)
	w.markDirty(content.KindPortfolio)
	return nil
}

func (w *Workspace) MovePortfolioProject(i, delta int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.PortfolioProjects) {
		return indexError("portfolio project", i, len(w.bundle.PortfolioProjects))
	}
	if moveBy(w.bundle.PortfolioProjects, i, delta) {
		w.markDirty(content.KindPortfolio)
	}
	return nil
}

// DuplicatePortfolioProject appends a deep copy of the project at i with
// a fresh id and the duplicate title suffix, and returns the new id.
func (w *Workspace) DuplicatePortfolioProject(i int) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.PortfolioProjects) {
		return 0, indexError("portfolio project", i, len(w.bundle.PortfolioProjects))
	}
	dup := w.bundle.PortfolioProjects[i].Clone()
	dup.ID = nextPortfolioID(w.bundle.PortfolioProjects)
	dup.Title = copySuffix(dup.Title)
	w.bundle.PortfolioProjects = append(w.bundle.PortfolioProjects, dup)
	w.markDirty(content.KindPortfolio)
	return dup.ID, nil
}

func (w *Workspace) UpdatePortfolioProject(i int, apply func(*content.PortfolioProject)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.PortfolioProjects) {
		return indexError("portfolio project", i, len(w.bundle.PortfolioProjects))
	}
	apply(&w.bundle.PortfolioProjects[i])
	w.markDirty(content.KindPortfolio)
	return nil
}

// AddPortfolioTool adds a tool tag; an existing tag in any casing is a
// silent no-op and leaves the collection saved.
func (w *Workspace) AddPortfolioTool(i int, tool string) error {
	return w.addPortfolioToken(i, tool, func(p *content.PortfolioProject) *[]string { return &p.Tools })
}

func (w *Workspace) RemovePortfolioTool(i, j int) error {
	return w.removePortfolioToken(i, j, func(p *content.PortfolioProject) *[]string { return &p.Tools })
}

func (w *Workspace) AddPortfolioCategory(i int, category string) error {
	return w.addPortfolioToken(i, category, func(p *content.PortfolioProject) *[]string { return &p.Categories })
}

func (w *Workspace) RemovePortfolioCategory(i, j int) error {
	return w.removePortfolioToken(i, j, func(p *content.PortfolioProject) *[]string { return &p.Categories })
}

func (w *Workspace) addPortfolioToken(i int, token string, field func(*content.PortfolioProject) *[]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.PortfolioProjects) {
		return indexError("portfolio project", i, len(w.bundle.PortfolioProjects))
	}
	set := field(&w.bundle.PortfolioProjects[i])
	updated := content.AddToken(*set, token)
	if len(updated) != len(*set) {
		*set = updated
		w.markDirty(content.KindPortfolio)
	}
	return nil
}

func (w *Workspace) removePortfolioToken(i, j int, field func(*content.PortfolioProject) *[]string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.PortfolioProjects) {
		return indexError("portfolio project", i, len(w.bundle.PortfolioProjects))
	}
	set := field(&w.bundle.PortfolioProjects[i])
	if j < 0 || j >= len(*set) {
		return indexError("token", j, len(*set))
	}
	*set = content.RemoveTokenAt(*set, j)
	w.markDirty(content.KindPortfolio)
	return nil
}

// AddDeveloperProject appends a default-valued developer project with the
// next free id and returns that id.
func (w *Workspace) AddDeveloperProject() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := nextDeveloperID(w.bundle.DeveloperPortfolioProjects)
	w.bundle.DeveloperPortfolioProjects = append(w.bundle.DeveloperPortfolioProjects, content.DeveloperPortfolioProject{
		ID:        id,
		Title:     content.Bilingual{EN: "New Project", KM: "គម្រោងថ្មី"},
		TechStack: []string{},
	})
	w.markDirty(content.KindDeveloperPortfolio)
	return id
}

func (w *Workspace) RemoveDeveloperProject(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.DeveloperPortfolioProjects) {
		return indexError("developer project", i, len(w.bundle.DeveloperPortfolioProjects))
	}
	w.bundle.DeveloperPortfolioProjects = removeAt(w.bundle.DeveloperPortfolioProjects, i)
	w.markDirty(content.KindDeveloperPortfolio)
	return nil
}

func (w *Workspace) MoveDeveloperProject(i, delta int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.DeveloperPortfolioProjects) {
		return indexError("developer project", i, len(w.bundle.DeveloperPortfolioProjects))
	}
	if moveBy(w.bundle.DeveloperPortfolioProjects, i, delta) {
		w.markDirty(content.KindDeveloperPortfolio)
	}
	return nil
}

func (w *Workspace) DuplicateDeveloperProject(i int) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.DeveloperPortfolioProjects) {
		return 0, indexError("developer project", i, len(w.bundle.DeveloperPortfolioProjects))
	}
	dup := w.bundle.DeveloperPortfolioProjects[i].Clone()
	dup.ID = nextDeveloperID(w.bundle.DeveloperPortfolioProjects)
	dup.Title = copySuffix(dup.Title)
	w.bundle.DeveloperPortfolioProjects = append(w.bundle.DeveloperPortfolioProjects, dup)
	w.markDirty(content.KindDeveloperPortfolio)
	return dup.ID, nil
}

func (w *Workspace) UpdateDeveloperProject(i int, apply func(*content.DeveloperPortfolioProject)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.DeveloperPortfolioProjects) {
		return indexError("developer project", i, len(w.bundle.DeveloperPortfolioProjects))
	}
	apply(&w.bundle.DeveloperPortfolioProjects[i])
	w.markDirty(content.KindDeveloperPortfolio)
	return nil
}

func (w *Workspace) AddDeveloperTech(i int, tech string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.DeveloperPortfolioProjects) {
		return indexError("developer project", i, len(w.bundle.DeveloperPortfolioProjects))
	}
	p := &w.bundle.DeveloperPortfolioProjects[i]
	updated := content.AddToken(p.TechStack, tech)
	if len(updated) != len(p.TechStack) {
		p.TechStack = updated
		w.markDirty(content.KindDeveloperPortfolio)
	}
	return nil
}

func (w *Workspace) RemoveDeveloperTech(i, j int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.DeveloperPortfolioProjects) {
		return indexError("developer project", i, len(w.bundle.DeveloperPortfolioProjects))
	}
	p := &w.bundle.DeveloperPortfolioProjects[i]
	if j < 0 || j >= len(p.TechStack) {
		return indexError("token", j, len(p.TechStack))
	}
	p.TechStack = content.RemoveTokenAt(p.TechStack, j)
	w.markDirty(content.KindDeveloperPortfolio)
	return nil
}
