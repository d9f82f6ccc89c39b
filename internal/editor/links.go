package editor

import (
	"tendesign/api/internal/content"
)

// AddSocialLink appends an empty, active link and returns its index.
func (w *Workspace) AddSocialLink() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bundle.SocialLinks = append(w.bundle.SocialLinks, content.SocialLink{IsActive: true})
	w.markDirty(content.KindSocialLinks)
	return len(w.bundle.SocialLinks) - 1
}

func (w *Workspace) RemoveSocialLink(i int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.SocialLinks) {
		return indexError("social link", i, len(w.bundle.SocialLinks))
	}
	w.bundle.SocialLinks = removeAt(w.bundle.SocialLinks, i)
	w.markDirty(content.KindSocialLinks)
	return nil
}

func (w *Workspace) MoveSocialLink(i, delta int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.SocialLinks) {
		return indexError("social link", i, len(w.bundle.SocialLinks))
	}
	if moveBy(w.bundle.SocialLinks, i, delta) {
		w.markDirty(content.KindSocialLinks)
	}
	return nil
}

func (w *Workspace) UpdateSocialLink(i int, apply func(*content.SocialLink)) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i < 0 || i >= len(w.bundle.SocialLinks) {
		return indexError("social link", i, len(w.bundle.SocialLinks))
	}
	apply(&w.bundle.SocialLinks[i])
	w.markDirty(content.KindSocialLinks)
	return nil
}
