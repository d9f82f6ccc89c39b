// Package snapshot keeps a git-backed history of the content collections.
// Every successful replace-all commits the collection's JSON rendition, so
// an accidental wholesale overwrite can be recovered by hand from the
// repository under the configured snapshots directory.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

type CommitInfo struct {
	Hash    string    `json:"hash"`
	Message string    `json:"message"`
	Author  string    `json:"author"`
	When    time.Time `json:"when"`
}

type Service struct {
	dir string
	mu  sync.Mutex
}

func New(dir string) *Service {
	return &Service{dir: dir}
}

// EnsureRepo initialises the snapshots repository if it does not exist.
func (s *Service) EnsureRepo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create snapshots dir: %w", err)
	}
	_, err := git.PlainInit(s.dir, false)
	if err != nil && !errors.Is(err, git.ErrRepositoryAlreadyExists) {
		return fmt.Errorf("init snapshots repo: %w", err)
	}
	return nil
}

// CommitCollection writes the collection payload to <collection>.json and
// commits it. A payload identical to the committed state returns the
// current head instead of creating an empty commit.
func (s *Service) CommitCollection(collection string, payload any, author, message string) (CommitInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	repo, err := git.PlainOpen(s.dir)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("open snapshots repo: %w", err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return CommitInfo{}, fmt.Errorf("open worktree: %w", err)
	}

	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return CommitInfo{}, fmt.Errorf("encode %s snapshot: %w", collection, err)
	}
	name := collection + ".json"
	if err := os.WriteFile(filepath.Join(s.dir, name), append(raw, '\n'), 0o644); err != nil {
		return CommitInfo{}, fmt.Errorf("write %s snapshot: %w", collection, err)
	}
	if _, err := worktree.Add(name); err != nil {
		return CommitInfo{}, fmt.Errorf("stage %s snapshot: %w", collection, err)
	}

	status, err := worktree.Status()
	if err != nil {
		return CommitInfo{}, fmt.Errorf("snapshot status: %w", err)
	}
	if status.IsClean() {
		return s.head(repo)
	}

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  author,
			Email: fmt.Sprintf("%s@tendesign.local", sanitizeEmail(author)),
			When:  time.Now(),
		},
	})
	if err != nil {
		return CommitInfo{}, fmt.Errorf("commit %s snapshot: %w", collection, err)
	}
	commitObj, err := repo.CommitObject(hash)
	if err != nil {
		return CommitInfo{}, fmt.Errorf("read commit object: %w", err)
	}
	return toCommitInfo(commitObj), nil
}

// History returns the commits touching the collection's snapshot file,
// newest first, capped at limit when limit > 0.
func (s *Service) History(collection string, limit int) ([]CommitInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	repo, err := git.PlainOpen(s.dir)
	if err != nil {
		return nil, fmt.Errorf("open snapshots repo: %w", err)
	}
	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return []CommitInfo{}, nil
		}
		return nil, fmt.Errorf("resolve head: %w", err)
	}

	name := collection + ".json"
	iter, err := repo.Log(&git.LogOptions{From: head.Hash(), FileName: &name})
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	defer iter.Close()

	items := []CommitInfo{}
	err = iter.ForEach(func(commitObj *object.Commit) error {
		items = append(items, toCommitInfo(commitObj))
		if limit > 0 && len(items) >= limit {
			return io.EOF
		}
		return nil
	})
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("iterate log: %w", err)
	}
	return items, nil
}

func (s *Service) head(repo *git.Repository) (CommitInfo, error) {
	ref, err := repo.Head()
	if err != nil {
		return CommitInfo{}, fmt.Errorf("resolve head: %w", err)
	}
	commitObj, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return CommitInfo{}, fmt.Errorf("read head commit: %w", err)
	}
	return toCommitInfo(commitObj), nil
}

func toCommitInfo(commitObj *object.Commit) CommitInfo {
	return CommitInfo{
		Hash:    commitObj.Hash.String(),
		Message: strings.TrimSpace(commitObj.Message),
		Author:  commitObj.Author.Name,
		When:    commitObj.Author.When,
	}
}

func sanitizeEmail(author string) string {
	cleaned := strings.ToLower(strings.TrimSpace(author))
	cleaned = strings.ReplaceAll(cleaned, " ", ".")
	if cleaned == "" {
		return "admin"
	}
	return cleaned
}
