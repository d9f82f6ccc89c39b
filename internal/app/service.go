package app

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tendesign/api/internal/auth"
	"tendesign/api/internal/config"
	"tendesign/api/internal/content"
	"tendesign/api/internal/export"
	"tendesign/api/internal/snapshot"
	"tendesign/api/internal/util"
)

// Session is the identity attached to an authenticated request.
type Session struct {
	Token     string
	UserName  string
	JTI       string
	ExpiresAt time.Time
}

// ErrInvalidCredentials is returned for any login mismatch. It carries no
// detail about which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

type dataStore interface {
	ListServiceCategories(context.Context) ([]content.ServiceCategory, error)
	ListPortfolioProjects(context.Context) ([]content.PortfolioProject, error)
	ListDeveloperProjects(context.Context) ([]content.DeveloperPortfolioProject, error)
	ListSocialLinks(context.Context) ([]content.SocialLink, error)
	ReplaceServiceCategories(context.Context, []content.ServiceCategory) ([]content.ServiceCategory, error)
	ReplacePortfolioProjects(context.Context, []content.PortfolioProject) ([]content.PortfolioProject, error)
	ReplaceDeveloperProjects(context.Context, []content.DeveloperPortfolioProject) ([]content.DeveloperPortfolioProject, error)
	ReplaceSocialLinks(context.Context, []content.SocialLink) ([]content.SocialLink, error)
	SeedEmptyCollections(context.Context, content.Bundle) ([]content.Kind, error)
	Ping(context.Context) error
}

type snapshotStore interface {
	CommitCollection(collection string, payload any, author, message string) (snapshot.CommitInfo, error)
	History(collection string, limit int) ([]snapshot.CommitInfo, error)
}

type loginLimiter interface {
	TooManyFailures(ctx context.Context, identifier string) (bool, error)
	RecordFailure(ctx context.Context, identifier string) error
	Reset(ctx context.Context, identifier string) error
	Ping(ctx context.Context) error
}

type imageStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error)
}

type Service struct {
	cfg          config.Config
	store        dataStore
	snapshots    snapshotStore
	limiter      loginLimiter
	images       imageStore
	passwordHash []byte
}

// New wires the service. snapshots, limiter, and images may be nil; the
// matching features degrade to disabled.
func New(cfg config.Config, store dataStore, snapshots snapshotStore, limiter loginLimiter, images imageStore) (*Service, error) {
	hash := []byte(cfg.AdminPasswordHash)
	if len(hash) == 0 {
		if cfg.AdminPassword == "" {
			return nil, errors.New("no admin credential configured")
		}
		generated, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		hash = generated
	}
	return &Service{
		cfg:          cfg,
		store:        store,
		snapshots:    snapshots,
		limiter:      limiter,
		images:       images,
		passwordHash: hash,
	}, nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Readiness pings every configured backing store and returns the result
// per check name.
func (s *Service) Readiness(ctx context.Context) map[string]error {
	checks := map[string]error{"database": s.store.Ping(ctx)}
	if s.limiter != nil {
		checks["redis"] = s.limiter.Ping(ctx)
	}
	return checks
}

// Login validates the single recognized credential pair and issues a
// bearer token that expires after the configured TTL (24h by default).
// Unknown identifier and wrong secret fail identically.
func (s *Service) Login(ctx context.Context, username, password string) (Session, error) {
	if s.limiter != nil {
		throttled, err := s.limiter.TooManyFailures(ctx, username)
		if err != nil {
			log.Printf("login limiter check failed: %v", err)
		} else if throttled {
			return Session{}, domainError(http.StatusTooManyRequests, "TOO_MANY_ATTEMPTS", "Too many failed login attempts", nil)
		}
	}

	userMatch := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUser)) == 1
	passMatch := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) == nil
	if !userMatch || !passMatch {
		if s.limiter != nil {
			if err := s.limiter.RecordFailure(ctx, username); err != nil {
				log.Printf("login limiter record failed: %v", err)
			}
		}
		return Session{}, ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			log.Printf("login limiter reset failed: %v", err)
		}
	}

	expiresAt := time.Now().Add(s.cfg.TokenTTL)
	jti := util.NewID("jti")
	token, err := auth.IssueToken([]byte(s.cfg.TokenSecret), auth.Claims{
		Sub: s.cfg.AdminUser,
		JTI: jti,
		Exp: expiresAt.Unix(),
	})
	if err != nil {
		return Session{}, fmt.Errorf("issue token: %w", err)
	}

	return Session{
		Token:     token,
		UserName:  s.cfg.AdminUser,
		JTI:       jti,
		ExpiresAt: expiresAt,
	}, nil
}

// SessionFromToken verifies a bearer token. Signature and expiry failures
// surface as auth.ErrInvalidToken / auth.ErrExpiredToken.
func (s *Service) SessionFromToken(_ context.Context, token string) (Session, error) {
	claims, err := auth.ParseToken([]byte(s.cfg.TokenSecret), token)
	if err != nil {
		return Session{}, err
	}
	return Session{
		Token:     token,
		UserName:  claims.Sub,
		JTI:       claims.JTI,
		ExpiresAt: time.Unix(claims.Exp, 0),
	}, nil
}

func (s *Service) ServiceCategories(ctx context.Context) ([]content.ServiceCategory, error) {
	return s.store.ListServiceCategories(ctx)
}

func (s *Service) PortfolioProjects(ctx context.Context) ([]content.PortfolioProject, error) {
	return s.store.ListPortfolioProjects(ctx)
}

func (s *Service) DeveloperProjects(ctx context.Context) ([]content.DeveloperPortfolioProject, error) {
	return s.store.ListDeveloperProjects(ctx)
}

func (s *Service) SocialLinks(ctx context.Context) ([]content.SocialLink, error) {
	return s.store.ListSocialLinks(ctx)
}

// ReplaceServiceCategories swaps the stored collection for the submitted
// one and returns the persisted set.
func (s *Service) ReplaceServiceCategories(ctx context.Context, items []content.ServiceCategory, actor string) ([]content.ServiceCategory, error) {
	if err := validateServiceCategories(items); err != nil {
		return nil, err
	}
	persisted, err := s.store.ReplaceServiceCategories(ctx, items)
	if err != nil {
		return nil, err
	}
	s.commitSnapshot(content.KindServices, persisted, actor)
	return persisted, nil
}

func (s *Service) ReplacePortfolioProjects(ctx context.Context, items []content.PortfolioProject, actor string) ([]content.PortfolioProject, error) {
	if err := validatePortfolioProjects(items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Tools = content.NormalizeTokens(items[i].Tools)
		items[i].Categories = content.NormalizeTokens(items[i].Categories)
	}
	persisted, err := s.store.ReplacePortfolioProjects(ctx, items)
	if err != nil {
		return nil, err
	}
	s.commitSnapshot(content.KindPortfolio, persisted, actor)
	return persisted, nil
}

func (s *Service) ReplaceDeveloperProjects(ctx context.Context, items []content.DeveloperPortfolioProject, actor string) ([]content.DeveloperPortfolioProject, error) {
	if err := validateDeveloperProjects(items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].TechStack = content.NormalizeTokens(items[i].TechStack)
	}
	persisted, err := s.store.ReplaceDeveloperProjects(ctx, items)
	if err != nil {
		return nil, err
	}
	s.commitSnapshot(content.KindDeveloperPortfolio, persisted, actor)
	return persisted, nil
}

func (s *Service) ReplaceSocialLinks(ctx context.Context, items []content.SocialLink, actor string) ([]content.SocialLink, error) {
	if err := validateSocialLinks(items); err != nil {
		return nil, err
	}
	persisted, err := s.store.ReplaceSocialLinks(ctx, items)
	if err != nil {
		return nil, err
	}
	s.commitSnapshot(content.KindSocialLinks, persisted, actor)
	return persisted, nil
}

// Init populates only the collections that are currently empty.
func (s *Service) Init(ctx context.Context, bundle content.Bundle, actor string) ([]content.Kind, error) {
	seeded, err := s.store.SeedEmptyCollections(ctx, bundle)
	if err != nil {
		return nil, err
	}
	for _, kind := range seeded {
		switch kind {
		case content.KindServices:
			s.commitSnapshot(kind, bundle.ServiceCategories, actor)
		case content.KindPortfolio:
			s.commitSnapshot(kind, bundle.PortfolioProjects, actor)
		case content.KindDeveloperPortfolio:
			s.commitSnapshot(kind, bundle.DeveloperPortfolioProjects, actor)
		case content.KindSocialLinks:
			s.commitSnapshot(kind, bundle.SocialLinks, actor)
		}
	}
	return seeded, nil
}

// ContentHistory lists snapshot commits for one collection.
func (s *Service) ContentHistory(_ context.Context, kind content.Kind, limit int) ([]snapshot.CommitInfo, error) {
	if s.snapshots == nil {
		return nil, domainError(http.StatusServiceUnavailable, "SNAPSHOTS_UNAVAILABLE", "Content history not configured", nil)
	}
	if !kind.Valid() {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "unknown collection", nil)
	}
	return s.snapshots.History(string(kind), limit)
}

// UploadImage stores an image and returns its public URL.
func (s *Service) UploadImage(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	if s.images == nil {
		return "", domainError(http.StatusServiceUnavailable, "UPLOADS_UNAVAILABLE", "Image uploads not configured", nil)
	}
	return s.images.Upload(ctx, filename, contentType, r, size)
}

// PriceListPDF renders the stored price list for one language.
func (s *Service) PriceListPDF(ctx context.Context, lang string) (*export.Result, error) {
	categories, err := s.store.ListServiceCategories(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		categories = content.DefaultServiceCategories()
	}
	result, err := export.PriceListPDF(categories, lang)
	if errors.Is(err, export.ErrPDFDependencyMissing) {
		return nil, domainError(http.StatusServiceUnavailable, "PDF_UNAVAILABLE", "PDF rendering not available", nil)
	}
	return result, err
}

// Snapshot commits are best-effort: a failed commit never fails the save.
func (s *Service) commitSnapshot(kind content.Kind, payload any, actor string) {
	if s.snapshots == nil {
		return
	}
	message := fmt.Sprintf("replace %s", kind)
	if _, err := s.snapshots.CommitCollection(string(kind), payload, actor, message); err != nil {
		log.Printf("snapshot commit for %s failed: %v", kind, err)
	}
}

func validateServiceCategories(items []content.ServiceCategory) error {
	for i, category := range items {
		if !category.Category.Complete() {
			return validationError(fmt.Sprintf("category %d: both en and km labels are required", i))
		}
		for j, item := range category.Items {
			if !item.Name.Complete() {
				return validationError(fmt.Sprintf("category %d item %d: both en and km names are required", i, j))
			}
			if item.Description != nil && partial(*item.Description) {
				return validationError(fmt.Sprintf("category %d item %d: description must carry both languages", i, j))
			}
			if item.Price == "" {
				return validationError(fmt.Sprintf("category %d item %d: price is required", i, j))
			}
		}
	}
	return nil
}

func validatePortfolioProjects(items []content.PortfolioProject) error {
	seen := map[int]bool{}
	for i, project := range items {
		if seen[project.ID] {
			return validationError(fmt.Sprintf("project %d: duplicate id %d", i, project.ID))
		}
		seen[project.ID] = true
		if !project.Title.Complete() {
			return validationError(fmt.Sprintf("project %d: both en and km titles are required", i))
		}
		if !project.Description.Complete() {
			return validationError(fmt.Sprintf("project %d: both en and km descriptions are required", i))
		}
		if project.ImageURL == "" {
			return validationError(fmt.Sprintf("project %d: imageUrl is required", i))
		}
	}
	return nil
}

func validateDeveloperProjects(items []content.DeveloperPortfolioProject) error {
	seen := map[int]bool{}
	for i, project := range items {
		if seen[project.ID] {
			return validationError(fmt.Sprintf("project %d: duplicate id %d", i, project.ID))
		}
		seen[project.ID] = true
		if !project.Title.Complete() {
			return validationError(fmt.Sprintf("project %d: both en and km titles are required", i))
		}
		if !project.Description.Complete() {
			return validationError(fmt.Sprintf("project %d: both en and km descriptions are required", i))
		}
		if project.ImageURL == "" {
			return validationError(fmt.Sprintf("project %d: imageUrl is required", i))
		}
		if project.LiveURL == "" || project.SourceURL == "" {
			return validationError(fmt.Sprintf("project %d: liveUrl and sourceUrl are required", i))
		}
	}
	return nil
}

func validateSocialLinks(items []content.SocialLink) error {
	for i, link := range items {
		if link.Platform == "" || link.URL == "" || link.Icon == "" {
			return validationError(fmt.Sprintf("link %d: platform, url, and icon are required", i))
		}
	}
	return nil
}

func validationError(message string) *DomainError {
	return domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", message, nil)
}

func partial(b content.Bilingual) bool {
	return (b.EN == "") != (b.KM == "")
}
