// Package client is the Go API client used by the editing tools and the
// seeding command. It mirrors the server's JSON contract and falls back
// to the compiled-in defaults when the server cannot be reached.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"tendesign/api/internal/content"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx response decoded from the server's error shape.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.Status, e.Code, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *SessionFile
}

// New builds a client for baseURL. sessionPath may be empty, in which
// case the bearer token lives only in memory.
func New(baseURL, sessionPath string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    NewSessionFile(sessionPath),
	}
}

// Restore loads a previously persisted session token. A missing session
// file is not an error; the client just starts unauthenticated.
func (c *Client) Restore() error {
	return c.session.Load()
}

// Login authenticates and persists the issued token.
func (c *Client) Login(ctx context.Context, username, password string) error {
	payload := map[string]string{"username": username, "password": password}
	var response struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", payload, &response, false); err != nil {
		return err
	}
	if response.Token == "" {
		return fmt.Errorf("login response carried no token")
	}
	return c.session.Store(response.Token, response.User.Username)
}

// Logout clears the in-memory token and removes the session file.
func (c *Client) Logout() error {
	return c.session.Clear()
}

// Authenticated reports whether a bearer token is loaded.
func (c *Client) Authenticated() bool {
	return c.session.Token() != ""
}

func (c *Client) FetchServiceCategories(ctx context.Context) ([]content.ServiceCategory, error) {
	var out []content.ServiceCategory
	err := c.do(ctx, http.MethodGet, "/api/services", nil, &out, false)
	return out, err
}

func (c *Client) FetchPortfolioProjects(ctx context.Context) ([]content.PortfolioProject, error) {
	var out []content.PortfolioProject
	err := c.do(ctx, http.MethodGet, "/api/portfolio", nil, &out, false)
	return out, err
}

func (c *Client) FetchDeveloperProjects(ctx context.Context) ([]content.DeveloperPortfolioProject, error) {
	var out []content.DeveloperPortfolioProject
	err := c.do(ctx, http.MethodGet, "/api/developer-portfolio", nil, &out, false)
	return out, err
}

func (c *Client) FetchSocialLinks(ctx context.Context) ([]content.SocialLink, error) {
	var out []content.SocialLink
	err := c.do(ctx, http.MethodGet, "/api/social-links", nil, &out, false)
	return out, err
}

// Replace* submit a full replacement for one collection and return the
// set as the server persisted it. Transient failures get one retry;
// client-side mistakes (4xx) do not.

func (c *Client) ReplaceServiceCategories(ctx context.Context, items []content.ServiceCategory) ([]content.ServiceCategory, error) {
	var out []content.ServiceCategory
	err := c.doWithRetry(ctx, http.MethodPost, "/api/services", items, &out)
	return out, err
}

func (c *Client) ReplacePortfolioProjects(ctx context.Context, items []content.PortfolioProject) ([]content.PortfolioProject, error) {
	var out []content.PortfolioProject
	err := c.doWithRetry(ctx, http.MethodPost, "/api/portfolio", items, &out)
	return out, err
}

func (c *Client) ReplaceDeveloperProjects(ctx context.Context, items []content.DeveloperPortfolioProject) ([]content.DeveloperPortfolioProject, error) {
	var out []content.DeveloperPortfolioProject
	err := c.doWithRetry(ctx, http.MethodPost, "/api/developer-portfolio", items, &out)
	return out, err
}

func (c *Client) ReplaceSocialLinks(ctx context.Context, items []content.SocialLink) ([]content.SocialLink, error) {
	var out []content.SocialLink
	err := c.doWithRetry(ctx, http.MethodPost, "/api/social-links", items, &out)
	return out, err
}

// Init asks the server to seed any empty collections from bundle and
// returns the names of the collections that were seeded.
func (c *Client) Init(ctx context.Context, bundle content.Bundle) ([]content.Kind, error) {
	var response struct {
		Message string         `json:"message"`
		Seeded  []content.Kind `json:"seeded"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/init", bundle, &response, true); err != nil {
		return nil, err
	}
	return response.Seeded, nil
}

// LoadAll fetches all four collections in parallel. A collection whose
// fetch fails is substituted with the compiled-in default, so the result
// is always usable; FellBack names the substituted collections.
type LoadResult struct {
	Bundle   content.Bundle
	FellBack []content.Kind
}

func (c *Client) LoadAll(ctx context.Context) LoadResult {
	var result LoadResult
	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		errs = make(map[content.Kind]error, 4)
	)

	run := func(kind content.Kind, fetch func() error) {
		defer wg.Done()
		if err := fetch(); err != nil {
			mu.Lock()
			errs[kind] = err
			mu.Unlock()
		}
	}

	wg.Add(4)
	go run(content.KindServices, func() error {
		items, err := c.FetchServiceCategories(ctx)
		result.Bundle.ServiceCategories = items
		return err
	})
	go run(content.KindPortfolio, func() error {
		items, err := c.FetchPortfolioProjects(ctx)
		result.Bundle.PortfolioProjects = items
		return err
	})
	go run(content.KindDeveloperPortfolio, func() error {
		items, err := c.FetchDeveloperProjects(ctx)
		result.Bundle.DeveloperPortfolioProjects = items
		return err
	})
	go run(content.KindSocialLinks, func() error {
		items, err := c.FetchSocialLinks(ctx)
		result.Bundle.SocialLinks = items
		return err
	})
	wg.Wait()

	defaults := content.DefaultBundle()
	for _, kind := range content.Kinds {
		if errs[kind] == nil {
			continue
		}
		switch kind {
		case content.KindServices:
			result.Bundle.ServiceCategories = defaults.ServiceCategories
		case content.KindPortfolio:
			result.Bundle.PortfolioProjects = defaults.PortfolioProjects
		case content.KindDeveloperPortfolio:
			result.Bundle.DeveloperPortfolioProjects = defaults.DeveloperPortfolioProjects
		case content.KindSocialLinks:
			result.Bundle.SocialLinks = defaults.SocialLinks
		}
		result.FellBack = append(result.FellBack, kind)
	}
	return result
}

func (c *Client) doWithRetry(ctx context.Context, method, path string, body, target any) error {
	err := c.do(ctx, method, path, body, target, true)
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		return err
	}
	if ctx.Err() != nil {
		return err
	}
	return c.do(ctx, method, path, body, target, true)
}

func (c *Client) do(ctx context.Context, method, path string, body, target any, authed bool) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authed {
		token := c.session.Token()
		if token == "" {
			return fmt.Errorf("not logged in")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload struct {
			Code  string `json:"code"`
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr == nil {
			apiErr.Code = payload.Code
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if target == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
