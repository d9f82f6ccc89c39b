package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tendesign/api/internal/auth"
	"tendesign/api/internal/content"
)

// Upload size cap; project images are web assets, not originals.
const maxUploadBytes = 10 << 20

type HTTPServer struct {
	service    *Service
	corsOrigin string
}

func NewHTTPServer(service *Service, corsOrigin string) *HTTPServer {
	return &HTTPServer{service: service, corsOrigin: corsOrigin}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/health" {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/ready" {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := "ready"
		statusCode := http.StatusOK
		checks := map[string]any{}
		for name, err := range s.service.Readiness(ctx) {
			if err != nil {
				status = "not_ready"
				statusCode = http.StatusServiceUnavailable
				checks[name] = map[string]any{"status": "error", "error": err.Error()}
				continue
			}
			checks[name] = map[string]any{"status": "ok"}
		}
		writeJSON(w, statusCode, map[string]any{
			"ok":     status == "ready",
			"status": status,
			"checks": checks,
		})
		return
	}

	if r.Method == http.MethodPost && r.URL.Path == "/api/auth/login" {
		s.handleLogin(w, r)
		return
	}

	// Public reads — the main site fetches these without credentials.
	if r.Method == http.MethodGet {
		switch r.URL.Path {
		case "/api/services":
			items, err := s.service.ServiceCategories(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Failed to fetch service categories", nil)
				return
			}
			writeJSON(w, http.StatusOK, items)
			return
		case "/api/portfolio":
			items, err := s.service.PortfolioProjects(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Failed to fetch portfolio projects", nil)
				return
			}
			writeJSON(w, http.StatusOK, items)
			return
		case "/api/developer-portfolio":
			items, err := s.service.DeveloperProjects(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Failed to fetch developer portfolio projects", nil)
				return
			}
			writeJSON(w, http.StatusOK, items)
			return
		case "/api/social-links":
			items, err := s.service.SocialLinks(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Failed to fetch social links", nil)
				return
			}
			writeJSON(w, http.StatusOK, items)
			return
		case "/api/services/pricelist.pdf":
			s.handlePriceListPDF(w, r)
			return
		}
	}

	// Only routes a gated handler actually claims reach the auth check;
	// everything else is a 404 regardless of credentials.
	if !gatedRoute(r) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return
	}

	session, ok := s.requireSession(w, r)
	if !ok {
		return
	}

	if r.Method == http.MethodPost {
		switch r.URL.Path {
		case "/api/services":
			var body []content.ServiceCategory
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			persisted, err := s.service.ReplaceServiceCategories(r.Context(), body, session.UserName)
			if err != nil {
				s.writeSaveError(w, err, "Failed to save service categories")
				return
			}
			writeJSON(w, http.StatusOK, persisted)
			return
		case "/api/portfolio":
			var body []content.PortfolioProject
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			persisted, err := s.service.ReplacePortfolioProjects(r.Context(), body, session.UserName)
			if err != nil {
				s.writeSaveError(w, err, "Failed to save portfolio projects")
				return
			}
			writeJSON(w, http.StatusOK, persisted)
			return
		case "/api/developer-portfolio":
			var body []content.DeveloperPortfolioProject
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			persisted, err := s.service.ReplaceDeveloperProjects(r.Context(), body, session.UserName)
			if err != nil {
				s.writeSaveError(w, err, "Failed to save developer portfolio projects")
				return
			}
			writeJSON(w, http.StatusOK, persisted)
			return
		case "/api/social-links":
			var body []content.SocialLink
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			persisted, err := s.service.ReplaceSocialLinks(r.Context(), body, session.UserName)
			if err != nil {
				s.writeSaveError(w, err, "Failed to save social links")
				return
			}
			writeJSON(w, http.StatusOK, persisted)
			return
		case "/api/init":
			var body content.Bundle
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			seeded, err := s.service.Init(r.Context(), body, session.UserName)
			if err != nil {
				s.writeSaveError(w, err, "Failed to initialize database")
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{
				"message": "Database initialized successfully",
				"seeded":  seeded,
			})
			return
		case "/api/uploads":
			s.handleUpload(w, r)
			return
		}
	}

	if r.Method == http.MethodGet && r.URL.Path == "/api/content/history" {
		kind := content.Kind(strings.TrimSpace(r.URL.Query().Get("collection")))
		limit := 20
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "limit must be an integer", nil)
				return
			}
			limit = parsed
		}
		history, err := s.service.ContentHistory(r.Context(), kind, limit)
		if err != nil {
			status, code, message, details := mapError(err)
			writeError(w, status, code, message, details)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"commits": history})
		return
	}

	writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
}

// gatedRoute reports whether the request targets one of the
// authenticated endpoints.
func gatedRoute(r *http.Request) bool {
	if r.Method == http.MethodPost {
		switch r.URL.Path {
		case "/api/services", "/api/portfolio", "/api/developer-portfolio", "/api/social-links",
			"/api/init", "/api/uploads":
			return true
		}
	}
	return r.Method == http.MethodGet && r.URL.Path == "/api/content/history"
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return
	}

	session, err := s.service.Login(r.Context(), strings.TrimSpace(body.Username), body.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials", nil)
			return
		}
		status, code, message, details := mapError(err)
		writeError(w, status, code, message, details)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"token": session.Token,
		"user":  map[string]any{"username": session.UserName},
	})
}

func (s *HTTPServer) handlePriceListPDF(w http.ResponseWriter, r *http.Request) {
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	result, err := s.service.PriceListPDF(r.Context(), lang)
	if err != nil {
		status, code, message, details := mapError(err)
		writeError(w, status, code, message, details)
		return
	}
	w.Header().Set("Content-Type", result.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}

func (s *HTTPServer) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "multipart form required", nil)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "image file field required", nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "only image uploads are accepted", nil)
		return
	}

	url, err := s.service.UploadImage(r.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		status, code, message, details := mapError(err)
		writeError(w, status, code, message, details)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"url": url})
}

// requireSession gates mutating routes. A missing bearer is 401; a token
// that fails verification (bad signature or expired) is 403, per the
// external contract.
func (s *HTTPServer) requireSession(w http.ResponseWriter, r *http.Request) (Session, bool) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return Session{}, false
	}
	session, err := s.service.SessionFromToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) || errors.Is(err, auth.ErrInvalidToken) {
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Forbidden", nil)
			return Session{}, false
		}
		writeError(w, http.StatusInternalServerError, "SERVER_ERROR", "Session lookup failed", nil)
		return Session{}, false
	}
	return session, true
}

func (s *HTTPServer) writeSaveError(w http.ResponseWriter, err error, fallback string) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		writeError(w, domainErr.Status, domainErr.Code, domainErr.Message, domainErr.Details)
		return
	}
	writeError(w, http.StatusInternalServerError, "SERVER_ERROR", fallback, nil)
}

type requestIDKey struct{}

func (s *HTTPServer) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = randomRequestID()
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		started := time.Now()
		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		setCORSHeaders(writer.Header(), s.corsOrigin)
		writer.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(writer, r)

		log.Printf(`{"request_id":"%s","method":"%s","path":"%s","status":%d,"duration_ms":%d}`,
			requestID,
			r.Method,
			r.URL.Path,
			writer.status,
			time.Since(started).Milliseconds(),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func setCORSHeaders(header http.Header, corsOrigin string) {
	header.Set("Access-Control-Allow-Origin", corsOrigin)
	header.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
	header.Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
	header.Set("Cache-Control", "no-store")
	header.Set("Content-Type", "application/json")
}

func randomRequestID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	response := map[string]any{
		"code":  code,
		"error": message,
	}
	if details != nil {
		response["details"] = details
	}
	writeJSON(w, status, response)
}

func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func mapError(err error) (status int, code, message string, details any) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Status, domainErr.Code, domainErr.Message, domainErr.Details
	}
	if errors.Is(err, auth.ErrInvalidToken) || errors.Is(err, auth.ErrExpiredToken) {
		return http.StatusForbidden, "FORBIDDEN", "Forbidden", nil
	}
	return http.StatusInternalServerError, "SERVER_ERROR", "Server error", nil
}
