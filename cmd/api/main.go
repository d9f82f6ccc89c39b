package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"tendesign/api/internal/app"
	"tendesign/api/internal/config"
	"tendesign/api/internal/ratelimit"
	"tendesign/api/internal/snapshot"
	"tendesign/api/internal/store"
	"tendesign/api/internal/uploads"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := store.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Fatalf("migrations failed: %v", err)
	}

	dataStore := store.NewPostgresStore(db)

	snapshots := snapshot.New(cfg.SnapshotsDir)
	if err := snapshots.EnsureRepo(); err != nil {
		log.Fatalf("snapshots repository init failed: %v", err)
	}

	var limiter *ratelimit.RedisLimiter
	if strings.TrimSpace(cfg.RedisURL) != "" {
		limiter, err = ratelimit.NewRedisLimiter(cfg.RedisURL, cfg.LoginMaxAttempts, cfg.LoginWindow)
		if err != nil {
			log.Fatalf("redis connection failed: %v", err)
		}
		defer limiter.Close()
		log.Printf("Login throttling enabled via Redis")
	} else {
		log.Printf("REDIS_URL not set, login throttling disabled")
	}

	var images *uploads.Service
	if strings.TrimSpace(cfg.MinioEndpoint) != "" {
		images, err = uploads.New(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioPublicURL, cfg.MinioUseSSL)
		if err != nil {
			log.Fatalf("object storage init failed: %v", err)
		}
		if err := images.EnsureBucket(ctx); err != nil {
			log.Fatalf("object storage bucket init failed: %v", err)
		}
		log.Printf("Image uploads enabled via MinIO bucket %s", cfg.MinioBucket)
	} else {
		log.Printf("MINIO_ENDPOINT not set, image uploads disabled")
	}

	service, err := newService(cfg, dataStore, snapshots, limiter, images)
	if err != nil {
		log.Fatalf("service init failed: %v", err)
	}

	httpServer := app.NewHTTPServer(service, cfg.CORSOrigin)
	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpServer.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Tendesign API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

// newService keeps the nil-interface wiring in one place: a typed nil
// *RedisLimiter must not reach the service as a non-nil interface.
func newService(cfg config.Config, dataStore *store.PostgresStore, snapshots *snapshot.Service, limiter *ratelimit.RedisLimiter, images *uploads.Service) (*app.Service, error) {
	switch {
	case limiter != nil && images != nil:
		return app.New(cfg, dataStore, snapshots, limiter, images)
	case limiter != nil:
		return app.New(cfg, dataStore, snapshots, limiter, nil)
	case images != nil:
		return app.New(cfg, dataStore, snapshots, nil, images)
	default:
		return app.New(cfg, dataStore, snapshots, nil, nil)
	}
}
