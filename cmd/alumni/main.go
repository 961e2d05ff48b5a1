// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"alumni-go/internal/auth"
	"alumni-go/internal/cache"
	"alumni-go/internal/config"
	"alumni-go/internal/content"
	"alumni-go/internal/handler/api"
	"alumni-go/internal/logging"
	"alumni-go/internal/middleware"
	"alumni-go/internal/model"
	"alumni-go/internal/scheduler"
	"alumni-go/internal/service"
	"alumni-go/internal/session"
	"alumni-go/internal/store"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "alumni - Alumni association backend\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ALUMNI_TOKEN_SECRET    API token signing key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ALUMNI_SESSION_LIFETIME Browser session lifetime in hours (default: 24)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ALUMNI_DB_PATH         SQLite database path (default: ./data/alumni.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ALUMNI_SERVER_PORT     Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ALUMNI_ENV             Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ALUMNI_UPLOADS_DIR     Uploaded media directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ALUMNI_CONTENT_DIR     Content blob directory (default: ./content)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ALUMNI_REDIS_URL       Redis URL for distributed caching (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  ALUMNI_DO_SEED         Seed bootstrap data on startup (default: false)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if *showVersion {
		_, _ = fmt.Printf("alumni %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	for _, dir := range []string{filepath.Dir(cfg.DBPath), cfg.UploadsDir, cfg.ContentDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}()

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logging: warnings and errors also land in the events table.
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(logging.NewEventLogHandler(textHandler, db))
	slog.SetDefault(logger)
	slog.Info("event log integration enabled", "min_level", "warn")

	if cfg.DoSeed {
		if err := store.Seed(context.Background(), db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	sessionManager := session.New(db, session.Options{
		Lifetime:      time.Duration(cfg.SessionLifetime) * time.Hour,
		SecureCookies: !cfg.IsDevelopment(),
	})
	slog.Info("session manager initialized", "lifetime_hours", cfg.SessionLifetime)

	if cfg.UseRedisCache() {
		slog.Info("using redis cache", "prefix", cfg.CachePrefix)
	} else {
		slog.Info("using in-memory cache", "max_size", cfg.CacheMaxSize)
	}
	cacheBackend := cache.New(cache.Config{
		RedisURL:   cfg.RedisURL,
		Prefix:     cfg.CachePrefix,
		DefaultTTL: time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:    cfg.CacheMaxSize,
	})
	defer func() {
		if err := cacheBackend.Close(); err != nil {
			slog.Warn("error closing cache", "error", err)
		}
	}()

	contentStore, err := content.NewStore(cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("initializing content store: %w", err)
	}

	mediaService := service.NewMediaService(cfg.UploadsDir)
	tokenIssuer := auth.NewTokenIssuer(cfg.TokenSecret)

	sched := scheduler.New(db, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("starting scheduler: %w", err)
	}
	defer sched.Stop()

	loginLimiter := middleware.NewLoginRateLimiter(0.5, 5)
	defer loginLimiter.Stop()

	apiHandler := api.NewHandler(db, cacheBackend, contentStore, mediaService, tokenIssuer, sessionManager)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(sessionManager.LoadAndSave)

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Get("/health", apiHandler.Health)
		r.Get("/test-db", apiHandler.TestDB)
		r.Get("/news/highlighted", apiHandler.HighlightedPosts)
		r.Get("/news/featured", apiHandler.FeaturedPosts)
		r.Post("/products/{id}/click", apiHandler.ProductClick)
		r.Get("/reuni-2026", apiHandler.ReunionContent)

		r.With(loginLimiter.Middleware).Post("/auth/login", apiHandler.Login)

		// Staff routes (PUSAT or SYUBIYAH)
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(db, tokenIssuer, sessionManager))
			r.Use(middleware.RequireRole(model.RoleSyubiyah))
			r.Patch("/alumni/{id}/verify", apiHandler.VerifyAlumni)
		})

		// PUSAT-only routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.BearerAuth(db, tokenIssuer, sessionManager))
			r.Use(middleware.RequireRole(model.RolePusat))
			r.Post("/reuni-2026", apiHandler.UpdateReunionContent)
			r.Post("/upload/favicon", apiHandler.UploadFavicon)
			r.Post("/upload/herohome", apiHandler.UploadHeroImages)
		})
	})

	// Serve uploaded media
	uploadsHandler := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadsDir)))
	r.Handle("/uploads/*", uploadsHandler)

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
