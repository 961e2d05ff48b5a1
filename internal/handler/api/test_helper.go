// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"alumni-go/internal/auth"
	"alumni-go/internal/cache"
	"alumni-go/internal/content"
	"alumni-go/internal/service"
	"alumni-go/internal/store"
)

const testTokenSecret = "api-test-token-secret-0123456789abcdef"

// testEnv bundles the handler under test with its backing resources.
type testEnv struct {
	handler *Handler
	db      *sql.DB
	queries *store.Queries
	uploads string
	content *content.Store
	issuer  *auth.TokenIssuer
}

// newTestEnv builds a handler backed by a migrated temp database, an
// in-memory cache, and temp directories for uploads and content.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}

	memCache := cache.NewMemoryCache(cache.MemoryCacheOptions{DefaultTTL: time.Minute})
	t.Cleanup(func() { memCache.Close() })

	contentStore, err := content.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating content store: %v", err)
	}

	uploads := t.TempDir()
	issuer := auth.NewTokenIssuer(testTokenSecret)

	return &testEnv{
		handler: NewHandler(db, memCache, contentStore, service.NewMediaService(uploads), issuer, nil),
		db:      db,
		queries: store.New(db),
		uploads: uploads,
		content: contentStore,
		issuer:  issuer,
	}
}

// router mounts the API routes without the auth middleware; authorization
// is covered by the middleware package tests.
func (e *testEnv) router() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/health", e.handler.Health)
	r.Get("/api/test-db", e.handler.TestDB)
	r.Get("/api/news/highlighted", e.handler.HighlightedPosts)
	r.Get("/api/news/featured", e.handler.FeaturedPosts)
	r.Post("/api/products/{id}/click", e.handler.ProductClick)
	r.Get("/api/reuni-2026", e.handler.ReunionContent)
	r.Post("/api/reuni-2026", e.handler.UpdateReunionContent)
	r.Post("/api/auth/login", e.handler.Login)
	r.Patch("/api/alumni/{id}/verify", e.handler.VerifyAlumni)
	r.Post("/api/upload/favicon", e.handler.UploadFavicon)
	r.Post("/api/upload/herohome", e.handler.UploadHeroImages)
	return r
}

// doJSON performs a request with an optional JSON body and returns the
// recorder.
func (e *testEnv) doJSON(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router().ServeHTTP(rec, req)
	return rec
}

// decodeResponse unmarshals the standard envelope.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return resp
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// createStaff inserts a staff account directly through the store.
func (e *testEnv) createStaff(t *testing.T, email, password, role string, verified bool) store.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}

	now := time.Now()
	user, err := e.queries.CreateUser(context.Background(), store.CreateUserParams{
		Email:        email,
		PasswordHash: hash,
		Name:         "Staf Uji",
		Role:         role,
		IsVerified:   verified,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("creating staff account: %v", err)
	}
	return user
}
