// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"alumni-go/internal/auth"
	"alumni-go/internal/model"
	"alumni-go/internal/store"
)

const testSecret = "middleware-test-secret-0123456789abcdef"

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := store.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *sql.DB, role string, verified bool) store.User {
	t.Helper()

	now := time.Now()
	user, err := store.New(db).CreateUser(context.Background(), store.CreateUserParams{
		Email:        role + "-" + now.Format("150405.000000000") + "@example.com",
		PasswordHash: "x",
		Name:         "Test " + role,
		Role:         role,
		IsVerified:   verified,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("creating test user: %v", err)
	}
	return user
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestBearerAuth(t *testing.T) {
	db := newTestDB(t)
	issuer := auth.NewTokenIssuer(testSecret)
	user := createUser(t, db, model.RolePusat, true)

	token, err := issuer.Sign(user.ID, user.Role)
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	var gotUser *store.User
	handler := BearerAuth(db, issuer, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = GetUser(r)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotUser == nil || gotUser.ID != user.ID {
		t.Errorf("context user = %+v, want ID %d", gotUser, user.ID)
	}
}

func TestBearerAuth_Rejections(t *testing.T) {
	db := newTestDB(t)
	issuer := auth.NewTokenIssuer(testSecret)
	otherIssuer := auth.NewTokenIssuer("another-secret-0123456789abcdefghij")

	verified := createUser(t, db, model.RoleSyubiyah, true)
	unverified := createUser(t, db, model.RoleSyubiyah, false)

	goodToken, _ := issuer.Sign(verified.ID, verified.Role)
	wrongKeyToken, _ := otherIssuer.Sign(verified.ID, verified.Role)
	ghostToken, _ := issuer.Sign(99999, model.RolePusat)
	unverifiedToken, _ := issuer.Sign(unverified.ID, unverified.Role)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc123", http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"wrong key", "Bearer " + wrongKeyToken, http.StatusUnauthorized},
		{"unknown user", "Bearer " + ghostToken, http.StatusUnauthorized},
		{"unverified account", "Bearer " + unverifiedToken, http.StatusForbidden},
		{"valid", "Bearer " + goodToken, http.StatusOK},
	}

	handler := BearerAuth(db, issuer, nil)(okHandler())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		userRole string
		required string
		want     int
	}{
		{"pusat passes pusat check", model.RolePusat, model.RolePusat, http.StatusOK},
		{"pusat passes syubiyah check", model.RolePusat, model.RoleSyubiyah, http.StatusOK},
		{"syubiyah passes syubiyah check", model.RoleSyubiyah, model.RoleSyubiyah, http.StatusOK},
		{"syubiyah fails pusat check", model.RoleSyubiyah, model.RolePusat, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireRole(tt.required)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			ctx := context.WithValue(req.Context(), ContextKeyUser, store.User{ID: 1, Role: tt.userRole})
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req.WithContext(ctx))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequireRole_NoUser(t *testing.T) {
	handler := RequireRole(model.RolePusat)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
