// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package middleware provides HTTP middleware for authentication,
// authorization, and request throttling.
package middleware

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"alumni-go/internal/auth"
	"alumni-go/internal/store"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// ContextKeyUser is the context key for the authenticated user.
const ContextKeyUser ContextKey = "user"

// SessionKeyUserID is the session key holding the logged-in user's ID.
const SessionKeyUserID = "user_id"

// APIError represents a JSON error response for the API.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteAPIError writes a JSON error response.
func WriteAPIError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIError{Success: false, Message: message})
}

// BearerAuth creates middleware that requires authentication. API clients
// send a bearer token; browser clients that logged in through the session
// endpoint are recognized by their session cookie when no Authorization
// header is present (sm may be nil to disable the session fallback). The
// authenticated user is loaded from the users table and placed in the
// request context.
func BearerAuth(db *sql.DB, issuer *auth.TokenIssuer, sm *scs.SessionManager) func(http.Handler) http.Handler {
	queries := store.New(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")

			var userID int64
			switch {
			case authHeader != "":
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
					WriteAPIError(w, http.StatusUnauthorized, "Format Authorization tidak valid. Gunakan: Bearer <token>")
					return
				}

				claims, err := issuer.Parse(parts[1])
				if err != nil {
					WriteAPIError(w, http.StatusUnauthorized, "Token tidak valid atau sudah kedaluwarsa")
					return
				}
				userID = claims.UserID

			case sm != nil:
				userID = sm.GetInt64(r.Context(), SessionKeyUserID)
				if userID == 0 {
					WriteAPIError(w, http.StatusUnauthorized, "Header Authorization tidak ditemukan")
					return
				}

			default:
				WriteAPIError(w, http.StatusUnauthorized, "Header Authorization tidak ditemukan")
				return
			}

			user, err := queries.GetUserByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					WriteAPIError(w, http.StatusUnauthorized, "Token tidak valid atau sudah kedaluwarsa")
					return
				}
				slog.Error("failed to load authenticated user", "userId", userID, "error", err)
				WriteAPIError(w, http.StatusInternalServerError, "Terjadi kesalahan pada server")
				return
			}

			if !user.IsVerified {
				WriteAPIError(w, http.StatusForbidden, "Akun belum terverifikasi")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole creates middleware that restricts a route to the given role.
// PUSAT accounts pass every role check; SYUBIYAH accounts only pass
// SYUBIYAH checks. Must run after BearerAuth.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUser(r)
			if user == nil {
				WriteAPIError(w, http.StatusUnauthorized, "Token tidak valid atau sudah kedaluwarsa")
				return
			}

			if !roleSatisfies(user, role) {
				WriteAPIError(w, http.StatusForbidden, "Anda tidak memiliki akses untuk operasi ini")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// roleSatisfies reports whether the user's role satisfies the required role.
func roleSatisfies(u *store.User, required string) bool {
	return u.IsPusat() || u.Role == required
}

// GetUser retrieves the authenticated user from the request context.
// Returns nil if no user is in context.
func GetUser(r *http.Request) *store.User {
	user, ok := r.Context().Value(ContextKeyUser).(store.User)
	if !ok {
		return nil
	}
	return &user
}

// GetUserIDPtr returns a pointer to the authenticated user's ID, or nil.
// Useful for optional user ID parameters in event logging.
func GetUserIDPtr(r *http.Request) *int64 {
	if user := GetUser(r); user != nil {
		id := user.ID
		return &id
	}
	return nil
}
