// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides the JSON API handlers for the alumni backend.
package api

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"

	"alumni-go/internal/auth"
	"alumni-go/internal/cache"
	"alumni-go/internal/content"
	"alumni-go/internal/service"
	"alumni-go/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	db       *sql.DB
	queries  *store.Queries
	cache    cache.Cache
	content  *content.Store
	media    *service.MediaService
	events   *service.EventService
	issuer   *auth.TokenIssuer
	sessions *scs.SessionManager
}

// NewHandler creates a new API handler. The database connection is injected
// so handlers and tests share a single pool instead of reaching for a
// package-level client.
func NewHandler(db *sql.DB, c cache.Cache, cs *content.Store, media *service.MediaService, issuer *auth.TokenIssuer, sm *scs.SessionManager) *Handler {
	return &Handler{
		db:       db,
		queries:  store.New(db),
		cache:    c,
		content:  cs,
		media:    media,
		events:   service.NewEventService(db),
		issuer:   issuer,
		sessions: sm,
	}
}

// Response is the standard API response wrapper.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a 200 response with the standard envelope.
func WriteSuccess(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// WriteError writes an error response with the standard envelope.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, Response{Success: false, Message: message})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// WriteUnauthorized writes a 401 Unauthorized response.
func WriteUnauthorized(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusUnauthorized, message)
}

// WriteInternalError writes a 500 response with a generic message so
// internal detail never leaks to the caller.
func WriteInternalError(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "Terjadi kesalahan pada server")
}
