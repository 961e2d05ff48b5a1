// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"alumni-go/internal/auth"
	"alumni-go/internal/middleware"
	"alumni-go/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// userResponse is the JSON projection of a staff account exposed after login.
type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Login handles POST /api/auth/login. On success a bearer token is issued
// and the session is established for browser clients. Unknown accounts and
// wrong passwords produce the same response so the endpoint cannot be used
// to probe which emails exist.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		WriteBadRequest(w, "Email dan password wajib diisi")
		return
	}

	user, err := h.queries.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up user for login", "error", err)
			WriteInternalError(w)
			return
		}
		// Burn a hash comparison so missing accounts take as long as
		// wrong passwords.
		_, _ = auth.CheckPassword(req.Password, auth.DummyHash)
		h.rejectLogin(w, r, req.Email)
		return
	}

	ok, err := auth.CheckPassword(req.Password, user.PasswordHash)
	if err != nil {
		slog.Error("failed to verify password", "userId", user.ID, "error", err)
		WriteInternalError(w)
		return
	}
	if !ok {
		h.rejectLogin(w, r, req.Email)
		return
	}

	if !user.IsVerified {
		WriteError(w, http.StatusForbidden, "Akun belum terverifikasi")
		return
	}

	token, err := h.issuer.Sign(user.ID, user.Role)
	if err != nil {
		slog.Error("failed to sign token", "userId", user.ID, "error", err)
		WriteInternalError(w)
		return
	}

	if h.sessions != nil {
		if err := h.sessions.RenewToken(r.Context()); err != nil {
			slog.Error("failed to renew session token", "userId", user.ID, "error", err)
			WriteInternalError(w)
			return
		}
		h.sessions.Put(r.Context(), middleware.SessionKeyUserID, user.ID)
	}

	if err := h.queries.UpdateUserLastLogin(r.Context(), user.ID, time.Now()); err != nil {
		slog.Warn("failed to record last login", "userId", user.ID, "error", err)
	}

	h.events.LogInfo(r.Context(), model.EventCategoryAuth, "Login berhasil", &user.ID, nil)

	WriteSuccess(w, "Login berhasil", loginResponse{
		Token: token,
		User:  userResponse{ID: user.ID, Email: user.Email, Name: user.Name, Role: user.Role},
	})
}

func (h *Handler) rejectLogin(w http.ResponseWriter, r *http.Request, email string) {
	slog.Warn("login failed", "email", email)
	h.events.LogWarning(r.Context(), model.EventCategoryAuth, "Login gagal", nil,
		map[string]any{"email": email})
	WriteUnauthorized(w, "Email atau password salah")
}
