// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"alumni-go/internal/middleware"
	"alumni-go/internal/model"
	"alumni-go/internal/store"
	"alumni-go/internal/util"
)

type verifyAlumniRequest struct {
	Status string `json:"status"`
}

// alumniResponse is the JSON projection of a member record.
type alumniResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone,omitempty"`
	GraduationYear *int64    `json:"graduationYear,omitempty"`
	SyubiyahID     *int64    `json:"syubiyahId,omitempty"`
	PhotoPath      *string   `json:"photoPath,omitempty"`
	Status         string    `json:"status"`
	IsVerified     bool      `json:"isVerified"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toAlumniResponse(a store.Alumni) alumniResponse {
	return alumniResponse{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Phone:          util.PtrFromNullString(a.Phone),
		GraduationYear: util.PtrFromNullInt64(a.GraduationYear),
		SyubiyahID:     util.PtrFromNullInt64(a.SyubiyahID),
		PhotoPath:      util.PtrFromNullString(a.PhotoPath),
		Status:         a.Status,
		IsVerified:     a.IsVerified,
		UpdatedAt:      a.UpdatedAt,
	}
}

// VerifyAlumni handles PATCH /api/alumni/{id}/verify. It applies a
// verification decision (VERIFIED or REJECTED); the derived isVerified flag
// changes in the same statement as the status so the two cannot drift.
func (h *Handler) VerifyAlumni(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteBadRequest(w, "ID alumni tidak valid")
		return
	}

	var req verifyAlumniRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, "Body permintaan tidak valid")
		return
	}

	if !model.IsValidVerificationTarget(req.Status) {
		WriteBadRequest(w, "Status harus VERIFIED atau REJECTED")
		return
	}

	alumni, err := h.queries.UpdateAlumniVerification(r.Context(), store.UpdateAlumniVerificationParams{
		ID:         id,
		Status:     req.Status,
		IsVerified: model.DeriveIsVerified(req.Status),
		UpdatedAt:  time.Now(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Data alumni tidak ditemukan")
			return
		}
		slog.Error("failed to update alumni verification", "alumniId", id, "error", err)
		WriteInternalError(w)
		return
	}

	message := "Verifikasi alumni ditolak"
	if alumni.IsVerified {
		message = "Alumni berhasil diverifikasi"
	}

	h.events.LogInfo(r.Context(), model.EventCategoryAlumni, message,
		middleware.GetUserIDPtr(r), map[string]any{
			"alumniId": alumni.ID,
			"status":   alumni.Status,
		})

	WriteSuccess(w, message, toAlumniResponse(alumni))
}
