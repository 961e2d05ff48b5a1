// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"alumni-go/internal/middleware"
	"alumni-go/internal/model"
)

// reunionDocument is the content blob backing the reunion landing page.
const reunionDocument = "reuni-2026"

type updateContentRequest struct {
	Content *string `json:"content"`
}

// ReunionContent handles GET /api/reuni-2026. A missing or malformed
// document is a server error; the blob is provisioned by deployment, not
// created lazily.
func (h *Handler) ReunionContent(w http.ResponseWriter, r *http.Request) {
	doc, err := h.content.Read(reunionDocument)
	if err != nil {
		slog.Error("failed to read reunion content", "error", err)
		WriteInternalError(w)
		return
	}
	WriteSuccess(w, "", doc)
}

// UpdateReunionContent handles POST /api/reuni-2026. The content field must
// be a string; the stored document is replaced wholesale, no merge. Routing
// restricts this to PUSAT accounts.
func (h *Handler) UpdateReunionContent(w http.ResponseWriter, r *http.Request) {
	var req updateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Content == nil {
		WriteBadRequest(w, "Field content harus berupa string")
		return
	}

	if err := h.content.Write(reunionDocument, *req.Content); err != nil {
		slog.Error("failed to write reunion content", "error", err)
		WriteInternalError(w)
		return
	}

	h.events.LogInfo(r.Context(), model.EventCategoryContent, "Konten reuni diperbarui",
		middleware.GetUserIDPtr(r), map[string]any{"document": reunionDocument})

	WriteSuccess(w, "Konten berhasil disimpan", nil)
}
