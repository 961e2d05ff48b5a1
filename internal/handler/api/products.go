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

	"github.com/go-chi/chi/v5"

	"alumni-go/internal/model"
)

type productClickRequest struct {
	Platform string `json:"platform"`
}

// ProductClick handles POST /api/products/{id}/click. The counter moves by
// exactly one per call; the platform label is recorded in the audit trail
// but never persisted on the product row.
func (h *Handler) ProductClick(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		WriteBadRequest(w, "ID produk tidak valid")
		return
	}

	// Body is optional; a missing or malformed platform label is not an error.
	var req productClickRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	count, err := h.queries.IncrementProductClicks(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			WriteNotFound(w, "Produk tidak ditemukan")
			return
		}
		slog.Error("failed to increment product clicks", "productId", id, "error", err)
		WriteInternalError(w)
		return
	}

	slog.Info("product click recorded", "productId", id, "platform", req.Platform, "clickCount", count)
	h.events.LogInfo(r.Context(), model.EventCategoryProduct, "Klik produk dicatat", nil, map[string]any{
		"productId": id,
		"platform":  req.Platform,
	})

	WriteSuccess(w, "Klik produk berhasil dicatat", map[string]any{
		"productId":  id,
		"clickCount": count,
	})
}
