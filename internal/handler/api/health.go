// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"log/slog"
	"net/http"
	"time"
)

// Health handles GET /api/health. Liveness plus a database ping.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		slog.Error("health check db ping failed", "error", err)
		WriteError(w, http.StatusServiceUnavailable, "Database tidak tersedia")
		return
	}
	WriteSuccess(w, "", map[string]string{"status": "ok"})
}

type testDBResponse struct {
	ServerTime    time.Time `json:"serverTime"`
	SqliteVersion string    `json:"sqliteVersion"`
}

// TestDB handles GET /api/test-db. Runs one real query so a deploy can be
// smoke-tested end to end, and reports the engine version alongside the
// server clock.
func (h *Handler) TestDB(w http.ResponseWriter, r *http.Request) {
	var version string
	if err := h.db.QueryRowContext(r.Context(), `SELECT sqlite_version()`).Scan(&version); err != nil {
		slog.Error("test-db query failed", "error", err)
		WriteInternalError(w)
		return
	}

	WriteSuccess(w, "Koneksi database berhasil", testDBResponse{
		ServerTime:    time.Now(),
		SqliteVersion: version,
	})
}
