// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package logging

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"alumni-go/internal/model"
	"alumni-go/internal/store"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`
		CREATE TABLE events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level TEXT NOT NULL,
			category TEXT NOT NULL,
			message TEXT NOT NULL,
			user_id INTEGER,
			metadata TEXT NOT NULL DEFAULT '{}',
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		t.Fatalf("creating events table: %v", err)
	}
	return db
}

func TestEventLogHandler_WarnForwarded(t *testing.T) {
	db := testDB(t)

	inner := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(NewEventLogHandler(inner, db))

	logger.Warn("verification rejected", "alumni_id", 7)

	events, err := store.New(db).ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Level != model.EventLevelWarning {
		t.Errorf("Level = %q, want warning", events[0].Level)
	}
	if events[0].Category != model.EventCategoryAlumni {
		t.Errorf("Category = %q, want alumni", events[0].Category)
	}
}

func TestEventLogHandler_InfoNotForwarded(t *testing.T) {
	db := testDB(t)

	inner := slog.NewTextHandler(io.Discard, nil)
	logger := slog.New(NewEventLogHandler(inner, db))

	logger.Info("routine message")

	events, err := store.New(db).ListRecentEvents(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListRecentEvents: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("len(events) = %d, want 0 (info stays out of the event log)", len(events))
	}
}

func TestExtractCategory_ExplicitAttr(t *testing.T) {
	r := slog.NewRecord(time.Now(), slog.LevelWarn, "something", 0)
	r.AddAttrs(slog.String("category", model.EventCategoryUpload))

	if got := extractCategory(r); got != model.EventCategoryUpload {
		t.Errorf("extractCategory = %q, want %q", got, model.EventCategoryUpload)
	}
}

func TestExtractMetadata(t *testing.T) {
	r := slog.NewRecord(time.Now(), slog.LevelWarn, "msg", 0)
	r.AddAttrs(slog.String("platform", "whatsapp"), slog.Int("product_id", 3))

	got := extractMetadata(r)
	want := `{"platform":"whatsapp","product_id":"3"}`
	if got != want {
		t.Errorf("extractMetadata = %q, want %q", got, want)
	}
}

func TestEscapeJSON(t *testing.T) {
	if got := escapeJSON(`a"b\c` + "\n"); got != `a\"b\\c\n` {
		t.Errorf("escapeJSON = %q", got)
	}
}
