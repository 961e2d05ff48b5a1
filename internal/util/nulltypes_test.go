// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"database/sql"
	"testing"
	"time"
)

func TestNullInt64FromPtr(t *testing.T) {
	v := int64(42)
	got := NullInt64FromPtr(&v)
	if !got.Valid || got.Int64 != 42 {
		t.Errorf("NullInt64FromPtr(&42) = %+v, want valid 42", got)
	}

	got = NullInt64FromPtr(nil)
	if got.Valid {
		t.Errorf("NullInt64FromPtr(nil) = %+v, want invalid", got)
	}
}

func TestPtrFromNullString(t *testing.T) {
	if got := PtrFromNullString(sql.NullString{String: "x", Valid: true}); got == nil || *got != "x" {
		t.Errorf("PtrFromNullString(valid) = %v, want \"x\"", got)
	}
	if got := PtrFromNullString(sql.NullString{}); got != nil {
		t.Errorf("PtrFromNullString(invalid) = %v, want nil", got)
	}
}

func TestPtrFromNullInt64(t *testing.T) {
	if got := PtrFromNullInt64(sql.NullInt64{Int64: 7, Valid: true}); got == nil || *got != 7 {
		t.Errorf("PtrFromNullInt64(valid) = %v, want 7", got)
	}
	if got := PtrFromNullInt64(sql.NullInt64{}); got != nil {
		t.Errorf("PtrFromNullInt64(invalid) = %v, want nil", got)
	}
}

func TestPtrFromNullTime(t *testing.T) {
	now := time.Now()
	if got := PtrFromNullTime(sql.NullTime{Time: now, Valid: true}); got == nil || !got.Equal(now) {
		t.Errorf("PtrFromNullTime(valid) = %v, want %v", got, now)
	}
	if got := PtrFromNullTime(sql.NullTime{}); got != nil {
		t.Errorf("PtrFromNullTime(invalid) = %v, want nil", got)
	}
}
