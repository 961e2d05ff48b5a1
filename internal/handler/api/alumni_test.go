// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"alumni-go/internal/model"
	"alumni-go/internal/store"
)

func createAlumni(t *testing.T, e *testEnv, status string) store.Alumni {
	t.Helper()

	now := time.Now()
	a, err := e.queries.CreateAlumni(context.Background(), store.CreateAlumniParams{
		Name:       "Ahmad Fauzi",
		Email:      "ahmad-" + now.Format("150405.000000000") + "@example.com",
		Status:     status,
		IsVerified: model.DeriveIsVerified(status),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("creating alumni: %v", err)
	}
	return a
}

func TestVerifyAlumni_Verified(t *testing.T) {
	e := newTestEnv(t)
	a := createAlumni(t, e, model.AlumniStatusPending)

	rec := e.doJSON(t, http.MethodPatch, "/api/alumni/"+itoa(a.ID)+"/verify",
		map[string]string{"status": model.AlumniStatusVerified})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	resp := decodeResponse(t, rec)
	if !resp.Success {
		t.Error("Success = false")
	}
	if resp.Message != "Alumni berhasil diverifikasi" {
		t.Errorf("Message = %q", resp.Message)
	}

	var updated alumniResponse
	data, _ := json.Marshal(resp.Data)
	if err := json.Unmarshal(data, &updated); err != nil {
		t.Fatalf("decoding alumni data: %v", err)
	}
	if updated.Status != model.AlumniStatusVerified || !updated.IsVerified {
		t.Errorf("updated = status %q, isVerified %t", updated.Status, updated.IsVerified)
	}

	// Unset nullable columns are omitted rather than emitted as database
	// wrapper objects.
	body := rec.Body.String()
	if !strings.Contains(body, `"isVerified"`) {
		t.Errorf("response missing isVerified key: %s", body)
	}
	for _, leak := range []string{`"Valid"`, `"String"`, `"Int64"`} {
		if strings.Contains(body, leak) {
			t.Errorf("response leaks internal field %s: %s", leak, body)
		}
	}
}

func TestVerifyAlumni_Rejected(t *testing.T) {
	e := newTestEnv(t)
	a := createAlumni(t, e, model.AlumniStatusVerified)

	rec := e.doJSON(t, http.MethodPatch, "/api/alumni/"+itoa(a.ID)+"/verify",
		map[string]string{"status": model.AlumniStatusRejected})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if msg := decodeResponse(t, rec).Message; msg != "Verifikasi alumni ditolak" {
		t.Errorf("Message = %q", msg)
	}

	got, err := e.queries.GetAlumniByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("GetAlumniByID: %v", err)
	}
	if got.Status != model.AlumniStatusRejected || got.IsVerified {
		t.Errorf("stored = status %q, isVerified %t", got.Status, got.IsVerified)
	}
}

func TestVerifyAlumni_InvalidStatus(t *testing.T) {
	e := newTestEnv(t)
	a := createAlumni(t, e, model.AlumniStatusPending)

	for _, status := range []string{"PENDING", "verified", "BOGUS", ""} {
		rec := e.doJSON(t, http.MethodPatch, "/api/alumni/"+itoa(a.ID)+"/verify",
			map[string]string{"status": status})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status %q: code = %d, want 400", status, rec.Code)
		}
	}

	// The record is untouched after every rejected request.
	got, err := e.queries.GetAlumniByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("GetAlumniByID: %v", err)
	}
	if got.Status != model.AlumniStatusPending || got.IsVerified {
		t.Errorf("record changed: status %q, isVerified %t", got.Status, got.IsVerified)
	}
}

func TestVerifyAlumni_NotFound(t *testing.T) {
	e := newTestEnv(t)

	rec := e.doJSON(t, http.MethodPatch, "/api/alumni/99999/verify",
		map[string]string{"status": model.AlumniStatusVerified})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if msg := decodeResponse(t, rec).Message; msg != "Data alumni tidak ditemukan" {
		t.Errorf("Message = %q", msg)
	}
}

func TestVerifyAlumni_BadID(t *testing.T) {
	e := newTestEnv(t)

	rec := e.doJSON(t, http.MethodPatch, "/api/alumni/abc/verify",
		map[string]string{"status": model.AlumniStatusVerified})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
