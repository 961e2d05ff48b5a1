// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "testing"

func TestIsValidVerificationTarget(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{AlumniStatusVerified, true},
		{AlumniStatusRejected, true},
		{AlumniStatusPending, false},
		{"verified", false},
		{"", false},
		{"APPROVED", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidVerificationTarget(tt.status); got != tt.want {
				t.Errorf("IsValidVerificationTarget(%q) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestDeriveIsVerified(t *testing.T) {
	if !DeriveIsVerified(AlumniStatusVerified) {
		t.Error("DeriveIsVerified(VERIFIED) should be true")
	}
	if DeriveIsVerified(AlumniStatusRejected) {
		t.Error("DeriveIsVerified(REJECTED) should be false")
	}
	if DeriveIsVerified(AlumniStatusPending) {
		t.Error("DeriveIsVerified(PENDING) should be false")
	}
}

func TestIsValidRole(t *testing.T) {
	if !IsValidRole(RolePusat) || !IsValidRole(RoleSyubiyah) {
		t.Error("known roles should be valid")
	}
	if IsValidRole("admin") || IsValidRole("") {
		t.Error("unknown roles should be invalid")
	}
}
