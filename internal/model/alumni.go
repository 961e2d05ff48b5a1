// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Alumni verification statuses
const (
	AlumniStatusPending  = "PENDING"
	AlumniStatusVerified = "VERIFIED"
	AlumniStatusRejected = "REJECTED"
)

// IsValidVerificationTarget reports whether status is one of the two
// statuses a verification request may apply. PENDING is the initial state
// and cannot be applied through the verify endpoint.
func IsValidVerificationTarget(status string) bool {
	return status == AlumniStatusVerified || status == AlumniStatusRejected
}

// DeriveIsVerified returns the is_verified flag that must accompany a
// status value. Every writer keeps the flag consistent with the enum.
func DeriveIsVerified(status string) bool {
	return status == AlumniStatusVerified
}
