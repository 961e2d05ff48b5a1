// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines domain constants and types used throughout the
// application: verification statuses, staff roles, and event log levels.
package model

// Staff roles. PUSAT is the top-level administrative role with full edit
// rights; SYUBIYAH is a regional branch administrator.
const (
	RolePusat    = "PUSAT"
	RoleSyubiyah = "SYUBIYAH"
)

// IsValidRole returns true if role is a recognized staff role.
func IsValidRole(role string) bool {
	return role == RolePusat || role == RoleSyubiyah
}
