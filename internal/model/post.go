// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Post statuses. Only APPROVED posts are publicly listed.
const (
	PostStatusPending  = "PENDING"
	PostStatusApproved = "APPROVED"
	PostStatusRejected = "REJECTED"
)
