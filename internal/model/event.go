// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Event levels
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event categories
const (
	EventCategoryAuth    = "auth"
	EventCategoryAlumni  = "alumni"
	EventCategoryContent = "content"
	EventCategoryProduct = "product"
	EventCategoryUpload  = "upload"
	EventCategorySystem  = "system"
)
