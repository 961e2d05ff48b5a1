// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"
	"time"

	"alumni-go/internal/model"
)

// User represents a staff account (PUSAT or SYUBIYAH administrator).
type User struct {
	ID           int64        `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Never expose in JSON
	Name         string       `json:"name"`
	Role         string       `json:"role"`
	IsVerified   bool         `json:"is_verified"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	LastLoginAt  sql.NullTime `json:"last_login_at,omitempty"`
}

// IsPusat returns true if the user holds the top-level administrative role.
func (u *User) IsPusat() bool {
	return u.Role == model.RolePusat
}

// Syubiyah represents a regional branch.
type Syubiyah struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Region    sql.NullString `json:"region,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Alumni represents a member record.
type Alumni struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          sql.NullString `json:"phone,omitempty"`
	GraduationYear sql.NullInt64  `json:"graduation_year,omitempty"`
	SyubiyahID     sql.NullInt64  `json:"syubiyah_id,omitempty"`
	PhotoPath      sql.NullString `json:"photo_path,omitempty"`
	Status         string         `json:"status"`
	IsVerified     bool           `json:"is_verified"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// Mustahiq represents a charity-recipient record tied to a regional branch.
type Mustahiq struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Category   string        `json:"category"`
	SyubiyahID sql.NullInt64 `json:"syubiyah_id,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// PostCategory represents a news category.
type PostCategory struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Slug      string         `json:"slug"`
	Color     sql.NullString `json:"color,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Post represents a news article.
type Post struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Excerpt      string         `json:"excerpt"`
	Body         string         `json:"body"`
	Image        sql.NullString `json:"image,omitempty"`
	Status       string         `json:"status"`
	Highlighted  bool           `json:"highlighted"`
	Featured     bool           `json:"featured"`
	FeaturedRank sql.NullInt64  `json:"featured_rank,omitempty"`
	ViewCount    int64          `json:"view_count"`
	AuthorID     int64          `json:"author_id"`
	CategoryID   sql.NullInt64  `json:"category_id,omitempty"`
	PublishedAt  sql.NullTime   `json:"published_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ProductCategory represents a hierarchical marketplace category.
type ProductCategory struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Slug      string        `json:"slug"`
	ParentID  sql.NullInt64 `json:"parent_id,omitempty"`
	Level     int64         `json:"level"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Product represents a marketplace listing.
type Product struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Description string         `json:"description"`
	Price       sql.NullInt64  `json:"price,omitempty"`
	Image       sql.NullString `json:"image,omitempty"`
	ClickCount  int64          `json:"click_count"`
	CategoryID  sql.NullInt64  `json:"category_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Event represents a system event log entry.
type Event struct {
	ID        int64         `json:"id"`
	Level     string        `json:"level"`
	Category  string        `json:"category"`
	Message   string        `json:"message"`
	UserID    sql.NullInt64 `json:"user_id,omitempty"`
	Metadata  string        `json:"metadata"` // JSON string
	CreatedAt time.Time     `json:"created_at"`
}
