// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"alumni-go/internal/auth"
	"alumni-go/internal/model"
	"alumni-go/internal/util"
)

// Default bootstrap credentials
const (
	DefaultAdminEmail    = "pusat@example.com"
	DefaultAdminPassword = "changeme"
	DefaultAdminName     = "Administrator Pusat"
)

// Seed creates initial data in the database: a bootstrap PUSAT account and
// a default news category. No-op when the account already exists.
func Seed(ctx context.Context, db *sql.DB) error {
	queries := New(db)

	_, err := queries.GetUserByEmail(ctx, DefaultAdminEmail)
	if err == nil {
		slog.Info("bootstrap account already exists, skipping seed")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("checking for bootstrap account: %w", err)
	}

	passwordHash, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	now := time.Now()
	user, err := queries.CreateUser(ctx, CreateUserParams{
		Email:        DefaultAdminEmail,
		PasswordHash: passwordHash,
		Name:         DefaultAdminName,
		Role:         model.RolePusat,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return fmt.Errorf("creating bootstrap account: %w", err)
	}

	categoryName := "Berita"
	if _, err := queries.CreatePostCategory(ctx, CreatePostCategoryParams{
		Name:      categoryName,
		Slug:      util.Slugify(categoryName),
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return fmt.Errorf("creating default category: %w", err)
	}

	slog.Info("created bootstrap PUSAT account",
		"id", user.ID,
		"email", user.Email,
		"password", DefaultAdminPassword,
	)

	return nil
}
