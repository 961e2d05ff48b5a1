// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

// CreateSyubiyahParams holds parameters for CreateSyubiyah.
type CreateSyubiyahParams struct {
	Name      string
	Slug      string
	Region    sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateSyubiyah inserts a regional branch and returns the stored row.
func (q *Queries) CreateSyubiyah(ctx context.Context, arg CreateSyubiyahParams) (Syubiyah, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO syubiyah (name, slug, region, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, name, slug, region, created_at, updated_at`,
		arg.Name, arg.Slug, arg.Region, arg.CreatedAt, arg.UpdatedAt,
	)
	var s Syubiyah
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Region, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// GetSyubiyahByID fetches a regional branch by ID.
func (q *Queries) GetSyubiyahByID(ctx context.Context, id int64) (Syubiyah, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, name, slug, region, created_at, updated_at FROM syubiyah WHERE id = ?`, id)
	var s Syubiyah
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Region, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// ListSyubiyah returns all regional branches ordered by name.
func (q *Queries) ListSyubiyah(ctx context.Context) ([]Syubiyah, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, slug, region, created_at, updated_at FROM syubiyah ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Syubiyah
	for rows.Next() {
		var s Syubiyah
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Region, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// CreateMustahiqParams holds parameters for CreateMustahiq.
type CreateMustahiqParams struct {
	Name       string
	Category   string
	SyubiyahID sql.NullInt64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateMustahiq inserts a charity-recipient record and returns the stored row.
func (q *Queries) CreateMustahiq(ctx context.Context, arg CreateMustahiqParams) (Mustahiq, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO mustahiq (name, category, syubiyah_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, name, category, syubiyah_id, created_at, updated_at`,
		arg.Name, arg.Category, arg.SyubiyahID, arg.CreatedAt, arg.UpdatedAt,
	)
	var m Mustahiq
	err := row.Scan(&m.ID, &m.Name, &m.Category, &m.SyubiyahID, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

// ListOrphanedMustahiq returns recipient records pointing at no (or a
// deleted) regional branch. Used by maintenance commands.
func (q *Queries) ListOrphanedMustahiq(ctx context.Context) ([]Mustahiq, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT m.id, m.name, m.category, m.syubiyah_id, m.created_at, m.updated_at
		FROM mustahiq m
		LEFT JOIN syubiyah s ON s.id = m.syubiyah_id
		WHERE m.syubiyah_id IS NULL OR s.id IS NULL
		ORDER BY m.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Mustahiq
	for rows.Next() {
		var m Mustahiq
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.SyubiyahID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
