// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const alumniColumns = `id, name, email, phone, graduation_year, syubiyah_id, photo_path, status, is_verified, created_at, updated_at`

// CreateAlumniParams holds parameters for CreateAlumni.
type CreateAlumniParams struct {
	Name           string
	Email          string
	Phone          sql.NullString
	GraduationYear sql.NullInt64
	SyubiyahID     sql.NullInt64
	PhotoPath      sql.NullString
	Status         string
	IsVerified     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CreateAlumni inserts a member record and returns the stored row.
func (q *Queries) CreateAlumni(ctx context.Context, arg CreateAlumniParams) (Alumni, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO alumni (name, email, phone, graduation_year, syubiyah_id, photo_path, status, is_verified, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+alumniColumns,
		arg.Name, arg.Email, arg.Phone, arg.GraduationYear, arg.SyubiyahID,
		arg.PhotoPath, arg.Status, arg.IsVerified, arg.CreatedAt, arg.UpdatedAt,
	)
	return scanAlumni(row)
}

// GetAlumniByID fetches a member record by ID.
func (q *Queries) GetAlumniByID(ctx context.Context, id int64) (Alumni, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+alumniColumns+` FROM alumni WHERE id = ?`, id)
	return scanAlumni(row)
}

// ListAlumniParams holds pagination for ListAlumni.
type ListAlumniParams struct {
	Limit  int64
	Offset int64
}

// ListAlumni returns member records ordered by most recently created.
func (q *Queries) ListAlumni(ctx context.Context, arg ListAlumniParams) ([]Alumni, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+alumniColumns+` FROM alumni ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAlumni(rows)
}

// CountAlumni returns the number of member records.
func (q *Queries) CountAlumni(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM alumni`).Scan(&count)
	return count, err
}

// UpdateAlumniVerificationParams holds parameters for UpdateAlumniVerification.
type UpdateAlumniVerificationParams struct {
	ID         int64
	Status     string
	IsVerified bool
	UpdatedAt  time.Time
}

// UpdateAlumniVerification applies a verification decision. Status and the
// derived is_verified flag change in one statement so the two can never
// diverge through this write path.
func (q *Queries) UpdateAlumniVerification(ctx context.Context, arg UpdateAlumniVerificationParams) (Alumni, error) {
	row := q.db.QueryRowContext(ctx, `
		UPDATE alumni SET status = ?, is_verified = ?, updated_at = ?
		WHERE id = ?
		RETURNING `+alumniColumns,
		arg.Status, arg.IsVerified, arg.UpdatedAt, arg.ID,
	)
	return scanAlumni(row)
}

// ListInconsistentAlumni returns rows whose stored is_verified flag has
// drifted from the status enum it is derived from.
func (q *Queries) ListInconsistentAlumni(ctx context.Context) ([]Alumni, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+alumniColumns+` FROM alumni WHERE is_verified != (status = 'VERIFIED')`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAlumni(rows)
}

// FixInconsistentAlumni re-derives is_verified from status for every drifted
// row and returns the number of rows repaired.
func (q *Queries) FixInconsistentAlumni(ctx context.Context, at time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, `
		UPDATE alumni SET is_verified = (status = 'VERIFIED'), updated_at = ?
		WHERE is_verified != (status = 'VERIFIED')`, at)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanAlumni(row rowScanner) (Alumni, error) {
	var a Alumni
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.GraduationYear, &a.SyubiyahID,
		&a.PhotoPath, &a.Status, &a.IsVerified, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func collectAlumni(rows *sql.Rows) ([]Alumni, error) {
	var list []Alumni
	for rows.Next() {
		a, err := scanAlumni(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
