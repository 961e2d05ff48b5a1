// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const postColumns = `id, title, slug, excerpt, body, image, status, highlighted, featured, featured_rank, view_count, author_id, category_id, published_at, created_at, updated_at`

// CreatePostParams holds parameters for CreatePost.
type CreatePostParams struct {
	Title        string
	Slug         string
	Excerpt      string
	Body         string
	Image        sql.NullString
	Status       string
	Highlighted  bool
	Featured     bool
	FeaturedRank sql.NullInt64
	AuthorID     int64
	CategoryID   sql.NullInt64
	PublishedAt  sql.NullTime
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreatePost inserts a news article and returns the stored row.
func (q *Queries) CreatePost(ctx context.Context, arg CreatePostParams) (Post, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO posts (title, slug, excerpt, body, image, status, highlighted, featured, featured_rank, author_id, category_id, published_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+postColumns,
		arg.Title, arg.Slug, arg.Excerpt, arg.Body, arg.Image, arg.Status,
		arg.Highlighted, arg.Featured, arg.FeaturedRank, arg.AuthorID,
		arg.CategoryID, arg.PublishedAt, arg.CreatedAt, arg.UpdatedAt,
	)
	return scanPost(row)
}

// GetPostBySlug fetches a news article by its unique slug.
func (q *Queries) GetPostBySlug(ctx context.Context, slug string) (Post, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug)
	return scanPost(row)
}

// GetPostByID fetches a news article by ID.
func (q *Queries) GetPostByID(ctx context.Context, id int64) (Post, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	return scanPost(row)
}

// CountPostsBySlug reports how many posts carry the given slug.
func (q *Queries) CountPostsBySlug(ctx context.Context, slug string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts WHERE slug = ?`, slug).Scan(&count)
	return count, err
}

// IncrementPostViews bumps the view counter by one in a single statement.
func (q *Queries) IncrementPostViews(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, `UPDATE posts SET view_count = view_count + 1 WHERE id = ?`, id)
	return err
}

// PublicPostRow is the projected shape of a publicly listed post, joined with
// its author name and category metadata.
type PublicPostRow struct {
	ID           int64
	Title        string
	Slug         string
	Excerpt      string
	Image        sql.NullString
	PublishedAt  sql.NullTime
	ViewCount    int64
	AuthorName   string
	CategoryName sql.NullString
	CategorySlug sql.NullString
	CategoryColor sql.NullString
}

const publicPostSelect = `
	SELECT p.id, p.title, p.slug, p.excerpt, p.image, p.published_at, p.view_count,
	       u.name AS author_name, c.name AS category_name, c.slug AS category_slug, c.color AS category_color
	FROM posts p
	JOIN users u ON u.id = p.author_id
	LEFT JOIN post_categories c ON c.id = p.category_id`

// ListHighlightedPosts returns approved highlighted posts, most recently
// updated first.
func (q *Queries) ListHighlightedPosts(ctx context.Context) ([]PublicPostRow, error) {
	rows, err := q.db.QueryContext(ctx, publicPostSelect+`
		WHERE p.highlighted = 1 AND p.status = 'APPROVED'
		ORDER BY p.updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPublicPosts(rows)
}

// ListFeaturedPosts returns approved featured posts ordered by their rank,
// unranked entries last.
func (q *Queries) ListFeaturedPosts(ctx context.Context) ([]PublicPostRow, error) {
	rows, err := q.db.QueryContext(ctx, publicPostSelect+`
		WHERE p.featured = 1 AND p.status = 'APPROVED'
		ORDER BY p.featured_rank IS NULL, p.featured_rank, p.updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPublicPosts(rows)
}

// CreatePostCategoryParams holds parameters for CreatePostCategory.
type CreatePostCategoryParams struct {
	Name      string
	Slug      string
	Color     sql.NullString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreatePostCategory inserts a news category and returns the stored row.
func (q *Queries) CreatePostCategory(ctx context.Context, arg CreatePostCategoryParams) (PostCategory, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO post_categories (name, slug, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, name, slug, color, created_at, updated_at`,
		arg.Name, arg.Slug, arg.Color, arg.CreatedAt, arg.UpdatedAt,
	)
	var c PostCategory
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Color, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func scanPost(row rowScanner) (Post, error) {
	var p Post
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Body, &p.Image, &p.Status,
		&p.Highlighted, &p.Featured, &p.FeaturedRank, &p.ViewCount, &p.AuthorID,
		&p.CategoryID, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func collectPublicPosts(rows *sql.Rows) ([]PublicPostRow, error) {
	var list []PublicPostRow
	for rows.Next() {
		var r PublicPostRow
		if err := rows.Scan(&r.ID, &r.Title, &r.Slug, &r.Excerpt, &r.Image, &r.PublishedAt,
			&r.ViewCount, &r.AuthorName, &r.CategoryName, &r.CategorySlug, &r.CategoryColor); err != nil {
			return nil, err
		}
		list = append(list, r)
	}
	return list, rows.Err()
}
