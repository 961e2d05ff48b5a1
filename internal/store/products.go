// Copyright (c) 2026 Alumni Go Authors
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"time"
)

const productColumns = `id, name, slug, description, price, image, click_count, category_id, created_at, updated_at`

// CreateProductParams holds parameters for CreateProduct.
type CreateProductParams struct {
	Name        string
	Slug        string
	Description string
	Price       sql.NullInt64
	Image       sql.NullString
	CategoryID  sql.NullInt64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateProduct inserts a marketplace listing and returns the stored row.
func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO products (name, slug, description, price, image, category_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+productColumns,
		arg.Name, arg.Slug, arg.Description, arg.Price, arg.Image,
		arg.CategoryID, arg.CreatedAt, arg.UpdatedAt,
	)
	return scanProduct(row)
}

// GetProductByID fetches a marketplace listing by ID.
func (q *Queries) GetProductByID(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	return scanProduct(row)
}

// ListProductsParams holds pagination for ListProducts.
type ListProductsParams struct {
	Limit  int64
	Offset int64
}

// ListProducts returns marketplace listings ordered by most recently created.
func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// IncrementProductClicks bumps the click counter by one and returns the new
// count. The increment runs as a single statement so concurrent clicks
// serialize at the database and none are lost. Returns sql.ErrNoRows when
// the product does not exist.
func (q *Queries) IncrementProductClicks(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		`UPDATE products SET click_count = click_count + 1, updated_at = ? WHERE id = ?
		RETURNING click_count`,
		time.Now(), id).Scan(&count)
	return count, err
}

// CreateProductCategoryParams holds parameters for CreateProductCategory.
type CreateProductCategoryParams struct {
	Name      string
	Slug      string
	ParentID  sql.NullInt64
	Level     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateProductCategory inserts a category node and returns the stored row.
func (q *Queries) CreateProductCategory(ctx context.Context, arg CreateProductCategoryParams) (ProductCategory, error) {
	row := q.db.QueryRowContext(ctx, `
		INSERT INTO product_categories (name, slug, parent_id, level, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, name, slug, parent_id, level, created_at, updated_at`,
		arg.Name, arg.Slug, arg.ParentID, arg.Level, arg.CreatedAt, arg.UpdatedAt,
	)
	return scanProductCategory(row)
}

// GetProductCategoryByID fetches a category node by ID.
func (q *Queries) GetProductCategoryByID(ctx context.Context, id int64) (ProductCategory, error) {
	row := q.db.QueryRowContext(ctx,
		`SELECT id, name, slug, parent_id, level, created_at, updated_at FROM product_categories WHERE id = ?`, id)
	return scanProductCategory(row)
}

// ListProductCategoryChildren returns the direct children of a category node.
func (q *Queries) ListProductCategoryChildren(ctx context.Context, parentID int64) ([]ProductCategory, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, slug, parent_id, level, created_at, updated_at
		FROM product_categories WHERE parent_id = ? ORDER BY name`, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []ProductCategory
	for rows.Next() {
		c, err := scanProductCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// ListRootProductCategories returns category nodes without a parent.
func (q *Queries) ListRootProductCategories(ctx context.Context) ([]ProductCategory, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, slug, parent_id, level, created_at, updated_at
		FROM product_categories WHERE parent_id IS NULL ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []ProductCategory
	for rows.Next() {
		c, err := scanProductCategory(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.Price, &p.Image,
		&p.ClickCount, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func scanProductCategory(row rowScanner) (ProductCategory, error) {
	var c ProductCategory
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID, &c.Level, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
