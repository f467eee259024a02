package db

import (
	"context"
	"database/sql"
	"time"
)

const getProduct = `-- name: GetProduct :one
SELECT id, name, price_cents, short_description, long_description, seo_title, seo_description, in_stock, created_at, updated_at
FROM products
ORDER BY created_at
LIMIT 1
`

// GetProduct returns the storefront's single product row.
func (q *Queries) GetProduct(ctx context.Context) (Product, error) {
	row := q.db.QueryRowContext(ctx, getProduct)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.PriceCents,
		&i.ShortDescription,
		&i.LongDescription,
		&i.SeoTitle,
		&i.SeoDescription,
		&i.InStock,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getProductByID = `-- name: GetProductByID :one
SELECT id, name, price_cents, short_description, long_description, seo_title, seo_description, in_stock, created_at, updated_at
FROM products
WHERE id = ?
`

func (q *Queries) GetProductByID(ctx context.Context, id string) (Product, error) {
	row := q.db.QueryRowContext(ctx, getProductByID, id)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.PriceCents,
		&i.ShortDescription,
		&i.LongDescription,
		&i.SeoTitle,
		&i.SeoDescription,
		&i.InStock,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertProduct = `-- name: UpsertProduct :one
INSERT INTO products (id, name, price_cents, short_description, long_description, seo_title, seo_description, in_stock, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    price_cents = excluded.price_cents,
    short_description = excluded.short_description,
    long_description = excluded.long_description,
    seo_title = excluded.seo_title,
    seo_description = excluded.seo_description,
    in_stock = excluded.in_stock,
    updated_at = excluded.updated_at
RETURNING id, name, price_cents, short_description, long_description, seo_title, seo_description, in_stock, created_at, updated_at
`

type UpsertProductParams struct {
	ID               string
	Name             string
	PriceCents       int64
	ShortDescription sql.NullString
	LongDescription  sql.NullString
	SeoTitle         sql.NullString
	SeoDescription   sql.NullString
	InStock          sql.NullBool
	UpdatedAt        time.Time
}

// UpsertProduct performs the full-record insert-or-replace used by the
// admin save. Last writer wins on concurrent saves.
func (q *Queries) UpsertProduct(ctx context.Context, arg UpsertProductParams) (Product, error) {
	row := q.db.QueryRowContext(ctx, upsertProduct,
		arg.ID,
		arg.Name,
		arg.PriceCents,
		arg.ShortDescription,
		arg.LongDescription,
		arg.SeoTitle,
		arg.SeoDescription,
		arg.InStock,
		arg.UpdatedAt,
	)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.PriceCents,
		&i.ShortDescription,
		&i.LongDescription,
		&i.SeoTitle,
		&i.SeoDescription,
		&i.InStock,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
