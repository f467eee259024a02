package db

import (
	"context"
	"database/sql"
	"time"
)

const createCheckoutDraft = `-- name: CreateCheckoutDraft :one
INSERT INTO checkout_drafts (id, product_name, product_price_cents, product_description, product_image_url, expires_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id, product_name, product_price_cents, product_description, product_image_url, first_name, last_name, email, address, city, state, zip_code, country, shipping_complete, created_at, expires_at
`

type CreateCheckoutDraftParams struct {
	ID                 string
	ProductName        string
	ProductPriceCents  int64
	ProductDescription sql.NullString
	ProductImageUrl    sql.NullString
	ExpiresAt          time.Time
}

// CreateCheckoutDraft snapshots the product at the moment checkout
// begins so a concurrent admin edit cannot change the price mid-flow.
func (q *Queries) CreateCheckoutDraft(ctx context.Context, arg CreateCheckoutDraftParams) (CheckoutDraft, error) {
	row := q.db.QueryRowContext(ctx, createCheckoutDraft,
		arg.ID,
		arg.ProductName,
		arg.ProductPriceCents,
		arg.ProductDescription,
		arg.ProductImageUrl,
		arg.ExpiresAt,
	)
	var i CheckoutDraft
	err := scanDraftRow(row, &i)
	return i, err
}

const getCheckoutDraft = `-- name: GetCheckoutDraft :one
SELECT id, product_name, product_price_cents, product_description, product_image_url, first_name, last_name, email, address, city, state, zip_code, country, shipping_complete, created_at, expires_at
FROM checkout_drafts
WHERE id = ?
`

func (q *Queries) GetCheckoutDraft(ctx context.Context, id string) (CheckoutDraft, error) {
	row := q.db.QueryRowContext(ctx, getCheckoutDraft, id)
	var i CheckoutDraft
	err := scanDraftRow(row, &i)
	return i, err
}

const setDraftShipping = `-- name: SetDraftShipping :one
UPDATE checkout_drafts
SET first_name = ?, last_name = ?, email = ?, address = ?, city = ?, state = ?, zip_code = ?, country = ?, shipping_complete = TRUE
WHERE id = ?
RETURNING id, product_name, product_price_cents, product_description, product_image_url, first_name, last_name, email, address, city, state, zip_code, country, shipping_complete, created_at, expires_at
`

type SetDraftShippingParams struct {
	FirstName sql.NullString
	LastName  sql.NullString
	Email     sql.NullString
	Address   sql.NullString
	City      sql.NullString
	State     sql.NullString
	ZipCode   sql.NullString
	Country   sql.NullString
	ID        string
}

func (q *Queries) SetDraftShipping(ctx context.Context, arg SetDraftShippingParams) (CheckoutDraft, error) {
	row := q.db.QueryRowContext(ctx, setDraftShipping,
		arg.FirstName,
		arg.LastName,
		arg.Email,
		arg.Address,
		arg.City,
		arg.State,
		arg.ZipCode,
		arg.Country,
		arg.ID,
	)
	var i CheckoutDraft
	err := scanDraftRow(row, &i)
	return i, err
}

const deleteCheckoutDraft = `-- name: DeleteCheckoutDraft :execrows
DELETE FROM checkout_drafts WHERE id = ?
`

// DeleteCheckoutDraft removes a consumed draft and reports whether a
// row was deleted. Deleting it in the same transaction that records
// the payment makes draft consumption single-use.
func (q *Queries) DeleteCheckoutDraft(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteCheckoutDraft, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

const deleteExpiredDrafts = `-- name: DeleteExpiredDrafts :execrows
DELETE FROM checkout_drafts WHERE expires_at < ?
`

func (q *Queries) DeleteExpiredDrafts(ctx context.Context, now time.Time) (int64, error) {
	res, err := q.db.ExecContext(ctx, deleteExpiredDrafts, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanDraftRow(row *sql.Row, i *CheckoutDraft) error {
	return row.Scan(
		&i.ID,
		&i.ProductName,
		&i.ProductPriceCents,
		&i.ProductDescription,
		&i.ProductImageUrl,
		&i.FirstName,
		&i.LastName,
		&i.Email,
		&i.Address,
		&i.City,
		&i.State,
		&i.ZipCode,
		&i.Country,
		&i.ShippingComplete,
		&i.CreatedAt,
		&i.ExpiresAt,
	)
}
