package db

import "context"

const listProductReviews = `-- name: ListProductReviews :many
SELECT id, product_id, name, rating, comment, featured, created_at
FROM product_reviews
ORDER BY created_at DESC
`

func (q *Queries) ListProductReviews(ctx context.Context) ([]ProductReview, error) {
	rows, err := q.db.QueryContext(ctx, listProductReviews)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProductReview
	for rows.Next() {
		var i ProductReview
		if err := rows.Scan(
			&i.ID,
			&i.ProductID,
			&i.Name,
			&i.Rating,
			&i.Comment,
			&i.Featured,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getProductReview = `-- name: GetProductReview :one
SELECT id, product_id, name, rating, comment, featured, created_at
FROM product_reviews
WHERE id = ?
`

func (q *Queries) GetProductReview(ctx context.Context, id string) (ProductReview, error) {
	row := q.db.QueryRowContext(ctx, getProductReview, id)
	var i ProductReview
	err := row.Scan(
		&i.ID,
		&i.ProductID,
		&i.Name,
		&i.Rating,
		&i.Comment,
		&i.Featured,
		&i.CreatedAt,
	)
	return i, err
}

const createProductReview = `-- name: CreateProductReview :one
INSERT INTO product_reviews (id, product_id, name, rating, comment)
VALUES (?, ?, ?, ?, ?)
RETURNING id, product_id, name, rating, comment, featured, created_at
`

type CreateProductReviewParams struct {
	ID        string
	ProductID string
	Name      string
	Rating    int64
	Comment   string
}

func (q *Queries) CreateProductReview(ctx context.Context, arg CreateProductReviewParams) (ProductReview, error) {
	row := q.db.QueryRowContext(ctx, createProductReview,
		arg.ID,
		arg.ProductID,
		arg.Name,
		arg.Rating,
		arg.Comment,
	)
	var i ProductReview
	err := row.Scan(
		&i.ID,
		&i.ProductID,
		&i.Name,
		&i.Rating,
		&i.Comment,
		&i.Featured,
		&i.CreatedAt,
	)
	return i, err
}

const setReviewFeatured = `-- name: SetReviewFeatured :exec
UPDATE product_reviews SET featured = ? WHERE id = ?
`

type SetReviewFeaturedParams struct {
	Featured bool
	ID       string
}

func (q *Queries) SetReviewFeatured(ctx context.Context, arg SetReviewFeaturedParams) error {
	_, err := q.db.ExecContext(ctx, setReviewFeatured, arg.Featured, arg.ID)
	return err
}
