package db

import "context"

const listProductMedia = `-- name: ListProductMedia :many
SELECT id, product_id, url, created_at
FROM product_media
WHERE product_id = ?
ORDER BY created_at ASC
`

// ListProductMedia returns the product gallery in upload order.
func (q *Queries) ListProductMedia(ctx context.Context, productID string) ([]ProductMedium, error) {
	rows, err := q.db.QueryContext(ctx, listProductMedia, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProductMedium
	for rows.Next() {
		var i ProductMedium
		if err := rows.Scan(&i.ID, &i.ProductID, &i.Url, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createProductMedia = `-- name: CreateProductMedia :one
INSERT INTO product_media (id, product_id, url)
VALUES (?, ?, ?)
RETURNING id, product_id, url, created_at
`

type CreateProductMediaParams struct {
	ID        string
	ProductID string
	Url       string
}

func (q *Queries) CreateProductMedia(ctx context.Context, arg CreateProductMediaParams) (ProductMedium, error) {
	row := q.db.QueryRowContext(ctx, createProductMedia, arg.ID, arg.ProductID, arg.Url)
	var i ProductMedium
	err := row.Scan(&i.ID, &i.ProductID, &i.Url, &i.CreatedAt)
	return i, err
}

const deleteProductMediaByURL = `-- name: DeleteProductMediaByURL :exec
DELETE FROM product_media
WHERE product_id = ? AND url = ?
`

type DeleteProductMediaByURLParams struct {
	ProductID string
	Url       string
}

func (q *Queries) DeleteProductMediaByURL(ctx context.Context, arg DeleteProductMediaByURLParams) error {
	_, err := q.db.ExecContext(ctx, deleteProductMediaByURL, arg.ProductID, arg.Url)
	return err
}

const getLatestProductVideo = `-- name: GetLatestProductVideo :one
SELECT id, product_id, url, created_at
FROM product_videos
WHERE product_id = ?
ORDER BY created_at DESC
LIMIT 1
`

func (q *Queries) GetLatestProductVideo(ctx context.Context, productID string) (ProductVideo, error) {
	row := q.db.QueryRowContext(ctx, getLatestProductVideo, productID)
	var i ProductVideo
	err := row.Scan(&i.ID, &i.ProductID, &i.Url, &i.CreatedAt)
	return i, err
}

const countProductVideos = `-- name: CountProductVideos :one
SELECT COUNT(*) FROM product_videos WHERE product_id = ?
`

func (q *Queries) CountProductVideos(ctx context.Context, productID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, countProductVideos, productID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createProductVideo = `-- name: CreateProductVideo :one
INSERT INTO product_videos (id, product_id, url)
VALUES (?, ?, ?)
RETURNING id, product_id, url, created_at
`

type CreateProductVideoParams struct {
	ID        string
	ProductID string
	Url       string
}

func (q *Queries) CreateProductVideo(ctx context.Context, arg CreateProductVideoParams) (ProductVideo, error) {
	row := q.db.QueryRowContext(ctx, createProductVideo, arg.ID, arg.ProductID, arg.Url)
	var i ProductVideo
	err := row.Scan(&i.ID, &i.ProductID, &i.Url, &i.CreatedAt)
	return i, err
}

const deleteProductVideos = `-- name: DeleteProductVideos :exec
DELETE FROM product_videos WHERE product_id = ?
`

// DeleteProductVideos clears all video rows for the product. Paired
// with CreateProductVideo it enforces the 0-or-1 video cardinality.
func (q *Queries) DeleteProductVideos(ctx context.Context, productID string) error {
	_, err := q.db.ExecContext(ctx, deleteProductVideos, productID)
	return err
}
