package db

import "context"

const listContactMessages = `-- name: ListContactMessages :many
SELECT id, email, message, read, created_at
FROM contact_messages
ORDER BY created_at DESC
`

func (q *Queries) ListContactMessages(ctx context.Context) ([]ContactMessage, error) {
	rows, err := q.db.QueryContext(ctx, listContactMessages)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ContactMessage
	for rows.Next() {
		var i ContactMessage
		if err := rows.Scan(&i.ID, &i.Email, &i.Message, &i.Read, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createContactMessage = `-- name: CreateContactMessage :one
INSERT INTO contact_messages (id, email, message)
VALUES (?, ?, ?)
RETURNING id, email, message, read, created_at
`

type CreateContactMessageParams struct {
	ID      string
	Email   string
	Message string
}

func (q *Queries) CreateContactMessage(ctx context.Context, arg CreateContactMessageParams) (ContactMessage, error) {
	row := q.db.QueryRowContext(ctx, createContactMessage, arg.ID, arg.Email, arg.Message)
	var i ContactMessage
	err := row.Scan(&i.ID, &i.Email, &i.Message, &i.Read, &i.CreatedAt)
	return i, err
}

const markMessageRead = `-- name: MarkMessageRead :exec
UPDATE contact_messages SET read = TRUE WHERE id = ?
`

func (q *Queries) MarkMessageRead(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, markMessageRead, id)
	return err
}
