package db

import (
	"context"
	"database/sql"
)

const getUserByClerkID = `-- name: GetUserByClerkID :one
SELECT id, clerk_id, email, is_admin, created_at
FROM users
WHERE clerk_id = ?
`

func (q *Queries) GetUserByClerkID(ctx context.Context, clerkID sql.NullString) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByClerkID, clerkID)
	var i User
	err := row.Scan(
		&i.ID,
		&i.ClerkID,
		&i.Email,
		&i.IsAdmin,
		&i.CreatedAt,
	)
	return i, err
}

const createUser = `-- name: CreateUser :one
INSERT INTO users (id, clerk_id, email)
VALUES (?, ?, ?)
RETURNING id, clerk_id, email, is_admin, created_at
`

type CreateUserParams struct {
	ID      string
	ClerkID sql.NullString
	Email   string
}

func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRowContext(ctx, createUser, arg.ID, arg.ClerkID, arg.Email)
	var i User
	err := row.Scan(
		&i.ID,
		&i.ClerkID,
		&i.Email,
		&i.IsAdmin,
		&i.CreatedAt,
	)
	return i, err
}

const setUserAdmin = `-- name: SetUserAdmin :exec
UPDATE users SET is_admin = ? WHERE id = ?
`

type SetUserAdminParams struct {
	IsAdmin bool
	ID      string
}

func (q *Queries) SetUserAdmin(ctx context.Context, arg SetUserAdminParams) error {
	_, err := q.db.ExecContext(ctx, setUserAdmin, arg.IsAdmin, arg.ID)
	return err
}
