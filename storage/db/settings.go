package db

import (
	"context"
	"database/sql"
	"time"
)

const getSiteSettings = `-- name: GetSiteSettings :one
SELECT id, site_name, contact_email, contact_phone, contact_address, updated_at
FROM site_settings
LIMIT 1
`

func (q *Queries) GetSiteSettings(ctx context.Context) (SiteSetting, error) {
	row := q.db.QueryRowContext(ctx, getSiteSettings)
	var i SiteSetting
	err := row.Scan(
		&i.ID,
		&i.SiteName,
		&i.ContactEmail,
		&i.ContactPhone,
		&i.ContactAddress,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertSiteSettings = `-- name: UpsertSiteSettings :one
INSERT INTO site_settings (id, site_name, contact_email, contact_phone, contact_address, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    site_name = excluded.site_name,
    contact_email = excluded.contact_email,
    contact_phone = excluded.contact_phone,
    contact_address = excluded.contact_address,
    updated_at = excluded.updated_at
RETURNING id, site_name, contact_email, contact_phone, contact_address, updated_at
`

type UpsertSiteSettingsParams struct {
	ID             string
	SiteName       string
	ContactEmail   sql.NullString
	ContactPhone   sql.NullString
	ContactAddress sql.NullString
	UpdatedAt      time.Time
}

func (q *Queries) UpsertSiteSettings(ctx context.Context, arg UpsertSiteSettingsParams) (SiteSetting, error) {
	row := q.db.QueryRowContext(ctx, upsertSiteSettings,
		arg.ID,
		arg.SiteName,
		arg.ContactEmail,
		arg.ContactPhone,
		arg.ContactAddress,
		arg.UpdatedAt,
	)
	var i SiteSetting
	err := row.Scan(
		&i.ID,
		&i.SiteName,
		&i.ContactEmail,
		&i.ContactPhone,
		&i.ContactAddress,
		&i.UpdatedAt,
	)
	return i, err
}

const updateContactInfo = `-- name: UpdateContactInfo :exec
UPDATE site_settings
SET contact_email = ?, contact_phone = ?, contact_address = ?, updated_at = ?
WHERE id = ?
`

type UpdateContactInfoParams struct {
	ContactEmail   sql.NullString
	ContactPhone   sql.NullString
	ContactAddress sql.NullString
	UpdatedAt      time.Time
	ID             string
}

// UpdateContactInfo updates only the embedded contact-info fields of
// the settings singleton, keyed by settings id.
func (q *Queries) UpdateContactInfo(ctx context.Context, arg UpdateContactInfoParams) error {
	_, err := q.db.ExecContext(ctx, updateContactInfo,
		arg.ContactEmail,
		arg.ContactPhone,
		arg.ContactAddress,
		arg.UpdatedAt,
		arg.ID,
	)
	return err
}

const listSiteAssets = `-- name: ListSiteAssets :many
SELECT type, url, updated_at FROM site_assets
`

func (q *Queries) ListSiteAssets(ctx context.Context) ([]SiteAsset, error) {
	rows, err := q.db.QueryContext(ctx, listSiteAssets)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SiteAsset
	for rows.Next() {
		var i SiteAsset
		if err := rows.Scan(&i.Type, &i.Url, &i.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertSiteAsset = `-- name: UpsertSiteAsset :one
INSERT INTO site_assets (type, url, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(type) DO UPDATE SET
    url = excluded.url,
    updated_at = excluded.updated_at
RETURNING type, url, updated_at
`

type UpsertSiteAssetParams struct {
	Type      string
	Url       string
	UpdatedAt time.Time
}

// UpsertSiteAsset replaces the asset row keyed by type ("logo",
// "favicon").
func (q *Queries) UpsertSiteAsset(ctx context.Context, arg UpsertSiteAssetParams) (SiteAsset, error) {
	row := q.db.QueryRowContext(ctx, upsertSiteAsset, arg.Type, arg.Url, arg.UpdatedAt)
	var i SiteAsset
	err := row.Scan(&i.Type, &i.Url, &i.UpdatedAt)
	return i, err
}
