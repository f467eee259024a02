package db

import (
	"context"
	"database/sql"
)

const listPayments = `-- name: ListPayments :many
SELECT id, order_id, card_number, card_expiry_month, card_expiry_year, card_cvc, billing_name, billing_email, billing_phone, billing_address, billing_city, billing_state, billing_zip, billing_country, amount_cents, status, created_at
FROM payment_information
ORDER BY created_at DESC
`

func (q *Queries) ListPayments(ctx context.Context) ([]PaymentInformation, error) {
	rows, err := q.db.QueryContext(ctx, listPayments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PaymentInformation
	for rows.Next() {
		var i PaymentInformation
		if err := scanPayment(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getPaymentByOrderID = `-- name: GetPaymentByOrderID :one
SELECT id, order_id, card_number, card_expiry_month, card_expiry_year, card_cvc, billing_name, billing_email, billing_phone, billing_address, billing_city, billing_state, billing_zip, billing_country, amount_cents, status, created_at
FROM payment_information
WHERE order_id = ?
`

func (q *Queries) GetPaymentByOrderID(ctx context.Context, orderID string) (PaymentInformation, error) {
	row := q.db.QueryRowContext(ctx, getPaymentByOrderID, orderID)
	var i PaymentInformation
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.CardNumber,
		&i.CardExpiryMonth,
		&i.CardExpiryYear,
		&i.CardCvc,
		&i.BillingName,
		&i.BillingEmail,
		&i.BillingPhone,
		&i.BillingAddress,
		&i.BillingCity,
		&i.BillingState,
		&i.BillingZip,
		&i.BillingCountry,
		&i.AmountCents,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

const createPayment = `-- name: CreatePayment :one
INSERT INTO payment_information (id, order_id, card_number, card_expiry_month, card_expiry_year, card_cvc, billing_name, billing_email, billing_phone, billing_address, billing_city, billing_state, billing_zip, billing_country, amount_cents, status)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING id, order_id, card_number, card_expiry_month, card_expiry_year, card_cvc, billing_name, billing_email, billing_phone, billing_address, billing_city, billing_state, billing_zip, billing_country, amount_cents, status, created_at
`

type CreatePaymentParams struct {
	ID              string
	OrderID         string
	CardNumber      string
	CardExpiryMonth string
	CardExpiryYear  string
	CardCvc         string
	BillingName     string
	BillingEmail    string
	BillingPhone    sql.NullString
	BillingAddress  string
	BillingCity     string
	BillingState    string
	BillingZip      string
	BillingCountry  string
	AmountCents     int64
	Status          string
}

// CreatePayment inserts the one payment record a completed checkout
// produces. Records are never updated afterwards.
func (q *Queries) CreatePayment(ctx context.Context, arg CreatePaymentParams) (PaymentInformation, error) {
	row := q.db.QueryRowContext(ctx, createPayment,
		arg.ID,
		arg.OrderID,
		arg.CardNumber,
		arg.CardExpiryMonth,
		arg.CardExpiryYear,
		arg.CardCvc,
		arg.BillingName,
		arg.BillingEmail,
		arg.BillingPhone,
		arg.BillingAddress,
		arg.BillingCity,
		arg.BillingState,
		arg.BillingZip,
		arg.BillingCountry,
		arg.AmountCents,
		arg.Status,
	)
	var i PaymentInformation
	err := row.Scan(
		&i.ID,
		&i.OrderID,
		&i.CardNumber,
		&i.CardExpiryMonth,
		&i.CardExpiryYear,
		&i.CardCvc,
		&i.BillingName,
		&i.BillingEmail,
		&i.BillingPhone,
		&i.BillingAddress,
		&i.BillingCity,
		&i.BillingState,
		&i.BillingZip,
		&i.BillingCountry,
		&i.AmountCents,
		&i.Status,
		&i.CreatedAt,
	)
	return i, err
}

func scanPayment(rows *sql.Rows, i *PaymentInformation) error {
	return rows.Scan(
		&i.ID,
		&i.OrderID,
		&i.CardNumber,
		&i.CardExpiryMonth,
		&i.CardExpiryYear,
		&i.CardCvc,
		&i.BillingName,
		&i.BillingEmail,
		&i.BillingPhone,
		&i.BillingAddress,
		&i.BillingCity,
		&i.BillingState,
		&i.BillingZip,
		&i.BillingCountry,
		&i.AmountCents,
		&i.Status,
		&i.CreatedAt,
	)
}
