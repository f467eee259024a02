package db

import (
	"database/sql"
	"time"
)

type Product struct {
	ID               string
	Name             string
	PriceCents       int64
	ShortDescription sql.NullString
	LongDescription  sql.NullString
	SeoTitle         sql.NullString
	SeoDescription   sql.NullString
	InStock          sql.NullBool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ProductMedium struct {
	ID        string
	ProductID string
	Url       string
	CreatedAt time.Time
}

type ProductVideo struct {
	ID        string
	ProductID string
	Url       string
	CreatedAt time.Time
}

type SiteSetting struct {
	ID             string
	SiteName       string
	ContactEmail   sql.NullString
	ContactPhone   sql.NullString
	ContactAddress sql.NullString
	UpdatedAt      time.Time
}

type SiteAsset struct {
	Type      string
	Url       string
	UpdatedAt time.Time
}

type ContactMessage struct {
	ID        string
	Email     string
	Message   string
	Read      bool
	CreatedAt time.Time
}

type ProductReview struct {
	ID        string
	ProductID string
	Name      string
	Rating    int64
	Comment   string
	Featured  bool
	CreatedAt time.Time
}

type PaymentInformation struct {
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
	CreatedAt       time.Time
}

type CheckoutDraft struct {
	ID                 string
	ProductName        string
	ProductPriceCents  int64
	ProductDescription sql.NullString
	ProductImageUrl    sql.NullString
	FirstName          sql.NullString
	LastName           sql.NullString
	Email              sql.NullString
	Address            sql.NullString
	City               sql.NullString
	State              sql.NullString
	ZipCode            sql.NullString
	Country            sql.NullString
	ShippingComplete   bool
	CreatedAt          time.Time
	ExpiresAt          time.Time
}

type User struct {
	ID        string
	ClerkID   sql.NullString
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
}
