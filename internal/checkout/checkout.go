// Package checkout holds the single-product checkout flow's pure
// logic: shipping and billing validation, card input formatting, and
// order id generation.
package checkout

import (
	"fmt"
	"time"
)

// ShippingInfo is the shipping step's form payload.
type ShippingInfo struct {
	FirstName string
	LastName  string
	Email     string
	Address   string
	City      string
	State     string
	Zip       string
	Country   string
}

// BillingInfo is the payment step's form payload. When SameAsShipping
// is set the address fields are copied from the draft's shipping info
// before validation.
type BillingInfo struct {
	CardNumber     string
	Expiry         string
	Cvc            string
	Name           string
	Email          string
	Phone          string
	Address        string
	City           string
	State          string
	Zip            string
	Country        string
	SameAsShipping bool
}

// Countries lists the destinations the shop ships to, in display
// order.
var Countries = []string{
	"United States",
	"Canada",
	"United Kingdom",
	"Australia",
	"Germany",
	"France",
	"Japan",
}

// NewOrderID returns an order identifier derived from the current
// time, e.g. ORD-1735689600000. Millisecond resolution keeps ids
// unique enough for a single-product shop; the database enforces
// uniqueness as a backstop.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}
