package checkout

import (
	"regexp"
	"strings"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvcPattern    = regexp.MustCompile(`^\d{3,4}$`)
	digitsOnly    = regexp.MustCompile(`\D`)
)

// FieldErrors maps form field names to validation messages. An empty
// map means the payload is valid.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool { return len(e) == 0 }

// ValidateShipping checks the shipping step. Every field is required
// and the country must be one we ship to.
func ValidateShipping(s ShippingInfo) FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(s.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(s.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}
	if strings.TrimSpace(s.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(strings.TrimSpace(s.Email)) {
		errs["email"] = "Enter a valid email address"
	}
	if strings.TrimSpace(s.Address) == "" {
		errs["address"] = "Street address is required"
	}
	if strings.TrimSpace(s.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(s.State) == "" {
		errs["state"] = "State is required"
	}
	if strings.TrimSpace(s.Zip) == "" {
		errs["zip"] = "ZIP code is required"
	}
	if !validCountry(s.Country) {
		errs["country"] = "Select a country we ship to"
	}

	return errs
}

// ValidateBilling checks the payment step. Callers resolve
// SameAsShipping before validation so the address fields are always
// populated here.
func ValidateBilling(b BillingInfo) FieldErrors {
	errs := FieldErrors{}

	card := NormalizeCardNumber(b.CardNumber)
	if len(card) != 16 {
		errs["card_number"] = "Card number must be 16 digits"
	}
	if !expiryPattern.MatchString(b.Expiry) {
		errs["expiry"] = "Expiry must be MM/YY"
	}
	if !cvcPattern.MatchString(b.Cvc) {
		errs["cvc"] = "CVC must be 3 or 4 digits"
	}

	if strings.TrimSpace(b.Name) == "" {
		errs["name"] = "Name on card is required"
	}
	// Email is optional on the billing step; blank falls back to the
	// shipping email.
	if e := strings.TrimSpace(b.Email); e != "" && !emailPattern.MatchString(e) {
		errs["email"] = "Enter a valid email address"
	}
	if strings.TrimSpace(b.Address) == "" {
		errs["address"] = "Billing address is required"
	}
	if strings.TrimSpace(b.City) == "" {
		errs["city"] = "City is required"
	}
	if strings.TrimSpace(b.State) == "" {
		errs["state"] = "State is required"
	}
	if strings.TrimSpace(b.Zip) == "" {
		errs["zip"] = "ZIP code is required"
	}
	if !validCountry(b.Country) {
		errs["country"] = "Select a country we ship to"
	}

	return errs
}

// NormalizeCardNumber strips every non-digit and caps the result at
// 16 digits, matching what the payment form submits.
func NormalizeCardNumber(input string) string {
	digits := digitsOnly.ReplaceAllString(input, "")
	if len(digits) > 16 {
		digits = digits[:16]
	}
	return digits
}

// FormatCardNumber renders a card number as space-separated groups of
// four for display, e.g. "1234 5678 9012 3456".
func FormatCardNumber(input string) string {
	digits := NormalizeCardNumber(input)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiry inserts the slash into a raw MM YY digit string, e.g.
// "1227" becomes "12/27".
func FormatExpiry(input string) string {
	digits := digitsOnly.ReplaceAllString(input, "")
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

func validCountry(country string) bool {
	for _, c := range Countries {
		if c == country {
			return true
		}
	}
	return false
}
