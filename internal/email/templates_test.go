package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOrderEmail(t *testing.T) {
	data := &OrderData{
		OrderID:       "ORD-1735689600000",
		CustomerName:  "Jordan Smith",
		CustomerEmail: "jordan@example.com",
		OrderDate:     "June 1, 2025",
		ProductName:   "Walnut Desk Organizer",
		AmountCents:   12999,
		ShippingAddr: Address{
			Name:    "Jordan Smith",
			Line1:   "12 Main St",
			City:    "Eau Claire",
			State:   "WI",
			Zip:     "54701",
			Country: "United States",
		},
	}

	html, err := renderOrderEmail(customerOrderTemplate, data)
	require.NoError(t, err)
	assert.Contains(t, html, "ORD-1735689600000")
	assert.Contains(t, html, "Walnut Desk Organizer")
	assert.Contains(t, html, "$129.99")
	assert.Contains(t, html, "Eau Claire, WI 54701")

	adminHTML, err := renderOrderEmail(adminOrderTemplate, data)
	require.NoError(t, err)
	assert.Contains(t, adminHTML, "jordan@example.com")
}

func TestRenderContactEmailEscapesHTML(t *testing.T) {
	html, err := renderContactEmail(&ContactData{
		Email:       "visitor@example.com",
		Message:     "<script>alert(1)</script>",
		SubmittedAt: "June 1, 2025 at 12:00 PM",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "visitor@example.com")
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$12.34", FormatCents(1234))
	assert.Equal(t, "$0.05", FormatCents(5))
	assert.Equal(t, "$100.00", FormatCents(10000))
}

func TestUnconfiguredServiceRefusesToSend(t *testing.T) {
	s := NewService(Config{})
	assert.False(t, s.Configured())
	err := s.Send(&Email{To: []string{"x@example.com"}, Subject: "hi", Body: "hi"})
	assert.Error(t, err)
}
