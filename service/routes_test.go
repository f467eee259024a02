package service

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/mybae/storefront/storage/db"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formRequest(method, path string, form url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestPublicRoutes(t *testing.T) {
	e, svc := setupTestEcho(t)
	createTestProduct(t, svc.storage.Queries, true)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"Home page", "GET", "/", http.StatusOK},
		{"Health check", "GET", "/health", http.StatusOK},
		{"Media API", "GET", "/api/product/media", http.StatusOK},
		{"Admin login page", "GET", "/admin/login", http.StatusOK},
		{"Confirmation without order", "GET", "/confirmation", http.StatusSeeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code,
				"Route %s %s should return %d, got %d",
				tt.method, tt.path, tt.wantStatus, rec.Code)
		})
	}
}

func TestAdminLoginPage(t *testing.T) {
	e, _ := setupTestEcho(t)

	req := httptest.NewRequest("GET", "/admin/login?next=/admin", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "clerk.browser.js", "login page must load the Clerk browser bundle")
	assert.Contains(t, body, `data-clerk-publishable-key="pk_test_c3RvcmVmcm9udA"`)
	assert.Contains(t, body, `data-next="/admin"`)
}

func TestHomeWithoutProduct(t *testing.T) {
	e, _ := setupTestEcho(t)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "being set up")
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	e, _ := setupTestEcho(t)

	t.Run("browser request redirects to login", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Accept", "text/html")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Contains(t, rec.Header().Get("Location"), "/admin/login?next=")
	})

	t.Run("non-browser request gets 401", func(t *testing.T) {
		tests := []struct {
			method string
			path   string
		}{
			{"GET", "/admin"},
			{"POST", "/admin/product"},
			{"POST", "/admin/settings"},
			{"POST", "/admin/contact-info"},
			{"POST", "/admin/product/media"},
			{"GET", "/admin/payments/ORD-1/receipt.pdf"},
		}
		for _, tt := range tests {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code,
				"Route %s %s should return 401 without auth", tt.method, tt.path)
		}
	})
}

func TestReviewSubmit(t *testing.T) {
	e, svc := setupTestEcho(t)
	createTestProduct(t, svc.storage.Queries, true)

	t.Run("valid review is stored", func(t *testing.T) {
		form := url.Values{
			"name":    {"Grace"},
			"rating":  {"5"},
			"comment": {"Exactly as pictured."},
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest("POST", "/reviews", form))

		require.Equal(t, http.StatusSeeOther, rec.Code)

		reviews, err := svc.storage.Queries.ListProductReviews(context.Background())
		require.NoError(t, err)
		require.Len(t, reviews, 1)
		assert.Equal(t, "Grace", reviews[0].Name)
		assert.EqualValues(t, 5, reviews[0].Rating)
		assert.False(t, reviews[0].Featured)
	})

	t.Run("rating outside 1-5 is rejected", func(t *testing.T) {
		for _, rating := range []string{"0", "6", "abc", ""} {
			form := url.Values{
				"name":    {"Grace"},
				"rating":  {rating},
				"comment": {"nope"},
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, formRequest("POST", "/reviews", form))

			assert.Equal(t, http.StatusBadRequest, rec.Code, "rating %q should be rejected", rating)
		}
	})
}

func TestContactSubmit(t *testing.T) {
	e, svc := setupTestEcho(t)
	createTestProduct(t, svc.storage.Queries, true)

	form := url.Values{
		"email":   {"visitor@example.com"},
		"message": {"Do you ship overseas?"},
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, formRequest("POST", "/contact/submit", form))

	require.Equal(t, http.StatusSeeOther, rec.Code)

	messages, err := svc.storage.Queries.ListContactMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "visitor@example.com", messages[0].Email)
	assert.False(t, messages[0].Read)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, formRequest("POST", "/contact/submit", url.Values{"email": {"x@example.com"}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty message should be rejected")
}

func TestCheckoutStart(t *testing.T) {
	t.Run("creates a draft snapshotting the product", func(t *testing.T) {
		e, svc := setupTestEcho(t)
		product := createTestProduct(t, svc.storage.Queries, true)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest("POST", "/checkout/start", url.Values{}))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		location := rec.Header().Get("Location")
		require.True(t, strings.HasPrefix(location, "/checkout?draft="), "unexpected redirect %q", location)

		draftID := strings.TrimPrefix(location, "/checkout?draft=")
		draft, err := svc.storage.Queries.GetCheckoutDraft(context.Background(), draftID)
		require.NoError(t, err)
		assert.Equal(t, product.Name, draft.ProductName)
		assert.Equal(t, product.PriceCents, draft.ProductPriceCents)
		assert.False(t, draft.ShippingComplete)
		assert.True(t, draft.ExpiresAt.After(time.Now()), "draft should expire in the future")
	})

	t.Run("sold out product returns 409", func(t *testing.T) {
		e, svc := setupTestEcho(t)
		createTestProduct(t, svc.storage.Queries, false)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest("POST", "/checkout/start", url.Values{}))

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestCheckoutDraftExpiry(t *testing.T) {
	e, svc := setupTestEcho(t)
	product := createTestProduct(t, svc.storage.Queries, true)

	t.Run("missing draft param redirects home", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/checkout", nil))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("unknown draft redirects home", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/checkout?draft=nope", nil))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	})

	t.Run("expired draft redirects home and is removed", func(t *testing.T) {
		expired, err := svc.storage.Queries.CreateCheckoutDraft(context.Background(), db.CreateCheckoutDraftParams{
			ID:                ulid.Make().String(),
			ProductName:       product.Name,
			ProductPriceCents: product.PriceCents,
			ExpiresAt:         time.Now().Add(-time.Minute),
		})
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/checkout?draft="+expired.ID, nil))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		_, err = svc.storage.Queries.GetCheckoutDraft(context.Background(), expired.ID)
		assert.ErrorIs(t, err, sql.ErrNoRows, "expired draft should be deleted on access")
	})
}

func TestCheckoutShippingSubmit(t *testing.T) {
	e, svc := setupTestEcho(t)
	product := createTestProduct(t, svc.storage.Queries, true)

	t.Run("valid shipping advances to payment", func(t *testing.T) {
		draft := createTestDraft(t, svc.storage.Queries, product)

		form := url.Values{
			"first_name": {"Ada"},
			"last_name":  {"Lovelace"},
			"email":      {"ada@example.com"},
			"address":    {"12 Analytical Way"},
			"city":       {"London"},
			"state":      {"LN"},
			"zip":        {"55555"},
			"country":    {"United Kingdom"},
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest("POST", "/checkout?draft="+draft.ID, form))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/payment?draft="+draft.ID, rec.Header().Get("Location"))

		saved, err := svc.storage.Queries.GetCheckoutDraft(context.Background(), draft.ID)
		require.NoError(t, err)
		assert.True(t, saved.ShippingComplete)
		assert.Equal(t, "Ada", saved.FirstName.String)
	})

	t.Run("invalid shipping re-renders the form", func(t *testing.T) {
		draft := createTestDraft(t, svc.storage.Queries, product)

		form := url.Values{
			"first_name": {"Ada"},
			"email":      {"not-an-email"},
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest("POST", "/checkout?draft="+draft.ID, form))

		assert.Equal(t, http.StatusOK, rec.Code, "validation failure should re-render, not redirect")

		saved, err := svc.storage.Queries.GetCheckoutDraft(context.Background(), draft.ID)
		require.NoError(t, err)
		assert.False(t, saved.ShippingComplete)
	})
}

func TestPaymentRequiresShipping(t *testing.T) {
	e, svc := setupTestEcho(t)
	product := createTestProduct(t, svc.storage.Queries, true)
	draft := createTestDraft(t, svc.storage.Queries, product)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/payment?draft="+draft.ID, nil))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/checkout?draft="+draft.ID, rec.Header().Get("Location"))
}

func TestPaymentSubmit(t *testing.T) {
	e, svc := setupTestEcho(t)
	product := createTestProduct(t, svc.storage.Queries, true)

	billingForm := func() url.Values {
		return url.Values{
			"card_number":      {"4242 4242 4242 4242"},
			"expiry":           {"12/30"},
			"cvc":              {"123"},
			"same_as_shipping": {"true"},
		}
	}

	t.Run("payment consumes the draft", func(t *testing.T) {
		draft := createTestDraft(t, svc.storage.Queries, product)
		completeTestShipping(t, svc.storage.Queries, draft.ID)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest("POST", "/payment?draft="+draft.ID, billingForm()))

		require.Equal(t, http.StatusSeeOther, rec.Code)
		location := rec.Header().Get("Location")
		require.True(t, strings.HasPrefix(location, "/confirmation?order=ORD-"), "unexpected redirect %q", location)

		orderID := strings.TrimPrefix(location, "/confirmation?order=")
		payment, err := svc.storage.Queries.GetPaymentByOrderID(context.Background(), orderID)
		require.NoError(t, err)
		assert.Equal(t, "4242424242424242", payment.CardNumber)
		assert.Equal(t, "12", payment.CardExpiryMonth)
		assert.Equal(t, "30", payment.CardExpiryYear)
		assert.Equal(t, "Ada Lovelace", payment.BillingName)
		assert.Equal(t, product.PriceCents, payment.AmountCents)
		assert.Equal(t, db.PaymentStatusReceived, payment.Status)

		_, err = svc.storage.Queries.GetCheckoutDraft(context.Background(), draft.ID)
		assert.ErrorIs(t, err, sql.ErrNoRows, "draft should be consumed by the payment")

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", location, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "confirmation page should load")
	})

	t.Run("double submit does not create a second order", func(t *testing.T) {
		draft := createTestDraft(t, svc.storage.Queries, product)
		completeTestShipping(t, svc.storage.Queries, draft.ID)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest("POST", "/payment?draft="+draft.ID, billingForm()))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		before, err := svc.storage.Queries.ListPayments(context.Background())
		require.NoError(t, err)

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest("POST", "/payment?draft="+draft.ID, billingForm()))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		after, err := svc.storage.Queries.ListPayments(context.Background())
		require.NoError(t, err)
		assert.Len(t, after, len(before), "replayed submit must not add a payment")
	})

	t.Run("invalid card re-renders the form", func(t *testing.T) {
		draft := createTestDraft(t, svc.storage.Queries, product)
		completeTestShipping(t, svc.storage.Queries, draft.ID)

		form := billingForm()
		form.Set("card_number", "1234")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formRequest("POST", "/payment?draft="+draft.ID, form))

		assert.Equal(t, http.StatusOK, rec.Code)

		_, err := svc.storage.Queries.GetCheckoutDraft(context.Background(), draft.ID)
		assert.NoError(t, err, "failed payment must leave the draft intact")
	})
}

func TestCarouselAPI(t *testing.T) {
	e, svc := setupTestEcho(t)
	product := createTestProduct(t, svc.storage.Queries, true)

	for i := 0; i < 3; i++ {
		_, err := svc.storage.Queries.CreateProductMedia(context.Background(), db.CreateProductMediaParams{
			ID:        ulid.Make().String(),
			ProductID: product.ID,
			Url:       "/public/uploads/test.jpg",
		})
		require.NoError(t, err)
	}

	// Render the home page so the rotator picks up the slide count.
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, formRequest("POST", "/api/carousel/next", url.Values{}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"index":1}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, formRequest("POST", "/api/carousel/prev", url.Values{}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"index":0}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, formRequest("POST", "/api/carousel/select", url.Values{"index": {"2"}}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"index":2}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, formRequest("POST", "/api/carousel/video", url.Values{"playing": {"true"}}))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNonExistentRoute(t *testing.T) {
	e, _ := setupTestEcho(t)

	req := httptest.NewRequest("GET", "/this-route-does-not-exist", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
