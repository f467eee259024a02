package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mybae/storefront/internal/toast"
	"github.com/mybae/storefront/internal/uploads"
	"github.com/mybae/storefront/storage"
	"github.com/mybae/storefront/storage/db"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminTest(t *testing.T) (*echo.Echo, *AdminHandler, *db.Queries, string) {
	t.Helper()

	database, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	uploadDir := t.TempDir()
	h := NewAdminHandler(
		storage.NewFromDB(database),
		uploads.New(uploadDir, "/public/uploads", 10<<20),
		toast.NewManager(toast.DefaultTTL),
		"http://localhost:8080",
	)

	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok {
			c.Response().WriteHeader(he.Code)
		} else {
			c.Response().WriteHeader(500)
		}
	}
	h.Register(e.Group("/admin"))

	return e, h, queries, uploadDir
}

func seedProduct(t *testing.T, queries *db.Queries) db.Product {
	t.Helper()

	product, err := queries.UpsertProduct(context.Background(), db.UpsertProductParams{
		ID:         ulid.Make().String(),
		Name:       "Walnut Desk Organizer",
		PriceCents: 4900,
		InStock:    sql.NullBool{Bool: true, Valid: true},
		UpdatedAt:  time.Now(),
	})
	require.NoError(t, err)
	return product
}

func formPost(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

type uploadFile struct {
	name    string
	content []byte
}

func multipartPost(t *testing.T, path, field string, files []uploadFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := writer.CreateFormFile(field, f.name)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", path, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestConsoleTabs(t *testing.T) {
	e, _, queries, _ := setupAdminTest(t)
	seedProduct(t, queries)

	for _, tab := range []string{"", "product", "settings", "messages", "reviews", "payments", "bogus"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest("GET", "/admin?tab="+tab, nil))
		assert.Equal(t, http.StatusOK, rec.Code, "tab %q should render", tab)
	}
}

func TestProductSave(t *testing.T) {
	e, h, queries, _ := setupAdminTest(t)

	form := url.Values{
		"name":              {"Walnut Desk Organizer"},
		"price":             {"49.00"},
		"short_description": {"Keeps pens in line"},
		"in_stock":          {"true"},
	}

	t.Run("creates the product", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formPost("/admin/product", form))

		require.Equal(t, http.StatusSeeOther, rec.Code)

		product, err := queries.GetProduct(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Walnut Desk Organizer", product.Name)
		assert.EqualValues(t, 4900, product.PriceCents)
		assert.True(t, product.InStock.Bool)

		byID, err := queries.GetProductByID(context.Background(), product.ID)
		require.NoError(t, err)
		assert.Equal(t, product, byID)
	})

	t.Run("resave keeps the same row", func(t *testing.T) {
		before, err := queries.GetProduct(context.Background())
		require.NoError(t, err)

		updated := url.Values{
			"name":     {"Walnut Desk Organizer v2"},
			"price":    {"59.00"},
			"in_stock": {"false"},
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formPost("/admin/product", updated))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		after, err := queries.GetProduct(context.Background())
		require.NoError(t, err)
		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, "Walnut Desk Organizer v2", after.Name)
		assert.EqualValues(t, 5900, after.PriceCents)
		assert.False(t, after.InStock.Bool)
	})

	t.Run("rejects bad price", func(t *testing.T) {
		bad := url.Values{"name": {"X"}, "price": {"free"}}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formPost("/admin/product", bad))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("overlapping writes get 409", func(t *testing.T) {
		h.productSaving.Store(true)
		defer h.productSaving.Store(false)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formPost("/admin/product", form))
		assert.Equal(t, http.StatusConflict, rec.Code)

		// Media and video uploads share the guard: a save in flight
		// blocks them and vice versa.
		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, multipartPost(t, "/admin/product/media", "files", []uploadFile{{"late.jpg", []byte("jpeg")}}))
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = httptest.NewRecorder()
		e.ServeHTTP(rec, multipartPost(t, "/admin/product/video", "file", []uploadFile{{"late.mp4", []byte("vid")}}))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestMediaUpload(t *testing.T) {
	e, _, queries, uploadDir := setupAdminTest(t)
	product := seedProduct(t, queries)

	files := []uploadFile{
		{"first.jpg", []byte("jpeg-one")},
		{"second.jpg", []byte("jpeg-two")},
		{"third.png", []byte("png-three")},
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartPost(t, "/admin/product/media", "files", files))

	require.Equal(t, http.StatusSeeOther, rec.Code)

	media, err := queries.ListProductMedia(context.Background(), product.ID)
	require.NoError(t, err)
	require.Len(t, media, 3)

	// Stored files exist and keep their extensions.
	for i, m := range media {
		name := strings.TrimPrefix(m.Url, "/public/uploads/")
		content, err := os.ReadFile(filepath.Join(uploadDir, name))
		require.NoError(t, err)
		assert.Equal(t, files[i].content, content, "gallery order should match submission order")
	}
	assert.True(t, strings.HasSuffix(media[2].Url, ".png"))

	t.Run("delete removes the row and the file", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formPost("/admin/product/media/delete", url.Values{"url": {media[0].Url}}))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		remaining, err := queries.ListProductMedia(context.Background(), product.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, 2)

		name := strings.TrimPrefix(media[0].Url, "/public/uploads/")
		_, err = os.Stat(filepath.Join(uploadDir, name))
		assert.True(t, os.IsNotExist(err), "deleted media file should be gone from disk")
	})

	t.Run("upload without a product is rejected", func(t *testing.T) {
		e2, _, _, _ := setupAdminTest(t)
		rec := httptest.NewRecorder()
		e2.ServeHTTP(rec, multipartPost(t, "/admin/product/media", "files", files[:1]))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestVideoReplace(t *testing.T) {
	e, _, queries, _ := setupAdminTest(t)
	product := seedProduct(t, queries)

	upload := func(name, content string) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, multipartPost(t, "/admin/product/video", "file", []uploadFile{{name, []byte(content)}}))
		require.Equal(t, http.StatusSeeOther, rec.Code)
	}

	upload("demo-one.mp4", "video-one")

	count, err := queries.CountProductVideos(context.Background(), product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	first, err := queries.GetLatestProductVideo(context.Background(), product.ID)
	require.NoError(t, err)

	upload("demo-two.mp4", "video-two")

	count, err = queries.CountProductVideos(context.Background(), product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "a product holds at most one video")

	second, err := queries.GetLatestProductVideo(context.Background(), product.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.Url, second.Url)

	t.Run("delete clears the video", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formPost("/admin/product/video/delete", url.Values{}))
		require.Equal(t, http.StatusSeeOther, rec.Code)

		count, err := queries.CountProductVideos(context.Background(), product.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})
}

func TestSettingsSave(t *testing.T) {
	e, _, queries, _ := setupAdminTest(t)

	form := url.Values{
		"site_name":       {"Bae's Woodshop"},
		"contact_email":   {"hello@example.com"},
		"contact_phone":   {"555-0100"},
		"contact_address": {"1 Sawdust Lane"},
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, formPost("/admin/settings", form))

	require.Equal(t, http.StatusSeeOther, rec.Code)

	settings, err := queries.GetSiteSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bae's Woodshop", settings.SiteName)
	assert.Equal(t, "hello@example.com", settings.ContactEmail.String)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, formPost("/admin/settings", url.Values{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "site name is required")

	// Renaming the site must not wipe the stored contact info.
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, formPost("/admin/settings", url.Values{"site_name": {"Bae's Workshop"}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	settings, err = queries.GetSiteSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bae's Workshop", settings.SiteName)
	assert.Equal(t, "hello@example.com", settings.ContactEmail.String)
}

func TestContactInfoSave(t *testing.T) {
	e, _, queries, _ := setupAdminTest(t)

	t.Run("rejected without a settings row", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formPost("/admin/contact-info", url.Values{"contact_email": {"new@example.com"}}))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, formPost("/admin/settings", url.Values{
		"site_name":     {"Bae's Woodshop"},
		"contact_email": {"hello@example.com"},
	}))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, formPost("/admin/contact-info", url.Values{
		"contact_email":   {"orders@example.com"},
		"contact_phone":   {"555-0199"},
		"contact_address": {"2 Sawdust Lane"},
	}))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin?tab=settings", rec.Header().Get("Location"))

	settings, err := queries.GetSiteSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bae's Woodshop", settings.SiteName, "site name stays untouched")
	assert.Equal(t, "orders@example.com", settings.ContactEmail.String)
	assert.Equal(t, "555-0199", settings.ContactPhone.String)
	assert.Equal(t, "2 Sawdust Lane", settings.ContactAddress.String)
}

func TestAssetUpload(t *testing.T) {
	e, _, queries, _ := setupAdminTest(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartPost(t, "/admin/assets/logo", "file", []uploadFile{{"logo.svg", []byte("<svg/>")}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	assets, err := queries.ListSiteAssets(context.Background())
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, db.AssetTypeLogo, assets[0].Type)

	// Replacing keeps a single row per type.
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, multipartPost(t, "/admin/assets/logo", "file", []uploadFile{{"logo2.svg", []byte("<svg2/>")}}))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	assets, err = queries.ListSiteAssets(context.Background())
	require.NoError(t, err)
	assert.Len(t, assets, 1)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, multipartPost(t, "/admin/assets/banner", "file", []uploadFile{{"b.png", []byte("x")}}))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown asset type should be rejected")
}

func TestMessageRead(t *testing.T) {
	e, _, queries, _ := setupAdminTest(t)

	msg, err := queries.CreateContactMessage(context.Background(), db.CreateContactMessageParams{
		ID:      ulid.Make().String(),
		Email:   "visitor@example.com",
		Message: "Do you ship overseas?",
	})
	require.NoError(t, err)
	require.False(t, msg.Read)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, formPost("/admin/messages/"+msg.ID+"/read", url.Values{}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin?tab=messages", rec.Header().Get("Location"))

	messages, err := queries.ListContactMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)
}

func TestReviewFeatureToggle(t *testing.T) {
	e, _, queries, _ := setupAdminTest(t)
	product := seedProduct(t, queries)

	review, err := queries.CreateProductReview(context.Background(), db.CreateProductReviewParams{
		ID:        ulid.Make().String(),
		ProductID: product.ID,
		Name:      "Grace",
		Rating:    5,
		Comment:   "Exactly as pictured.",
	})
	require.NoError(t, err)
	require.False(t, review.Featured)

	toggle := func() db.ProductReview {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, formPost("/admin/reviews/"+review.ID+"/feature", url.Values{}))
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin?tab=reviews", rec.Header().Get("Location"))

		got, err := queries.GetProductReview(context.Background(), review.ID)
		require.NoError(t, err)
		return got
	}

	assert.True(t, toggle().Featured)
	assert.False(t, toggle().Featured, "second toggle should un-feature")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, formPost("/admin/reviews/unknown/feature", url.Values{}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReceiptPDF(t *testing.T) {
	e, _, queries, _ := setupAdminTest(t)
	seedProduct(t, queries)

	payment, err := queries.CreatePayment(context.Background(), db.CreatePaymentParams{
		ID:              ulid.Make().String(),
		OrderID:         "ORD-1735689600000",
		CardNumber:      "4242424242424242",
		CardExpiryMonth: "12",
		CardExpiryYear:  "30",
		CardCvc:         "123",
		BillingName:     "Ada Lovelace",
		BillingEmail:    "ada@example.com",
		BillingAddress:  "12 Analytical Way",
		BillingCity:     "London",
		BillingState:    "LN",
		BillingZip:      "55555",
		BillingCountry:  "United Kingdom",
		AmountCents:     4900,
		Status:          db.PaymentStatusReceived,
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/payments/"+payment.OrderID+"/receipt.pdf", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")), "response should be a PDF document")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/payments/ORD-0/receipt.pdf", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestToastDismiss(t *testing.T) {
	e, h, _, _ := setupAdminTest(t)

	id := h.toasts.Push(toast.KindSuccess, "Saved")
	require.Len(t, h.toasts.Active(), 1)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, formPost("/admin/toasts/"+id+"/dismiss", url.Values{}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, h.toasts.Active())
}
