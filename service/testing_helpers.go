package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mybae/storefront/internal/auth"
	"github.com/mybae/storefront/internal/jobs"
	"github.com/mybae/storefront/storage"
	"github.com/mybae/storefront/storage/db"
	"github.com/oklog/ulid/v2"
)

// setupTestService creates a service instance with an in-memory database for testing
func setupTestService(t *testing.T) *Service {
	t.Helper()

	database, _, cleanup, err := storage.NewTestDB()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(cleanup)

	store := storage.NewFromDB(database)

	config := &Config{
		Environment: "test",
		Port:        "8080",
		BaseURL:     "http://localhost:8080",
	}
	config.Clerk.PublishableKey = "pk_test_c3RvcmVmcm9udA"
	config.Upload.Dir = t.TempDir()
	config.Upload.MaxSize = 10 << 20

	return New(store, config)
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	// Disable Echo's default error handler for cleaner test output
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); ok {
			c.Response().WriteHeader(he.Code)
		} else {
			c.Response().WriteHeader(500)
		}
	}

	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}

// createTestProduct seeds the single product row.
func createTestProduct(t *testing.T, queries *db.Queries, inStock bool) db.Product {
	t.Helper()

	product, err := queries.UpsertProduct(context.Background(), db.UpsertProductParams{
		ID:               ulid.Make().String(),
		Name:             "Walnut Desk Organizer",
		PriceCents:       4900,
		ShortDescription: sql.NullString{String: "A desk organizer", Valid: true},
		InStock:          sql.NullBool{Bool: inStock, Valid: true},
		UpdatedAt:        time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to create test product: %v", err)
	}
	return product
}

// createTestDraft seeds a checkout draft for the given product,
// expiring a full TTL from now.
func createTestDraft(t *testing.T, queries *db.Queries, product db.Product) db.CheckoutDraft {
	t.Helper()

	draft, err := queries.CreateCheckoutDraft(context.Background(), db.CreateCheckoutDraftParams{
		ID:                ulid.Make().String(),
		ProductName:       product.Name,
		ProductPriceCents: product.PriceCents,
		ExpiresAt:         time.Now().Add(jobs.DraftTTL),
	})
	if err != nil {
		t.Fatalf("failed to create test draft: %v", err)
	}
	return draft
}

// completeTestShipping fills in the draft's shipping block.
func completeTestShipping(t *testing.T, queries *db.Queries, draftID string) db.CheckoutDraft {
	t.Helper()

	draft, err := queries.SetDraftShipping(context.Background(), db.SetDraftShippingParams{
		FirstName: sql.NullString{String: "Ada", Valid: true},
		LastName:  sql.NullString{String: "Lovelace", Valid: true},
		Email:     sql.NullString{String: "ada@example.com", Valid: true},
		Address:   sql.NullString{String: "12 Analytical Way", Valid: true},
		City:      sql.NullString{String: "London", Valid: true},
		State:     sql.NullString{String: "LN", Valid: true},
		ZipCode:   sql.NullString{String: "55555", Valid: true},
		Country:   sql.NullString{String: "United Kingdom", Valid: true},
		ID:        draftID,
	})
	if err != nil {
		t.Fatalf("failed to complete test shipping: %v", err)
	}
	return draft
}

// createTestUser creates a user row directly, bypassing Clerk.
func createTestUser(t *testing.T, queries *db.Queries, email string, admin bool) *db.User {
	t.Helper()

	user, err := queries.CreateUser(context.Background(), db.CreateUserParams{
		ID:    ulid.Make().String(),
		Email: email,
	})
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	if admin {
		if err := queries.SetUserAdmin(context.Background(), db.SetUserAdminParams{IsAdmin: true, ID: user.ID}); err != nil {
			t.Fatalf("failed to promote test user: %v", err)
		}
		user.IsAdmin = true
	}
	return &user
}

// setAuthUser sets an authenticated user in the Echo context (simulates auth middleware)
func setAuthUser(c echo.Context, user *db.User) {
	c.Set(auth.DBUserKey, user)
	c.Set(auth.IsAuthenticatedKey, true)
}
