package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/mybae/storefront/storage"
	"github.com/mybae/storefront/storage/db"
)

const (
	numReviews  = 12
	numMessages = 8
	numPayments = 6
)

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/storefront.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	queries := store.Queries

	settings, err := queries.UpsertSiteSettings(ctx, db.UpsertSiteSettingsParams{
		ID:             db.SettingsRowID,
		SiteName:       "Bae's Woodshop",
		ContactEmail:   sql.NullString{String: gofakeit.Email(), Valid: true},
		ContactPhone:   sql.NullString{String: gofakeit.Phone(), Valid: true},
		ContactAddress: sql.NullString{String: gofakeit.Street() + ", " + gofakeit.City(), Valid: true},
		UpdatedAt:      time.Now(),
	})
	if err != nil {
		log.Fatalf("Failed to seed site settings: %v", err)
	}
	fmt.Printf("Seeded site settings for %s\n", settings.SiteName)

	productID := uuid.New().String()
	if existing, err := queries.GetProduct(ctx); err == nil {
		productID = existing.ID
	}
	product, err := queries.UpsertProduct(ctx, db.UpsertProductParams{
		ID:               productID,
		Name:             "Walnut Desk Organizer",
		PriceCents:       4900,
		ShortDescription: sql.NullString{String: "Hand-finished walnut organizer with five compartments.", Valid: true},
		LongDescription:  sql.NullString{String: gofakeit.Paragraph(2, 4, 12, " "), Valid: true},
		SeoTitle:         sql.NullString{String: "Walnut Desk Organizer | Bae's Woodshop", Valid: true},
		SeoDescription:   sql.NullString{String: "A hand-finished walnut desk organizer, made to order.", Valid: true},
		InStock:          sql.NullBool{Bool: true, Valid: true},
		UpdatedAt:        time.Now(),
	})
	if err != nil {
		log.Fatalf("Failed to seed product: %v", err)
	}
	fmt.Printf("Seeded product %s (%s)\n", product.Name, product.ID)

	for i := 0; i < numReviews; i++ {
		_, err := queries.CreateProductReview(ctx, db.CreateProductReviewParams{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Name:      gofakeit.Name(),
			Rating:    int64(gofakeit.Number(3, 5)),
			Comment:   gofakeit.Sentence(gofakeit.Number(8, 20)),
		})
		if err != nil {
			log.Fatalf("Failed to seed review: %v", err)
		}
	}
	fmt.Printf("Seeded %d reviews\n", numReviews)

	for i := 0; i < numMessages; i++ {
		msg, err := queries.CreateContactMessage(ctx, db.CreateContactMessageParams{
			ID:      uuid.New().String(),
			Email:   gofakeit.Email(),
			Message: gofakeit.Paragraph(1, 3, 10, " "),
		})
		if err != nil {
			log.Fatalf("Failed to seed contact message: %v", err)
		}
		if i%2 == 0 {
			if err := queries.MarkMessageRead(ctx, msg.ID); err != nil {
				log.Fatalf("Failed to mark seeded message read: %v", err)
			}
		}
	}
	fmt.Printf("Seeded %d contact messages\n", numMessages)

	for i := 0; i < numPayments; i++ {
		card := gofakeit.CreditCard()
		_, err := queries.CreatePayment(ctx, db.CreatePaymentParams{
			ID:              uuid.New().String(),
			OrderID:         fmt.Sprintf("ORD-%d", time.Now().Add(-time.Duration(i)*26*time.Hour).UnixMilli()),
			CardNumber:      card.Number,
			CardExpiryMonth: fmt.Sprintf("%02d", gofakeit.Number(1, 12)),
			CardExpiryYear:  fmt.Sprintf("%02d", gofakeit.Number(26, 31)),
			CardCvc:         card.Cvv,
			BillingName:     gofakeit.Name(),
			BillingEmail:    gofakeit.Email(),
			BillingAddress:  gofakeit.Street(),
			BillingCity:     gofakeit.City(),
			BillingState:    gofakeit.StateAbr(),
			BillingZip:      gofakeit.Zip(),
			BillingCountry:  "United States",
			AmountCents:     product.PriceCents,
			Status:          db.PaymentStatusReceived,
		})
		if err != nil {
			log.Fatalf("Failed to seed payment: %v", err)
		}
	}
	fmt.Printf("Seeded %d payments\n", numPayments)
}
