package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mybae/storefront/internal/auth"
	"github.com/mybae/storefront/internal/carousel"
	"github.com/mybae/storefront/internal/checkout"
	"github.com/mybae/storefront/internal/email"
	"github.com/mybae/storefront/internal/handlers"
	"github.com/mybae/storefront/internal/jobs"
	"github.com/mybae/storefront/internal/ogimage"
	"github.com/mybae/storefront/internal/toast"
	"github.com/mybae/storefront/internal/uploads"
	"github.com/mybae/storefront/storage"
	"github.com/mybae/storefront/storage/db"
	adminview "github.com/mybae/storefront/views/admin"
	checkoutview "github.com/mybae/storefront/views/checkout"
	confirmationview "github.com/mybae/storefront/views/confirmation"
	"github.com/mybae/storefront/views/home"
	"github.com/mybae/storefront/views/layout"
	paymentview "github.com/mybae/storefront/views/payment"
	"github.com/oklog/ulid/v2"
)

type Service struct {
	storage      *storage.Storage
	config       *Config
	emailService *email.Service
	adminHandler *handlers.AdminHandler
	rotator      *carousel.Rotator
	draftReaper  *jobs.DraftReaper
	tickerDone   chan struct{}
}

func New(storage *storage.Storage, config *Config) *Service {
	emailService := email.NewService(email.Config{
		Host:     config.Email.SMTPHost,
		Port:     config.Email.SMTPPort,
		Username: config.Email.Username,
		Password: config.Email.Password,
		From:     config.Email.From,
		AdminTo:  config.Email.AdminTo,
	})

	uploadStore := uploads.New(config.Upload.Dir, "/public/uploads", config.Upload.MaxSize)
	toasts := toast.NewManager(toast.DefaultTTL)

	rotator := carousel.NewRotator(0, carousel.DefaultInterval, time.Now())
	if product, err := storage.Queries.GetProduct(context.Background()); err == nil {
		rotator.SetCount(slideCount(context.Background(), storage.Queries, product.ID), time.Now())
	}

	return &Service{
		storage:      storage,
		config:       config,
		emailService: emailService,
		adminHandler: handlers.NewAdminHandler(storage, uploadStore, toasts, config.BaseURL),
		rotator:      rotator,
		draftReaper:  jobs.NewDraftReaper(storage),
		tickerDone:   make(chan struct{}),
	}
}

// StartBackground launches the draft reaper and the carousel autoplay
// ticker.
func (s *Service) StartBackground() {
	s.draftReaper.Start(context.Background())

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case now := <-ticker.C:
				s.rotator.Tick(now)
			case <-s.tickerDone:
				return
			}
		}
	}()
}

func (s *Service) StopBackground() {
	s.draftReaper.Stop()
	close(s.tickerDone)
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// CLERK_SECRET_KEY configures the default Clerk backend. Tests
	// don't need it since they never call Clerk APIs.
	clerk.SetKey(s.config.Clerk.SecretKey)

	withAuth := e.Group("")
	withAuth.Use(auth.SessionMiddleware(s.storage))

	// Storefront
	withAuth.GET("/", s.handleHome)
	withAuth.POST("/reviews", s.handleReviewSubmit)
	withAuth.POST("/contact/submit", s.handleContactSubmit)

	// Carousel + media API
	withAuth.GET("/api/product/media", s.handleProductMedia)
	withAuth.POST("/api/carousel/next", s.handleCarouselNext)
	withAuth.POST("/api/carousel/prev", s.handleCarouselPrev)
	withAuth.POST("/api/carousel/select", s.handleCarouselSelect)
	withAuth.POST("/api/carousel/video", s.handleCarouselVideo)

	// Checkout flow
	withAuth.POST("/checkout/start", s.handleCheckoutStart)
	withAuth.GET("/checkout", s.handleCheckoutShow)
	withAuth.POST("/checkout", s.handleCheckoutSubmit)
	withAuth.GET("/payment", s.handlePaymentShow)
	withAuth.POST("/payment", s.handlePaymentSubmit)
	withAuth.GET("/confirmation", s.handleConfirmation)

	e.GET("/health", s.handleHealth)

	// Admin console
	withAuth.GET("/admin/login", s.handleAdminLogin)
	adminGroup := withAuth.Group("/admin", auth.RequireAdmin())
	s.adminHandler.Register(adminGroup)
}

func (s *Service) pageMeta(c echo.Context) layout.PageMeta {
	return layout.NewPageMeta(c, s.storage.Queries, s.config.BaseURL)
}

func slideCount(ctx context.Context, queries *db.Queries, productID string) int {
	n := 0
	if media, err := queries.ListProductMedia(ctx, productID); err == nil {
		n = len(media)
	}
	if count, err := queries.CountProductVideos(ctx, productID); err == nil && count > 0 {
		n++
	}
	return n
}

func (s *Service) handleHome(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := s.storage.Queries.GetProduct(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.HTML(http.StatusOK, "<p>The shop is being set up. Check back soon.</p>")
		}
		slog.Error("failed to fetch product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load product")
	}

	media, err := s.storage.Queries.ListProductMedia(ctx, product.ID)
	if err != nil {
		slog.Error("failed to fetch product media", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load product media")
	}

	var video *db.ProductVideo
	if v, err := s.storage.Queries.GetLatestProductVideo(ctx, product.ID); err == nil {
		video = &v
	} else if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to fetch product video", "error", err)
	}

	reviews, err := s.storage.Queries.ListProductReviews(ctx)
	if err != nil {
		slog.Error("failed to fetch reviews", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load reviews")
	}

	settings, err := s.storage.Queries.GetSiteSettings(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to fetch site settings", "error", err)
	}

	s.rotator.SetCount(slideCountFrom(media, video), time.Now())

	meta := s.pageMeta(c).FromProduct(product)
	if _, err := os.Stat(ogimage.OutputPath); err == nil {
		meta = meta.WithOGImage(ogimage.PublicURL)
	} else if len(media) > 0 {
		meta = meta.WithOGImage(media[0].Url)
	}

	return Render(c, home.Index(home.Data{
		Meta:       meta,
		Product:    product,
		Media:      media,
		Video:      video,
		Reviews:    reviews,
		Settings:   settings,
		SlideIndex: s.rotator.Index(),
	}))
}

func slideCountFrom(media []db.ProductMedium, video *db.ProductVideo) int {
	n := len(media)
	if video != nil {
		n++
	}
	return n
}

func (s *Service) handleReviewSubmit(c echo.Context) error {
	ctx := c.Request().Context()

	name := strings.TrimSpace(c.FormValue("name"))
	comment := strings.TrimSpace(c.FormValue("comment"))
	rating, err := strconv.ParseInt(c.FormValue("rating"), 10, 64)
	if err != nil || rating < 1 || rating > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "Rating must be between 1 and 5")
	}
	if name == "" || comment == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name and review text are required")
	}

	product, err := s.storage.Queries.GetProduct(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No product to review")
	}

	_, err = s.storage.Queries.CreateProductReview(ctx, db.CreateProductReviewParams{
		ID:        ulid.Make().String(),
		ProductID: product.ID,
		Name:      name,
		Rating:    rating,
		Comment:   comment,
	})
	if err != nil {
		slog.Error("failed to create review", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to submit review")
	}

	return c.Redirect(http.StatusSeeOther, "/#reviews")
}

func (s *Service) handleContactSubmit(c echo.Context) error {
	ctx := c.Request().Context()

	emailAddr := strings.TrimSpace(c.FormValue("email"))
	message := strings.TrimSpace(c.FormValue("message"))
	if emailAddr == "" || message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and message are required")
	}

	msg, err := s.storage.Queries.CreateContactMessage(ctx, db.CreateContactMessageParams{
		ID:      ulid.Make().String(),
		Email:   emailAddr,
		Message: message,
	})
	if err != nil {
		slog.Error("failed to create contact message", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to submit message")
	}

	go func() {
		data := &email.ContactData{
			Email:       msg.Email,
			Message:     msg.Message,
			SubmittedAt: time.Now().Format("January 2, 2006 at 3:04 PM MST"),
		}
		if err := s.emailService.SendContactNotification(data); err != nil {
			slog.Error("failed to send contact notification", "error", err, "message_id", msg.ID)
		}
	}()

	return c.Redirect(http.StatusSeeOther, "/#contact")
}

// handleProductMedia returns the merged media list the carousel
// renders: photos in upload order, then the video if one exists.
func (s *Service) handleProductMedia(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := s.storage.Queries.GetProduct(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No product configured")
	}

	media, err := s.storage.Queries.ListProductMedia(ctx, product.ID)
	if err != nil {
		slog.Error("failed to fetch product media", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load media")
	}

	type slide struct {
		Type string `json:"type"`
		URL  string `json:"url"`
	}
	slides := make([]slide, 0, len(media)+1)
	for _, m := range media {
		slides = append(slides, slide{Type: "image", URL: m.Url})
	}
	if v, err := s.storage.Queries.GetLatestProductVideo(ctx, product.ID); err == nil {
		slides = append(slides, slide{Type: "video", URL: v.Url})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"slides": slides,
		"index":  s.rotator.Index(),
	})
}

func (s *Service) handleCarouselNext(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{"index": s.rotator.Next(time.Now())})
}

func (s *Service) handleCarouselPrev(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]int{"index": s.rotator.Prev(time.Now())})
}

func (s *Service) handleCarouselSelect(c echo.Context) error {
	i, err := strconv.Atoi(c.FormValue("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "index must be a number")
	}
	return c.JSON(http.StatusOK, map[string]int{"index": s.rotator.Select(i, time.Now())})
}

// handleCarouselVideo records whether the video slide is playing so
// autoplay holds still for it.
func (s *Service) handleCarouselVideo(c echo.Context) error {
	s.rotator.SetVideoActive(c.FormValue("playing") == "true", time.Now())
	return c.NoContent(http.StatusNoContent)
}

func (s *Service) handleCheckoutStart(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := s.storage.Queries.GetProduct(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No product configured")
	}
	if product.InStock.Valid && !product.InStock.Bool {
		return echo.NewHTTPError(http.StatusConflict, "This item is sold out")
	}

	params := db.CreateCheckoutDraftParams{
		ID:                uuid.NewString(),
		ProductName:       product.Name,
		ProductPriceCents: product.PriceCents,
		ExpiresAt:         time.Now().Add(jobs.DraftTTL),
	}
	if product.ShortDescription.Valid {
		params.ProductDescription = product.ShortDescription
	}
	if media, err := s.storage.Queries.ListProductMedia(ctx, product.ID); err == nil && len(media) > 0 {
		params.ProductImageUrl = sql.NullString{String: media[0].Url, Valid: true}
	}

	draft, err := s.storage.Queries.CreateCheckoutDraft(ctx, params)
	if err != nil {
		slog.Error("failed to create checkout draft", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to start checkout")
	}

	return c.Redirect(http.StatusSeeOther, "/checkout?draft="+draft.ID)
}

// loadDraft fetches the draft named in the request and enforces its
// expiry. A missing or expired draft silently redirects to the
// storefront root; ok reports whether the draft is usable.
func (s *Service) loadDraft(c echo.Context) (draft db.CheckoutDraft, ok bool, err error) {
	ctx := c.Request().Context()

	id := c.QueryParam("draft")
	if id == "" {
		return db.CheckoutDraft{}, false, c.Redirect(http.StatusFound, "/")
	}

	draft, err = s.storage.Queries.GetCheckoutDraft(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return db.CheckoutDraft{}, false, c.Redirect(http.StatusFound, "/")
		}
		slog.Error("failed to fetch checkout draft", "error", err)
		return db.CheckoutDraft{}, false, echo.NewHTTPError(http.StatusInternalServerError, "Failed to load checkout")
	}

	if time.Now().After(draft.ExpiresAt) {
		if _, err := s.storage.Queries.DeleteCheckoutDraft(ctx, draft.ID); err != nil {
			slog.Warn("failed to delete expired draft", "error", err, "draft_id", draft.ID)
		}
		return db.CheckoutDraft{}, false, c.Redirect(http.StatusFound, "/")
	}

	return draft, true, nil
}

func (s *Service) handleCheckoutShow(c echo.Context) error {
	draft, ok, err := s.loadDraft(c)
	if !ok {
		return err
	}

	meta := s.pageMeta(c)
	meta.Title = "Checkout - " + meta.SiteName

	return Render(c, checkoutview.Page(checkoutview.Data{
		Meta:      meta,
		Draft:     draft,
		Form:      shippingFromDraft(draft),
		Errors:    checkout.FieldErrors{},
		Countries: checkout.Countries,
	}))
}

func shippingFromDraft(draft db.CheckoutDraft) checkout.ShippingInfo {
	country := "United States"
	if draft.Country.Valid && draft.Country.String != "" {
		country = draft.Country.String
	}
	return checkout.ShippingInfo{
		FirstName: draft.FirstName.String,
		LastName:  draft.LastName.String,
		Email:     draft.Email.String,
		Address:   draft.Address.String,
		City:      draft.City.String,
		State:     draft.State.String,
		Zip:       draft.ZipCode.String,
		Country:   country,
	}
}

func (s *Service) handleCheckoutSubmit(c echo.Context) error {
	ctx := c.Request().Context()

	draft, ok, err := s.loadDraft(c)
	if !ok {
		return err
	}

	form := checkout.ShippingInfo{
		FirstName: strings.TrimSpace(c.FormValue("first_name")),
		LastName:  strings.TrimSpace(c.FormValue("last_name")),
		Email:     strings.TrimSpace(c.FormValue("email")),
		Address:   strings.TrimSpace(c.FormValue("address")),
		City:      strings.TrimSpace(c.FormValue("city")),
		State:     strings.TrimSpace(c.FormValue("state")),
		Zip:       strings.TrimSpace(c.FormValue("zip")),
		Country:   c.FormValue("country"),
	}

	if errs := checkout.ValidateShipping(form); !errs.Valid() {
		meta := s.pageMeta(c)
		meta.Title = "Checkout - " + meta.SiteName
		return Render(c, checkoutview.Page(checkoutview.Data{
			Meta:      meta,
			Draft:     draft,
			Form:      form,
			Errors:    errs,
			Countries: checkout.Countries,
		}))
	}

	_, err = s.storage.Queries.SetDraftShipping(ctx, db.SetDraftShippingParams{
		FirstName: sql.NullString{String: form.FirstName, Valid: true},
		LastName:  sql.NullString{String: form.LastName, Valid: true},
		Email:     sql.NullString{String: form.Email, Valid: true},
		Address:   sql.NullString{String: form.Address, Valid: true},
		City:      sql.NullString{String: form.City, Valid: true},
		State:     sql.NullString{String: form.State, Valid: true},
		ZipCode:   sql.NullString{String: form.Zip, Valid: true},
		Country:   sql.NullString{String: form.Country, Valid: true},
		ID:        draft.ID,
	})
	if err != nil {
		slog.Error("failed to save shipping info", "error", err, "draft_id", draft.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save shipping information")
	}

	return c.Redirect(http.StatusSeeOther, "/payment?draft="+draft.ID)
}

func (s *Service) handlePaymentShow(c echo.Context) error {
	draft, ok, err := s.loadDraft(c)
	if !ok {
		return err
	}
	if !draft.ShippingComplete {
		return c.Redirect(http.StatusSeeOther, "/checkout?draft="+draft.ID)
	}

	meta := s.pageMeta(c)
	meta.Title = "Payment - " + meta.SiteName

	return Render(c, paymentview.Page(paymentview.Data{
		Meta:      meta,
		Draft:     draft,
		Form:      checkout.BillingInfo{SameAsShipping: true, Country: "United States"},
		Errors:    checkout.FieldErrors{},
		Countries: checkout.Countries,
	}))
}

func (s *Service) handlePaymentSubmit(c echo.Context) error {
	ctx := c.Request().Context()

	draft, ok, err := s.loadDraft(c)
	if !ok {
		return err
	}
	if !draft.ShippingComplete {
		return c.Redirect(http.StatusSeeOther, "/checkout?draft="+draft.ID)
	}

	form := checkout.BillingInfo{
		CardNumber:     c.FormValue("card_number"),
		Expiry:         strings.TrimSpace(c.FormValue("expiry")),
		Cvc:            strings.TrimSpace(c.FormValue("cvc")),
		Name:           strings.TrimSpace(c.FormValue("name")),
		Email:          strings.TrimSpace(c.FormValue("email")),
		Phone:          strings.TrimSpace(c.FormValue("phone")),
		Address:        strings.TrimSpace(c.FormValue("address")),
		City:           strings.TrimSpace(c.FormValue("city")),
		State:          strings.TrimSpace(c.FormValue("state")),
		Zip:            strings.TrimSpace(c.FormValue("zip")),
		Country:        c.FormValue("country"),
		SameAsShipping: c.FormValue("same_as_shipping") == "true",
	}

	if form.SameAsShipping {
		if form.Name == "" {
			form.Name = strings.TrimSpace(draft.FirstName.String + " " + draft.LastName.String)
		}
		form.Email = draft.Email.String
		form.Address = draft.Address.String
		form.City = draft.City.String
		form.State = draft.State.String
		form.Zip = draft.ZipCode.String
		form.Country = draft.Country.String
	}

	if errs := checkout.ValidateBilling(form); !errs.Valid() {
		meta := s.pageMeta(c)
		meta.Title = "Payment - " + meta.SiteName
		return Render(c, paymentview.Page(paymentview.Data{
			Meta:      meta,
			Draft:     draft,
			Form:      form,
			Errors:    errs,
			Countries: checkout.Countries,
		}))
	}

	if form.Email == "" {
		form.Email = draft.Email.String
	}

	expiryParts := strings.SplitN(form.Expiry, "/", 2)
	orderID := checkout.NewOrderID(time.Now())

	var phone sql.NullString
	if form.Phone != "" {
		phone = sql.NullString{String: form.Phone, Valid: true}
	}

	// Record the payment and consume the draft in one transaction so a
	// double submit cannot produce two orders.
	tx, err := s.storage.DB().BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin payment transaction", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process payment")
	}
	defer tx.Rollback()

	qtx := s.storage.Queries.WithTx(tx)

	payment, err := qtx.CreatePayment(ctx, db.CreatePaymentParams{
		ID:              ulid.Make().String(),
		OrderID:         orderID,
		CardNumber:      checkout.NormalizeCardNumber(form.CardNumber),
		CardExpiryMonth: expiryParts[0],
		CardExpiryYear:  expiryParts[1],
		CardCvc:         form.Cvc,
		BillingName:     form.Name,
		BillingEmail:    form.Email,
		BillingPhone:    phone,
		BillingAddress:  form.Address,
		BillingCity:     form.City,
		BillingState:    form.State,
		BillingZip:      form.Zip,
		BillingCountry:  form.Country,
		AmountCents:     draft.ProductPriceCents,
		Status:          db.PaymentStatusReceived,
	})
	if err != nil {
		slog.Error("failed to record payment", "error", err, "order_id", orderID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process payment")
	}

	deleted, err := qtx.DeleteCheckoutDraft(ctx, draft.ID)
	if err != nil {
		slog.Error("failed to consume checkout draft", "error", err, "draft_id", draft.ID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process payment")
	}
	if deleted == 0 {
		// A concurrent submit consumed the draft first; the rollback
		// discards this payment.
		return c.Redirect(http.StatusFound, "/")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit payment", "error", err, "order_id", orderID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process payment")
	}

	go s.sendOrderEmails(draft, payment)

	return c.Redirect(http.StatusSeeOther, "/confirmation?order="+payment.OrderID)
}

func (s *Service) sendOrderEmails(draft db.CheckoutDraft, payment db.PaymentInformation) {
	data := &email.OrderData{
		OrderID:       payment.OrderID,
		CustomerName:  strings.TrimSpace(draft.FirstName.String + " " + draft.LastName.String),
		CustomerEmail: draft.Email.String,
		OrderDate:     payment.CreatedAt.Format("January 2, 2006"),
		ProductName:   draft.ProductName,
		AmountCents:   payment.AmountCents,
		ShippingAddr: email.Address{
			Name:    strings.TrimSpace(draft.FirstName.String + " " + draft.LastName.String),
			Line1:   draft.Address.String,
			City:    draft.City.String,
			State:   draft.State.String,
			Zip:     draft.ZipCode.String,
			Country: draft.Country.String,
		},
	}

	if err := s.emailService.SendOrderConfirmation(data); err != nil {
		slog.Error("failed to send order confirmation", "error", err, "order_id", payment.OrderID)
	}
	if err := s.emailService.SendOrderNotificationToAdmin(data); err != nil {
		slog.Error("failed to send admin order notification", "error", err, "order_id", payment.OrderID)
	}
}

func (s *Service) handleConfirmation(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.QueryParam("order")
	if orderID == "" {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	payment, err := s.storage.Queries.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		}
		slog.Error("failed to fetch payment", "error", err, "order_id", orderID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load order")
	}

	meta := s.pageMeta(c)
	meta.Title = "Order Confirmed - " + meta.SiteName

	return Render(c, confirmationview.Page(confirmationview.Data{
		Meta:    meta,
		Payment: payment,
	}))
}

func (s *Service) handleAdminLogin(c echo.Context) error {
	if auth.IsAdmin(c) {
		return c.Redirect(http.StatusFound, "/admin")
	}

	meta := s.pageMeta(c)
	meta.Title = "Admin Sign In - " + meta.SiteName

	return Render(c, adminview.Login(adminview.LoginData{
		Meta:           meta,
		Next:           c.QueryParam("next"),
		PublishableKey: s.config.Clerk.PublishableKey,
	}))
}

func (s *Service) handleHealth(c echo.Context) error {
	status := "healthy"
	dbState := "connected"
	code := http.StatusOK
	if err := s.storage.DB().PingContext(c.Request().Context()); err != nil {
		status = "unhealthy"
		dbState = fmt.Sprintf("error: %v", err)
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, map[string]any{
		"status":      status,
		"environment": s.config.Environment,
		"database":    dbState,
	})
}
