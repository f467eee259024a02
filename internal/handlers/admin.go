package handlers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mybae/storefront/internal/ogimage"
	"github.com/mybae/storefront/internal/receipt"
	"github.com/mybae/storefront/internal/toast"
	"github.com/mybae/storefront/internal/uploads"
	"github.com/mybae/storefront/storage"
	"github.com/mybae/storefront/storage/db"
	adminview "github.com/mybae/storefront/views/admin"
	"github.com/mybae/storefront/views/layout"
	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

type AdminHandler struct {
	storage *storage.Storage
	uploads *uploads.Store
	toasts  *toast.Manager
	baseURL string

	// productSaving serializes product writes: the form save and the
	// media/video uploads reject overlap with 409.
	productSaving atomic.Bool
}

func NewAdminHandler(storage *storage.Storage, uploads *uploads.Store, toasts *toast.Manager, baseURL string) *AdminHandler {
	return &AdminHandler{
		storage: storage,
		uploads: uploads,
		toasts:  toasts,
		baseURL: baseURL,
	}
}

// Register wires the console routes onto the authenticated admin
// group.
func (h *AdminHandler) Register(g *echo.Group) {
	g.GET("", h.HandleConsole)
	g.POST("/product", h.HandleProductSave)
	g.POST("/product/media", h.HandleMediaUpload)
	g.POST("/product/media/delete", h.HandleMediaDelete)
	g.POST("/product/video", h.HandleVideoUpload)
	g.POST("/product/video/delete", h.HandleVideoDelete)
	g.POST("/settings", h.HandleSettingsSave)
	g.POST("/contact-info", h.HandleContactInfoSave)
	g.POST("/assets/:type", h.HandleAssetUpload)
	g.POST("/messages/:id/read", h.HandleMessageRead)
	g.POST("/reviews/:id/feature", h.HandleReviewFeatureToggle)
	g.GET("/payments/:order/receipt.pdf", h.HandleReceiptPDF)
	g.POST("/toasts/:id/dismiss", h.HandleToastDismiss)
}

func (h *AdminHandler) HandleConsole(c echo.Context) error {
	ctx := c.Request().Context()

	tab := c.QueryParam("tab")
	switch tab {
	case adminview.TabProduct, adminview.TabSettings, adminview.TabMessages, adminview.TabReviews, adminview.TabPayments:
	default:
		tab = adminview.TabProduct
	}

	data := adminview.ConsoleData{
		ActiveTab: tab,
		Toasts:    h.toasts.Active(),
	}

	product, err := h.storage.Queries.GetProduct(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to fetch product", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load product")
	}
	data.Product = product

	if product.ID != "" {
		media, err := h.storage.Queries.ListProductMedia(ctx, product.ID)
		if err != nil {
			slog.Error("failed to fetch product media", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load media")
		}
		data.Media = media

		if v, err := h.storage.Queries.GetLatestProductVideo(ctx, product.ID); err == nil {
			data.Video = &v
		}
	}

	if settings, err := h.storage.Queries.GetSiteSettings(ctx); err == nil {
		data.Settings = settings
	}
	if assets, err := h.storage.Queries.ListSiteAssets(ctx); err == nil {
		data.Assets = assets
	}

	switch tab {
	case adminview.TabMessages:
		messages, err := h.storage.Queries.ListContactMessages(ctx)
		if err != nil {
			slog.Error("failed to fetch contact messages", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load messages")
		}
		data.Messages = messages
	case adminview.TabReviews:
		reviews, err := h.storage.Queries.ListProductReviews(ctx)
		if err != nil {
			slog.Error("failed to fetch reviews", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load reviews")
		}
		data.Reviews = reviews
	case adminview.TabPayments:
		payments, err := h.storage.Queries.ListPayments(ctx)
		if err != nil {
			slog.Error("failed to fetch payments", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load payments")
		}
		data.Payments = payments
	}

	meta := layout.NewPageMeta(c, h.storage.Queries, h.baseURL)
	meta.Title = "Admin Console - " + meta.SiteName
	data.Meta = meta

	return Render(c, adminview.Console(data))
}

// HandleProductSave writes the whole product form in one upsert. Only
// one product write runs at a time; an overlapping submit gets a 409.
func (h *AdminHandler) HandleProductSave(c echo.Context) error {
	if !h.productSaving.CompareAndSwap(false, true) {
		return echo.NewHTTPError(http.StatusConflict, "Another save or upload is in progress")
	}
	defer h.productSaving.Store(false)

	ctx := c.Request().Context()

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Product name is required")
	}

	price, err := strconv.ParseFloat(strings.TrimPrefix(c.FormValue("price"), "$"), 64)
	if err != nil || price < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Price must be a non-negative number")
	}
	priceCents := int64(math.Round(price * 100))

	// Reuse the existing row's id so media and reviews stay attached.
	productID := ulid.Make().String()
	if existing, err := h.storage.Queries.GetProduct(ctx); err == nil {
		productID = existing.ID
	}

	params := db.UpsertProductParams{
		ID:         productID,
		Name:       name,
		PriceCents: priceCents,
		InStock:    sql.NullBool{Bool: c.FormValue("in_stock") == "true", Valid: true},
		UpdatedAt:  time.Now(),
	}
	if v := strings.TrimSpace(c.FormValue("short_description")); v != "" {
		params.ShortDescription = sql.NullString{String: v, Valid: true}
	}
	if v := strings.TrimSpace(c.FormValue("long_description")); v != "" {
		params.LongDescription = sql.NullString{String: v, Valid: true}
	}
	if v := strings.TrimSpace(c.FormValue("seo_title")); v != "" {
		params.SeoTitle = sql.NullString{String: v, Valid: true}
	}
	if v := strings.TrimSpace(c.FormValue("seo_description")); v != "" {
		params.SeoDescription = sql.NullString{String: v, Valid: true}
	}

	if _, err := h.storage.Queries.UpsertProduct(ctx, params); err != nil {
		slog.Error("failed to save product", "error", err)
		h.toasts.Push(toast.KindError, "Failed to save product")
		return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
	}

	go h.refreshOGImage(context.Background(), productID)

	h.toasts.Push(toast.KindSuccess, "Product saved")
	return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
}

// refreshOGImage rebuilds the share image from the current lead photo.
// Called off the request path; failures only lose the refresh.
func (h *AdminHandler) refreshOGImage(ctx context.Context, productID string) {
	product, err := h.storage.Queries.GetProductByID(ctx, productID)
	if err != nil {
		return
	}
	media, err := h.storage.Queries.ListProductMedia(ctx, product.ID)
	if err != nil || len(media) == 0 {
		return
	}
	imagePath, ok := h.uploads.Path(media[0].Url)
	if !ok {
		return
	}

	siteName := ""
	if settings, err := h.storage.Queries.GetSiteSettings(ctx); err == nil {
		siteName = settings.SiteName
	}

	info := ogimage.ProductInfo{
		Name:      product.Name,
		SiteName:  siteName,
		ImagePath: imagePath,
	}
	if err := ogimage.Generate(info, ogimage.OutputPath); err != nil {
		slog.Warn("failed to refresh share image", "error", err)
	}
}

// HandleMediaUpload stores every file in the batch concurrently. The
// batch is all-or-nothing in reporting: one failure marks the whole
// upload failed, though files already stored stay stored.
func (h *AdminHandler) HandleMediaUpload(c echo.Context) error {
	if !h.productSaving.CompareAndSwap(false, true) {
		return echo.NewHTTPError(http.StatusConflict, "Another save or upload is in progress")
	}
	defer h.productSaving.Store(false)

	ctx := c.Request().Context()

	product, err := h.storage.Queries.GetProduct(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Save the product before uploading photos")
	}

	form, err := c.MultipartForm()
	if err != nil || form == nil || len(form.File["files"]) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No files uploaded")
	}
	files := form.File["files"]

	urls := make([]string, len(files))
	var g errgroup.Group
	for i, file := range files {
		g.Go(func() error {
			url, err := h.uploads.Save(file)
			if err != nil {
				return fmt.Errorf("%s: %w", file.Filename, err)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		slog.Error("media batch upload failed", "error", err, "count", len(files))
		h.toasts.Push(toast.KindError, "Upload failed: "+err.Error())
		return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
	}

	// Insert in submission order so the gallery keeps it.
	for _, url := range urls {
		_, err := h.storage.Queries.CreateProductMedia(ctx, db.CreateProductMediaParams{
			ID:        ulid.Make().String(),
			ProductID: product.ID,
			Url:       url,
		})
		if err != nil {
			slog.Error("failed to record uploaded media", "error", err, "url", url)
			h.toasts.Push(toast.KindError, "Upload failed while saving records")
			return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
		}
	}

	go h.refreshOGImage(context.Background(), product.ID)

	h.toasts.Push(toast.KindSuccess, fmt.Sprintf("Uploaded %d photo(s)", len(files)))
	return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
}

func (h *AdminHandler) HandleMediaDelete(c echo.Context) error {
	ctx := c.Request().Context()

	url := c.FormValue("url")
	if url == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing media url")
	}

	product, err := h.storage.Queries.GetProduct(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No product configured")
	}

	err = h.storage.Queries.DeleteProductMediaByURL(ctx, db.DeleteProductMediaByURLParams{
		ProductID: product.ID,
		Url:       url,
	})
	if err != nil {
		slog.Error("failed to delete media record", "error", err, "url", url)
		h.toasts.Push(toast.KindError, "Failed to delete photo")
		return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
	}

	if err := h.uploads.Remove(url); err != nil {
		slog.Warn("failed to remove media file", "error", err, "url", url)
	}

	go h.refreshOGImage(context.Background(), product.ID)

	h.toasts.Push(toast.KindSuccess, "Photo deleted")
	return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
}

// HandleVideoUpload replaces the product video. Delete-then-insert in
// one transaction keeps the product at zero or one videos.
func (h *AdminHandler) HandleVideoUpload(c echo.Context) error {
	if !h.productSaving.CompareAndSwap(false, true) {
		return echo.NewHTTPError(http.StatusConflict, "Another save or upload is in progress")
	}
	defer h.productSaving.Store(false)

	ctx := c.Request().Context()

	product, err := h.storage.Queries.GetProduct(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Save the product before uploading a video")
	}

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No video uploaded")
	}

	url, err := h.uploads.Save(file)
	if err != nil {
		slog.Error("failed to store video", "error", err)
		h.toasts.Push(toast.KindError, "Failed to upload video")
		return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
	}

	old, _ := h.storage.Queries.GetLatestProductVideo(ctx, product.ID)

	tx, err := h.storage.DB().BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin video transaction", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save video")
	}
	defer tx.Rollback()

	qtx := h.storage.Queries.WithTx(tx)
	if err := qtx.DeleteProductVideos(ctx, product.ID); err != nil {
		slog.Error("failed to clear existing video", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save video")
	}
	_, err = qtx.CreateProductVideo(ctx, db.CreateProductVideoParams{
		ID:        ulid.Make().String(),
		ProductID: product.ID,
		Url:       url,
	})
	if err != nil {
		slog.Error("failed to record video", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save video")
	}
	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit video", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save video")
	}

	if old.Url != "" {
		if err := h.uploads.Remove(old.Url); err != nil {
			slog.Warn("failed to remove replaced video file", "error", err, "url", old.Url)
		}
	}

	h.toasts.Push(toast.KindSuccess, "Video saved")
	return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
}

func (h *AdminHandler) HandleVideoDelete(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.storage.Queries.GetProduct(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "No product configured")
	}

	old, _ := h.storage.Queries.GetLatestProductVideo(ctx, product.ID)

	if err := h.storage.Queries.DeleteProductVideos(ctx, product.ID); err != nil {
		slog.Error("failed to delete video", "error", err)
		h.toasts.Push(toast.KindError, "Failed to remove video")
		return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
	}

	if old.Url != "" {
		if err := h.uploads.Remove(old.Url); err != nil {
			slog.Warn("failed to remove video file", "error", err, "url", old.Url)
		}
	}

	h.toasts.Push(toast.KindSuccess, "Video removed")
	return c.Redirect(http.StatusSeeOther, "/admin?tab=product")
}

func (h *AdminHandler) HandleSettingsSave(c echo.Context) error {
	ctx := c.Request().Context()

	siteName := strings.TrimSpace(c.FormValue("site_name"))
	if siteName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Site name is required")
	}

	params := db.UpsertSiteSettingsParams{
		ID:        db.SettingsRowID,
		SiteName:  siteName,
		UpdatedAt: time.Now(),
	}
	// Contact info has its own form; keep the stored values unless the
	// submit carries replacements.
	if existing, err := h.storage.Queries.GetSiteSettings(ctx); err == nil {
		params.ContactEmail = existing.ContactEmail
		params.ContactPhone = existing.ContactPhone
		params.ContactAddress = existing.ContactAddress
	}
	if v := strings.TrimSpace(c.FormValue("contact_email")); v != "" {
		params.ContactEmail = sql.NullString{String: v, Valid: true}
	}
	if v := strings.TrimSpace(c.FormValue("contact_phone")); v != "" {
		params.ContactPhone = sql.NullString{String: v, Valid: true}
	}
	if v := strings.TrimSpace(c.FormValue("contact_address")); v != "" {
		params.ContactAddress = sql.NullString{String: v, Valid: true}
	}

	if _, err := h.storage.Queries.UpsertSiteSettings(ctx, params); err != nil {
		slog.Error("failed to save site settings", "error", err)
		h.toasts.Push(toast.KindError, "Failed to save settings")
		return c.Redirect(http.StatusSeeOther, "/admin?tab=settings")
	}

	h.toasts.Push(toast.KindSuccess, "Settings saved")
	return c.Redirect(http.StatusSeeOther, "/admin?tab=settings")
}

// HandleContactInfoSave updates only the contact fields of the
// settings row, keyed by its id. The full settings upsert stays
// untouched.
func (h *AdminHandler) HandleContactInfoSave(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.storage.Queries.GetSiteSettings(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Save the site settings before editing contact info")
	}

	params := db.UpdateContactInfoParams{
		UpdatedAt: time.Now(),
		ID:        settings.ID,
	}
	if v := strings.TrimSpace(c.FormValue("contact_email")); v != "" {
		params.ContactEmail = sql.NullString{String: v, Valid: true}
	}
	if v := strings.TrimSpace(c.FormValue("contact_phone")); v != "" {
		params.ContactPhone = sql.NullString{String: v, Valid: true}
	}
	if v := strings.TrimSpace(c.FormValue("contact_address")); v != "" {
		params.ContactAddress = sql.NullString{String: v, Valid: true}
	}

	if err := h.storage.Queries.UpdateContactInfo(ctx, params); err != nil {
		slog.Error("failed to save contact info", "error", err)
		h.toasts.Push(toast.KindError, "Failed to save contact info")
		return c.Redirect(http.StatusSeeOther, "/admin?tab=settings")
	}

	h.toasts.Push(toast.KindSuccess, "Contact info saved")
	return c.Redirect(http.StatusSeeOther, "/admin?tab=settings")
}

func (h *AdminHandler) HandleAssetUpload(c echo.Context) error {
	ctx := c.Request().Context()

	assetType := c.Param("type")
	if assetType != db.AssetTypeLogo && assetType != db.AssetTypeFavicon {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown asset type")
	}

	file, err := c.FormFile("file")
	if err != nil || file == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file uploaded")
	}

	url, err := h.uploads.Save(file)
	if err != nil {
		slog.Error("failed to store asset", "error", err, "type", assetType)
		h.toasts.Push(toast.KindError, "Failed to upload "+assetType)
		return c.Redirect(http.StatusSeeOther, "/admin?tab=settings")
	}

	old := ""
	if assets, err := h.storage.Queries.ListSiteAssets(ctx); err == nil {
		for _, a := range assets {
			if a.Type == assetType {
				old = a.Url
			}
		}
	}

	_, err = h.storage.Queries.UpsertSiteAsset(ctx, db.UpsertSiteAssetParams{
		Type:      assetType,
		Url:       url,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		slog.Error("failed to record asset", "error", err, "type", assetType)
		h.toasts.Push(toast.KindError, "Failed to save "+assetType)
		return c.Redirect(http.StatusSeeOther, "/admin?tab=settings")
	}

	if old != "" && old != url {
		if err := h.uploads.Remove(old); err != nil {
			slog.Warn("failed to remove replaced asset file", "error", err, "url", old)
		}
	}

	h.toasts.Push(toast.KindSuccess, "Uploaded new "+assetType)
	return c.Redirect(http.StatusSeeOther, "/admin?tab=settings")
}

// HandleMessageRead marks one message read, then redirects back so
// the console refetches the full list.
func (h *AdminHandler) HandleMessageRead(c echo.Context) error {
	if err := h.storage.Queries.MarkMessageRead(c.Request().Context(), c.Param("id")); err != nil {
		slog.Error("failed to mark message read", "error", err, "message_id", c.Param("id"))
		h.toasts.Push(toast.KindError, "Failed to update message")
	}
	return c.Redirect(http.StatusSeeOther, "/admin?tab=messages")
}

// HandleReviewFeatureToggle flips the featured flag, then redirects
// back so the console refetches the full list.
func (h *AdminHandler) HandleReviewFeatureToggle(c echo.Context) error {
	ctx := c.Request().Context()

	review, err := h.storage.Queries.GetProductReview(ctx, c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Review not found")
	}

	err = h.storage.Queries.SetReviewFeatured(ctx, db.SetReviewFeaturedParams{
		Featured: !review.Featured,
		ID:       review.ID,
	})
	if err != nil {
		slog.Error("failed to toggle review feature", "error", err, "review_id", review.ID)
		h.toasts.Push(toast.KindError, "Failed to update review")
	}
	return c.Redirect(http.StatusSeeOther, "/admin?tab=reviews")
}

func (h *AdminHandler) HandleReceiptPDF(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.Param("order")
	payment, err := h.storage.Queries.GetPaymentByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return echo.NewHTTPError(http.StatusNotFound, "Order not found")
		}
		slog.Error("failed to fetch payment", "error", err, "order_id", orderID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load order")
	}

	productName := ""
	if product, err := h.storage.Queries.GetProduct(ctx); err == nil {
		productName = product.Name
	}

	last4 := payment.CardNumber
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/pdf")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", orderID+".pdf"))

	return receipt.Write(c.Response(), receipt.Data{
		OrderID:         payment.OrderID,
		OrderDate:       payment.CreatedAt.Format("January 2, 2006"),
		ProductName:     productName,
		AmountCents:     payment.AmountCents,
		CustomerName:    payment.BillingName,
		Email:           payment.BillingEmail,
		Address:         payment.BillingAddress,
		City:            payment.BillingCity,
		State:           payment.BillingState,
		Zip:             payment.BillingZip,
		Country:         payment.BillingCountry,
		CardLast4:       last4,
		ConfirmationURL: h.baseURL + "/confirmation?order=" + payment.OrderID,
	})
}

func (h *AdminHandler) HandleToastDismiss(c echo.Context) error {
	h.toasts.Dismiss(c.Param("id"))
	tab := c.QueryParam("tab")
	if tab == "" {
		tab = adminview.TabProduct
	}
	return c.Redirect(http.StatusSeeOther, "/admin?tab="+tab)
}
