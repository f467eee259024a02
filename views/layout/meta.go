package layout

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mybae/storefront/storage/db"
)

// PageMeta carries per-page metadata: title, description, Open Graph
// tags, and the branding assets pulled from the settings store.
type PageMeta struct {
	Title        string
	Description  string
	CanonicalURL string

	OGType        string // "website" or "product"
	OGTitle       string
	OGDescription string
	OGImageURL    string // absolute
	OGURL         string // absolute
	OGSiteName    string

	SiteURL    string
	SiteName   string
	LogoURL    string
	FaviconURL string
}

// NewPageMeta builds page defaults from the site settings and asset
// rows. Missing rows fall back to neutral values so a fresh database
// still renders.
func NewPageMeta(c echo.Context, queries *db.Queries, siteURL string) PageMeta {
	ctx := c.Request().Context()

	siteName := "Storefront"
	description := ""
	if settings, err := queries.GetSiteSettings(ctx); err == nil && settings.SiteName != "" {
		siteName = settings.SiteName
	}

	logoURL := ""
	faviconURL := "/public/favicon.ico"
	if assets, err := queries.ListSiteAssets(ctx); err == nil {
		for _, a := range assets {
			switch a.Type {
			case db.AssetTypeLogo:
				logoURL = a.Url
			case db.AssetTypeFavicon:
				faviconURL = a.Url
			}
		}
	}

	canonicalURL := BuildAbsoluteURL(siteURL, c.Request().URL.Path)

	return PageMeta{
		Title:        siteName,
		Description:  description,
		CanonicalURL: canonicalURL,

		OGType:        "website",
		OGTitle:       siteName,
		OGDescription: description,
		OGURL:         canonicalURL,
		OGSiteName:    siteName,

		SiteURL:    siteURL,
		SiteName:   siteName,
		LogoURL:    logoURL,
		FaviconURL: faviconURL,
	}
}

// FromProduct fills the meta from the shop's product, preferring the
// SEO overrides when the admin has set them.
func (pm PageMeta) FromProduct(product db.Product) PageMeta {
	title := product.Name
	if product.SeoTitle.Valid && product.SeoTitle.String != "" {
		title = product.SeoTitle.String
	}
	pm.Title = title + " - " + pm.OGSiteName
	pm.OGTitle = title
	pm.OGType = "product"

	description := ""
	switch {
	case product.SeoDescription.Valid && product.SeoDescription.String != "":
		description = product.SeoDescription.String
	case product.ShortDescription.Valid:
		description = product.ShortDescription.String
	}
	if description != "" {
		pm.Description = description
		pm.OGDescription = description
	}
	return pm
}

// WithOGImage overrides the share image.
func (pm PageMeta) WithOGImage(imageURL string) PageMeta {
	pm.OGImageURL = BuildAbsoluteURL(pm.SiteURL, imageURL)
	return pm
}

// BuildAbsoluteURL joins the site URL with a path, passing through
// URLs that are already absolute.
func BuildAbsoluteURL(siteURL, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return fmt.Sprintf("%s%s", strings.TrimSuffix(siteURL, "/"), path)
}
