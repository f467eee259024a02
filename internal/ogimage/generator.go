// Package ogimage renders the social share image for the product
// page: the lead product photo with the shop and product names
// overlaid on a dark bar.
package ogimage

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Where the generated image lives on disk and on the site.
const (
	OutputPath = "public/og/product.png"
	PublicURL  = "/public/og/product.png"
)

type ProductInfo struct {
	Name      string
	SiteName  string
	ImagePath string
}

// Generate creates the Open Graph image at outputPath from the
// product's lead photo.
func Generate(product ProductInfo, outputPath string) error {
	productImg, err := gg.LoadImage(product.ImagePath)
	if err != nil {
		slog.Error("failed to load product image", "error", err, "path", product.ImagePath)
		return fmt.Errorf("load product image: %w", err)
	}

	// Keep the original dimensions; crop is left to the platforms.
	dc := gg.NewContextForImage(productImg)
	imgWidth := dc.Width()
	imgHeight := dc.Height()

	textAreaHeight := 150
	textAreaY := imgHeight - textAreaHeight
	dc.SetRGBA(0, 0, 0, 0.75)
	dc.DrawRectangle(0, float64(textAreaY), float64(imgWidth), float64(textAreaHeight))
	dc.Fill()

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		slog.Error("failed to parse font", "error", err)
		return fmt.Errorf("parse font: %w", err)
	}

	dc.SetRGB(1, 1, 1)
	face := truetype.NewFace(font, &truetype.Options{Size: 48})
	dc.SetFontFace(face)

	productName := truncateText(product.Name, 30)
	textY := float64(textAreaY) + 50
	dc.DrawStringAnchored(productName, float64(imgWidth)/2, textY, 0.5, 0.5)

	face = truetype.NewFace(font, &truetype.Options{Size: 28})
	dc.SetFontFace(face)

	secondLine := product.SiteName
	if secondLine == "" {
		secondLine = "Shop Now"
	}
	textY += 50
	dc.DrawStringAnchored(secondLine, float64(imgWidth)/2, textY, 0.5, 0.5)

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		slog.Error("failed to create output directory", "error", err, "dir", filepath.Dir(outputPath))
		return fmt.Errorf("create output dir: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		slog.Error("failed to create output file", "error", err, "path", outputPath)
		return fmt.Errorf("create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, dc.Image()); err != nil {
		slog.Error("failed to encode PNG", "error", err)
		return fmt.Errorf("encode PNG: %w", err)
	}

	slog.Debug("generated OG image", "product", product.Name, "output", outputPath)
	return nil
}

func truncateText(text string, maxLength int) string {
	if len(text) <= maxLength {
		return text
	}
	return text[:maxLength-3] + "..."
}
