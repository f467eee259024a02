// Package receipt renders an order receipt PDF for the admin payments
// tab. The receipt carries the order details plus a QR code linking
// back to the confirmation page.
package receipt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Data is everything one receipt renders.
type Data struct {
	OrderID      string
	OrderDate    string
	ProductName  string
	AmountCents  int64
	CustomerName string
	Email        string
	Address      string
	City         string
	State        string
	Zip          string
	Country      string
	CardLast4    string
	// ConfirmationURL is encoded into the QR code.
	ConfirmationURL string
}

// Write renders the receipt PDF to w.
func Write(w io.Writer, data Data) error {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Order Receipt", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 7, data.OrderID, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, data.OrderDate, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(45, 8, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}

	row("Item", data.ProductName)
	row("Amount", fmt.Sprintf("$%.2f", float64(data.AmountCents)/100.0))
	if data.CardLast4 != "" {
		row("Paid with", "Card ending "+data.CardLast4)
	}
	pdf.Ln(4)

	row("Customer", data.CustomerName)
	row("Email", data.Email)
	row("Address", data.Address)
	row("", fmt.Sprintf("%s, %s %s", data.City, data.State, data.Zip))
	row("", data.Country)

	if data.ConfirmationURL != "" {
		png, err := qrcode.Encode(data.ConfirmationURL, qrcode.Medium, 256)
		if err != nil {
			return fmt.Errorf("failed to generate receipt QR code: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("confirmation-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("confirmation-qr", 160, 20, 35, 35, false, opts, 0, "")

		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 6, "Scan the code to view this order online.", "", 1, "L", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write receipt PDF: %w", err)
	}
	return nil
}
