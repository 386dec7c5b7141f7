package services

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"

	"github.com/xbayazid/medwin-cares-server/internal/models"
)

// BookingQRCode renders a PNG QR code the front desk scans at check-in.
func BookingQRCode(b models.Booking, size int) ([]byte, error) {
	payload := fmt.Sprintf("medwin:booking:%s|%s|%s|%s", b.ID.Hex(), b.AppointmentDate, b.Treatment, b.Slot)
	return qrcode.Encode(payload, qrcode.Medium, size)
}

// WriteOrderInvoice renders a one-page PDF invoice for order to w.
func WriteOrderInvoice(w io.Writer, order models.Order) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Medwin Cares - Invoice")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Order: %s", order.ID.Hex()))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Customer: %s <%s>", order.Name, order.Email))
	pdf.Ln(7)
	if order.Address != "" {
		pdf.Cell(0, 7, fmt.Sprintf("Ship to: %s", order.Address))
		pdf.Ln(7)
	}
	if !order.CreatedAt.IsZero() {
		pdf.Cell(0, 7, fmt.Sprintf("Date: %s", order.CreatedAt.Format("2006-01-02")))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(95, 8, "Item", "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "Qty", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Price", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Subtotal", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	for _, line := range order.Items {
		pdf.CellFormat(95, 8, line.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, fmt.Sprintf("%d", line.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", line.Price), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", line.Subtotal()), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", order.Total), "1", 1, "R", false, 0, "")

	status := "Pending delivery"
	if order.Status {
		status = "Delivered"
	}
	pdf.Ln(6)
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, "Status: "+status)

	return pdf.Output(w)
}

// OrderTotal sums the order lines.
func OrderTotal(lines []models.OrderLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
