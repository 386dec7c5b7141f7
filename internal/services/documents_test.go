package services

import (
	"bytes"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xbayazid/medwin-cares-server/internal/models"
)

func TestBookingQRCodeIsPNG(t *testing.T) {
	png, err := BookingQRCode(models.Booking{
		ID: primitive.NewObjectID(), AppointmentDate: "2024-01-01", Treatment: "Dental", Slot: "10am",
	}, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatal("expected PNG output")
	}
}

func TestWriteOrderInvoice(t *testing.T) {
	lines := []models.OrderLine{
		{Name: "Toothbrush", Price: 2.5, Quantity: 4},
		{Name: "Mouthwash", Price: 6, Quantity: 1},
	}
	order := models.Order{
		ID:        primitive.NewObjectID(),
		Email:     "patient@medwin.test",
		Name:      "Patient",
		Items:     lines,
		Total:     OrderTotal(lines),
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if order.Total != 16 {
		t.Fatalf("unexpected total %v", order.Total)
	}

	var buf bytes.Buffer
	if err := WriteOrderInvoice(&buf, order); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("expected PDF output")
	}
}
