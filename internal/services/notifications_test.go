package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xbayazid/medwin-cares-server/internal/models"
)

func TestSendSMS(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	s := NewNotificationService("key-123")
	s.endpoint = srv.URL

	booking := models.Booking{Treatment: "Dental", AppointmentDate: "2024-01-01", Slot: "10am", Phone: "+8801700000000"}
	if err := s.sendSMS(booking.Phone, confirmationText(booking)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["phone"] != "+8801700000000" || got["key"] != "key-123" {
		t.Fatalf("unexpected payload %v", got)
	}
	if !strings.Contains(got["message"], "Dental") || !strings.Contains(got["message"], "10am") {
		t.Fatalf("message misses booking details: %q", got["message"])
	}
}

func TestSendSMSProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"Out of quota"}`))
	}))
	defer srv.Close()

	s := NewNotificationService("key-123")
	s.endpoint = srv.URL
	err := s.sendSMS("+8801700000000", "hello")
	if err == nil || !strings.Contains(err.Error(), "Out of quota") {
		t.Fatalf("expected the provider error, got %v", err)
	}
}
