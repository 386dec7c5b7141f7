package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/xbayazid/medwin-cares-server/internal/models"
)

const textbeltURL = "https://textbelt.com/text"

// NotificationService sends booking confirmations by SMS through Textbelt.
type NotificationService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewNotificationService(apiKey string) *NotificationService {
	return &NotificationService{
		apiKey:   apiKey,
		endpoint: textbeltURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// BookingConfirmed sends the confirmation in the background so the API
// response is not held up by the SMS provider.
func (s *NotificationService) BookingConfirmed(booking models.Booking) {
	if s.apiKey == "" {
		return
	}
	if booking.Phone == "" {
		log.Println("SMS not sent: booking has no phone number.")
		return
	}
	go func() {
		if err := s.sendSMS(booking.Phone, confirmationText(booking)); err != nil {
			log.Printf("Failed to send booking SMS to %s: %v", booking.Phone, err)
			return
		}
		log.Printf("Successfully sent booking SMS to %s", booking.Phone)
	}()
}

func confirmationText(b models.Booking) string {
	return fmt.Sprintf("Medwin Cares: %s booked on %s at %s.", b.Treatment, b.AppointmentDate, b.Slot)
}

func (s *NotificationService) sendSMS(phone, message string) error {
	postBody, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.apiKey,
	})
	if err != nil {
		return err
	}

	resp, err := s.client.Post(s.endpoint, "application/json", bytes.NewReader(postBody))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var result struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode textbelt response: %w", err)
	}
	if !result.Success {
		return fmt.Errorf("textbelt: %s", result.Error)
	}
	return nil
}
