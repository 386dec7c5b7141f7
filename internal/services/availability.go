package services

import "github.com/xbayazid/medwin-cares-server/internal/models"

// RemainingSlots removes from every option the slots already taken by the
// given bookings. The bookings are expected to belong to a single date.
// Slot order and any repeated configured slots are kept; matching is exact.
func RemainingSlots(options []models.AppointmentOption, booked []models.Booking) []models.AppointmentOption {
	taken := make(map[string]map[string]struct{})
	for _, b := range booked {
		if taken[b.Treatment] == nil {
			taken[b.Treatment] = make(map[string]struct{})
		}
		taken[b.Treatment][b.Slot] = struct{}{}
	}

	out := make([]models.AppointmentOption, 0, len(options))
	for _, opt := range options {
		remaining := make([]string, 0, len(opt.Slots))
		for _, slot := range opt.Slots {
			if _, ok := taken[opt.Name][slot]; !ok {
				remaining = append(remaining, slot)
			}
		}
		opt.Slots = remaining
		out = append(out, opt)
	}
	return out
}
