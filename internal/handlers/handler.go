package handlers

import (
	"github.com/xbayazid/medwin-cares-server/internal/models"
	"github.com/xbayazid/medwin-cares-server/internal/services"
	"github.com/xbayazid/medwin-cares-server/internal/store"
	"github.com/xbayazid/medwin-cares-server/internal/utils"
)

// Notifier is told about bookings once they are stored.
type Notifier interface {
	BookingConfirmed(booking models.Booking)
}

// Handler carries the injected dependencies every route handler uses.
type Handler struct {
	Options     store.AppointmentOptions
	Bookings    store.Bookings
	Users       store.Users
	Doctors     store.Collection[models.Doctor]
	Departments store.Collection[models.Department]
	Shop        store.Collection[models.ShopItem]
	Carts       store.Collection[models.CartItem]
	Orders      store.Collection[models.Order]
	Payments    store.Collection[models.Payment]

	Tokens          *utils.TokenService
	Processor       services.PaymentProcessor
	NotificationSvc Notifier
}

func NewHandler(s *store.Store, tokens *utils.TokenService, processor services.PaymentProcessor, notifier Notifier) *Handler {
	return &Handler{
		Options:         s.AppointmentOptions,
		Bookings:        s.Bookings,
		Users:           s.Users,
		Doctors:         s.Doctors,
		Departments:     s.Departments,
		Shop:            s.Shop,
		Carts:           s.Carts,
		Orders:          s.Orders,
		Payments:        s.Payments,
		Tokens:          tokens,
		Processor:       processor,
		NotificationSvc: notifier,
	}
}
