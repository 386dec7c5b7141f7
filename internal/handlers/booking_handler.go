package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xbayazid/medwin-cares-server/internal/models"
	"github.com/xbayazid/medwin-cares-server/internal/services"
	"github.com/xbayazid/medwin-cares-server/internal/store"
	"github.com/xbayazid/medwin-cares-server/internal/utils"
)

type CreateBookingRequest struct {
	AppointmentDate string  `json:"appointmentDate" binding:"required"`
	Treatment       string  `json:"treatment" binding:"required"`
	Patient         string  `json:"patient"`
	Slot            string  `json:"slot" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone"`
	Price           float64 `json:"price" binding:"gte=0"`
}

// CreateBooking stores a booking unless the same email already holds one for
// the treatment on that date. The check and the insert are separate
// operations.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	exists, err := h.Bookings.Exists(ctx, req.Email, req.Treatment, req.AppointmentDate)
	if err != nil {
		utils.AbortWithServerError(c, "failed to check existing booking", err)
		return
	}
	duplicate := models.Rejected(fmt.Sprintf("You already have a booking on %s", req.AppointmentDate))
	if exists {
		c.JSON(http.StatusOK, duplicate)
		return
	}

	booking := models.Booking{
		ID:              primitive.NewObjectID(),
		AppointmentDate: req.AppointmentDate,
		Treatment:       req.Treatment,
		Patient:         req.Patient,
		Slot:            req.Slot,
		Email:           req.Email,
		Phone:           req.Phone,
		Price:           req.Price,
	}
	ack, err := h.Bookings.Insert(ctx, &booking)
	if errors.Is(err, store.ErrDuplicate) {
		// Only reachable with the unique booking index enabled.
		c.JSON(http.StatusOK, duplicate)
		return
	}
	if err != nil {
		utils.AbortWithServerError(c, "failed to insert booking", err)
		return
	}
	log.Printf("CreateBooking: %s booked %s on %s at %s", booking.Email, booking.Treatment, booking.AppointmentDate, booking.Slot)

	if h.NotificationSvc != nil {
		h.NotificationSvc.BookingConfirmed(booking)
	}

	c.JSON(http.StatusOK, ack)
}

// GetBookings lists the caller's own bookings.
func (h *Handler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	if !requireSelf(c, email) {
		return
	}

	bookings, err := h.Bookings.List(c.Request.Context(), store.Fields{"email": email})
	if err != nil {
		respondStoreError(c, "failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetAllBookings(c *gin.Context) {
	bookings, err := h.Bookings.List(c.Request.Context(), nil)
	if err != nil {
		respondStoreError(c, "failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	booking, ok := h.ownedBooking(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, booking)
}

// GetBookingQR serves the check-in QR code of a booking as PNG.
func (h *Handler) GetBookingQR(c *gin.Context) {
	booking, ok := h.ownedBooking(c)
	if !ok {
		return
	}
	png, err := services.BookingQRCode(*booking, 256)
	if err != nil {
		utils.AbortWithServerError(c, "failed to render QR code", err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	ack, err := h.Bookings.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, "failed to delete booking", err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// ownedBooking loads the :id booking and checks the caller may see it. It
// writes the response itself when it returns false.
func (h *Handler) ownedBooking(c *gin.Context) (*models.Booking, bool) {
	booking, err := h.Bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, "failed to fetch booking", err)
		return nil, false
	}
	if !h.requireOwnerOrAdmin(c, booking.Email) {
		return nil, false
	}
	return booking, true
}
