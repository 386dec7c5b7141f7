package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xbayazid/medwin-cares-server/internal/services"
	"github.com/xbayazid/medwin-cares-server/internal/store"
)

// --- GET APPOINTMENT OPTIONS (slots left on a date) ---
func (h *Handler) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	ctx := c.Request.Context()
	options, err := h.Options.List(ctx)
	if err != nil {
		respondStoreError(c, "failed to fetch appointment options", err)
		return
	}

	alreadyBooked, err := h.Bookings.List(ctx, store.Fields{"appointmentDate": date})
	if err != nil {
		respondStoreError(c, "failed to fetch bookings", err)
		return
	}

	c.JSON(http.StatusOK, services.RemainingSlots(options, alreadyBooked))
}

// --- GET APPOINTMENT OPTIONS, computed by the database ---
func (h *Handler) GetAppointmentOptionsV2(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	options, err := h.Options.AvailableOn(c.Request.Context(), date)
	if err != nil {
		respondStoreError(c, "failed to aggregate appointment options", err)
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *Handler) GetAppointmentSpecialty(c *gin.Context) {
	specialties, err := h.Options.Specialties(c.Request.Context())
	if err != nil {
		respondStoreError(c, "failed to fetch appointment specialties", err)
		return
	}
	c.JSON(http.StatusOK, specialties)
}
