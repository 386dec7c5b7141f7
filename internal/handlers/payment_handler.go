package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xbayazid/medwin-cares-server/internal/models"
	"github.com/xbayazid/medwin-cares-server/internal/services"
	"github.com/xbayazid/medwin-cares-server/internal/utils"
)

type CreatePaymentRequest struct {
	BookingID     string  `json:"bookingId" binding:"required"`
	Email         string  `json:"email" binding:"omitempty,email"`
	Price         float64 `json:"price" binding:"gte=0"`
	TransactionID string  `json:"transactionId" binding:"required"`
}

type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CreatePayment records a payment and marks its booking paid. The booking
// update is a second write; the payment stays recorded if it fails.
func (h *Handler) CreatePayment(c *gin.Context) {
	method := models.PaymentMethod(c.DefaultQuery("method", string(models.PaymentCard)))
	status, ok := method.BookingStatus()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported payment method"})
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !primitive.IsValidObjectID(req.BookingID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx := c.Request.Context()
	payment := models.Payment{
		ID:            primitive.NewObjectID(),
		BookingID:     req.BookingID,
		Email:         req.Email,
		Price:         req.Price,
		TransactionID: req.TransactionID,
		Method:        method,
		CreatedAt:     time.Now().UTC(),
	}
	ack, err := h.Payments.Insert(ctx, &payment)
	if err != nil {
		utils.AbortWithServerError(c, "failed to record payment", err)
		return
	}

	if _, err := h.Bookings.SetPaid(ctx, req.BookingID, status, req.TransactionID); err != nil {
		utils.AbortWithServerError(c, "failed to update booking payment status", err)
		return
	}
	log.Printf("CreatePayment: booking %s paid by %s (%s)", req.BookingID, method, req.TransactionID)
	c.JSON(http.StatusOK, ack)
}

func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.Processor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": services.ErrPaymentsDisabled.Error()})
		return
	}
	secret, err := h.Processor.CreatePaymentIntent(c.Request.Context(), services.AmountInCents(req.Price))
	if errors.Is(err, services.ErrPaymentsDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		utils.AbortWithServerError(c, "failed to create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
