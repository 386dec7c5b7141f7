package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xbayazid/medwin-cares-server/internal/middleware"
)

// RegisterRoutes mounts every endpoint on r. Token routes go through limiter.
func (h *Handler) RegisterRoutes(r *gin.Engine, limiter *middleware.RateLimiter) {
	requireAuth := middleware.AuthMiddleware(h.Tokens)
	requireAdmin := middleware.AdminMiddleware(h.Users)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Medwin Cares server is running")
	})

	// Appointment Routes
	r.GET("/appointmentOptions", h.GetAppointmentOptions)
	r.GET("/v2/appointmentOptions", h.GetAppointmentOptionsV2)
	r.GET("/appointmentSpecialty", h.GetAppointmentSpecialty)

	// Booking Routes
	r.POST("/bookings", h.CreateBooking)
	r.GET("/bookings", requireAuth, h.GetBookings)
	r.GET("/bookings/:id", requireAuth, h.GetBooking)
	r.GET("/bookings/:id/qr", requireAuth, h.GetBookingQR)
	r.DELETE("/bookings/:id", requireAuth, requireAdmin, h.DeleteBooking)
	r.GET("/allbookings", requireAuth, requireAdmin, h.GetAllBookings)

	// Token Routes
	tokenRoutes := r.Group("/")
	if limiter != nil {
		tokenRoutes.Use(limiter.Limit())
	}
	{
		tokenRoutes.GET("/jwt", h.IssueToken)
		tokenRoutes.POST("/login", h.Login)
	}

	// User Routes
	r.POST("/users", h.CreateUser)
	r.GET("/users", requireAuth, requireAdmin, h.GetUsers)
	r.GET("/users/admin/:email", h.CheckAdmin)
	r.PUT("/users/admin/:id", requireAuth, requireAdmin, h.MakeAdmin)
	r.DELETE("/users/:id", requireAuth, requireAdmin, h.DeleteUser)

	// Catalog Routes
	r.GET("/doctors", h.GetDoctors)
	r.GET("/doctors/:id", h.GetDoctor)
	r.POST("/doctors", requireAuth, requireAdmin, h.CreateDoctor)
	r.DELETE("/doctors/:id", requireAuth, requireAdmin, h.DeleteDoctor)

	r.GET("/departments", h.GetDepartments)
	r.GET("/departments/:id", h.GetDepartment)
	r.POST("/departments", requireAuth, requireAdmin, h.CreateDepartment)
	r.DELETE("/departments/:id", requireAuth, requireAdmin, h.DeleteDepartment)

	r.GET("/shop", h.GetShopItems)
	r.GET("/shop/:id", h.GetShopItem)
	r.POST("/shop", requireAuth, requireAdmin, h.CreateShopItem)
	r.DELETE("/shop/:id", requireAuth, requireAdmin, h.DeleteShopItem)

	// Cart and Order Routes
	r.POST("/carts", h.AddToCart)
	r.GET("/carts", requireAuth, h.GetCart)
	r.DELETE("/carts/:id", requireAuth, h.RemoveFromCart)

	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", requireAuth, h.GetOrders)
	r.GET("/allorders", requireAuth, requireAdmin, h.GetAllOrders)
	r.PUT("/orders/:id", requireAuth, requireAdmin, h.MarkOrderDelivered)
	r.GET("/orders/:id/invoice", requireAuth, h.GetOrderInvoice)

	// Payment Routes
	r.POST("/payments", h.CreatePayment)
	r.POST("/create-payment-intent", h.CreatePaymentIntent)
}
