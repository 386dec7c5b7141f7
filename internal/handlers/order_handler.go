package handlers

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xbayazid/medwin-cares-server/internal/models"
	"github.com/xbayazid/medwin-cares-server/internal/services"
	"github.com/xbayazid/medwin-cares-server/internal/store"
	"github.com/xbayazid/medwin-cares-server/internal/utils"
)

type AddToCartRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,gte=1"`
	Image     string  `json:"img"`
}

type OrderLineRequest struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,gte=1"`
}

type CreateOrderRequest struct {
	Email   string             `json:"email" binding:"required,email"`
	Name    string             `json:"name" binding:"required"`
	Phone   string             `json:"phone"`
	Address string             `json:"address" binding:"required"`
	Items   []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// --- CARTS ---

func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	insertOne(c, h.Carts, &models.CartItem{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Image:     req.Image,
	}, "cart item")
}

func (h *Handler) GetCart(c *gin.Context) {
	email := c.Query("email")
	if !requireSelf(c, email) {
		return
	}
	items, err := h.Carts.List(c.Request.Context(), store.Fields{"email": email})
	if err != nil {
		respondStoreError(c, "failed to fetch cart", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	ctx := c.Request.Context()
	item, err := h.Carts.Get(ctx, c.Param("id"))
	if err != nil {
		respondStoreError(c, "failed to fetch cart item", err)
		return
	}
	if !h.requireOwnerOrAdmin(c, item.Email) {
		return
	}
	ack, err := h.Carts.Delete(ctx, c.Param("id"))
	if err != nil {
		respondStoreError(c, "failed to delete cart item", err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

// --- ORDERS ---

// CreateOrder records an order with its total computed from the lines. New
// orders start undelivered.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := make([]models.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, models.OrderLine{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order := models.Order{
		ID:        primitive.NewObjectID(),
		Email:     req.Email,
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		Items:     lines,
		Total:     services.OrderTotal(lines),
		CreatedAt: time.Now().UTC(),
	}
	ack, err := h.Orders.Insert(c.Request.Context(), &order)
	if err != nil {
		utils.AbortWithServerError(c, "failed to insert order", err)
		return
	}
	log.Printf("CreateOrder: %s ordered %d line(s), total %.2f", order.Email, len(lines), order.Total)
	c.JSON(http.StatusOK, ack)
}

func (h *Handler) GetOrders(c *gin.Context) {
	email := c.Query("email")
	if !requireSelf(c, email) {
		return
	}
	orders, err := h.Orders.List(c.Request.Context(), store.Fields{"email": email})
	if err != nil {
		respondStoreError(c, "failed to fetch orders", err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) GetAllOrders(c *gin.Context) {
	listAll(c, h.Orders, "orders")
}

// MarkOrderDelivered flips the order status to delivered.
func (h *Handler) MarkOrderDelivered(c *gin.Context) {
	ack, err := h.Orders.Update(c.Request.Context(), c.Param("id"), store.Fields{"status": true})
	if err != nil {
		respondStoreError(c, "failed to update order", err)
		return
	}
	c.JSON(http.StatusOK, ack)
}

func (h *Handler) GetOrderInvoice(c *gin.Context) {
	order, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStoreError(c, "failed to fetch order", err)
		return
	}
	if !h.requireOwnerOrAdmin(c, order.Email) {
		return
	}

	var buf bytes.Buffer
	if err := services.WriteOrderInvoice(&buf, *order); err != nil {
		utils.AbortWithServerError(c, "failed to render invoice", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=invoice-%s.pdf", order.ID.Hex()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
