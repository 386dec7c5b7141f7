package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"`
	ProductID string             `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Image     string             `bson:"img,omitempty" json:"img,omitempty"`
}

// OrderLine is one product line inside an Order.
type OrderLine struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

func (l OrderLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Phone     string             `bson:"phone" json:"phone"`
	Address   string             `bson:"address" json:"address"`
	Items     []OrderLine        `bson:"items" json:"items"`
	Total     float64            `bson:"total" json:"total"`
	Status    bool               `bson:"status" json:"status"` // true once delivered
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// PaymentMethod is how a booking was paid for.
type PaymentMethod string

const (
	PaymentCard  PaymentMethod = "card"
	PaymentBkash PaymentMethod = "bkash"
)

// BookingStatus is the paid state a payment made with this method leaves
// on its booking. Card payments are settled by the processor; bKash
// transfers wait for manual verification.
func (m PaymentMethod) BookingStatus() (PaidStatus, bool) {
	switch m {
	case PaymentCard:
		return PaidTrue, true
	case PaymentBkash:
		return PaidPending, true
	}
	return PaidUnset, false
}

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookingID     string             `bson:"bookingId" json:"bookingId"`
	Email         string             `bson:"email" json:"email"`
	Price         float64            `bson:"price" json:"price"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Method        PaymentMethod      `bson:"method" json:"method"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
