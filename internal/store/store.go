// Package store wraps the MongoDB collections behind small interfaces so
// handlers receive an injected, pooled database handle instead of globals.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xbayazid/medwin-cares-server/internal/models"
)

const (
	AppointmentOptionsCollection = "appointmentOptions"
	BookingsCollection           = "bookings"
	UsersCollection              = "users"
	DoctorsCollection            = "doctors"
	DepartmentsCollection        = "departments"
	ShopCollection               = "shop"
	CartsCollection              = "carts"
	OrdersCollection             = "orders"
	PaymentsCollection           = "payments"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrInvalidID = errors.New("invalid id")
	ErrDuplicate = errors.New("duplicate document")
)

// Fields is an equality filter or a set of fields to update.
type Fields map[string]any

// Collection is the CRUD surface shared by every entity.
type Collection[T any] interface {
	List(ctx context.Context, filter Fields) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Insert(ctx context.Context, doc *T) (models.Ack, error)
	Update(ctx context.Context, id string, set Fields) (models.Ack, error)
	Delete(ctx context.Context, id string) (models.Ack, error)
}

type AppointmentOptions interface {
	List(ctx context.Context) ([]models.AppointmentOption, error)
	Specialties(ctx context.Context) ([]models.Specialty, error)
	// AvailableOn computes remaining slots for date inside the database.
	AvailableOn(ctx context.Context, date string) ([]models.AppointmentOption, error)
}

type Bookings interface {
	Collection[models.Booking]
	Exists(ctx context.Context, email, treatment, date string) (bool, error)
	SetPaid(ctx context.Context, id string, status models.PaidStatus, transactionID string) (models.Ack, error)
}

type Users interface {
	Collection[models.User]
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetRole(ctx context.Context, id string, role models.Role) (models.Ack, error)
	PromoteEmails(ctx context.Context, emails []string) (int64, error)
}

// Store groups the MongoDB implementations over a single database handle.
type Store struct {
	AppointmentOptions *AppointmentOptionStore
	Bookings           *BookingStore
	Users              *UserStore
	Doctors            *Repository[models.Doctor]
	Departments        *Repository[models.Department]
	Shop               *Repository[models.ShopItem]
	Carts              *Repository[models.CartItem]
	Orders             *Repository[models.Order]
	Payments           *Repository[models.Payment]
}

func New(db *mongo.Database) *Store {
	return &Store{
		AppointmentOptions: NewAppointmentOptionStore(db),
		Bookings:           NewBookingStore(db),
		Users:              NewUserStore(db),
		Doctors:            NewRepository[models.Doctor](db.Collection(DoctorsCollection)),
		Departments:        NewRepository[models.Department](db.Collection(DepartmentsCollection)),
		Shop:               NewRepository[models.ShopItem](db.Collection(ShopCollection)),
		Carts:              NewRepository[models.CartItem](db.Collection(CartsCollection)),
		Orders:             NewRepository[models.Order](db.Collection(OrdersCollection)),
		Payments:           NewRepository[models.Payment](db.Collection(PaymentsCollection)),
	}
}
