package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xbayazid/medwin-cares-server/internal/models"
)

type BookingStore struct {
	*Repository[models.Booking]
}

func NewBookingStore(db *mongo.Database) *BookingStore {
	return &BookingStore{Repository: NewRepository[models.Booking](db.Collection(BookingsCollection))}
}

// Exists reports whether email already holds a booking for treatment on date.
// It is a plain read; callers that insert afterwards race with each other
// unless the unique booking index is enabled.
func (s *BookingStore) Exists(ctx context.Context, email, treatment, date string) (bool, error) {
	filter := bson.M{
		"appointmentDate": date,
		"email":           email,
		"treatment":       treatment,
	}
	err := s.coll.FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check existing booking: %w", err)
	}
	return true, nil
}

// SetPaid writes the payment outcome back onto a booking.
func (s *BookingStore) SetPaid(ctx context.Context, id string, status models.PaidStatus, transactionID string) (models.Ack, error) {
	return s.Update(ctx, id, Fields{
		"paid":          status,
		"transactionId": transactionID,
	})
}
