package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xbayazid/medwin-cares-server/internal/store"
)

// Connect opens the shared client and pings the deployment. The returned
// client is safe for concurrent use and pools its own connections.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Successfully connected to MongoDB!")
	return client, nil
}

// BookingIndexName names the (email, treatment, appointmentDate) index whose
// uniqueness follows ENFORCE_UNIQUE_BOOKINGS.
const BookingIndexName = "booking_owner_treatment_date"

// IndexModels returns the indexes the service relies on. The booking index
// only becomes unique when uniqueBookings is set; otherwise the pre-insert
// existence check is the only guard against duplicates.
func IndexModels(uniqueBookings bool) map[string][]mongo.IndexModel {
	bookingIndex := options.Index().SetName(BookingIndexName)
	if uniqueBookings {
		bookingIndex.SetUnique(true)
	}
	return map[string][]mongo.IndexModel{
		store.UsersCollection: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_email"),
		}},
		store.BookingsCollection: {
			{
				Keys: bson.D{
					{Key: "email", Value: 1},
					{Key: "treatment", Value: 1},
					{Key: "appointmentDate", Value: 1},
				},
				Options: bookingIndex,
			},
			{
				Keys:    bson.D{{Key: "appointmentDate", Value: 1}, {Key: "treatment", Value: 1}},
				Options: options.Index().SetName("booking_date_treatment"),
			},
		},
		store.CartsCollection: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("cart_email"),
		}},
		store.OrdersCollection: {{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("order_email"),
		}},
	}
}

// EnsureIndexes creates the indexes from IndexModels on db. A failure on one
// collection does not stop the others; all failures are returned joined.
func EnsureIndexes(ctx context.Context, db *mongo.Database, uniqueBookings bool) error {
	var errs []error
	if err := syncBookingIndex(ctx, db.Collection(store.BookingsCollection), uniqueBookings); err != nil {
		errs = append(errs, err)
	}

	indexes := IndexModels(uniqueBookings)
	colls := make([]string, 0, len(indexes))
	for coll := range indexes {
		colls = append(colls, coll)
	}
	slices.Sort(colls)
	for _, coll := range colls {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, indexes[coll]); err != nil {
			errs = append(errs, fmt.Errorf("create indexes on %s: %w", coll, err))
		}
	}
	return errors.Join(errs...)
}

// syncBookingIndex drops the booking index when its uniqueness differs from
// the configured one, so CreateMany can rebuild it with the new options.
func syncBookingIndex(ctx context.Context, coll *mongo.Collection, unique bool) error {
	specs, err := coll.Indexes().ListSpecifications(ctx)
	if err != nil {
		return fmt.Errorf("list indexes on %s: %w", coll.Name(), err)
	}
	for _, spec := range specs {
		if spec.Name != BookingIndexName {
			continue
		}
		if (spec.Unique != nil && *spec.Unique) == unique {
			return nil
		}
		log.Printf("Booking index uniqueness changed to %v, rebuilding %s", unique, BookingIndexName)
		if _, err := coll.Indexes().DropOne(ctx, BookingIndexName); err != nil {
			return fmt.Errorf("drop %s: %w", BookingIndexName, err)
		}
		return nil
	}
	return nil
}
