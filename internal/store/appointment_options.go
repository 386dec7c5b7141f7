package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/xbayazid/medwin-cares-server/internal/models"
)

type AppointmentOptionStore struct {
	coll *mongo.Collection
}

func NewAppointmentOptionStore(db *mongo.Database) *AppointmentOptionStore {
	return &AppointmentOptionStore{coll: db.Collection(AppointmentOptionsCollection)}
}

func (s *AppointmentOptionStore) List(ctx context.Context) ([]models.AppointmentOption, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find appointment options: %w", err)
	}
	return decodeOptions(ctx, cursor)
}

func (s *AppointmentOptionStore) Specialties(ctx context.Context) ([]models.Specialty, error) {
	cursor, err := s.coll.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"name": 1, "_id": 0}))
	if err != nil {
		return nil, fmt.Errorf("find appointment specialties: %w", err)
	}
	defer cursor.Close(ctx)

	specialties := make([]models.Specialty, 0)
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, fmt.Errorf("decode appointment specialties: %w", err)
	}
	return specialties, nil
}

func (s *AppointmentOptionStore) AvailableOn(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	cursor, err := s.coll.Aggregate(ctx, AvailabilityPipeline(date))
	if err != nil {
		return nil, fmt.Errorf("aggregate appointment availability: %w", err)
	}
	return decodeOptions(ctx, cursor)
}

func decodeOptions(ctx context.Context, cursor *mongo.Cursor) ([]models.AppointmentOption, error) {
	defer cursor.Close(ctx)
	opts := make([]models.AppointmentOption, 0)
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("decode appointment options: %w", err)
	}
	return opts, nil
}
