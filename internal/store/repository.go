package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xbayazid/medwin-cares-server/internal/models"
)

// Repository is a Collection backed by one MongoDB collection.
type Repository[T any] struct {
	coll *mongo.Collection
}

func NewRepository[T any](coll *mongo.Collection) *Repository[T] {
	return &Repository[T]{coll: coll}
}

func (r *Repository[T]) List(ctx context.Context, filter Fields) ([]T, error) {
	cursor, err := r.coll.Find(ctx, toFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}
	return docs, nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (*T, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc T
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s %s: %w", r.coll.Name(), id, err)
	}
	return &doc, nil
}

func (r *Repository[T]) Insert(ctx context.Context, doc *T) (models.Ack, error) {
	result, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return models.Ack{}, fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	if err != nil {
		return models.Ack{}, fmt.Errorf("insert %s: %w", r.coll.Name(), err)
	}
	return models.InsertAck(idString(result.InsertedID)), nil
}

func (r *Repository[T]) Update(ctx context.Context, id string, set Fields) (models.Ack, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.Ack{}, err
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(set)})
	if err != nil {
		return models.Ack{}, fmt.Errorf("update %s %s: %w", r.coll.Name(), id, err)
	}
	return models.UpdateAck(result.MatchedCount, result.ModifiedCount), nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) (models.Ack, error) {
	oid, err := objectID(id)
	if err != nil {
		return models.Ack{}, err
	}
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return models.Ack{}, fmt.Errorf("delete %s %s: %w", r.coll.Name(), id, err)
	}
	return models.DeleteAck(result.DeletedCount), nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func idString(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}

func toFilter(f Fields) bson.M {
	if f == nil {
		return bson.M{}
	}
	return bson.M(f)
}
