package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/xbayazid/medwin-cares-server/internal/models"
)

type UserStore struct {
	*Repository[models.User]
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{Repository: NewRepository[models.User](db.Collection(UsersCollection))}
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *UserStore) SetRole(ctx context.Context, id string, role models.Role) (models.Ack, error) {
	return s.Update(ctx, id, Fields{"role": role})
}

// PromoteEmails grants the admin role to every existing user in emails.
func (s *UserStore) PromoteEmails(ctx context.Context, emails []string) (int64, error) {
	if len(emails) == 0 {
		return 0, nil
	}
	result, err := s.coll.UpdateMany(ctx,
		bson.M{"email": bson.M{"$in": emails}},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		return 0, fmt.Errorf("promote admins: %w", err)
	}
	return result.ModifiedCount, nil
}
