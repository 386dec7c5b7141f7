package handlers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/xbayazid/medwin-cares-server/internal/models"
	"github.com/xbayazid/medwin-cares-server/internal/services"
	"github.com/xbayazid/medwin-cares-server/internal/store"
)

// memCollection keeps documents as BSON so the fakes go through the same
// marshaling as the MongoDB store.
type memCollection[T any] struct {
	mu   sync.Mutex
	docs []bson.M
}

func newMem[T any]() *memCollection[T] { return &memCollection[T]{} }

func (m *memCollection[T]) seed(docs ...T) {
	for i := range docs {
		if _, err := m.Insert(context.Background(), &docs[i]); err != nil {
			panic(err)
		}
	}
}

func (m *memCollection[T]) decode(doc bson.M) (T, error) {
	var out T
	raw, err := bson.Marshal(doc)
	if err != nil {
		return out, err
	}
	err = bson.Unmarshal(raw, &out)
	return out, err
}

func matches(doc bson.M, filter store.Fields) bool {
	for k, want := range filter {
		if fmt.Sprint(doc[k]) != fmt.Sprint(want) {
			return false
		}
	}
	return true
}

func (m *memCollection[T]) List(_ context.Context, filter store.Fields) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, 0)
	for _, doc := range m.docs {
		if !matches(doc, filter) {
			continue
		}
		v, err := m.decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *memCollection[T]) find(id string) (int, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1, store.ErrInvalidID
	}
	for i, doc := range m.docs {
		if doc["_id"] == oid {
			return i, nil
		}
	}
	return -1, store.ErrNotFound
}

func (m *memCollection[T]) Get(_ context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := m.find(id)
	if err != nil {
		return nil, err
	}
	v, err := m.decode(m.docs[i])
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (m *memCollection[T]) Insert(_ context.Context, doc *T) (models.Ack, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return models.Ack{}, err
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return models.Ack{}, err
	}
	oid, ok := stored["_id"].(primitive.ObjectID)
	if !ok {
		oid = primitive.NewObjectID()
		stored["_id"] = oid
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, stored)
	return models.InsertAck(oid.Hex()), nil
}

func (m *memCollection[T]) Update(_ context.Context, id string, set store.Fields) (models.Ack, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := m.find(id)
	if errors.Is(err, store.ErrNotFound) {
		return models.UpdateAck(0, 0), nil
	}
	if err != nil {
		return models.Ack{}, err
	}

	// Round trip the new values through BSON so custom marshalers apply.
	raw, err := bson.Marshal(bson.M(set))
	if err != nil {
		return models.Ack{}, err
	}
	var values bson.M
	if err := bson.Unmarshal(raw, &values); err != nil {
		return models.Ack{}, err
	}
	for k, v := range values {
		m.docs[i][k] = v
	}
	return models.UpdateAck(1, 1), nil
}

func (m *memCollection[T]) Delete(_ context.Context, id string) (models.Ack, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, err := m.find(id)
	if errors.Is(err, store.ErrNotFound) {
		return models.DeleteAck(0), nil
	}
	if err != nil {
		return models.Ack{}, err
	}
	m.docs = append(m.docs[:i], m.docs[i+1:]...)
	return models.DeleteAck(1), nil
}

func (m *memCollection[T]) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

type fakeBookings struct {
	*memCollection[models.Booking]
}

func (f fakeBookings) Exists(ctx context.Context, email, treatment, date string) (bool, error) {
	found, err := f.List(ctx, store.Fields{"email": email, "treatment": treatment, "appointmentDate": date})
	return len(found) > 0, err
}

func (f fakeBookings) SetPaid(ctx context.Context, id string, status models.PaidStatus, transactionID string) (models.Ack, error) {
	return f.Update(ctx, id, store.Fields{"paid": status, "transactionId": transactionID})
}

type fakeUsers struct {
	*memCollection[models.User]
}

func (f fakeUsers) Insert(ctx context.Context, user *models.User) (models.Ack, error) {
	if _, err := f.FindByEmail(ctx, user.Email); err == nil {
		return models.Ack{}, store.ErrDuplicate
	}
	return f.memCollection.Insert(ctx, user)
}

func (f fakeUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	found, err := f.List(ctx, store.Fields{"email": email})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, store.ErrNotFound
	}
	return &found[0], nil
}

func (f fakeUsers) SetRole(ctx context.Context, id string, role models.Role) (models.Ack, error) {
	return f.Update(ctx, id, store.Fields{"role": string(role)})
}

func (f fakeUsers) PromoteEmails(ctx context.Context, emails []string) (int64, error) {
	var n int64
	for _, email := range emails {
		user, err := f.FindByEmail(ctx, email)
		if err != nil {
			continue
		}
		if _, err := f.SetRole(ctx, user.ID.Hex(), models.RoleAdmin); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

type fakeOptions struct {
	options  []models.AppointmentOption
	bookings fakeBookings
}

func (f *fakeOptions) List(context.Context) ([]models.AppointmentOption, error) {
	return f.options, nil
}

func (f *fakeOptions) Specialties(context.Context) ([]models.Specialty, error) {
	out := make([]models.Specialty, 0, len(f.options))
	for _, o := range f.options {
		out = append(out, models.Specialty{Name: o.Name})
	}
	return out, nil
}

func (f *fakeOptions) AvailableOn(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	booked, err := f.bookings.List(ctx, store.Fields{"appointmentDate": date})
	if err != nil {
		return nil, err
	}
	return services.RemainingSlots(f.options, booked), nil
}

type fakeProcessor struct {
	amount int64
	err    error
}

func (p *fakeProcessor) CreatePaymentIntent(_ context.Context, amountCents int64) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.amount = amountCents
	return fmt.Sprintf("pi_test_secret_%d", amountCents), nil
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []models.Booking
}

func (n *fakeNotifier) BookingConfirmed(b models.Booking) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, b)
}
