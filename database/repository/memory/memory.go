// Package memory provides in-process implementations of the collection
// repositories with the same filter, projection and result semantics as
// the MongoDB ones. Handler and service tests run against it.
package memory

import (
	"context"
	"sync"

	"greenvilla/database/repository"
	bookingRepo "greenvilla/database/repository/booking"
	reviewRepo "greenvilla/database/repository/review"
	roomRepo "greenvilla/database/repository/room"
	"greenvilla/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ roomRepo.RoomRepository       = (*RoomRepo)(nil)
	_ bookingRepo.BookingRepository = (*BookingRepo)(nil)
	_ reviewRepo.ReviewRepository   = (*ReviewRepo)(nil)
)

type collection struct {
	mu   sync.RWMutex
	ids  []primitive.ObjectID
	docs map[primitive.ObjectID]models.Document
}

func newCollection() *collection {
	return &collection{docs: make(map[primitive.ObjectID]models.Document)}
}

func clone(doc models.Document) models.Document {
	out := make(models.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func (c *collection) insert(payload models.Document) primitive.ObjectID {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc := repository.NewDocument(payload)
	id := primitive.NewObjectID()
	doc["_id"] = id
	c.ids = append(c.ids, id)
	c.docs[id] = doc
	return id
}

func (c *collection) find(match func(models.Document) bool) []models.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.Document, 0)
	for _, id := range c.ids {
		if doc := c.docs[id]; match(doc) {
			out = append(out, clone(doc))
		}
	}
	return out
}

func (c *collection) get(id primitive.ObjectID, match func(models.Document) bool) models.Document {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	if !ok || !match(doc) {
		return nil
	}
	return clone(doc)
}

func (c *collection) set(id primitive.ObjectID, match func(models.Document) bool, fields models.Document) *models.UpdateResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := &models.UpdateResult{Acknowledged: true}
	doc, ok := c.docs[id]
	if !ok || !match(doc) {
		return res
	}
	res.MatchedCount = 1
	for k, v := range fields {
		if doc[k] != v {
			doc[k] = v
			res.ModifiedCount = 1
		}
	}
	return res
}

func (c *collection) remove(id primitive.ObjectID, match func(models.Document) bool) *models.DeleteResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := &models.DeleteResult{Acknowledged: true}
	doc, ok := c.docs[id]
	if !ok || !match(doc) {
		return res
	}
	delete(c.docs, id)
	for i, existing := range c.ids {
		if existing == id {
			c.ids = append(c.ids[:i], c.ids[i+1:]...)
			break
		}
	}
	res.DeletedCount = 1
	return res
}

func matchAll(models.Document) bool { return true }

func emailIs(email string) func(models.Document) bool {
	return func(doc models.Document) bool { return doc["email"] == email }
}

// RoomRepo is an in-memory RoomRepository. Err, when set, is returned by every call.
type RoomRepo struct {
	Err error
	c   *collection
}

func NewRoomRepo() *RoomRepo { return &RoomRepo{c: newCollection()} }

// Seed stores a full room document and returns its id.
func (r *RoomRepo) Seed(room models.Document) string { return r.c.insert(room).Hex() }

func (r *RoomRepo) GetAll(ctx context.Context) ([]models.Document, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.c.find(matchAll), nil
}

func (r *RoomRepo) GetByID(ctx context.Context, id string) (models.Document, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	doc := r.c.get(oid, matchAll)
	if doc == nil {
		return nil, nil
	}
	projected := models.Document{"_id": doc["_id"]}
	for _, field := range models.RoomDetailFields {
		if v, ok := doc[field]; ok {
			projected[field] = v
		}
	}
	return projected, nil
}

func (r *RoomRepo) UpdateStatus(ctx context.Context, id string, update models.RoomStatusUpdate) (*models.UpdateResult, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	return r.c.set(oid, matchAll, models.Document{"status": update.Status}), nil
}

// BookingRepo is an in-memory BookingRepository. Err, when set, is returned by every call.
type BookingRepo struct {
	Err error
	c   *collection
}

func NewBookingRepo() *BookingRepo { return &BookingRepo{c: newCollection()} }

// All returns every stored booking regardless of owner.
func (r *BookingRepo) All() []models.Document { return r.c.find(matchAll) }

func (r *BookingRepo) GetByEmail(ctx context.Context, email string) ([]models.Document, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.c.find(emailIs(email)), nil
}

func (r *BookingRepo) GetByID(ctx context.Context, id, email string) (models.Document, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	return r.c.get(oid, emailIs(email)), nil
}

func (r *BookingRepo) Create(ctx context.Context, booking models.Document) (*models.InsertResult, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: r.c.insert(booking)}, nil
}

func (r *BookingRepo) UpdateDates(ctx context.Context, id, email string, dates models.BookingDatesUpdate) (*models.UpdateResult, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	return r.c.set(oid, emailIs(email), models.Document{
		"checkingDate": dates.CheckingDate,
		"checkOutdate": dates.CheckOutdate,
	}), nil
}

func (r *BookingRepo) Delete(ctx context.Context, id, email string) (*models.DeleteResult, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	return r.c.remove(oid, emailIs(email)), nil
}

// ReviewRepo is an in-memory ReviewRepository. Err, when set, is returned by every call.
type ReviewRepo struct {
	Err error
	c   *collection
}

func NewReviewRepo() *ReviewRepo { return &ReviewRepo{c: newCollection()} }

func (r *ReviewRepo) GetAll(ctx context.Context) ([]models.Document, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return r.c.find(matchAll), nil
}

func (r *ReviewRepo) Create(ctx context.Context, review models.Document) (*models.InsertResult, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: r.c.insert(review)}, nil
}
