package bookingRepo

import (
	"context"
	"fmt"

	"greenvilla/database"
	"greenvilla/database/repository"
	"greenvilla/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a BookingRepository backed by the bookings
// collection of db. Index creation failures are logged, not fatal.
func NewMongoBookingRepo(ctx context.Context, db *mongo.Database, logger *zap.Logger) BookingRepository {
	repo := &MongoBookingRepo{coll: db.Collection(database.BookingsCollection)}

	if err := repo.ensureIndexes(ctx); err != nil {
		logger.Warn("bookings: index creation failed", zap.Error(err))
	}
	return repo
}

// ownedBy builds the filter matching booking id only when it belongs to email.
func ownedBy(id, email string) (bson.M, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid, "email": email}, nil
}

func (r *MongoBookingRepo) GetByEmail(ctx context.Context, email string) ([]models.Document, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ScanTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for %s: %w", email, err)
	}
	bookings, err := repository.FindAll(ctx, cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookings for %s: %w", email, err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) GetByID(ctx context.Context, id, email string) (models.Document, error) {
	filter, err := ownedBy(id, email)
	if err != nil {
		return nil, err
	}
	ctx, cancel := repository.NewContext(ctx, repository.DocumentTimeout)
	defer cancel()

	booking, err := repository.FindOne(r.coll.FindOne(ctx, filter))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return booking, nil
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking models.Document) (*models.InsertResult, error) {
	ctx, cancel := repository.NewContext(ctx, repository.DocumentTimeout)
	defer cancel()

	result, err := r.coll.InsertOne(ctx, repository.NewDocument(booking))
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return repository.InsertResult(result), nil
}

func (r *MongoBookingRepo) UpdateDates(ctx context.Context, id, email string, dates models.BookingDatesUpdate) (*models.UpdateResult, error) {
	filter, err := ownedBy(id, email)
	if err != nil {
		return nil, err
	}
	ctx, cancel := repository.NewContext(ctx, repository.DocumentTimeout)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": dates})
	if err != nil {
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	return repository.UpdateResult(result), nil
}

func (r *MongoBookingRepo) Delete(ctx context.Context, id, email string) (*models.DeleteResult, error) {
	filter, err := ownedBy(id, email)
	if err != nil {
		return nil, err
	}
	ctx, cancel := repository.NewContext(ctx, repository.DocumentTimeout)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return repository.DeleteResult(result), nil
}
