package reviewRepo

import (
	"context"
	"fmt"

	"greenvilla/database"
	"greenvilla/database/repository"
	"greenvilla/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a ReviewRepository backed by the reviews collection of db.
func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	return &MongoReviewRepo{coll: db.Collection(database.ReviewsCollection)}
}

func (r *MongoReviewRepo) GetAll(ctx context.Context) ([]models.Document, error) {
	ctx, cancel := repository.NewContext(ctx, repository.ScanTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	reviews, err := repository.FindAll(ctx, cursor)
	if err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepo) Create(ctx context.Context, review models.Document) (*models.InsertResult, error) {
	ctx, cancel := repository.NewContext(ctx, repository.DocumentTimeout)
	defer cancel()

	result, err := r.coll.InsertOne(ctx, repository.NewDocument(review))
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return repository.InsertResult(result), nil
}
