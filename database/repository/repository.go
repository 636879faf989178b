// Package repository holds what the per-collection repositories share:
// id parsing, timeouts and the mapping of driver results to client shapes.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"greenvilla/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Timeouts applied to single-document operations and collection scans.
const (
	DocumentTimeout = 5 * time.Second
	ScanTimeout     = 10 * time.Second
)

// ErrInvalidID is returned when an id is not a 24-character hex ObjectID.
var ErrInvalidID = errors.New("invalid id")

// NewContext derives a context with the given timeout from the request context.
func NewContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ParseID converts a hex id from a route parameter into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

// NewDocument copies a client payload, dropping any client supplied "_id"
// so that the store generates one.
func NewDocument(payload models.Document) models.Document {
	doc := make(models.Document, len(payload))
	for k, v := range payload {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	return doc
}

// FindAll drains a cursor into a non-nil slice so that an empty collection
// serializes as [] rather than null.
func FindAll(ctx context.Context, cursor *mongo.Cursor) ([]models.Document, error) {
	defer cursor.Close(ctx)

	docs := make([]models.Document, 0)
	for cursor.Next(ctx) {
		var doc models.Document
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return docs, nil
}

// FindOne decodes a single result, mapping "no documents" to a nil document.
func FindOne(result *mongo.SingleResult) (models.Document, error) {
	var doc models.Document
	if err := result.Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// InsertResult converts a driver insert result.
func InsertResult(r *mongo.InsertOneResult) *models.InsertResult {
	return &models.InsertResult{Acknowledged: true, InsertedID: r.InsertedID}
}

// UpdateResult converts a driver update result.
func UpdateResult(r *mongo.UpdateResult) *models.UpdateResult {
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  r.MatchedCount,
		ModifiedCount: r.ModifiedCount,
		UpsertedCount: r.UpsertedCount,
		UpsertedID:    r.UpsertedID,
	}
}

// DeleteResult converts a driver delete result.
func DeleteResult(r *mongo.DeleteResult) *models.DeleteResult {
	return &models.DeleteResult{Acknowledged: true, DeletedCount: r.DeletedCount}
}
