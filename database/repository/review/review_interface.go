package reviewRepo

import (
	"context"

	"greenvilla/models"
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// GetAll retrieves every review document.
	GetAll(ctx context.Context) ([]models.Document, error)
	// Create inserts a review with a generated id.
	Create(ctx context.Context, review models.Document) (*models.InsertResult, error)
}
