package bookingRepo

import (
	"context"

	"greenvilla/models"
)

// BookingRepository defines methods for booking data access. Every lookup
// by id is scoped to the owning guest email.
type BookingRepository interface {
	// GetByEmail retrieves every booking made with the given email.
	GetByEmail(ctx context.Context, email string) ([]models.Document, error)
	// GetByID retrieves a booking owned by email, or nil when absent.
	GetByID(ctx context.Context, id, email string) (models.Document, error)
	// Create inserts a booking with a generated id.
	Create(ctx context.Context, booking models.Document) (*models.InsertResult, error)
	// UpdateDates overwrites the check-in and check-out dates of a booking owned by email.
	UpdateDates(ctx context.Context, id, email string, dates models.BookingDatesUpdate) (*models.UpdateResult, error)
	// Delete removes a booking owned by email.
	Delete(ctx context.Context, id, email string) (*models.DeleteResult, error)
}
