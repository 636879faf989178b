// Package booking applies the session ownership policy to booking
// operations: a guest only ever sees and changes bookings made with the
// email of their own session.
package booking

import (
	"context"

	bookingRepo "greenvilla/database/repository/booking"
	"greenvilla/models"

	"go.uber.org/zap"
)

// Service defines the booking operations available to a signed-in guest.
// owner is always the email of the caller's session.
type Service interface {
	List(ctx context.Context, owner, emailFilter string) ([]models.Document, error)
	Create(ctx context.Context, owner string, booking models.Document) (*models.InsertResult, error)
	Get(ctx context.Context, owner, id string) (models.Document, error)
	UpdateDates(ctx context.Context, owner, id string, dates models.BookingDatesUpdate) (*models.UpdateResult, error)
	Delete(ctx context.Context, owner, id string) (*models.DeleteResult, error)
}

// DefaultBookingService implements Service on a BookingRepository.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

// List returns the owner's bookings. A non-empty filter must name the owner.
func (s *DefaultBookingService) List(ctx context.Context, owner, emailFilter string) ([]models.Document, error) {
	if emailFilter != "" && emailFilter != owner {
		s.Logger.Warn("booking list for foreign email refused",
			zap.String("owner", owner), zap.String("email", emailFilter))
		return nil, NewOwnershipError(owner, emailFilter)
	}
	return s.Repo.GetByEmail(ctx, owner)
}

// Create stores the booking under the owner's email. A payload naming a
// different email is refused.
func (s *DefaultBookingService) Create(ctx context.Context, owner string, booking models.Document) (*models.InsertResult, error) {
	doc := make(models.Document, len(booking)+1)
	for k, v := range booking {
		doc[k] = v
	}

	switch email := doc["email"].(type) {
	case nil:
		doc["email"] = owner
	case string:
		if email == "" {
			doc["email"] = owner
		} else if email != owner {
			s.Logger.Warn("booking for foreign email refused",
				zap.String("owner", owner), zap.String("email", email))
			return nil, NewOwnershipError(owner, email)
		}
	default:
		return nil, NewOwnershipError(owner, email)
	}

	result, err := s.Repo.Create(ctx, doc)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("booking created", zap.String("owner", owner), zap.Any("id", result.InsertedID))
	return result, nil
}

// Get returns the owner's booking, or nil when it does not exist or
// belongs to someone else.
func (s *DefaultBookingService) Get(ctx context.Context, owner, id string) (models.Document, error) {
	return s.Repo.GetByID(ctx, id, owner)
}

// UpdateDates changes the check-in and check-out dates of the owner's booking.
func (s *DefaultBookingService) UpdateDates(ctx context.Context, owner, id string, dates models.BookingDatesUpdate) (*models.UpdateResult, error) {
	result, err := s.Repo.UpdateDates(ctx, id, owner, dates)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("booking dates updated",
		zap.String("owner", owner), zap.String("id", id), zap.Int64("matched", result.MatchedCount))
	return result, nil
}

// Delete permanently removes the owner's booking. Room availability is
// not touched.
func (s *DefaultBookingService) Delete(ctx context.Context, owner, id string) (*models.DeleteResult, error) {
	result, err := s.Repo.Delete(ctx, id, owner)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("booking deleted",
		zap.String("owner", owner), zap.String("id", id), zap.Int64("deleted", result.DeletedCount))
	return result, nil
}
