package roomRepo

import (
	"context"

	"greenvilla/models"
)

// RoomRepository defines methods for room data access.
type RoomRepository interface {
	// GetAll retrieves every room document.
	GetAll(ctx context.Context) ([]models.Document, error)
	// GetByID retrieves the detail projection of a room, or nil when absent.
	GetByID(ctx context.Context, id string) (models.Document, error)
	// UpdateStatus overwrites the status field of a room.
	UpdateStatus(ctx context.Context, id string, update models.RoomStatusUpdate) (*models.UpdateResult, error)
}
