// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"drogo/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationRepository persists a user's delivery selection after every change.
type LocationRepository interface {
	// SaveSelection overwrites the stored selection for a user.
	SaveSelection(ctx context.Context, userID uuid.UUID, selection *entity.LocationSelection) error

	// LoadSelection retrieves a user's selection. A missing or unreadable
	// selection loads as the zero selection, never as an error.
	LoadSelection(ctx context.Context, userID uuid.UUID) (*entity.LocationSelection, error)

	// ClearSelection removes the stored selection for a user.
	ClearSelection(ctx context.Context, userID uuid.UUID) error
}
