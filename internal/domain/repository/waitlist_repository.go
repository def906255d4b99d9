// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"drogo/internal/domain/entity"
)

// WaitlistRepository persists delivery-intent submissions from visitors
// outside the service area.
type WaitlistRepository interface {
	// CreateEntry appends a waitlist submission.
	CreateEntry(ctx context.Context, entry *entity.WaitlistEntry) error

	// FindAllEntries retrieves every submission, newest first. Admin path.
	FindAllEntries(ctx context.Context) ([]*entity.WaitlistEntry, error)
}
