package usecase

import (
	"context"

	"drogo/internal/domain/entity"
)

// JoinWaitlistInput defines the data for a waitlist submission.
type JoinWaitlistInput struct {
	Name                   string
	Email                  string
	Phone                  string
	Address                string
	PreferredDeliveryItems string
}

// WaitlistUsecase defines the interface for waitlist use cases
type WaitlistUsecase interface {
	// Join records a delivery-intent submission from outside the service
	// area.
	Join(ctx context.Context, input JoinWaitlistInput) (*entity.WaitlistEntry, error)
}
