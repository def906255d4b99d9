package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"drogo/internal/domain/entity"
	"drogo/internal/domain/repository"
	"drogo/internal/errors"
	"drogo/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrWaitlistNameRequired is returned when the submission has no name
	ErrWaitlistNameRequired = errors.New("name is required")
	// ErrWaitlistEmailInvalid is returned when the submission email is missing or malformed
	ErrWaitlistEmailInvalid = errors.New("a valid email is required")
)

type waitlistService struct {
	waitlistRepo repository.WaitlistRepository
	now          func() time.Time
}

// NewWaitlistService creates a new waitlist service instance
func NewWaitlistService(waitlistRepo repository.WaitlistRepository) usecase.WaitlistUsecase {
	return &waitlistService{
		waitlistRepo: waitlistRepo,
		now:          time.Now,
	}
}

// Join records a delivery-intent submission from outside the service area.
func (s *waitlistService) Join(ctx context.Context, input usecase.JoinWaitlistInput) (*entity.WaitlistEntry, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrWaitlistNameRequired
	}
	email := normalizeEmail(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrWaitlistEmailInvalid
	}

	entry := &entity.WaitlistEntry{
		ID:                     uuid.New(),
		Name:                   name,
		Email:                  email,
		Phone:                  strings.TrimSpace(input.Phone),
		Address:                strings.TrimSpace(input.Address),
		PreferredDeliveryItems: strings.TrimSpace(input.PreferredDeliveryItems),
		CreatedAt:              s.now(),
	}
	if err := s.waitlistRepo.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create waitlist entry: %w", err)
	}

	return entry, nil
}
