package postgres

import (
	"context"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"
	"drogo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// waitlistRepository implements the repository.WaitlistRepository interface.
type waitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository is the constructor for waitlistRepository.
func NewWaitlistRepository(db *gorm.DB) repository.WaitlistRepository {
	return &waitlistRepository{
		db: db,
	}
}

// CreateEntry appends a waitlist submission.
func (repo *waitlistRepository) CreateEntry(ctx context.Context, entry *entity.WaitlistEntry) error {
	entryM := &model.WaitlistEntryModel{
		ID:                     entry.ID,
		Name:                   entry.Name,
		Email:                  entry.Email,
		Phone:                  entry.Phone,
		Address:                entry.Address,
		PreferredDeliveryItems: entry.PreferredDeliveryItems,
		CreatedAt:              entry.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required waitlist information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create waitlist entry")
	}

	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// FindAllEntries retrieves every submission, newest first.
func (repo *waitlistRepository) FindAllEntries(ctx context.Context) ([]*entity.WaitlistEntry, error) {
	var entryMs []model.WaitlistEntryModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&entryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find waitlist entries")
	}

	entries := make([]*entity.WaitlistEntry, 0, len(entryMs))
	for i := range entryMs {
		m := &entryMs[i]
		entries = append(entries, &entity.WaitlistEntry{
			ID:                     m.ID,
			Name:                   m.Name,
			Email:                  m.Email,
			Phone:                  m.Phone,
			Address:                m.Address,
			PreferredDeliveryItems: m.PreferredDeliveryItems,
			CreatedAt:              m.CreatedAt,
		})
	}

	return entries, nil
}
