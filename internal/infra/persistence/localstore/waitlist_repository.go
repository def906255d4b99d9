package localstore

import (
	"context"
	"sort"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"
)

const waitlistPrefix = "waitlist/"

// waitlistRepository implements the repository.WaitlistRepository interface
// over the local document store.
type waitlistRepository struct {
	store *Store
}

// NewWaitlistRepository is the constructor for waitlistRepository.
func NewWaitlistRepository(store *Store) repository.WaitlistRepository {
	return &waitlistRepository{store: store}
}

// CreateEntry appends a waitlist submission.
func (repo *waitlistRepository) CreateEntry(ctx context.Context, entry *entity.WaitlistEntry) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	key := waitlistPrefix + entry.ID.String() + ".json"
	if err := repo.store.writeDoc(ctx, key, entry); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create waitlist entry")
	}

	return nil
}

// FindAllEntries retrieves every submission, newest first. Corrupt
// documents are skipped, not fatal.
func (repo *waitlistRepository) FindAllEntries(ctx context.Context) ([]*entity.WaitlistEntry, error) {
	keys, err := repo.store.listKeys(ctx, waitlistPrefix)
	if err != nil {
		return nil, err
	}

	entries := make([]*entity.WaitlistEntry, 0, len(keys))
	for _, key := range keys {
		var entry entity.WaitlistEntry
		found, err := repo.store.readDoc(ctx, key, &entry)
		if err != nil {
			return nil, err
		}
		if found {
			entries = append(entries, &entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})

	return entries, nil
}
