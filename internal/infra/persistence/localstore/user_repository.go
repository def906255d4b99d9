package localstore

import (
	"context"
	"strings"
	"time"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"

	"github.com/google/uuid"
)

const userPrefix = "users/"

func userKey(id uuid.UUID) string {
	return userPrefix + id.String() + ".json"
}

// userDoc is the stored shape of a user. The entity hides the password hash
// from JSON marshaling, so persisting the entity directly would drop it.
type userDoc struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	Provider     string    `json:"provider"`
	PasswordHash string    `json:"password_hash,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	DeviceTokens []string  `json:"device_tokens,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func fromUserDomain(user *entity.User) *userDoc {
	return &userDoc{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		PhotoURL:     user.PhotoURL,
		Provider:     user.Provider,
		PasswordHash: user.PasswordHash,
		IsAdmin:      user.IsAdmin,
		DeviceTokens: user.DeviceTokens,
		CreatedAt:    user.CreatedAt,
	}
}

func toUserDomain(doc *userDoc) *entity.User {
	return &entity.User{
		ID:           doc.ID,
		Name:         doc.Name,
		Email:        doc.Email,
		PhotoURL:     doc.PhotoURL,
		Provider:     doc.Provider,
		PasswordHash: doc.PasswordHash,
		IsAdmin:      doc.IsAdmin,
		DeviceTokens: doc.DeviceTokens,
		CreatedAt:    doc.CreatedAt,
	}
}

// userRepository implements the repository.UserRepository interface over
// the local document store.
type userRepository struct {
	store *Store
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

// CreateUser persists a new user account.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if err := repo.store.writeDoc(ctx, userKey(user.ID), fromUserDomain(user)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// FindUserByID retrieves a user by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var doc userDoc
	found, err := repo.store.readDoc(ctx, userKey(id), &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&doc), nil
}

// FindUserByEmail retrieves a user by email. The local store has no email
// index; it scans the user documents instead, which is fine at dev scale.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	keys, err := repo.store.listKeys(ctx, userPrefix)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(email)
	for _, key := range keys {
		var doc userDoc
		found, err := repo.store.readDoc(ctx, key, &doc)
		if err != nil {
			return nil, err
		}
		if found && strings.ToLower(doc.Email) == needle {
			return toUserDomain(&doc), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

// UpdateUser overwrites an existing user record.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	var existing userDoc
	found, err := repo.store.readDoc(ctx, userKey(user.ID), &existing)
	if err != nil {
		return err
	}
	if !found {
		return repository.ErrUserNotFound
	}

	if err := repo.store.writeDoc(ctx, userKey(user.ID), fromUserDomain(user)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	return nil
}

// DeleteUser removes a user record. Order documents are untouched.
func (repo *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if err := repo.store.deleteDoc(ctx, userKey(id)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return nil
}
