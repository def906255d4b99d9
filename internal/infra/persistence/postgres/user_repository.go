package postgres

import (
	"context"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"
	"drogo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// CreateUser persists a new user account.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindUserByID retrieves a user by its unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindUserByEmail retrieves a user by email.
func (repo *userRepository) FindUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// UpdateUser overwrites an existing user record.
func (repo *userRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	// Struct-based Updates with an explicit Select so zero values (cleared
	// photo, revoked admin) and serialized columns are written too.
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{ID: user.ID}).
		Select("name", "email", "photo_url", "provider", "password_hash", "is_admin", "device_tokens").
		Updates(userM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a user record. Orders referencing the user survive.
func (repo *userRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PhotoURL:     data.PhotoURL,
		Provider:     data.Provider,
		PasswordHash: data.PasswordHash,
		IsAdmin:      data.IsAdmin,
		DeviceTokens: data.DeviceTokens,
		CreatedAt:    data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		PhotoURL:     data.PhotoURL,
		Provider:     data.Provider,
		PasswordHash: data.PasswordHash,
		IsAdmin:      data.IsAdmin,
		DeviceTokens: data.DeviceTokens,
		CreatedAt:    data.CreatedAt,
	}
}
