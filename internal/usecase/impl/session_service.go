package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"
	"drogo/internal/domain/service"
	"drogo/internal/errors"
	"drogo/internal/usecase"

	"github.com/google/uuid"
)

type sessionService struct {
	userRepo     repository.UserRepository
	cartRepo     repository.CartRepository
	locationRepo repository.LocationRepository
	tokenSvc     service.TokenService
	hasher       service.PasswordHasher
	now          func() time.Time
}

// NewSessionService creates a new session service instance
func NewSessionService(
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	locationRepo repository.LocationRepository,
	tokenSvc service.TokenService,
	hasher service.PasswordHasher,
) usecase.SessionUsecase {
	return &sessionService{
		userRepo:     userRepo,
		cartRepo:     cartRepo,
		locationRepo: locationRepo,
		tokenSvc:     tokenSvc,
		hasher:       hasher,
		now:          time.Now,
	}
}

// SignInWithEmail creates or restores an email account and issues tokens.
// There is no upstream identity provider; the account is created on first
// use and the password is only checked against the stored hash afterwards.
func (s *sessionService) SignInWithEmail(ctx context.Context, input usecase.EmailSignInInput) (*usecase.SignInOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if user.PasswordHash != "" && !s.hasher.Check(input.Password, user.PasswordHash) {
			return nil, domainerrors.ErrInvalidCredentials
		}
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = s.createEmailUser(ctx, input.Name, email, input.Password)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return s.issueTokens(user)
}

// SignInWithGoogle creates or restores a google account and issues tokens.
func (s *sessionService) SignInWithGoogle(ctx context.Context, input usecase.GoogleSignInInput) (*usecase.SignInOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if input.PhotoURL != "" && user.PhotoURL != input.PhotoURL {
			user.PhotoURL = input.PhotoURL
			if err := s.userRepo.UpdateUser(ctx, user); err != nil {
				return nil, fmt.Errorf("failed to update user: %w", err)
			}
		}
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			ID:        uuid.New(),
			Name:      input.Name,
			Email:     email,
			PhotoURL:  input.PhotoURL,
			Provider:  entity.ProviderGoogle,
			CreatedAt: s.now(),
		}
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return s.issueTokens(user)
}

// SignOut clears the user's cart and delivery selection. Order history stays.
func (s *sessionService) SignOut(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.ClearCart(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	if err := s.locationRepo.ClearSelection(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}

	return nil
}

// GetUser retrieves a user account by id.
func (s *sessionService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// RegisterDeviceToken attaches a push token to the user's account.
func (s *sessionService) RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	user.RegisterDeviceToken(token)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

func (s *sessionService) createEmailUser(ctx context.Context, name, email, password string) (*entity.User, error) {
	var hash string
	if password != "" {
		var err error
		hash, err = s.hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	user := &entity.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Provider:     entity.ProviderEmail,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *sessionService) issueTokens(user *entity.User) (*usecase.SignInOutput, error) {
	roles := []string{"user"}
	if user.IsAdmin {
		roles = append(roles, "admin")
	}

	access, refresh, err := s.tokenSvc.GenerateTokens(user.ID, roles)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &usecase.SignInOutput{
		User:         user,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
