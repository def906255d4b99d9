package impl

import (
	"context"
	"testing"

	"drogo/internal/domain/entity"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/domain/repository"
	mockRepo "drogo/internal/mocks/repository"
	mockSvc "drogo/internal/mocks/service"
	"drogo/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service  usecase.SessionUsecase
	userRepo *mockRepo.MockUserRepository
	cartRepo *mockRepo.MockCartRepository
	locRepo  *mockRepo.MockLocationRepository
	tokenSvc *mockSvc.MockTokenService
	hasher   *mockSvc.MockPasswordHasher
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	locRepo := mockRepo.NewMockLocationRepository(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	service := NewSessionService(userRepo, cartRepo, locRepo, tokenSvc, hasher)

	return sessionServiceFixtures{
		service:  service,
		userRepo: userRepo,
		cartRepo: cartRepo,
		locRepo:  locRepo,
		tokenSvc: tokenSvc,
		hasher:   hasher,
	}
}

func TestSessionService_SignInWithEmail_CreatesAccountOnFirstUse(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "priya@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	fx.tokenSvc.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"user"}).
		Return("access", "refresh", nil)

	out, err := fx.service.SignInWithEmail(ctx, usecase.EmailSignInInput{
		Name:     "Priya",
		Email:    "  Priya@Example.com ",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "priya@example.com", out.User.Email)
	assert.Equal(t, entity.ProviderEmail, out.User.Provider)
	assert.Equal(t, "hashed-secret", out.User.PasswordHash)
	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
}

func TestSessionService_SignInWithEmail_RestoresExistingAccount(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:           uuid.New(),
		Email:        "priya@example.com",
		Provider:     entity.ProviderEmail,
		PasswordHash: "hashed-secret",
	}

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "priya@example.com").
		Return(existing, nil)
	fx.hasher.EXPECT().Check("secret", "hashed-secret").Return(true)
	fx.tokenSvc.EXPECT().
		GenerateTokens(existing.ID, []string{"user"}).
		Return("access", "refresh", nil)

	out, err := fx.service.SignInWithEmail(ctx, usecase.EmailSignInInput{
		Email:    "priya@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, out.User.ID)
}

func TestSessionService_SignInWithEmail_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	existing := &entity.User{
		ID:           uuid.New(),
		Email:        "priya@example.com",
		PasswordHash: "hashed-secret",
	}

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "priya@example.com").
		Return(existing, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed-secret").Return(false)

	out, err := fx.service.SignInWithEmail(ctx, usecase.EmailSignInInput{
		Email:    "priya@example.com",
		Password: "wrong",
	})
	assert.Nil(t, out)
	assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
}

func TestSessionService_SignInWithGoogle_AdminGetsAdminRole(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	admin := &entity.User{
		ID:       uuid.New(),
		Email:    "ops@drogo.in",
		Provider: entity.ProviderGoogle,
		IsAdmin:  true,
	}

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "ops@drogo.in").
		Return(admin, nil)
	fx.tokenSvc.EXPECT().
		GenerateTokens(admin.ID, []string{"user", "admin"}).
		Return("access", "refresh", nil)

	out, err := fx.service.SignInWithGoogle(ctx, usecase.GoogleSignInInput{
		Email: "ops@drogo.in",
	})
	require.NoError(t, err)
	assert.True(t, out.User.IsAdmin)
}

func TestSessionService_SignInWithGoogle_CreatesAccount(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "new@example.com").
		Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, entity.ProviderGoogle, user.Provider)
			assert.Equal(t, "https://example.com/p.png", user.PhotoURL)
			assert.Empty(t, user.PasswordHash)
		}).
		Return(nil)
	fx.tokenSvc.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"user"}).
		Return("access", "refresh", nil)

	out, err := fx.service.SignInWithGoogle(ctx, usecase.GoogleSignInInput{
		Name:     "New User",
		Email:    "new@example.com",
		PhotoURL: "https://example.com/p.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", out.User.Email)
}

func TestSessionService_SignOut_ClearsCartAndSelection(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().ClearCart(ctx, userID).Return(nil)
	fx.locRepo.EXPECT().ClearSelection(ctx, userID).Return(nil)

	require.NoError(t, fx.service.SignOut(ctx, userID))
}

func TestSessionService_RegisterDeviceToken(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New()}

	fx.userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	fx.userRepo.EXPECT().
		UpdateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, []string{"fcm-token"}, updated.DeviceTokens)
		}).
		Return(nil)

	require.NoError(t, fx.service.RegisterDeviceToken(ctx, user.ID, "fcm-token"))
}

func TestSessionService_GetUser_NotFound(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().
		FindUserByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, userID)
	assert.Nil(t, user)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}
