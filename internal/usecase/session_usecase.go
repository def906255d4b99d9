// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"drogo/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// EmailSignInInput defines the data for the email sign-in flow. Credentials
// are not verified against an identity provider; the account is created on
// first use and the password is only hashed at rest.
type EmailSignInInput struct {
	Name     string
	Email    string
	Password string
}

// GoogleSignInInput defines the data for the mocked Google sign-in flow.
type GoogleSignInInput struct {
	Name     string
	Email    string
	PhotoURL string
}

// --- Output DTOs ---

// SignInOutput returns the signed-in user and the generated token pair.
type SignInOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// SessionUsecase defines the interface for sign-in and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type SessionUsecase interface {
	// SignInWithEmail creates or restores an email account and issues tokens.
	SignInWithEmail(ctx context.Context, input EmailSignInInput) (*SignInOutput, error)

	// SignInWithGoogle creates or restores a google account and issues tokens.
	SignInWithGoogle(ctx context.Context, input GoogleSignInInput) (*SignInOutput, error)

	// SignOut clears the user's cart and delivery selection. Orders remain.
	SignOut(ctx context.Context, userID uuid.UUID) error

	// GetUser retrieves a user account by id.
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// RegisterDeviceToken attaches a push token to the user's account.
	RegisterDeviceToken(ctx context.Context, userID uuid.UUID, token string) error
}
