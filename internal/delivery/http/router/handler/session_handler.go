package handler

import (
	"net/http"

	"drogo/internal/delivery/http/response"
	"drogo/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for sign-in and session handlers.
type SessionHandler struct {
	uc usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

type emailSignInRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password"`
}

type googleSignInRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photo_url"`
}

type registerDeviceRequest struct {
	Token string `json:"token" validate:"required"`
}

// signInResponse is the wire shape of a successful sign-in.
type signInResponse struct {
	User         any    `json:"user"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// SignInWithEmail handles the email sign-in request. The account is created
// on first use.
func (h *SessionHandler) SignInWithEmail(c echo.Context) error {
	var req emailSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignInWithEmail(c.Request().Context(), usecase.EmailSignInInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, signInResponse{
		User:         output.User,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Signed in successfully")
}

// SignInWithGoogle handles the mocked Google sign-in request.
func (h *SessionHandler) SignInWithGoogle(c echo.Context) error {
	var req googleSignInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SignInWithGoogle(c.Request().Context(), usecase.GoogleSignInInput{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, signInResponse{
		User:         output.User,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}, "Signed in successfully")
}

// SignOut clears the signed-in user's cart and delivery selection.
func (h *SessionHandler) SignOut(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	if err := h.uc.SignOut(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out successfully")
}

// Me returns the signed-in user's account.
func (h *SessionHandler) Me(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "")
}

// RegisterDeviceToken attaches a push token to the signed-in user.
func (h *SessionHandler) RegisterDeviceToken(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "SIGN_IN_REQUIRED", "Please sign in")
	}

	var req registerDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.RegisterDeviceToken(c.Request().Context(), userID, req.Token); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Device token registered")
}
