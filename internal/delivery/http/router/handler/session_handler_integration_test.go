package handler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drogo/config"
	"drogo/internal/delivery/http/validator"
	domainerrors "drogo/internal/domain/errors"
	"drogo/internal/infra/auth"
	"drogo/internal/infra/persistence/localstore"
	"drogo/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestSessionHandler(t *testing.T) *SessionHandler {
	t.Helper()

	testConfig := &config.Config{}
	testConfig.SecretKey.Access = "integration-access-secret"
	testConfig.SecretKey.Refresh = "integration-refresh-secret"

	tokenSvc, err := auth.NewJWTService(testConfig)
	require.NoError(t, err)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := localstore.NewWithBucket(bucket, slog.Default())

	sessionUC := impl.NewSessionService(
		localstore.NewUserRepository(store),
		localstore.NewCartRepository(store),
		localstore.NewLocationRepository(store),
		tokenSvc,
		auth.NewBcryptHasher(),
	)

	return NewSessionHandler(sessionUC)
}

func newSignInContext(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/auth/signin/email", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestSessionHandler_SignInWithEmail_Integration(t *testing.T) {
	handler := newTestSessionHandler(t)

	e := echo.New()
	e.Validator = validator.New()

	// First sign-in creates the account and issues a token pair.
	c, rec := newSignInContext(e, `{"name":"Priya","email":"priya@example.com","password":"secret-pw"}`)
	require.NoError(t, handler.SignInWithEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, "access_token")
	assert.Contains(t, responseBody, "refresh_token")
	assert.Contains(t, responseBody, "priya@example.com")

	// Same account with the right password signs in again.
	c, rec = newSignInContext(e, `{"email":"priya@example.com","password":"secret-pw"}`)
	require.NoError(t, handler.SignInWithEmail(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Wrong password is rejected by the usecase and surfaces as a domain error.
	c, _ = newSignInContext(e, `{"email":"priya@example.com","password":"wrong-pw"}`)
	err := handler.SignInWithEmail(c)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestSessionHandler_SignInWithEmail_RejectsInvalidEmail(t *testing.T) {
	handler := newTestSessionHandler(t)

	e := echo.New()
	e.Validator = validator.New()

	c, _ := newSignInContext(e, `{"email":"not-an-email","password":"pw"}`)
	err := handler.SignInWithEmail(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
