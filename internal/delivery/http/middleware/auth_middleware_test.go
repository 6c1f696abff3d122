package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brandsafe/config"
	"brandsafe/internal/domain/entity"
	domainerrors "brandsafe/internal/domain/errors"
	"brandsafe/internal/domain/service"
	"brandsafe/internal/infra/auth"
	"brandsafe/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase resolves every token subject to a fixed user, or fails
// with a fixed error.
type fakeAuthUsecase struct {
	user *entity.SafeUser
	err  error
}

func (f *fakeAuthUsecase) Signup(context.Context, *usecase.SignupInput) (*usecase.AuthOutput, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) Login(context.Context, *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return nil, nil
}

func (f *fakeAuthUsecase) CurrentUser(_ context.Context, id uuid.UUID) (*entity.SafeUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	user := *f.user
	user.ID = id

	return &user, nil
}

func newTokenService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	svc, err := auth.NewJWTService(&config.Config{
		SecretKey: config.SecretKey{JWT: "test-signing-secret"},
		Auth:      &config.AuthConfig{TokenTTL: ttl},
	})
	require.NoError(t, err)

	return svc
}

func runAuthenticated(t *testing.T, tokenSvc service.TokenService, authUC usecase.AuthUsecase, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewAuthMiddleware(tokenSvc, authUC, logger)

	reachedHandler := false
	handler := mw.Authenticate(func(c echo.Context) error {
		reachedHandler = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, reachedHandler
}

func TestAuthenticate_AllowsValidToken(t *testing.T) {
	tokenSvc := newTokenService(t, time.Hour)
	userID := uuid.New()
	token, err := tokenSvc.Issue(userID, "ada@example.com", entity.RoleCreator)
	require.NoError(t, err)

	authUC := &fakeAuthUsecase{user: &entity.SafeUser{
		Name:  "Ada",
		Email: "ada@example.com",
		Role:  entity.RoleCreator,
	}}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewAuthMiddleware(tokenSvc, authUC, logger)

	handler := mw.Authenticate(func(c echo.Context) error {
		user, ok := UserFromContext(c)
		require.True(t, ok)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "ada@example.com", user.Email)

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_RejectsUniformly(t *testing.T) {
	tokenSvc := newTokenService(t, time.Hour)
	authUC := &fakeAuthUsecase{user: &entity.SafeUser{Name: "Ada"}}

	expiredSvc := newTokenService(t, -time.Minute)
	expiredToken, err := expiredSvc.Issue(uuid.New(), "ada@example.com", entity.RoleCreator)
	require.NoError(t, err)

	orphanToken, err := tokenSvc.Issue(uuid.New(), "gone@example.com", entity.RoleCreator)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
		authUC usecase.AuthUsecase
	}{
		{name: "missing header", header: "", authUC: authUC},
		{name: "not a bearer scheme", header: "Basic dXNlcjpwYXNz", authUC: authUC},
		{name: "empty bearer token", header: "Bearer ", authUC: authUC},
		{name: "garbage token", header: "Bearer not-a-token", authUC: authUC},
		{name: "expired token", header: "Bearer " + expiredToken, authUC: authUC},
		{
			name:   "subject no longer exists",
			header: "Bearer " + orphanToken,
			authUC: &fakeAuthUsecase{err: domainerrors.ErrUserNotFound},
		},
	}

	var bodies []string
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, reachedHandler := runAuthenticated(t, tokenSvc, tc.authUC, tc.header)

			assert.False(t, reachedHandler)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
			bodies = append(bodies, rec.Body.String())
		})
	}

	// Every rejection carries the exact same body.
	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body)
	}
}
