package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "brandsafe/internal/delivery/context"
	"brandsafe/internal/delivery/http/response"
	"brandsafe/internal/domain/entity"
	"brandsafe/internal/domain/service"
	"brandsafe/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware is the gate between anonymous and identified requests. It
// verifies the bearer token, loads the user it names, and attaches the safe
// projection to the request context.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	authUC   usecase.AuthUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authUC usecase.AuthUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authUC: authUC, logger: logger}
}

// Authenticate validates the bearer token and resolves its subject to a
// user. Every failure path returns the same unauthenticated response, so a
// caller cannot probe whether a token was malformed, expired, or orphaned.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return m.reject(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return m.reject(c)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			// Expired vs invalid matters for logs only; the response is uniform.
			m.logger.Debug("Token verification failed", slog.Any("error", err))

			return m.reject(c)
		}

		safeUser, err := m.authUC.CurrentUser(c.Request().Context(), claims.UserID)
		if err != nil {
			m.logger.Debug("Token subject could not be resolved", slog.Any("userID", claims.UserID), slog.Any("error", err))

			return m.reject(c)
		}

		// Attach the hash-free projection for downstream handlers.
		c.Set(string(deliverycontext.KeyUser), safeUser)

		return next(c)
	}
}

func (m *AuthMiddleware) reject(c echo.Context) error {
	return response.Unauthorized(c, "UNAUTHENTICATED", "Authentication required")
}

// UserFromContext retrieves the authenticated user's safe projection set by
// Authenticate. The second return is false on unauthenticated requests.
func UserFromContext(c echo.Context) (*entity.SafeUser, bool) {
	user, ok := c.Get(string(deliverycontext.KeyUser)).(*entity.SafeUser)

	return user, ok
}
