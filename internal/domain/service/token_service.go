package service

import (
	"errors"

	"brandsafe/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token verification failures. Callers at the delivery boundary collapse
// both into a single unauthenticated response; the split exists for
// logging and tests only.
var (
	// ErrTokenInvalid is returned when the signature does not match or the
	// token is malformed.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired is returned when the token's expiration has passed.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims defines the payload carried by a session token.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue mints a signed, time-limited bearer token for the given user.
	Issue(userID uuid.UUID, email string, role entity.Role) (string, error)

	// Verify checks a token string and returns its decoded claims. It
	// fails with ErrTokenInvalid or ErrTokenExpired.
	Verify(tokenString string) (*Claims, error)
}
