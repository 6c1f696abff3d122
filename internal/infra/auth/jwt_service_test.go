package auth

import (
	"strings"
	"testing"
	"time"

	"brandsafe/config"
	"brandsafe/internal/domain/entity"
	"brandsafe/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKey{JWT: "test-signing-secret"},
		Auth:      &config.AuthConfig{TokenTTL: ttl},
	}
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(nil)
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{})
	assert.Error(t, err)

	svc, err := NewJWTService(testConfig(0))
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.Issue(userID, "creator@example.com", entity.RoleCreator)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "creator@example.com", claims.Email)
	assert.Equal(t, "creator", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, service.ErrTokenInvalid, "token: %q", token)
	}
}

func TestJWTService_VerifyRejectsTamperedSignature(t *testing.T) {
	svc, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New(), "creator@example.com", entity.RoleCreator)
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig(time.Hour))
	require.NoError(t, err)

	verifier, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{JWT: "a-different-secret"},
	})
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New(), "creator@example.com", entity.RoleCreator)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_VerifyRejectsExpiredToken(t *testing.T) {
	// A negative TTL issues tokens that are already expired.
	svc, err := NewJWTService(testConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New(), "creator@example.com", entity.RoleCreator)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}
