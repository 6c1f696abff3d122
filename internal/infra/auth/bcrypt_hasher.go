// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"brandsafe/config"
	domainerrors "brandsafe/internal/domain/errors"
	"brandsafe/internal/domain/service"
)

const (
	defaultBcryptCost = 12

	defaultMinPasswordLength = 10
	// bcrypt only hashes the first 72 bytes of input; longer passwords are
	// rejected rather than silently truncated.
	defaultMaxPasswordLength = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher. Cost and strength
// rules come from configuration, with sane defaults when absent.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	strength := defaultStrength()
	if cfg != nil && cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
		if strength.MinLength <= 0 {
			strength.MinLength = defaultMinPasswordLength
		}
		if strength.MaxLength <= 0 {
			strength.MaxLength = defaultMaxPasswordLength
		}
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// NewBcryptHasherWithCost creates a hasher with an explicit cost and the
// default strength rules. Mainly useful in tests, where the default cost
// is too slow.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: cost, strength: defaultStrength()}
}

func defaultStrength() config.PasswordStrengthConfig {
	return config.PasswordStrengthConfig{
		MinLength:        defaultMinPasswordLength,
		MaxLength:        defaultMaxPasswordLength,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation. This is deliberately
// CPU-bound; callers must not hold locks or transactions across it.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength verifies the registration complexity rules and
// reports every violated rule, not just the first.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var violations []string

	if len(password) < h.strength.MinLength {
		violations = append(violations, fmt.Sprintf("must be at least %d characters long", h.strength.MinLength))
	}
	if h.strength.MaxLength > 0 && len(password) > h.strength.MaxLength {
		violations = append(violations, fmt.Sprintf("must be at most %d characters long", h.strength.MaxLength))
	}
	if h.strength.RequireUppercase && !containsFunc(password, unicode.IsUpper) {
		violations = append(violations, "must contain at least one uppercase letter")
	}
	if h.strength.RequireLowercase && !containsFunc(password, unicode.IsLower) {
		violations = append(violations, "must contain at least one lowercase letter")
	}
	if h.strength.RequireNumbers && !containsFunc(password, unicode.IsDigit) {
		violations = append(violations, "must contain at least one number")
	}
	if h.strength.RequireSpecial && !containsFunc(password, isSpecialChar) {
		violations = append(violations, "must contain at least one special character")
	}

	if len(violations) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails("password " + strings.Join(violations, "; "))
	}

	return nil
}

func containsFunc(s string, fn func(rune) bool) bool {
	return strings.ContainsFunc(s, fn)
}

func isSpecialChar(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r)
}
