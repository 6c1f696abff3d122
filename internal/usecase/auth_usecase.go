// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"brandsafe/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     string // Optional, defaults to "creator".
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user's safe projection and a bearer token.
type AuthOutput struct {
	User  *entity.SafeUser `json:"user"`
	Token string           `json:"token"`
}

// AuthUsecase defines the interface for credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a new account and issues a session token.
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)

	// Login authenticates existing credentials and issues a session token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// CurrentUser resolves a verified token subject to its safe user
	// projection. Used by the auth gate on protected requests.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.SafeUser, error)
}
