package usecase

import (
	"context"

	"brandsafe/internal/domain/entity"
)

// PlanUsecase defines the interface for subscription-plan operations.
type PlanUsecase interface {
	// ListPlans returns the available subscription plans. When storage is
	// unavailable it falls back to the built-in defaults rather than fail.
	ListPlans(ctx context.Context) ([]*entity.Plan, error)

	// SeedDefaults inserts the default plans if none exist yet.
	SeedDefaults(ctx context.Context) error
}
