package repository

import (
	"context"

	"brandsafe/internal/domain/entity"
)

// PlanRepository defines the operations for subscription-plan reference data.
type PlanRepository interface {
	// ListAll returns every plan, ordered by creation time.
	ListAll(ctx context.Context) ([]*entity.Plan, error)

	// Seed inserts the given plans unless plans already exist. Idempotent.
	Seed(ctx context.Context, plans []*entity.Plan) error
}
