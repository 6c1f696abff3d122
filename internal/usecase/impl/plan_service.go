package impl

import (
	"context"
	"log/slog"

	"brandsafe/internal/domain/entity"
	"brandsafe/internal/domain/repository"
	"brandsafe/internal/usecase"

	"github.com/pkg/errors"
)

// planService implements the PlanUsecase interface.
type planService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewPlanService is the constructor for planService.
func NewPlanService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.PlanUsecase {
	return &planService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListPlans returns the available subscription plans. A storage failure
// degrades to the built-in defaults so the pricing page stays up.
func (srv *planService) ListPlans(ctx context.Context) ([]*entity.Plan, error) {
	var plans []*entity.Plan

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planRepo := repoFactory.PlanRepo()

		foundPlans, err := planRepo.ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list plans")
		}
		plans = foundPlans

		return nil
	})
	if err != nil {
		srv.logger.Warn("Falling back to default plans", slog.Any("error", err))

		return defaultPlans(), nil
	}

	if len(plans) == 0 {
		return defaultPlans(), nil
	}

	return plans, nil
}

// SeedDefaults inserts the default plans if none exist yet.
func (srv *planService) SeedDefaults(ctx context.Context) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		planRepo := repoFactory.PlanRepo()

		return planRepo.Seed(ctx, defaultPlans())
	})
	if err != nil {
		return errors.Wrap(err, "failed to seed default plans")
	}

	srv.logger.Info("Default plans ensured")

	return nil
}

// defaultPlans returns the built-in subscription tiers. These double as the
// seed data and the fallback when storage is unavailable.
func defaultPlans() []*entity.Plan {
	return []*entity.Plan{
		{
			Name:  "Bronze",
			Price: "$29/month",
			Features: []string{
				"Basic brand monitoring",
				"1 brand protected",
				"Weekly reports",
				"Email alerts",
				"Basic support",
			},
		},
		{
			Name:  "Silver",
			Price: "$59/month",
			Features: []string{
				"Advanced brand monitoring",
				"Up to 3 brands",
				"Daily monitoring",
				"Priority alerts",
				"Real-time notifications",
				"Priority support",
				"Basic analytics",
			},
		},
		{
			Name:  "Gold",
			Price: "$99/month",
			Features: []string{
				"Comprehensive brand protection",
				"Unlimited brands",
				"Real-time monitoring",
				"Advanced analytics",
				"Custom alerts",
				"24/7 premium support",
				"API access",
				"White-label options",
			},
		},
	}
}
