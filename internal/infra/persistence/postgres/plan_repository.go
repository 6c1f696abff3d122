package postgres

import (
	"context"

	"brandsafe/internal/domain/entity"
	domainerrors "brandsafe/internal/domain/errors"
	"brandsafe/internal/domain/repository"
	"brandsafe/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// planRepository implements the repository.PlanRepository interface using GORM.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{db: db}
}

// ListAll returns every plan, ordered by creation time.
func (repo *planRepository) ListAll(ctx context.Context) ([]*entity.Plan, error) {
	var planMs []model.PlanModel

	err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&planMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	plans := make([]*entity.Plan, 0, len(planMs))
	for i := range planMs {
		plans = append(plans, planMs[i].ToEntity())
	}

	return plans, nil
}

// Seed inserts the given plans unless plans already exist. The existence
// check and insert run in the caller's transaction when invoked through the
// transaction manager, making the seed idempotent across restarts.
func (repo *planRepository) Seed(ctx context.Context, plans []*entity.Plan) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PlanModel{}).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to count plans")
	}
	if count > 0 {
		return nil
	}

	planMs := make([]*model.PlanModel, 0, len(plans))
	for _, plan := range plans {
		planM, err := model.FromPlanEntity(plan)
		if err != nil {
			return errors.Wrap(err, "failed to encode plan features")
		}
		planMs = append(planMs, planM)
	}

	if err := repo.db.WithContext(ctx).Create(planMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to seed plans")
	}

	return nil
}
