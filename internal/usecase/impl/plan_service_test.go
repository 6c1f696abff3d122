package impl

import (
	"context"
	"testing"

	"brandsafe/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planNames(plans []*entity.Plan) []string {
	names := make([]string, 0, len(plans))
	for _, plan := range plans {
		names = append(names, plan.Name)
	}

	return names
}

func TestPlanService_ListPlansFromStorage(t *testing.T) {
	plans := &memPlanRepo{}
	txManager := &stubTxManager{factory: &stubFactory{plans: plans}}
	svc := NewPlanService(txManager, discardLogger())
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))

	listed, err := svc.ListPlans(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bronze", "Silver", "Gold"}, planNames(listed))

	// Seeded rows carry identifiers, unlike the in-process fallback.
	for _, plan := range listed {
		assert.False(t, plan.CreatedAt.IsZero())
	}
}

func TestPlanService_ListPlansFallsBackOnStorageError(t *testing.T) {
	plans := &memPlanRepo{listErr: errors.New("connection refused")}
	txManager := &stubTxManager{factory: &stubFactory{plans: plans}}
	svc := NewPlanService(txManager, discardLogger())

	listed, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Bronze", "Silver", "Gold"}, planNames(listed))
}

func TestPlanService_ListPlansFallsBackWhenEmpty(t *testing.T) {
	txManager := &stubTxManager{factory: &stubFactory{plans: &memPlanRepo{}}}
	svc := NewPlanService(txManager, discardLogger())

	listed, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "$29/month", listed[0].Price)
	assert.Equal(t, "$59/month", listed[1].Price)
	assert.Equal(t, "$99/month", listed[2].Price)
}

func TestPlanService_SeedDefaultsIsIdempotent(t *testing.T) {
	plans := &memPlanRepo{}
	txManager := &stubTxManager{factory: &stubFactory{plans: plans}}
	svc := NewPlanService(txManager, discardLogger())
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx))
	require.NoError(t, svc.SeedDefaults(ctx))

	listed, err := svc.ListPlans(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 3)
}

func TestPlanService_SeedDefaultsReportsFailure(t *testing.T) {
	plans := &memPlanRepo{seedErr: errors.New("connection refused")}
	txManager := &stubTxManager{factory: &stubFactory{plans: plans}}
	svc := NewPlanService(txManager, discardLogger())

	err := svc.SeedDefaults(context.Background())
	assert.Error(t, err)
}
