package model

import (
	"testing"

	"brandsafe/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanModel_FeatureRoundTrip(t *testing.T) {
	plan := &entity.Plan{
		Name:     "Bronze",
		Price:    "$29/month",
		Features: []string{"Basic brand monitoring", "Email alerts"},
	}

	m, err := FromPlanEntity(plan)
	require.NoError(t, err)
	assert.JSONEq(t, `["Basic brand monitoring","Email alerts"]`, m.Features)

	back := m.ToEntity()
	assert.Equal(t, plan.Name, back.Name)
	assert.Equal(t, plan.Price, back.Price)
	assert.Equal(t, plan.Features, back.Features)
}

func TestPlanModel_ToEntityToleratesBadFeatures(t *testing.T) {
	m := &PlanModel{Name: "Bronze", Price: "$29/month", Features: "not json"}

	plan := m.ToEntity()
	assert.Equal(t, "Bronze", plan.Name)
	assert.Empty(t, plan.Features)
}
