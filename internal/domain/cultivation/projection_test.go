package cultivation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kressgarten/growops/internal/domain/models"
)

func sunflowerPlan() models.SeedPlan {
	return models.SeedPlan{
		ID:              "plan-sunflower",
		Name:            "Sunflower",
		GerminationDays: 3,
		GrowthDays:      7,
		HarvestWindow:   models.HarvestWindow{MinDays: 8, OptimalDays: 10, MaxDays: 12},
		YieldPerUnitG:   350,
		ExpectedLossPct: 5,
	}
}

func TestProjectWorkedExample(t *testing.T) {
	sow := date(2024, time.January, 1)

	p, err := Project(sunflowerPlan(), sow, 10)
	require.NoError(t, err)

	assert.Equal(t, date(2024, time.January, 4), p.GerminationEnd)
	assert.Equal(t, date(2024, time.January, 9), p.HarvestMin)
	assert.Equal(t, date(2024, time.January, 11), p.HarvestOptimal)
	assert.Equal(t, date(2024, time.January, 13), p.HarvestMax)
	assert.InDelta(t, 3325.0, p.ProjectedYieldG, 1e-9)
}

func TestProjectWindowOrdering(t *testing.T) {
	plans := []models.SeedPlan{
		sunflowerPlan(),
		{GerminationDays: 0, HarvestWindow: models.HarvestWindow{MinDays: 0, OptimalDays: 0, MaxDays: 0}, YieldPerUnitG: 1},
		{GerminationDays: 5, HarvestWindow: models.HarvestWindow{MinDays: 5, OptimalDays: 14, MaxDays: 30}, YieldPerUnitG: 120, ExpectedLossPct: 12.5},
	}

	sow := date(2024, time.February, 29)
	for _, plan := range plans {
		p, err := Project(plan, sow, 4)
		require.NoError(t, err)

		assert.False(t, p.HarvestOptimal.Before(p.HarvestMin))
		assert.False(t, p.HarvestMax.Before(p.HarvestOptimal))
		assert.False(t, p.HarvestMin.Before(p.GerminationEnd))
	}
}

func TestProjectYieldScalesLinearly(t *testing.T) {
	plan := sunflowerPlan()
	sow := date(2024, time.January, 1)

	one, err := Project(plan, sow, 1)
	require.NoError(t, err)
	assert.Greater(t, one.ProjectedYieldG, 0.0)

	for _, n := range []int{2, 7, 100} {
		p, err := Project(plan, sow, n)
		require.NoError(t, err)
		assert.InDelta(t, one.ProjectedYieldG*float64(n), p.ProjectedYieldG, 1e-6)
	}
}

func TestProjectInvalidInput(t *testing.T) {
	sow := date(2024, time.January, 1)

	tests := []struct {
		name      string
		mutate    func(*models.SeedPlan)
		unitCount int
	}{
		{"zero units", func(*models.SeedPlan) {}, 0},
		{"negative units", func(*models.SeedPlan) {}, -3},
		{"negative germination", func(p *models.SeedPlan) { p.GerminationDays = -1 }, 10},
		{"negative window offset", func(p *models.SeedPlan) { p.HarvestWindow.MinDays = -2 }, 10},
		{"window before germination end", func(p *models.SeedPlan) { p.HarvestWindow.MinDays = 2 }, 10},
		{"window out of order", func(p *models.SeedPlan) { p.HarvestWindow.OptimalDays = 13 }, 10},
		{"zero yield per unit", func(p *models.SeedPlan) { p.YieldPerUnitG = 0 }, 10},
		{"loss of one hundred percent", func(p *models.SeedPlan) { p.ExpectedLossPct = 100 }, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := sunflowerPlan()
			tt.mutate(&plan)

			_, err := Project(plan, sow, tt.unitCount)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
