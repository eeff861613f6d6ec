package forecasts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kressgarten/growops/internal/domain/cultivation"
	"github.com/kressgarten/growops/internal/domain/models"
)

type fakeBackend struct {
	forecasts []models.Forecast
	overrides map[string]models.ForecastOverride
}

func (f *fakeBackend) ListForecasts(context.Context) ([]models.Forecast, error) {
	return f.forecasts, nil
}

func (f *fakeBackend) SubmitOverride(_ context.Context, id string, ov models.ForecastOverride) error {
	if f.overrides == nil {
		f.overrides = map[string]models.ForecastOverride{}
	}
	f.overrides[id] = ov
	return nil
}

func (f *fakeBackend) ListSeedPlans(context.Context) ([]models.SeedPlan, error)  { return nil, nil }
func (f *fakeBackend) ListBatches(context.Context) ([]models.GrowBatch, error)   { return nil, nil }
func (f *fakeBackend) ListSeedStock(context.Context) ([]models.SeedStock, error) { return nil, nil }
func (f *fakeBackend) GetBatch(context.Context, string) (*models.GrowBatch, error) {
	return nil, assert.AnError
}
func (f *fakeBackend) SubmitSowing(context.Context, models.SowingRequest) (*models.GrowBatch, error) {
	return nil, assert.AnError
}
func (f *fakeBackend) SubmitHarvest(context.Context, models.HarvestRecord) error { return nil }
func (f *fakeBackend) RequestStatusChange(context.Context, string, models.BatchStatus) error {
	return nil
}

func forecastFixture() models.Forecast {
	return models.Forecast{
		ID:        "fc-1",
		PlanID:    "plan-radish",
		Date:      time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC),
		QuantityG: 1000,
	}
}

func TestListAddsDeviationPreview(t *testing.T) {
	override := 1300.0
	withOverride := forecastFixture()
	withOverride.ID = "fc-2"
	withOverride.OverrideG = &override
	withOverride.Justification = "trade fair week"

	be := &fakeBackend{forecasts: []models.Forecast{forecastFixture(), withOverride}}
	svc := NewService(be, nil)

	views, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Nil(t, views[0].DeviationPct)
	require.NotNil(t, views[1].DeviationPct)
	assert.InDelta(t, 30.0, *views[1].DeviationPct, 1e-9)
}

func TestSubmitOverride(t *testing.T) {
	be := &fakeBackend{forecasts: []models.Forecast{forecastFixture()}}
	svc := NewService(be, nil)
	ctx := context.Background()

	// Exactly at the boundary no justification is needed.
	eval, err := svc.SubmitOverride(ctx, "fc-1", models.ForecastOverride{QuantityG: 1200})
	require.NoError(t, err)
	assert.False(t, eval.JustificationRequired)
	assert.Contains(t, be.overrides, "fc-1")

	eval, err = svc.SubmitOverride(ctx, "fc-1", models.ForecastOverride{QuantityG: 1500, Justification: "wholesale order confirmed"})
	require.NoError(t, err)
	assert.True(t, eval.JustificationRequired)
}

func TestSubmitOverrideBlocked(t *testing.T) {
	be := &fakeBackend{forecasts: []models.Forecast{forecastFixture()}}
	svc := NewService(be, nil)
	ctx := context.Background()

	eval, err := svc.SubmitOverride(ctx, "fc-1", models.ForecastOverride{QuantityG: 1500})
	assert.ErrorIs(t, err, cultivation.ErrJustificationRequired)
	require.NotNil(t, eval)
	assert.InDelta(t, 50.0, eval.DeviationPct, 1e-9)

	_, err = svc.SubmitOverride(ctx, "fc-1", models.ForecastOverride{QuantityG: -5})
	assert.ErrorIs(t, err, cultivation.ErrInvalidQuantity)

	_, err = svc.SubmitOverride(ctx, "fc-missing", models.ForecastOverride{QuantityG: 900})
	assert.ErrorIs(t, err, ErrForecastNotFound)

	assert.Empty(t, be.overrides, "blocked overrides must not reach the backend")
}
