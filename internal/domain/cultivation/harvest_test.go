package cultivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateHarvestSeverity(t *testing.T) {
	const projected = 1000.0

	tests := []struct {
		name    string
		actualG float64
		want    VarianceSeverity
	}{
		{"spot on", 1000, VarianceAsExpected},
		{"plus five percent is still expected", 1050, VarianceAsExpected},
		{"minus five percent is still expected", 950, VarianceAsExpected},
		{"plus six percent informational", 1060, VarianceInformational},
		{"minus six percent informational", 940, VarianceInformational},
		{"plus ten percent informational", 1100, VarianceInformational},
		{"minus ten percent informational", 900, VarianceInformational},
		{"plus eleven percent large", 1110, VarianceLarge},
		{"minus eleven percent large", 890, VarianceLarge},
		{"total failure large", 0, VarianceLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := EvaluateHarvest(tt.actualG, 0, projected)
			require.NoError(t, err)
			assert.Equal(t, tt.want, eval.Severity)
		})
	}
}

func TestEvaluateHarvestWorkedExample(t *testing.T) {
	eval, err := EvaluateHarvest(3000, 0, 3325)
	require.NoError(t, err)

	assert.InDelta(t, -9.77, eval.DeviationPct, 0.01)
	assert.Equal(t, VarianceInformational, eval.Severity)
}

func TestEvaluateHarvestLossPct(t *testing.T) {
	tests := []struct {
		name    string
		actualG float64
		lossG   float64
		want    float64
	}{
		{"quarter lost", 750, 250, 25},
		{"no loss", 900, 0, 0},
		{"everything lost", 0, 500, 100},
		{"both zero defined as zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := EvaluateHarvest(tt.actualG, tt.lossG, 1000)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, eval.LossPct, 1e-9)
		})
	}
}

func TestEvaluateHarvestInvalidInput(t *testing.T) {
	_, err := EvaluateHarvest(100, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = EvaluateHarvest(-1, 0, 1000)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = EvaluateHarvest(100, -5, 1000)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
