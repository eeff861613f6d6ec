package cultivation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateOverride(t *testing.T) {
	tests := []struct {
		name          string
		originalG     float64
		overrideG     float64
		justification string
		wantRequired  bool
		wantErr       error
	}{
		{"small raise needs nothing", 1000, 1100, "", false, nil},
		{"exactly twenty percent stays optional", 1000, 1200, "", false, nil},
		{"exactly minus twenty percent stays optional", 1000, 800, "", false, nil},
		{"just past the limit requires reason", 1000, 1200.01, "", true, ErrJustificationRequired},
		{"just below minus limit requires reason", 1000, 799.99, "", true, ErrJustificationRequired},
		{"large deviation with reason passes", 1000, 1500, "customer doubled weekly order", true, nil},
		{"whitespace reason does not count", 1000, 1500, "   ", true, ErrJustificationRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval, err := EvaluateOverride(tt.originalG, tt.overrideG, tt.justification)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantRequired, eval.JustificationRequired)
		})
	}
}

func TestEvaluateOverrideDeviationPct(t *testing.T) {
	eval, err := EvaluateOverride(2000, 2300, "")
	require.NoError(t, err)
	assert.InDelta(t, 15.0, eval.DeviationPct, 1e-9)

	eval, err = EvaluateOverride(2000, 1000, "halved demand after cancellation")
	require.NoError(t, err)
	assert.InDelta(t, -50.0, eval.DeviationPct, 1e-9)
}

func TestEvaluateOverrideInvalidQuantity(t *testing.T) {
	for _, qty := range []float64{0, -10} {
		_, err := EvaluateOverride(1000, qty, "reason")
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}

	_, err := EvaluateOverride(0, 100, "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
