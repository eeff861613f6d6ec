package cultivation

import (
	"fmt"
	"math"
	"strings"
)

// overrideDeviationLimitPct is the largest relative deviation an override may
// have from the computed forecast before a justification becomes mandatory.
// Exactly 20% stays optional; only strictly larger deviations require one.
const overrideDeviationLimitPct = 20.0

// OverrideEvaluation is the local, pre-submission verdict on a forecast
// override. The backend applies its own validation independently on receipt.
type OverrideEvaluation struct {
	DeviationPct          float64 `json:"deviation_pct"`
	JustificationRequired bool    `json:"justification_required"`
}

// EvaluateOverride checks a candidate override quantity against the
// system-computed forecast quantity. It returns ErrInvalidQuantity for
// non-positive overrides and ErrJustificationRequired when the deviation
// exceeds the limit and no justification text was provided; in the latter
// case the evaluation is still returned so callers can display the
// deviation.
func EvaluateOverride(originalG, overrideG float64, justification string) (OverrideEvaluation, error) {
	if overrideG <= 0 {
		return OverrideEvaluation{}, fmt.Errorf("%w: override must be positive, got %g", ErrInvalidQuantity, overrideG)
	}
	if originalG <= 0 {
		return OverrideEvaluation{}, fmt.Errorf("%w: computed forecast quantity must be positive", ErrInvalidInput)
	}

	deviation := (overrideG - originalG) / originalG * 100
	eval := OverrideEvaluation{
		DeviationPct:          deviation,
		JustificationRequired: math.Abs(deviation) > overrideDeviationLimitPct,
	}

	if eval.JustificationRequired && strings.TrimSpace(justification) == "" {
		return eval, fmt.Errorf("%w: deviation %.1f%% exceeds %.0f%%", ErrJustificationRequired, deviation, overrideDeviationLimitPct)
	}

	return eval, nil
}
