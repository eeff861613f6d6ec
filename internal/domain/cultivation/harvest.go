package cultivation

import (
	"fmt"
	"math"
)

// VarianceSeverity classifies how far an actual harvest landed from its
// projection.
type VarianceSeverity string

const (
	VarianceAsExpected    VarianceSeverity = "as_expected"
	VarianceInformational VarianceSeverity = "informational"
	VarianceLarge         VarianceSeverity = "large"
)

// yieldTolerancePct is the accepted relative deviation between actual and
// projected harvest mass. Deviations beyond largeDeviationFactor times the
// tolerance demand operator attention but never block submission.
const (
	yieldTolerancePct    = 5.0
	largeDeviationFactor = 2
)

// HarvestEvaluation is the advisory verdict on one harvest entry.
type HarvestEvaluation struct {
	DeviationPct float64          `json:"deviation_pct"`
	Severity     VarianceSeverity `json:"severity"`
	LossPct      float64          `json:"loss_pct"`
}

// EvaluateHarvest compares an actual harvest against the projected yield.
// The classification is symmetric around zero deviation. The result is
// advisory only; a large deviation is surfaced as a warning, not a
// validation failure.
func EvaluateHarvest(actualG, lossG, projectedG float64) (HarvestEvaluation, error) {
	if projectedG <= 0 {
		return HarvestEvaluation{}, fmt.Errorf("%w: projected yield must be positive", ErrInvalidInput)
	}
	if actualG < 0 || lossG < 0 {
		return HarvestEvaluation{}, fmt.Errorf("%w: harvest and loss mass must not be negative", ErrInvalidInput)
	}

	deviation := (actualG - projectedG) / projectedG * 100

	severity := VarianceLarge
	switch {
	case math.Abs(deviation) <= yieldTolerancePct:
		severity = VarianceAsExpected
	case math.Abs(deviation) <= yieldTolerancePct*largeDeviationFactor:
		severity = VarianceInformational
	}

	lossPct := 0.0
	if actualG+lossG > 0 {
		lossPct = lossG / (actualG + lossG) * 100
	}

	return HarvestEvaluation{
		DeviationPct: deviation,
		Severity:     severity,
		LossPct:      lossPct,
	}, nil
}
