package cultivation

import (
	"fmt"
	"time"

	"github.com/kressgarten/growops/internal/domain/models"
)

// Projection holds the calendar milestones and expected yield for one sown
// batch. All dates are midnight UTC; harvest offsets are counted from the
// sow date.
type Projection struct {
	GerminationEnd  time.Time `json:"germination_end"`
	HarvestMin      time.Time `json:"harvest_min"`
	HarvestOptimal  time.Time `json:"harvest_optimal"`
	HarvestMax      time.Time `json:"harvest_max"`
	ProjectedYieldG float64   `json:"projected_yield_g"`
}

// Project computes the harvest window and expected yield for unitCount units
// sown on sowDate under the given plan. It is pure and deterministic; callers
// may invoke it from any goroutine.
func Project(plan models.SeedPlan, sowDate time.Time, unitCount int) (Projection, error) {
	if unitCount <= 0 {
		return Projection{}, fmt.Errorf("%w: unit count must be positive, got %d", ErrInvalidInput, unitCount)
	}
	if err := validatePlan(plan); err != nil {
		return Projection{}, err
	}

	yield := float64(unitCount) * plan.YieldPerUnitG * (1 - plan.ExpectedLossPct/100)

	return Projection{
		GerminationEnd:  AddDays(sowDate, plan.GerminationDays),
		HarvestMin:      AddDays(sowDate, plan.HarvestWindow.MinDays),
		HarvestOptimal:  AddDays(sowDate, plan.HarvestWindow.OptimalDays),
		HarvestMax:      AddDays(sowDate, plan.HarvestWindow.MaxDays),
		ProjectedYieldG: yield,
	}, nil
}

func validatePlan(plan models.SeedPlan) error {
	w := plan.HarvestWindow
	switch {
	case plan.GerminationDays < 0:
		return fmt.Errorf("%w: negative germination days", ErrInvalidInput)
	case w.MinDays < 0 || w.OptimalDays < 0 || w.MaxDays < 0:
		return fmt.Errorf("%w: negative harvest window offset", ErrInvalidInput)
	case w.MinDays < plan.GerminationDays:
		return fmt.Errorf("%w: harvest window opens before germination ends", ErrInvalidInput)
	case w.OptimalDays < w.MinDays || w.MaxDays < w.OptimalDays:
		return fmt.Errorf("%w: harvest window offsets out of order", ErrInvalidInput)
	case plan.YieldPerUnitG <= 0:
		return fmt.Errorf("%w: yield per unit must be positive", ErrInvalidInput)
	case plan.ExpectedLossPct < 0 || plan.ExpectedLossPct >= 100:
		return fmt.Errorf("%w: expected loss percent must be in [0, 100)", ErrInvalidInput)
	}
	return nil
}
