package cultivation

import (
	"time"

	"github.com/kressgarten/growops/internal/domain/models"
)

// Phase is the display classification of a batch derived from its
// authoritative status plus elapsed time. It never feeds back into status.
type Phase string

const (
	PhaseGerminating    Phase = "germinating"
	PhaseGrowing        Phase = "growing"
	PhaseReadyToHarvest Phase = "ready_to_harvest"
	PhaseHarvested      Phase = "harvested"
	PhaseLost           Phase = "lost"
)

// BatchState bundles the derived, read-only values for one batch at a
// reference time.
type BatchState struct {
	ElapsedDays  int   `json:"elapsed_days"`
	Phase        Phase `json:"phase"`
	HarvestReady bool  `json:"harvest_ready"`
}

// State derives the lifecycle state of a batch as of now. Status drives the
// terminal and ready classifications; elapsed days split germination from
// growth for batches the backend has not yet marked ready.
func State(batch models.GrowBatch, plan models.SeedPlan, now time.Time) BatchState {
	elapsed := ElapsedDays(batch.SowDate, now)
	st := BatchState{ElapsedDays: elapsed}

	switch batch.Status {
	case models.StatusHarvested:
		st.Phase = PhaseHarvested
	case models.StatusLost:
		st.Phase = PhaseLost
	case models.StatusReady:
		st.Phase = PhaseReadyToHarvest
		st.HarvestReady = true
	default:
		if elapsed <= plan.GerminationDays {
			st.Phase = PhaseGerminating
		} else {
			st.Phase = PhaseGrowing
		}
	}

	return st
}
