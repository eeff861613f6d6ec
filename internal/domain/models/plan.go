package models

// HarvestWindow holds the day offsets, counted from the sow date, between
// which a batch should be harvested.
type HarvestWindow struct {
	MinDays     int `json:"min_days"`
	OptimalDays int `json:"optimal_days"`
	MaxDays     int `json:"max_days"`
}

// SeedPlan is the master-data definition for one cultivated variety. It is
// created and edited through the backend's admin flow; this service only
// reads it.
type SeedPlan struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	GerminationDays int           `json:"germination_days"`
	GrowthDays      int           `json:"growth_days"`
	HarvestWindow   HarvestWindow `json:"harvest_window"`
	YieldPerUnitG   float64       `json:"yield_per_unit_g"`
	ExpectedLossPct float64       `json:"expected_loss_pct"`
}

// SeedStock is one lot of sowable seed reported by the backend inventory.
type SeedStock struct {
	PlanID    string  `json:"plan_id"`
	LotNumber string  `json:"lot_number"`
	AmountG   float64 `json:"amount_g"`
}
