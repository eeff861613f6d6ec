package models

import "time"

// ReadinessReport is the daily snapshot of harvest readiness across active
// batches, stored in MongoDB by the scheduler sweep.
type ReadinessReport struct {
	Date         time.Time `bson:"date" json:"date"`
	ActiveCount  int       `bson:"active_count" json:"active_count"`
	DueToday     []string  `bson:"due_today" json:"due_today"`
	Overdue      []string  `bson:"overdue" json:"overdue"`
	UpcomingWeek []string  `bson:"upcoming_week" json:"upcoming_week"`
	Summary      string    `bson:"summary" json:"summary"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}

// HarvestAuditEntry records a submitted harvest together with its variance
// evaluation, for the operation's own audit trail.
type HarvestAuditEntry struct {
	BatchID      string    `bson:"batch_id" json:"batch_id"`
	PlanID       string    `bson:"plan_id" json:"plan_id"`
	HarvestDate  time.Time `bson:"harvest_date" json:"harvest_date"`
	HarvestedG   float64   `bson:"harvested_g" json:"harvested_g"`
	LossG        float64   `bson:"loss_g" json:"loss_g"`
	Quality      int       `bson:"quality" json:"quality"`
	ProjectedG   float64   `bson:"projected_g" json:"projected_g"`
	DeviationPct float64   `bson:"deviation_pct" json:"deviation_pct"`
	Severity     string    `bson:"severity" json:"severity"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
