package models

import "time"

// HarvestRecord is the actual outcome of one grow batch. Immutable once
// accepted by the backend.
type HarvestRecord struct {
	BatchID     string    `json:"batch_id"`
	HarvestDate time.Time `json:"harvest_date"`
	HarvestedG  float64   `json:"harvested_g"`
	LossG       float64   `json:"loss_g"`
	Quality     int       `json:"quality"` // 1 (worst) to 5 (best)
}
