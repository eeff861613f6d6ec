package models

import "time"

// Forecast is the backend-computed demand quantity for one seed plan and
// delivery date. An operator may attach an override quantity; the backend
// recomputes and persists the authoritative value on receipt.
type Forecast struct {
	ID            string    `json:"id"`
	PlanID        string    `json:"plan_id"`
	Date          time.Time `json:"date"`
	QuantityG     float64   `json:"quantity_g"`
	OverrideG     *float64  `json:"override_g,omitempty"`
	Justification string    `json:"justification,omitempty"`
}

// ForecastOverride is the payload submitted to replace a computed forecast
// quantity with a manual one.
type ForecastOverride struct {
	QuantityG     float64 `json:"quantity_g" binding:"required"`
	Justification string  `json:"justification"`
}
