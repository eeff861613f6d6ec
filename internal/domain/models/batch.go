package models

import "time"

// BatchStatus enumerates the authoritative lifecycle states a grow batch can
// be in. The values are the wire vocabulary of the backend and are never
// invented or transitioned locally.
type BatchStatus string

const (
	StatusGerminating BatchStatus = "KEIMUNG"
	StatusGrowing     BatchStatus = "WACHSTUM"
	StatusReady       BatchStatus = "ERNTEREIF"
	StatusHarvested   BatchStatus = "GEERNTET"
	StatusLost        BatchStatus = "VERLUST"
)

// Terminal reports whether the status permits no further transitions.
func (s BatchStatus) Terminal() bool {
	return s == StatusHarvested || s == StatusLost
}

// Known reports whether the value is part of the backend vocabulary.
func (s BatchStatus) Known() bool {
	switch s {
	case StatusGerminating, StatusGrowing, StatusReady, StatusHarvested, StatusLost:
		return true
	}
	return false
}

// GrowBatch represents one sown cohort tracked by the backend. Elapsed days,
// phase and readiness are derived from SowDate and a reference time at read
// time, never stored.
type GrowBatch struct {
	ID        string      `json:"id"`
	PlanID    string      `json:"plan_id"`
	UnitCount int         `json:"unit_count"`
	SowDate   time.Time   `json:"sow_date"`
	Status    BatchStatus `json:"status"`
	Shelf     string      `json:"shelf"`
}

// SowingRequest is the payload submitted to open a new grow batch.
type SowingRequest struct {
	RequestID string    `json:"request_id"`
	PlanID    string    `json:"plan_id" binding:"required"`
	UnitCount int       `json:"unit_count" binding:"required"`
	SowDate   time.Time `json:"sow_date" binding:"required"`
	Shelf     string    `json:"shelf"`
}
