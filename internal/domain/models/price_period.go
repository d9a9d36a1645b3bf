package models

import "time"

// PricePeriod is one historical price assignment for a product: the product
// sold at Price on every calendar day of the inclusive range
// [StartDate, EndDate]. A nil EndDate means the period is still open.
//
// For a given product no two periods may share a calendar day. Periods are
// append-only; a price correction is a new period, never an edit.
type PricePeriod struct {
	ID        string     `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	ProductID string     `json:"product_id" example:"3f1d2c7e-8a4b-4f0e-9c6d-1b2a3c4d5e6f"`
	Price     float64    `json:"price" example:"80"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Covers reports whether day falls inside the period. Dates are compared at
// day granularity; callers normalize inputs to midnight UTC.
func (p PricePeriod) Covers(day time.Time) bool {
	if day.Before(p.StartDate) {
		return false
	}
	return p.EndDate == nil || !day.After(*p.EndDate)
}

// ConflictsWith reports whether the period shares at least one calendar day
// with the bounded proposal [start, end]. An open period extends to
// infinity, so it conflicts with any proposal ending on or after its start.
func (p PricePeriod) ConflictsWith(start, end time.Time) bool {
	if end.Before(p.StartDate) {
		return false
	}
	return p.EndDate == nil || !start.After(*p.EndDate)
}
