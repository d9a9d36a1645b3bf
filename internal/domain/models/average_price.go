package models

import "time"

// AveragePrice is the result of an average-price query: the arithmetic mean
// of a product's effective daily price over an inclusive date range, rounded
// once to the nearest integer.
//
// swagger:model AveragePrice
type AveragePrice struct {
	ProductID string    `json:"product_id" example:"3f1d2c7e-8a4b-4f0e-9c6d-1b2a3c4d5e6f"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Days      int       `json:"days" example:"10"`
	Avg       int64     `json:"avg" example:"88"`
}
