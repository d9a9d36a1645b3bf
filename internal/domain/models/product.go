package models

import "time"

// Product is one entry of the priced catalog.
//
// Fields:
//   - ID: UUID assigned on creation.
//   - Article: unique merchant article code (e.g., "SKU-10442").
//   - CurrentPrice: the price in effect whenever no price period covers a day.
//   - SourceFile: name of the seed file this product came from; empty for
//     products created through the API.
type Product struct {
	ID           string    `json:"id" example:"3f1d2c7e-8a4b-4f0e-9c6d-1b2a3c4d5e6f"`
	Article      string    `json:"article" example:"SKU-10442"`
	Name         string    `json:"name" example:"Espresso Grinder"`
	Description  string    `json:"description" example:"Conical burr grinder, 40 settings"`
	CurrentPrice float64   `json:"current_price" example:"100"`
	SourceFile   string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
