package dto

import (
	"time"

	"github.com/pricetrail/pricetrail/internal/domain/models"
)

const dateLayout = "2006-01-02"

// CreateProductRequest is the body of POST /api/v1/products.
type CreateProductRequest struct {
	Article     string  `json:"article" binding:"required" example:"SKU-10442"`
	Name        string  `json:"name" binding:"required" example:"Espresso Grinder"`
	Description string  `json:"description" example:"Conical burr grinder, 40 settings"`
	Price       float64 `json:"price" binding:"required,gt=0" example:"100"`
}

// AdmitPeriodRequest is the body of POST /api/v1/products/:id/periods.
// Dates are calendar days in YYYY-MM-DD.
type AdmitPeriodRequest struct {
	Price     float64 `json:"price" binding:"required,gt=0" example:"80"`
	StartDate string  `json:"start_date" binding:"required" example:"2025-06-05"`
	EndDate   string  `json:"end_date" binding:"required" example:"2025-06-10"`
}

// PricePeriodResponse mirrors models.PricePeriod with wire-format dates.
type PricePeriodResponse struct {
	ID        string  `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	ProductID string  `json:"product_id" example:"3f1d2c7e-8a4b-4f0e-9c6d-1b2a3c4d5e6f"`
	Price     float64 `json:"price" example:"80"`
	StartDate string  `json:"start_date" example:"2025-06-05"`
	EndDate   string  `json:"end_date,omitempty" example:"2025-06-10"`
}

// NewPricePeriodResponse converts a domain period into its API shape.
func NewPricePeriodResponse(p models.PricePeriod) PricePeriodResponse {
	resp := PricePeriodResponse{
		ID:        p.ID,
		ProductID: p.ProductID,
		Price:     p.Price,
		StartDate: p.StartDate.Format(dateLayout),
	}
	if p.EndDate != nil {
		resp.EndDate = p.EndDate.Format(dateLayout)
	}
	return resp
}

// AveragePriceResponse is the payload of GET /api/v1/average-price.
type AveragePriceResponse struct {
	ProductID string `json:"product_id" example:"3f1d2c7e-8a4b-4f0e-9c6d-1b2a3c4d5e6f"`
	StartDate string `json:"start_date" example:"2025-05-01"`
	EndDate   string `json:"end_date" example:"2025-05-10"`
	Days      int    `json:"days" example:"10"`
	Avg       int64  `json:"avg" example:"88"`
}

// NewAveragePriceResponse converts an average-price result into its API shape.
func NewAveragePriceResponse(a models.AveragePrice) AveragePriceResponse {
	return AveragePriceResponse{
		ProductID: a.ProductID,
		StartDate: a.StartDate.Format(dateLayout),
		EndDate:   a.EndDate.Format(dateLayout),
		Days:      a.Days,
		Avg:       a.Avg,
	}
}

// ParseDate parses a YYYY-MM-DD wire date into a midnight-UTC time.Time.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
