package models

import "errors"

// Domain errors shared by the service and storage layers. All are
// deterministic validation failures: callers translate them into HTTP
// statuses, nothing retries them.
var (
	// ErrInvalidPeriod signals a date range with start after end.
	ErrInvalidPeriod = errors.New("start date must not be after end date")

	// ErrPeriodOverlap signals a proposed period sharing at least one
	// calendar day with a stored period of the same product.
	ErrPeriodOverlap = errors.New("period overlaps an existing period")

	// ErrProductNotFound signals a reference to a product that does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateArticle signals a product create with an article code
	// already present in the catalog.
	ErrDuplicateArticle = errors.New("article already exists")
)
