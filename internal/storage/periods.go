package storage

import (
	"database/sql"
	"errors"
	"time"

	pq "github.com/lib/pq"
	"github.com/pricetrail/pricetrail/internal/domain/models"
	"github.com/pricetrail/pricetrail/internal/pricing"
)

// PricePeriodRepository defines the contract for price-history access.
type PricePeriodRepository interface {
	ListByProduct(productID string) ([]models.PricePeriod, error)

	// Admit persists the proposed period unless it overlaps an existing
	// period of the same product, in which case it returns
	// models.ErrPeriodOverlap and writes nothing.
	Admit(period models.PricePeriod) (*models.PricePeriod, error)
}

type pricePeriodRepository struct {
	db *sql.DB
}

func NewPricePeriodRepository(db *sql.DB) PricePeriodRepository {
	return &pricePeriodRepository{db: db}
}

// ListByProduct returns a product's periods ordered by start date, so the
// earliest covering period wins any first-match scan deterministically.
func (r *pricePeriodRepository) ListByProduct(productID string) ([]models.PricePeriod, error) {
	rows, err := r.db.Query(`
		SELECT id, product_id, price, start_date, end_date, created_at
		FROM price_periods
		WHERE product_id = $1
		ORDER BY start_date
	`, productID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanPeriods(rows)
}

func scanPeriods(rows *sql.Rows) ([]models.PricePeriod, error) {
	var out []models.PricePeriod
	for rows.Next() {
		var p models.PricePeriod
		var end sql.NullTime
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Price, &p.StartDate, &end, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.StartDate = pricing.DateOnly(p.StartDate)
		if end.Valid {
			e := pricing.DateOnly(end.Time)
			p.EndDate = &e
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Admit runs the scan-then-insert inside one transaction. A per-product
// advisory lock serializes concurrent admissions so two proposals cannot
// both pass the overlap scan against a stale read; the exclusion constraint
// on price_periods backs this up at insert time.
func (r *pricePeriodRepository) Admit(period models.PricePeriod) (*models.PricePeriod, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(`SELECT pg_advisory_xact_lock(hashtext($1))`, period.ProductID); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	rows, err := tx.Query(`
		SELECT id, product_id, price, start_date, end_date, created_at
		FROM price_periods
		WHERE product_id = $1
		ORDER BY start_date
	`, period.ProductID)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}
	existing, err := scanPeriods(rows)
	_ = rows.Close()
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	start := pricing.DateOnly(period.StartDate)
	end := pricing.DateOnly(*period.EndDate)
	for _, p := range existing {
		if p.ConflictsWith(start, end) {
			_ = tx.Rollback()
			return nil, models.ErrPeriodOverlap
		}
	}

	created := period
	created.StartDate = start
	created.EndDate = &end
	created.CreatedAt = time.Now().UTC()

	if _, err := tx.Exec(`
		INSERT INTO price_periods (id, product_id, price, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, created.ID, created.ProductID, created.Price, created.StartDate, created.EndDate, created.CreatedAt); err != nil {
		_ = tx.Rollback()
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "exclusion_violation" {
			return nil, models.ErrPeriodOverlap
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &created, nil
}
