package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pricetrail/pricetrail/internal/domain/models"
	"github.com/pricetrail/pricetrail/internal/pricing"
	"github.com/pricetrail/pricetrail/internal/storage"
)

// CatalogService defines the business logic over products and their price
// history. It decouples HTTP handlers from data access.
type CatalogService interface {
	CreateProduct(ctx context.Context, article, name, description string, price float64) (*models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListPeriods(ctx context.Context, productID string) ([]models.PricePeriod, error)

	// AdmitPeriod validates and persists a new bounded price period for a
	// product. Fails with models.ErrInvalidPeriod, models.ErrProductNotFound
	// or models.ErrPeriodOverlap; on rejection nothing is written.
	AdmitPeriod(ctx context.Context, productID string, price float64, start, end time.Time) (*models.PricePeriod, error)

	// AveragePrice computes the mean effective daily price of a product over
	// the inclusive range [start, end]. Read-only; tolerates a stale
	// snapshot of the period store.
	AveragePrice(ctx context.Context, productID string, start, end time.Time) (*models.AveragePrice, error)
}

type catalogService struct {
	products storage.ProductRepository
	periods  storage.PricePeriodRepository
}

func NewCatalogService(products storage.ProductRepository, periods storage.PricePeriodRepository) CatalogService {
	return &catalogService{products: products, periods: periods}
}

func (s *catalogService) CreateProduct(_ context.Context, article, name, description string, price float64) (*models.Product, error) {
	p := models.Product{
		ID:           uuid.NewString(),
		Article:      article,
		Name:         name,
		Description:  description,
		CurrentPrice: price,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.products.Insert(p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *catalogService) GetProduct(_ context.Context, id string) (*models.Product, error) {
	// A malformed id cannot reference a product; don't let it reach the
	// uuid column as a cast error.
	if _, err := uuid.Parse(id); err != nil {
		return nil, models.ErrProductNotFound
	}
	p, err := s.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, models.ErrProductNotFound
	}
	return p, nil
}

func (s *catalogService) ListProducts(_ context.Context) ([]models.Product, error) {
	return s.products.List()
}

func (s *catalogService) ListPeriods(ctx context.Context, productID string) ([]models.PricePeriod, error) {
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.periods.ListByProduct(productID)
}

func (s *catalogService) AdmitPeriod(ctx context.Context, productID string, price float64, start, end time.Time) (*models.PricePeriod, error) {
	start = pricing.DateOnly(start)
	end = pricing.DateOnly(end)
	if end.Before(start) {
		return nil, models.ErrInvalidPeriod
	}
	if _, err := s.GetProduct(ctx, productID); err != nil {
		return nil, err
	}

	return s.periods.Admit(models.PricePeriod{
		ID:        uuid.NewString(),
		ProductID: productID,
		Price:     price,
		StartDate: start,
		EndDate:   &end,
	})
}

func (s *catalogService) AveragePrice(ctx context.Context, productID string, start, end time.Time) (*models.AveragePrice, error) {
	start = pricing.DateOnly(start)
	end = pricing.DateOnly(end)
	if end.Before(start) {
		return nil, models.ErrInvalidPeriod
	}

	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	periods, err := s.periods.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	avg, err := pricing.AveragePrice(product.CurrentPrice, periods, start, end)
	if err != nil {
		return nil, err
	}
	return &models.AveragePrice{
		ProductID: productID,
		StartDate: start,
		EndDate:   end,
		Days:      pricing.DayCount(start, end),
		Avg:       avg,
	}, nil
}
