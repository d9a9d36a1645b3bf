package storage

import (
	"database/sql"
	"errors"

	pq "github.com/lib/pq"
	"github.com/pricetrail/pricetrail/internal/domain/models"
)

// ProductRepository defines the contract for product catalog access.
type ProductRepository interface {
	Insert(p models.Product) error
	InsertBatch(products []models.Product) error
	GetByID(id string) (*models.Product, error)
	GetByArticle(article string) (*models.Product, error)
	List() ([]models.Product, error)
	HasImportForFile(filename string) (bool, error)
	UpsertImportLog(filename string, rowCount int) error
	DeleteBySourceFile(filename string) error
}

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, article, name, description, current_price, COALESCE(source_file, ''), created_at`

// Insert stores a single API-created product.
func (r *productRepository) Insert(p models.Product) error {
	_, err := r.db.Exec(`
		INSERT INTO products (id, article, name, description, current_price)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.Article, p.Name, p.Description, p.CurrentPrice)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return models.ErrDuplicateArticle
		}
		return err
	}
	return nil
}

// InsertBatch bulk-loads seed products in a single transaction via COPY.
func (r *productRepository) InsertBatch(products []models.Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"products",
		"id",
		"article",
		"name",
		"description",
		"current_price",
		"source_file",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, p := range products {
		if _, err := stmt.Exec(p.ID, p.Article, p.Name, p.Description, p.CurrentPrice, p.SourceFile); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// GetByID returns the product with the given id, or nil when absent.
func (r *productRepository) GetByID(id string) (*models.Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

// GetByArticle returns the product with the given article code, or nil when absent.
func (r *productRepository) GetByArticle(article string) (*models.Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE article = $1`, article)
	return scanProduct(row)
}

func scanProduct(row *sql.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Article, &p.Name, &p.Description, &p.CurrentPrice, &p.SourceFile, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all products ordered by article.
func (r *productRepository) List() ([]models.Product, error) {
	rows, err := r.db.Query(`SELECT ` + productColumns + ` FROM products ORDER BY article`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Article, &p.Name, &p.Description, &p.CurrentPrice, &p.SourceFile, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// HasImportForFile checks if a seed file was already imported.
func (r *productRepository) HasImportForFile(filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM import_log WHERE filename = $1)`, filename).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertImportLog records (or updates) an import entry for a seed file.
func (r *productRepository) UpsertImportLog(filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO import_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  imported_at = NOW()
	`, filename, rowCount)
	return err
}

// DeleteBySourceFile removes all products loaded from a given seed file.
func (r *productRepository) DeleteBySourceFile(filename string) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE source_file = $1`, filename)
	return err
}
