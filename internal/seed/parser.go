package seed

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pricetrail/pricetrail/internal/domain/models"
	"github.com/pricetrail/pricetrail/internal/storage"
)

// expectedHeaders enforces strict column ordering for catalog seed files.
// If the header doesn't match EXACTLY (order + count), the import must fail.
var expectedHeaders = []string{
	"article",
	"name",
	"price",
	"description",
}

// parseAndPersistFile opens, validates, parses, and persists one catalog
// file in batches. It fails on:
//   - header not matching expected order/length
//   - missing article/name or an unparseable price
//   - unrecoverable I/O errors
//
// It tolerates an empty description.
func parseAndPersistFile(ctx context.Context, path string, repo storage.ProductRepository, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	sourceFile := filepath.Base(path)

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we’ll check explicitly

	// Validate headers strictly.
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	// Parse rows streaming; flush batches to DB.
	buf := make([]models.Product, 0, batch)
	lineNumber := 1 // header already read

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0
	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(expectedHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		p, err := recordToProduct(rec, sourceFile)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		buf = append(buf, p)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	// Final flush
	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}

	return total, nil
}

// recordToProduct converts a single CSV record (already validated length==4)
// into a models.Product.
//
// Column order:
//
//	0 article     → Article (string, required)
//	1 name        → Name (string, required)
//	2 price       → CurrentPrice (float, comma or dot decimal, required)
//	3 description → Description (string, may be empty)
func recordToProduct(rec []string, sourceFile string) (models.Product, error) {
	p := models.Product{
		ID:         uuid.NewString(),
		SourceFile: sourceFile,
	}

	p.Article = strings.TrimSpace(rec[0])
	if p.Article == "" {
		return p, fmt.Errorf("empty article")
	}

	p.Name = strings.TrimSpace(rec[1])
	if p.Name == "" {
		return p, fmt.Errorf("empty name")
	}

	s := strings.TrimSpace(rec[2])
	if s == "" {
		return p, fmt.Errorf("empty price")
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return p, fmt.Errorf("invalid price: %v", err)
	}
	if v <= 0 {
		return p, fmt.Errorf("price must be positive, got %v", v)
	}
	p.CurrentPrice = v

	p.Description = strings.TrimSpace(rec[3])

	return p, nil
}
