package seed

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pricetrail/pricetrail/internal/logger"
	"github.com/pricetrail/pricetrail/internal/storage"
)

const defaultBatchSize = 500

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.ProductRepository {
	return storage.NewProductRepository(db)
}

// ProcessDirectory imports every .csv catalog file found in dir.
//
// Parameters:
//   - dir: directory containing .csv catalog files.
//   - db:  open *sql.DB (PostgreSQL).
//
// Behavior:
//   - Each file is parsed strictly (header order enforced) and loaded in
//     batches via the repository.
//   - Files already recorded in import_log are skipped unless force is set,
//     in which case that file's products are deleted and reloaded.
//   - Files are processed concurrently, bounded by parallel (0 = auto up to
//     CPU count, capped at 8). The first error cancels the rest.
//
// Returns:
//   - error: first error encountered (if any).
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	// use indirection to allow tests to swap repository constructor
	repo := repoCtor(db)

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("glob %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .csv files found in %s", dir)
	}
	sort.Strings(files)

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("seed start")

	// Concurrency: default to min(8, NumCPU), or use provided clamp(1..8)
	maxParallel := 8
	if parallel > 0 {
		if parallel > 8 {
			parallel = 8
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("max_parallel", maxParallel).Msg("seed configured")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Msg("file start")

			// Idempotency: skip if already imported, unless force
			exists, err := repo.HasImportForFile(base)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("check import log failed")
				return fmt.Errorf("file %s: check import log: %w", f, err)
			}
			if exists && !force {
				logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Bool("skipped", true).Msg("already imported")
				return nil
			}
			if exists && force {
				// Delete this file's products and reload
				if err := repo.DeleteBySourceFile(base); err != nil {
					logger.L().Error().Str("file", base).Err(err).Msg("delete existing failed")
					return fmt.Errorf("file %s: delete existing: %w", f, err)
				}
			}

			total, err := parseAndPersistFile(gctx, f, repo, defaultBatchSize)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			if err := repo.UpsertImportLog(base, total); err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("update import log failed")
				return fmt.Errorf("file %s: upsert import log: %w", f, err)
			}
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("file done")
			return nil
		})
	}

	return g.Wait()
}
