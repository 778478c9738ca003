package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/booltable/internal/storage"
	"github.com/DjordjeVuckovic/booltable/internal/storage/es"
	"github.com/DjordjeVuckovic/booltable/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/booltable/internal/storage/jsonfile"
	"github.com/DjordjeVuckovic/booltable/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/booltable/pkg/server"
)

// Backend is an opened store together with its health check.
type Backend struct {
	storage.Store
	Health pkgserver.HealthChecker
	close  func()
}

// Close releases connections held by the backend.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// New opens the store selected by cfg.
func New(ctx context.Context, cfg *StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		store, err := pg.NewStore(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{Store: store, Health: pg.NewHealthChecker(pool), close: pool.Close}, nil

	case storage.ES:
		if cfg.Es == nil {
			return nil, fmt.Errorf("missing Elasticsearch configuration")
		}
		store, err := es.NewStore(ctx, *cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: store, Health: store}, nil

	case storage.JSON:
		store, err := jsonfile.Open(cfg.JSONPath)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: store, Health: pkgserver.NewOkHealthChecker()}, nil

	case storage.InMem:
		return &Backend{Store: in_mem.NewStore(), Health: pkgserver.NewOkHealthChecker()}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
