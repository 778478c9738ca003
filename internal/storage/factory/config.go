package factory

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/DjordjeVuckovic/booltable/internal/storage"
	"github.com/DjordjeVuckovic/booltable/internal/storage/es"
	"github.com/DjordjeVuckovic/booltable/internal/storage/pg"
)

const defaultJSONStorePath = "data/evaluations.json"

type StorageConfig struct {
	storage.Type
	Pg       *pg.PoolConfig
	Es       *es.ClientConfig
	JSONPath string
}

// LoadEnv reads STORAGE_TYPE and the settings of the selected backend. An unset
// STORAGE_TYPE selects the in-memory store.
func LoadEnv() (*StorageConfig, error) {
	storageType := storage.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		slog.Info("STORAGE_TYPE is not set, using in-memory storage")
		storageType = storage.InMem
	}
	if !slices.Contains(storage.Types, storageType) {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			storage.Types)
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case storage.ES:
		addresses := lo.Compact(lo.Map(strings.Split(os.Getenv("ES_ADDRESSES"), ","), func(a string, _ int) string {
			return strings.TrimSpace(a)
		}))
		cfg.Es = &es.ClientConfig{
			Addresses: addresses,
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.Es.IndexName == "" {
			cfg.Es.IndexName = "evaluations"
		}
		if len(cfg.Es.Addresses) == 0 {
			slog.Error("Elasticsearch configuration is incomplete", "addresses", cfg.Es.Addresses)
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}

	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			slog.Error("PostgreSQL connection string is not set")
			return nil, fmt.Errorf("PG_CONNECTION_STRING is not set")
		}
		if raw := os.Getenv("PG_MAX_CONNS"); raw != "" {
			n, err := strconv.ParseInt(raw, 10, 32)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS %q", raw)
			}
			cfg.Pg.MaxConns = int32(n)
		}

	case storage.JSON:
		cfg.JSONPath = os.Getenv("JSON_STORE_PATH")
		if cfg.JSONPath == "" {
			cfg.JSONPath = defaultJSONStorePath
		}
	}

	return cfg, nil
}
