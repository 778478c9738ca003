package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/DjordjeVuckovic/booltable/internal/vm"
	"github.com/DjordjeVuckovic/booltable/pkg/config/env"
)

const DefaultMaxInputs = 20

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	// MaxInputs bounds the equations accepted by the API; a table has 2^MaxInputs rows.
	MaxInputs int
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/booltable_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := lo.Compact(lo.Map(strings.Split(os.Getenv("CORS_ORIGINS"), ","), func(o string, _ int) string {
		return strings.TrimSpace(o)
	}))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxInputs := DefaultMaxInputs
	if raw := os.Getenv("MAX_INPUTS"); raw != "" {
		maxInputs, err = strconv.Atoi(raw)
		if err != nil || maxInputs < 1 || maxInputs > vm.MaxInputs {
			return nil, fmt.Errorf("invalid MAX_INPUTS %q: must be between 1 and %d", raw, vm.MaxInputs)
		}
	}

	return &Config{
		Port:        port,
		UseHttp2:    useHttp2,
		CorsOrigins: origins,
		MaxInputs:   maxInputs,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
