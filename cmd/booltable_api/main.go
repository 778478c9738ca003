// Package main Boolean Truth Table API
// @title Boolean Truth Table API
// @version 1.0
// @description Evaluates boolean equations into complete truth tables
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	_ "github.com/DjordjeVuckovic/booltable/docs"
	"github.com/DjordjeVuckovic/booltable/internal/router"
	"github.com/DjordjeVuckovic/booltable/internal/server"
	"github.com/DjordjeVuckovic/booltable/internal/storage/factory"
	"github.com/DjordjeVuckovic/booltable/pkg/config/env"
)

const backendOpenTimeout = 30 * time.Second

func main() {
	slog.SetLogLoggerLevel(env.LogLevel(slog.LevelDebug))

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), backendOpenTimeout)
	backend, err := factory.New(ctx, storageCfg)
	cancel()
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err, "type", storageCfg.Type)
		os.Exit(1)
	}
	defer backend.Close()
	slog.Info("Storage backend ready", "type", storageCfg.Type)

	s := server.New(sCfg, backend.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Booltable API is running")
	})

	tableRouter := router.NewTableRouter(s.Echo, backend, router.WithMaxInputs(sCfg.MaxInputs))
	tableRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, draining requests before closing storage...")
	}()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		backend.Close()
		os.Exit(1)
	}
}
