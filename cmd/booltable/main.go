// Command booltable prints the truth table of boolean equations such as
// "A AND (B OR C) = Z", read from -e or one per line from stdin.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/DjordjeVuckovic/booltable/internal/report"
	"github.com/DjordjeVuckovic/booltable/internal/storage/factory"
	"github.com/DjordjeVuckovic/booltable/internal/suite"
	"github.com/DjordjeVuckovic/booltable/pkg/config/env"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: env.LogLevel(slog.LevelWarn),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if cfg.SuitePath != "" {
		return runSuite(cfg, stdout)
	}

	c := &cli{cfg: cfg, out: stdout, errOut: stderr}

	if cfg.Save {
		if err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/booltable/.env"); err != nil {
			slog.Warn("Skipping .env ...", "error", err)
		}
		storageCfg, err := factory.LoadEnv()
		if err != nil {
			slog.Error("Failed to load storage config", "error", err)
			return 1
		}
		backend, err := factory.New(ctx, storageCfg)
		if err != nil {
			slog.Error("Failed to open storage", "error", err, "type", storageCfg.Type)
			return 1
		}
		defer backend.Close()
		c.store = backend
	}

	if cfg.Equation != "" {
		if err := c.evaluate(ctx, cfg.Equation); err != nil {
			if !errors.Is(err, errRejected) {
				slog.Error("Evaluation failed", "error", err)
			}
			return 1
		}
		return 0
	}

	if err := c.repl(ctx, stdin, isTerminal(stdin)); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Read loop failed", "error", err)
		return 1
	}
	return 0
}

func runSuite(cfg cliConfig, stdout io.Writer) int {
	s, err := suite.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "error", err, "path", cfg.SuitePath)
		return 1
	}
	if cfg.MaxInputs > 0 {
		s.MaxInputs = cfg.MaxInputs
	}

	summary := suite.Run(s)

	if cfg.Format == formatJSON {
		err = report.WriteJSON(stdout, summary)
	} else {
		err = suite.WriteSummary(summary, stdout)
	}
	if err != nil {
		slog.Error("Failed to write summary", "error", err)
		return 1
	}

	if cfg.Output != "" {
		if err := report.WriteJSONFile(summary, cfg.Output); err != nil {
			slog.Error("Failed to write summary file", "error", err, "path", cfg.Output)
			return 1
		}
	}

	if !summary.OK() {
		return 1
	}
	return 0
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
