package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/booltable/internal/domain"
	"github.com/DjordjeVuckovic/booltable/internal/parser"
	"github.com/DjordjeVuckovic/booltable/internal/pipeline"
	"github.com/DjordjeVuckovic/booltable/internal/report"
	"github.com/DjordjeVuckovic/booltable/internal/storage"
)

const (
	prompt = "> "
	// defaultMaxLine bounds one equation read by the REPL.
	defaultMaxLine = 1 << 20
)

// errRejected marks an equation that was reported to the user and produced no table.
var errRejected = errors.New("equation rejected")

type cli struct {
	cfg    cliConfig
	out    io.Writer
	errOut io.Writer
	store  storage.Storer
	// maxLine overrides defaultMaxLine when positive.
	maxLine int
}

// evaluate prints the table for src, or a diagnostic when src is rejected.
func (c *cli) evaluate(ctx context.Context, src string) error {
	res, err := pipeline.Run(src, pipeline.Options{
		MaxInputs:    c.cfg.MaxInputs,
		SkipClassify: !c.cfg.Classify && c.store == nil,
	})
	if err != nil {
		var se parser.SyntaxError
		if errors.As(err, &se) {
			fmt.Fprint(c.errOut, parser.Render(se, src))
			return errRejected
		}
		var tooMany *pipeline.TooManyInputsError
		if errors.As(err, &tooMany) {
			fmt.Fprintf(c.errOut, "error: %v\n", tooMany)
			return errRejected
		}
		return err
	}

	if c.cfg.Program {
		fmt.Fprintf(c.out, "program for %s\n", res.Equation)
		if err := report.WriteProgram(c.out, res.Program); err != nil {
			return err
		}
	}

	switch c.cfg.Format {
	case formatJSON:
		if err := report.WriteJSON(c.out, res.Table); err != nil {
			return err
		}
	default:
		if err := report.WriteMarkdown(c.out, res.Table); err != nil {
			return err
		}
	}

	if c.cfg.Classify {
		fmt.Fprintf(c.out, "%s is %s\n", res.Equation, res.Classification)
	}

	if c.store != nil {
		id, err := c.store.Save(ctx, domain.NewEvaluation(src, res))
		if err != nil {
			return fmt.Errorf("failed to save evaluation: %w", err)
		}
		fmt.Fprintf(c.errOut, "saved %s\n", id)
	}
	return nil
}

// repl reads one equation per line until in is exhausted. Rejected equations, including
// lines longer than the line limit, are reported and the loop continues.
func (c *cli) repl(ctx context.Context, in io.Reader, interactive bool) error {
	r := bufio.NewReader(in)
	limit := c.maxLine
	if limit <= 0 {
		limit = defaultMaxLine
	}

	for {
		if interactive {
			fmt.Fprint(c.out, prompt)
		}

		raw, err := readLine(r, limit)
		if errors.Is(err, errLineTooLong) {
			fmt.Fprintf(c.errOut, "error: line exceeds %d bytes\n", limit)
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if err := c.evaluate(ctx, line); err != nil && !errors.Is(err, errRejected) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	if interactive {
		fmt.Fprintln(c.out)
	}
	return nil
}

var errLineTooLong = errors.New("line too long")

// readLine returns the next line without its terminator. A line longer than limit is
// consumed up to its newline and reported as errLineTooLong. io.EOF is returned only
// when no bytes remain.
func readLine(r *bufio.Reader, limit int) (string, error) {
	var (
		buf     []byte
		tooLong bool
	)
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				break
			}
			return "", err
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > limit {
				tooLong, buf = true, nil
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return string(buf), nil
}
