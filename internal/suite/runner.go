package suite

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/DjordjeVuckovic/booltable/internal/pipeline"
	"github.com/DjordjeVuckovic/booltable/internal/sat"
	"github.com/DjordjeVuckovic/booltable/internal/vm"
)

// Run evaluates every case and compares it with its expectations. Besides the declared
// expectations, each table is checked against the SAT classification of its equation.
func Run(s *Suite) *Summary {
	start := time.Now()
	opts := pipeline.Options{MaxInputs: s.MaxInputs}

	results := lo.Map(s.Cases, func(c Case, _ int) CaseResult {
		return runCase(c, opts, max(s.Repeat, 1))
	})

	passed := lo.CountBy(results, func(r CaseResult) bool { return r.Passed })
	summary := &Summary{
		Name:     s.Name,
		Results:  results,
		Passed:   passed,
		Failed:   len(results) - passed,
		Latency:  merge(lo.Map(results, func(r CaseResult, _ int) Latency { return r.Latency })),
		Duration: time.Since(start),
	}

	slog.Info("Suite finished", "name", s.Name, "passed", summary.Passed, "failed", summary.Failed, "took", summary.Duration)
	return summary
}

func runCase(c Case, opts pipeline.Options, repeat int) CaseResult {
	result := CaseResult{ID: c.ID, Equation: c.Equation}

	var (
		res       *pipeline.Result
		err       error
		durations = make([]time.Duration, 0, repeat)
	)
	for range repeat {
		t0 := time.Now()
		res, err = pipeline.Run(c.Equation, opts)
		durations = append(durations, time.Since(t0))
	}
	result.Latency = measure(durations)

	fail := func(format string, args ...any) {
		result.Failures = append(result.Failures, fmt.Sprintf(format, args...))
	}

	switch {
	case err != nil && c.Error:
		result.Error = err.Error()
	case err != nil:
		result.Error = err.Error()
		fail("unexpected error: %v", err)
	case c.Error:
		fail("expected an error, got a table with %d rows", res.Table.Len())
	default:
		result.Outputs = res.Table.OutputBits()
		result.Classification = res.Classification

		if c.Outputs != "" && c.Outputs != result.Outputs {
			fail("outputs: expected %s, got %s", c.Outputs, result.Outputs)
		}
		if c.Classification != "" && c.Classification != res.Classification {
			fail("classification: expected %s, got %s", c.Classification, res.Classification)
		}
		if err := crossCheck(res.Table, res.Classification); err != nil {
			fail("%v", err)
		}
	}

	result.Passed = len(result.Failures) == 0
	if !result.Passed {
		slog.Warn("Suite case failed", "id", c.ID, "failures", result.Failures)
	}
	return result
}

var errInconsistent = errors.New("truth table disagrees with SAT classification")

func crossCheck(t *vm.TruthTable, class sat.Classification) error {
	ones := lo.Count(t.Outputs, true)
	var want sat.Classification
	switch ones {
	case 0:
		want = sat.Contradiction
	case t.Len():
		want = sat.Tautology
	default:
		want = sat.Contingent
	}
	if want != class {
		return fmt.Errorf("%w: table says %s, solver says %s", errInconsistent, want, class)
	}
	return nil
}
