// Package pipeline runs one equation end to end: parse, compile, evaluate and classify.
package pipeline

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/booltable/internal/compiler"
	"github.com/DjordjeVuckovic/booltable/internal/parser"
	"github.com/DjordjeVuckovic/booltable/internal/sat"
	"github.com/DjordjeVuckovic/booltable/internal/vm"
)

type Options struct {
	// MaxInputs caps the number of distinct input variables. Zero means vm.MaxInputs.
	MaxInputs int
	// Order selects operand emission order in the compiled program.
	Order compiler.OperandOrder
	// SkipClassify disables the SAT cross-check.
	SkipClassify bool
}

type Result struct {
	Equation       *parser.Equation
	Program        *compiler.Program
	Table          *vm.TruthTable
	Classification sat.Classification
}

type TooManyInputsError struct {
	Inputs int
	Limit  int
}

func (e *TooManyInputsError) Error() string {
	return fmt.Sprintf("equation has %d inputs, limit is %d", e.Inputs, e.Limit)
}

func (o Options) limit() int {
	if o.MaxInputs <= 0 {
		return vm.MaxInputs
	}
	return min(o.MaxInputs, vm.MaxInputs)
}

// Run evaluates src. Syntax errors are returned as parser.SyntaxError values.
func Run(src string, opts Options) (*Result, error) {
	start := time.Now()

	eq, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}

	if n, limit := len(eq.Inputs), opts.limit(); n > limit {
		return nil, &TooManyInputsError{Inputs: n, Limit: limit}
	}

	prog := compiler.CompileWithOrder(eq, opts.Order)
	res := &Result{
		Equation: eq,
		Program:  prog,
		Table:    vm.Evaluate(prog),
	}
	if !opts.SkipClassify {
		res.Classification = sat.Classify(eq)
	}

	slog.Debug("Equation evaluated",
		"equation", eq.String(),
		"inputs", len(eq.Inputs),
		"rows", res.Table.Len(),
		"instructions", len(prog.Code),
		"took", time.Since(start))

	return res, nil
}
