// Package sat cross-checks equations with a SAT solver: it classifies a formula as a
// tautology, a contradiction or contingent and finds witnessing assignments.
package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/DjordjeVuckovic/booltable/internal/parser"
)

type Classification string

const (
	Tautology     Classification = "tautology"
	Contradiction Classification = "contradiction"
	Contingent    Classification = "contingent"
)

// circuit is the and-inverter graph of one equation with one literal per input.
type circuit struct {
	c       *logic.C
	inputs  []z.Lit
	formula z.Lit
}

func build(eq *parser.Equation) *circuit {
	c := logic.NewC()
	inputs := make([]z.Lit, len(eq.Inputs))
	for i := range inputs {
		inputs[i] = c.Lit()
	}
	ct := &circuit{c: c, inputs: inputs}
	ct.formula = ct.lower(eq.LHS)
	return ct
}

func (ct *circuit) lower(e parser.Expr) z.Lit {
	switch n := e.(type) {
	case *parser.Bool:
		if n.Value {
			return ct.c.T
		}
		return ct.c.F
	case *parser.Var:
		return ct.inputs[n.Index]
	case *parser.Not:
		return ct.lower(n.Operand).Not()
	case *parser.BinOp:
		l, r := ct.lower(n.Left), ct.lower(n.Right)
		switch n.Op {
		case parser.And:
			return ct.c.And(l, r)
		case parser.Or:
			return ct.c.Or(l, r)
		case parser.Xor:
			return ct.c.Xor(l, r)
		}
	}
	panic(fmt.Sprintf("sat: unsupported expression %T", e))
}

// solve looks for an assignment making lit true. The returned model is indexed like the
// equation inputs.
func (ct *circuit) solve(lit z.Lit) ([]bool, bool) {
	switch lit {
	case ct.c.F:
		return nil, false
	case ct.c.T:
		return make([]bool, len(ct.inputs)), true
	}

	g := gini.New()
	ct.c.ToCnf(g)
	g.Assume(lit)
	if g.Solve() != 1 {
		return nil, false
	}

	// Inputs folded away by the circuit never reach the solver and stay false.
	model := make([]bool, len(ct.inputs))
	for i, in := range ct.inputs {
		if in.Var() <= g.MaxVar() {
			model[i] = g.Value(in)
		}
	}
	return model, true
}

// Classify decides whether the equation's output is constant.
func Classify(eq *parser.Equation) Classification {
	ct := build(eq)
	if _, ok := ct.solve(ct.formula); !ok {
		return Contradiction
	}
	if _, ok := ct.solve(ct.formula.Not()); !ok {
		return Tautology
	}
	return Contingent
}

// Witness returns an input assignment for which the equation evaluates to want.
func Witness(eq *parser.Equation, want bool) ([]bool, bool) {
	ct := build(eq)
	if want {
		return ct.solve(ct.formula)
	}
	return ct.solve(ct.formula.Not())
}
