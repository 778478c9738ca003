package compiler

import (
	"fmt"

	"github.com/DjordjeVuckovic/booltable/internal/parser"
)

// OperandOrder decides which operand of a binary node is emitted first.
type OperandOrder int

const (
	// RightFirst emits the right operand, then the left one. This is the default; it is only
	// sound because AND, OR and XOR are commutative.
	RightFirst OperandOrder = iota
	LeftFirst
)

// Program is a compiled equation.
type Program struct {
	Inputs []string      `json:"inputs"`
	Code   []Instruction `json:"code"`
	Output string        `json:"output"`
}

// Compile lowers the equation's expression tree into a flat instruction sequence.
func Compile(eq *parser.Equation) *Program {
	return CompileWithOrder(eq, RightFirst)
}

func CompileWithOrder(eq *parser.Equation, order OperandOrder) *Program {
	return &Program{
		Inputs: eq.Inputs,
		Code:   CompileExpr(eq.LHS, order),
		Output: eq.Output,
	}
}

// CompileExpr emits e in post-order.
func CompileExpr(e parser.Expr, order OperandOrder) []Instruction {
	c := &compiler{order: order}
	c.emitExpr(e)
	return c.code
}

type compiler struct {
	order OperandOrder
	code  []Instruction
}

func (c *compiler) emitExpr(e parser.Expr) {
	switch n := e.(type) {
	case *parser.Bool:
		c.code = append(c.code, PushInstr(n.Value))
	case *parser.Var:
		c.code = append(c.code, LoadInstr(n.Index))
	case *parser.Not:
		c.emitExpr(n.Operand)
		c.code = append(c.code, Instruction{Op: Not})
	case *parser.BinOp:
		if c.order == LeftFirst {
			c.emitExpr(n.Left)
			c.emitExpr(n.Right)
		} else {
			c.emitExpr(n.Right)
			c.emitExpr(n.Left)
		}
		c.code = append(c.code, Instruction{Op: opFor(n.Op)})
	default:
		panic(fmt.Sprintf("compiler: unknown expression %T", e))
	}
}

func opFor(op parser.BinaryOp) Op {
	switch op {
	case parser.And:
		return And
	case parser.Or:
		return Or
	case parser.Xor:
		return Xor
	default:
		panic(fmt.Sprintf("compiler: unknown binary operator %d", op))
	}
}

// MaxStack returns the deepest stack the program reaches.
func (p *Program) MaxStack() int {
	depth, deepest := 0, 0
	for _, in := range p.Code {
		switch in.Op {
		case Push, Load:
			depth++
		case And, Or, Xor:
			depth--
		}
		deepest = max(deepest, depth)
	}
	return deepest
}
