package parser

import (
	"fmt"

	"github.com/DjordjeVuckovic/booltable/internal/token"
)

// BinaryOp is one of the three equal-precedence binary operators.
type BinaryOp int

const (
	And BinaryOp = iota
	Or
	Xor
)

func (op BinaryOp) String() string {
	switch op {
	case And:
		return "AND"
	case Or:
		return "OR"
	case Xor:
		return "XOR"
	default:
		return "UNKNOWN"
	}
}

func binaryOpFrom(kind token.Kind) BinaryOp {
	switch kind {
	case token.AND:
		return And
	case token.OR:
		return Or
	case token.XOR:
		return Xor
	default:
		panic(fmt.Sprintf("parser: %s is not a binary operator", kind))
	}
}

// Expr is a node of the expression tree. The set of implementations is closed:
// *Bool, *Var, *Not and *BinOp.
type Expr interface {
	Span() token.Span
	base() *node
}

type node struct {
	span token.Span
}

func (n *node) Span() token.Span { return n.span }
func (n *node) base() *node      { return n }

// Bool is a literal true or false.
type Bool struct {
	node
	Value bool
}

// Var references an input variable by its dense index.
type Var struct {
	node
	Index int
}

// Not negates its operand.
type Not struct {
	node
	Operand Expr
}

// BinOp applies Op to Left and Right.
type BinOp struct {
	node
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func NewBool(value bool, span token.Span) *Bool {
	return &Bool{node: node{span: span}, Value: value}
}

func NewVar(index int, span token.Span) *Var {
	return &Var{node: node{span: span}, Index: index}
}

func NewNot(operand Expr, span token.Span) *Not {
	return &Not{node: node{span: span}, Operand: operand}
}

// NewBinOp builds a binary node spanning both operands.
func NewBinOp(op BinaryOp, left, right Expr) *BinOp {
	return &BinOp{
		node:  node{span: left.Span().Join(right.Span())},
		Op:    op,
		Left:  left,
		Right: right,
	}
}

// Equation is the parsed form of `expr = output`.
type Equation struct {
	// Inputs holds the variables referenced by LHS, ordered by index.
	Inputs []string
	LHS    Expr
	// Output is not necessarily one of Inputs.
	Output string
}

func (eq *Equation) String() string {
	return Format(eq.LHS, eq.Inputs) + " = " + eq.Output
}
