package vm

import (
	"fmt"
	"slices"

	"github.com/DjordjeVuckovic/booltable/internal/compiler"
)

// MaxInputs is the largest input count whose row count still fits in an int.
const MaxInputs = 62

// ContractViolation is the panic value raised when a program breaks the stack discipline a
// well-formed equation always compiles to. It signals a compiler or VM defect, never bad input.
type ContractViolation struct {
	PC     int
	Reason string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("vm: contract violation at pc %d: %s", e.PC, e.Reason)
}

func violate(pc int, format string, args ...any) {
	panic(&ContractViolation{PC: pc, Reason: fmt.Sprintf(format, args...)})
}

// VM executes a compiled program against boolean assignments.
type VM struct {
	prog  *compiler.Program
	stack []bool
}

func New(prog *compiler.Program) *VM {
	return &VM{
		prog:  prog,
		stack: make([]bool, 0, prog.MaxStack()),
	}
}

// Evaluate generates the full truth table of prog.
func Evaluate(prog *compiler.Program) *TruthTable {
	return New(prog).Generate()
}

// Exec runs the program once, starting from an empty stack, and returns the single value
// left on the stack.
func (m *VM) Exec(assignment []bool) bool {
	m.stack = m.stack[:0]

	for pc, in := range m.prog.Code {
		switch in.Op {
		case compiler.Push:
			m.stack = append(m.stack, in.Value)
		case compiler.Load:
			if in.Index < 0 || in.Index >= len(assignment) {
				violate(pc, "load of input %d with %d inputs", in.Index, len(assignment))
			}
			m.stack = append(m.stack, assignment[in.Index])
		case compiler.Not:
			m.stack = append(m.stack, !m.pop(pc))
		case compiler.And:
			a, b := m.pop(pc), m.pop(pc)
			m.stack = append(m.stack, a && b)
		case compiler.Or:
			a, b := m.pop(pc), m.pop(pc)
			m.stack = append(m.stack, a || b)
		case compiler.Xor:
			a, b := m.pop(pc), m.pop(pc)
			m.stack = append(m.stack, a != b)
		default:
			violate(pc, "unknown opcode %d", in.Op)
		}
	}

	if len(m.stack) != 1 {
		violate(len(m.prog.Code), "final stack depth %d, want 1", len(m.stack))
	}
	return m.stack[0]
}

// Generate enumerates all 2^n assignments, inputs[0] being the most significant bit.
func (m *VM) Generate() *TruthTable {
	n := len(m.prog.Inputs)
	if n > MaxInputs {
		violate(0, "%d inputs exceed the supported maximum of %d", n, MaxInputs)
	}

	rows := 1 << n
	table := &TruthTable{
		InputNames: slices.Clone(m.prog.Inputs),
		Inputs:     make([][]bool, rows),
		OutputName: m.prog.Output,
		Outputs:    make([]bool, rows),
	}

	for k := range rows {
		assignment := Assignment(k, n)
		table.Inputs[k] = assignment
		table.Outputs[k] = m.Exec(assignment)
	}

	return table
}

// Assignment returns row k of an n-input table: input j takes bit (n-1-j) of k.
func Assignment(k, n int) []bool {
	out := make([]bool, n)
	for j := range n {
		out[j] = (k>>(n-1-j))&1 == 1
	}
	return out
}

func (m *VM) pop(pc int) bool {
	if len(m.stack) == 0 {
		violate(pc, "stack underflow executing %s", m.prog.Code[pc])
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v
}
