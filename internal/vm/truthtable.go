package vm

import "strings"

// TruthTable holds one output per input assignment, rows in enumeration order.
type TruthTable struct {
	InputNames []string `json:"input_names"`
	Inputs     [][]bool `json:"inputs"`
	OutputName string   `json:"output_name"`
	Outputs    []bool   `json:"outputs"`
}

// Len returns the number of rows.
func (t *TruthTable) Len() int {
	return len(t.Outputs)
}

// RowBits renders the inputs of row i as a string of 1s and 0s.
func (t *TruthTable) RowBits(i int) string {
	return bits(t.Inputs[i])
}

// OutputBits renders the output column top to bottom.
func (t *TruthTable) OutputBits() string {
	return bits(t.Outputs)
}

func bits(values []bool) string {
	var b strings.Builder
	b.Grow(len(values))
	for _, v := range values {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
