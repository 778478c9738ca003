package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/DjordjeVuckovic/booltable/internal/pipeline"
	"github.com/DjordjeVuckovic/booltable/internal/vm"
)

// Evaluation is a persisted truth table. Rows and Outputs are stored as bit strings, one
// character per input, so every backend can keep them as plain text.
type Evaluation struct {
	ID             uuid.UUID `json:"id"`
	Equation       string    `json:"equation"`
	Normalized     string    `json:"normalized"`
	Inputs         []string  `json:"inputs"`
	Output         string    `json:"output"`
	Rows           []string  `json:"rows"`
	Outputs        string    `json:"outputs"`
	Classification string    `json:"classification,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewEvaluation(src string, res *pipeline.Result) Evaluation {
	t := res.Table
	rows := make([]string, t.Len())
	for i := range rows {
		rows[i] = t.RowBits(i)
	}

	return Evaluation{
		ID:             uuid.New(),
		Equation:       src,
		Normalized:     res.Equation.String(),
		Inputs:         res.Equation.Inputs,
		Output:         res.Equation.Output,
		Rows:           rows,
		Outputs:        t.OutputBits(),
		Classification: string(res.Classification),
		CreatedAt:      time.Now().UTC(),
	}
}

// Table rebuilds the truth table from the stored bit strings.
func (e *Evaluation) Table() (*vm.TruthTable, error) {
	if len(e.Rows) != len(e.Outputs) {
		return nil, fmt.Errorf("evaluation %s: %d rows but %d outputs", e.ID, len(e.Rows), len(e.Outputs))
	}

	t := &vm.TruthTable{
		InputNames: e.Inputs,
		Inputs:     make([][]bool, len(e.Rows)),
		OutputName: e.Output,
		Outputs:    make([]bool, len(e.Outputs)),
	}
	for i, row := range e.Rows {
		if len(row) != len(e.Inputs) {
			return nil, fmt.Errorf("evaluation %s: row %d has %d bits, want %d", e.ID, i, len(row), len(e.Inputs))
		}
		bits, err := parseBits(row)
		if err != nil {
			return nil, fmt.Errorf("evaluation %s: row %d: %w", e.ID, i, err)
		}
		t.Inputs[i] = bits
	}

	outputs, err := parseBits(e.Outputs)
	if err != nil {
		return nil, fmt.Errorf("evaluation %s: outputs: %w", e.ID, err)
	}
	t.Outputs = outputs

	return t, nil
}

func parseBits(s string) ([]bool, error) {
	out := make([]bool, len(s))
	for i := range len(s) {
		switch s[i] {
		case '0':
		case '1':
			out[i] = true
		default:
			return nil, fmt.Errorf("invalid bit %q at %d", s[i], i)
		}
	}
	return out, nil
}
