package domain

import (
	"testing"

	"github.com/DjordjeVuckovic/booltable/internal/pipeline"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvaluation(t *testing.T) {
	src := "A AND B OR C = Z"
	res, err := pipeline.Run(src, pipeline.Options{})
	require.NoError(t, err)

	ev := NewEvaluation(src, res)
	assert.NotEqual(t, uuid.Nil, ev.ID)
	assert.Equal(t, src, ev.Equation)
	assert.Equal(t, "(A AND (B OR C)) = Z", ev.Normalized)
	assert.Equal(t, []string{"A", "B", "C"}, ev.Inputs)
	assert.Equal(t, "Z", ev.Output)
	assert.Equal(t, []string{"000", "001", "010", "011", "100", "101", "110", "111"}, ev.Rows)
	assert.Equal(t, "00000111", ev.Outputs)
	assert.Equal(t, "contingent", ev.Classification)
	assert.False(t, ev.CreatedAt.IsZero())
}

func TestEvaluation_TableRoundTrip(t *testing.T) {
	res, err := pipeline.Run("x XOR y = q", pipeline.Options{})
	require.NoError(t, err)

	ev := NewEvaluation("x XOR y = q", res)
	table, err := ev.Table()
	require.NoError(t, err)
	assert.Equal(t, res.Table, table)
}

func TestEvaluation_TableRejectsCorruptBits(t *testing.T) {
	tests := []struct {
		name string
		ev   Evaluation
	}{
		{
			name: "row count mismatch",
			ev:   Evaluation{Inputs: []string{"A"}, Rows: []string{"0", "1"}, Outputs: "1"},
		},
		{
			name: "row width mismatch",
			ev:   Evaluation{Inputs: []string{"A"}, Rows: []string{"00", "1"}, Outputs: "01"},
		},
		{
			name: "invalid bit",
			ev:   Evaluation{Inputs: []string{"A"}, Rows: []string{"0", "1"}, Outputs: "0x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.ev.Table()
			assert.Error(t, err)
		})
	}
}
