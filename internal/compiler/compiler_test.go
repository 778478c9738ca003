package compiler

import (
	"encoding/json"
	"testing"

	"github.com/DjordjeVuckovic/booltable/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listing(code []Instruction) []string {
	out := make([]string, len(code))
	for i, in := range code {
		out[i] = in.String()
	}
	return out
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "variable",
			input:    "A = A",
			expected: []string{"LOAD 0"},
		},
		{
			name:     "literal negation",
			input:    "NOT true = Z",
			expected: []string{"PUSH true", "NOT"},
		},
		{
			name:     "right operand first",
			input:    "A AND B = Z",
			expected: []string{"LOAD 1", "LOAD 0", "AND"},
		},
		{
			name:     "nested right associative",
			input:    "A AND B OR C = Z",
			expected: []string{"LOAD 2", "LOAD 1", "OR", "LOAD 0", "AND"},
		},
		{
			name:     "group on the left",
			input:    "(A XOR false) OR B = Z",
			expected: []string{"LOAD 1", "PUSH false", "LOAD 0", "XOR", "OR"},
		},
		{
			name:     "not over binary",
			input:    "!A + B = Z",
			expected: []string{"LOAD 1", "LOAD 0", "OR", "NOT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eq, err := parser.Parse(tt.input)
			require.NoError(t, err)

			prog := Compile(eq)
			assert.Equal(t, tt.expected, listing(prog.Code))
			assert.Equal(t, eq.Inputs, prog.Inputs)
			assert.Equal(t, eq.Output, prog.Output)
		})
	}
}

func TestCompileWithOrder_LeftFirst(t *testing.T) {
	eq, err := parser.Parse("A AND B OR C = Z")
	require.NoError(t, err)

	prog := CompileWithOrder(eq, LeftFirst)
	assert.Equal(t, []string{"LOAD 0", "LOAD 1", "LOAD 2", "OR", "AND"}, listing(prog.Code))
}

func TestProgram_MaxStack(t *testing.T) {
	tests := []struct {
		input string
		depth int
	}{
		{input: "A = Z", depth: 1},
		{input: "NOT A = Z", depth: 1},
		{input: "A AND B = Z", depth: 2},
		{input: "A AND B OR C XOR D = Z", depth: 2},
		{input: "(((A AND B) OR C) XOR D) = Z", depth: 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			eq, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.depth, Compile(eq).MaxStack())
		})
	}
}

func TestInstruction_JSONName(t *testing.T) {
	text, err := Xor.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "XOR", string(text))
	assert.Equal(t, "UNKNOWN", Op(42).String())
}

func TestProgram_JSONRoundTrip(t *testing.T) {
	eq, err := parser.Parse("NOT A XOR true = Z")
	require.NoError(t, err)
	prog := Compile(eq)

	data, err := json.Marshal(prog)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"op":"XOR"`)

	var decoded Program
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *prog, decoded)
}

func TestOp_UnmarshalText(t *testing.T) {
	tests := []struct {
		text    string
		want    Op
		wantErr bool
	}{
		{text: "PUSH", want: Push},
		{text: "LOAD", want: Load},
		{text: "NOT", want: Not},
		{text: "AND", want: And},
		{text: "OR", want: Or},
		{text: "XOR", want: Xor},
		{text: "UNKNOWN", wantErr: true},
		{text: "load", wantErr: true},
		{text: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var op Op
			err := op.UnmarshalText([]byte(tt.text))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}
}
