package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DjordjeVuckovic/booltable/internal/compiler"
	"github.com/DjordjeVuckovic/booltable/internal/parser"
	"github.com/DjordjeVuckovic/booltable/internal/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, input string) *compiler.Program {
	t.Helper()
	eq, err := parser.Parse(input)
	require.NoError(t, err)
	return compiler.Compile(eq)
}

func table(t *testing.T, input string) *vm.TruthTable {
	t.Helper()
	return vm.Evaluate(compile(t, input))
}

func TestMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "output equals input",
			input: "A = A",
			expected: "| A | A |\n" +
				"|---|---|\n" +
				"| 0 | 0 |\n" +
				"| 1 | 1 |\n",
		},
		{
			name:  "wide names pad cells",
			input: "foo AND b = out",
			expected: "| foo | b | out |\n" +
				"|-----|---|-----|\n" +
				"| 0   | 0 | 0   |\n" +
				"| 0   | 1 | 0   |\n" +
				"| 1   | 0 | 0   |\n" +
				"| 1   | 1 | 1   |\n",
		},
		{
			name:  "no inputs",
			input: "NOT true = Z",
			expected: "| Z |\n" +
				"|---|\n" +
				"| 0 |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Markdown(table(t, tt.input)))
		})
	}
}

func TestWriteMarkdown_LineCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, table(t, "a XOR b XOR c = q")))

	lines := bytes.Count(buf.Bytes(), []byte("\n"))
	assert.Equal(t, 2+8, lines)
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("| 1 | 1 | 1 | 1 |\n")))
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, table(t, "A OR B = C")))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []any{"A", "B"}, decoded["input_names"])
	assert.Equal(t, "C", decoded["output_name"])
	assert.Equal(t, []any{false, true, true, true}, decoded["outputs"])
}

func TestWriteJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	require.NoError(t, WriteJSONFile(table(t, "A = A"), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"output_name": "A"`)
}

func TestWriteProgram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteProgram(&buf, compile(t, "NOT A AND true = Z")))

	expected := "   0  PUSH true\n" +
		"   1  LOAD 0\n" +
		"   2  AND\n" +
		"   3  NOT\n"
	assert.Equal(t, expected, buf.String())
}
