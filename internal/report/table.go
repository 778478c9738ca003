package report

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/booltable/internal/vm"
	"github.com/samber/lo"
)

// Markdown renders t as a markdown table terminated by a newline.
func Markdown(t *vm.TruthTable) string {
	var b strings.Builder
	_ = WriteMarkdown(&b, t)
	return b.String()
}

// WriteMarkdown writes the header row, a dash separator and one row per assignment. Every
// column is as wide as its name (at least one character) and cells are left aligned.
func WriteMarkdown(w io.Writer, t *vm.TruthTable) error {
	bw := bufio.NewWriter(w)

	names := append(slices.Clone(t.InputNames), t.OutputName)
	widths := lo.Map(names, func(n string, _ int) int { return max(utf8.RuneCountInString(n), 1) })

	writeRow(bw, names, widths)
	bw.WriteString("|" + strings.Join(lo.Map(widths, func(width int, _ int) string {
		return strings.Repeat("-", width+2)
	}), "|") + "|\n")

	cells := make([]string, len(names))
	for r := range t.Len() {
		for j, v := range t.Inputs[r] {
			cells[j] = bit(v)
		}
		cells[len(cells)-1] = bit(t.Outputs[r])
		writeRow(bw, cells, widths)
	}

	return bw.Flush()
}

func writeRow(w *bufio.Writer, cells []string, widths []int) {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = c + strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c))
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
