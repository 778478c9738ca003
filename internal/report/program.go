package report

import (
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/booltable/internal/compiler"
)

// WriteProgram lists the instructions of prog, one per line, prefixed with their offset.
func WriteProgram(w io.Writer, prog *compiler.Program) error {
	for pc, in := range prog.Code {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", pc, in); err != nil {
			return err
		}
	}
	return nil
}
