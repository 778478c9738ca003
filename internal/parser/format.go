package parser

import (
	"fmt"
	"strings"
)

// Format renders e fully parenthesised, resolving variable indices through names.
func Format(e Expr, names []string) string {
	var b strings.Builder
	writeExpr(&b, e, names)
	return b.String()
}

func writeExpr(b *strings.Builder, e Expr, names []string) {
	switch n := e.(type) {
	case *Bool:
		if n.Value {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *Var:
		if n.Index >= 0 && n.Index < len(names) {
			b.WriteString(names[n.Index])
		} else {
			fmt.Fprintf(b, "$%d", n.Index)
		}
	case *Not:
		b.WriteString("(NOT ")
		writeExpr(b, n.Operand, names)
		b.WriteString(")")
	case *BinOp:
		b.WriteString("(")
		writeExpr(b, n.Left, names)
		fmt.Fprintf(b, " %s ", n.Op)
		writeExpr(b, n.Right, names)
		b.WriteString(")")
	default:
		panic(fmt.Sprintf("parser: unknown expression %T", e))
	}
}
