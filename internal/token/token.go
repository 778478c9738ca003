package token

import "fmt"

// Kind identifies the category of a lexed token.
type Kind int

const (
	EOF Kind = iota // sentinel, produced once after the input is exhausted
	NOT
	AND
	OR
	XOR
	TRUE
	FALSE
	VAR
	LPAREN
	RPAREN
	EQUALS

	// ERROR marks unrecognized input. The lexer drops it like whitespace.
	ERROR
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case NOT:
		return "NOT"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case XOR:
		return "XOR"
	case TRUE:
		return "True"
	case FALSE:
		return "False"
	case VAR:
		return "Variable"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case EQUALS:
		return "="
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// IsBinary reports whether the kind is one of the equal-precedence binary operators.
func (k Kind) IsBinary() bool {
	return k == AND || k == OR || k == XOR
}

// Span is a half-open byte range into the source text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Join returns the smallest span covering both s and other.
func (s Span) Join(other Span) Span {
	return Span{Start: min(s.Start, other.Start), End: max(s.End, other.End)}
}

// Token represents a lexical token with its kind and source position.
type Token struct {
	Kind Kind
	Span Span
}

// Text slices the token's lexeme out of the source it was produced from.
func (t Token) Text(input string) string {
	return input[t.Span.Start:t.Span.End]
}

func (t Token) String() string {
	return fmt.Sprintf("%s@%s", t.Kind, t.Span)
}
