package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/DjordjeVuckovic/booltable/internal/token"
)

// SyntaxError is the only recoverable failure of the pipeline. Implementations carry the
// offending token rather than a rendered message; use Render to produce a diagnostic.
type SyntaxError interface {
	error
	Offending() token.Token
	Expectation() string
}

// UnexpectedTokenError is returned when the lookahead matches no grammar alternative.
type UnexpectedTokenError struct {
	Expected string
	Got      token.Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token: expected %s, got %s at %s", e.Expected, Describe(e.Got), e.Got.Span)
}

func (e *UnexpectedTokenError) Offending() token.Token { return e.Got }
func (e *UnexpectedTokenError) Expectation() string    { return e.Expected }

// UnexpectedEOFError is returned when a token is required after the token stream has
// terminated, i.e. the EOF sentinel was already consumed. Token is a synthetic EOF token.
type UnexpectedEOFError struct {
	Expected string
	Token    token.Token
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("unexpected end of input: expected %s at %s", e.Expected, e.Token.Span)
}

func (e *UnexpectedEOFError) Offending() token.Token { return e.Token }
func (e *UnexpectedEOFError) Expectation() string    { return e.Expected }

// Render formats err against the source it came from, underlining the offending span.
func Render(err SyntaxError, input string) string {
	line := strings.TrimRight(input, "\r\n")
	span := err.Offending().Span

	start := min(span.Start, len(line))
	end := min(max(span.End, start), len(line))
	col := utf8.RuneCountInString(line[:start])
	width := max(utf8.RuneCountInString(line[start:end]), 1)

	var b strings.Builder
	fmt.Fprintf(&b, "syntax error: expected %s, got %s at %s\n", err.Expectation(), Describe(err.Offending()), span)
	fmt.Fprintf(&b, "  %s\n", line)
	fmt.Fprintf(&b, "  %s%s\n", strings.Repeat(" ", col), strings.Repeat("^", width))
	return b.String()
}

// Describe names a token the way diagnostics print it.
func Describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of input"
	}
	return tok.Kind.String()
}
