package token

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// spellings lists every fixed lexeme. Matching picks the longest one, and an identifier only
// wins when it is strictly longer than the best keyword match.
var spellings = []struct {
	text string
	kind Kind
}{
	{"NOT", NOT},
	{"!", NOT},
	{"AND", AND},
	{".", AND},
	{"OR", OR},
	{"+", OR},
	{"XOR", XOR},
	{"^", XOR},
	{"⊕", XOR},
	{"⊻", XOR},
	{"true", TRUE},
	{"1", TRUE},
	{"false", FALSE},
	{"0", FALSE},
	{"(", LPAREN},
	{")", RPAREN},
	{"=", EQUALS},
	{"->", EQUALS},
}

// Lexer produces tokens on demand from a single source string. It emits exactly one EOF token
// once the input is exhausted and nothing after that; a Lexer cannot be restarted.
type Lexer struct {
	input string
	pos   int
	done  bool
}

// NewLexer creates a Lexer over the given input string.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token. The boolean is false once the EOF token has been handed out.
func (l *Lexer) Next() (Token, bool) {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			if l.done {
				return Token{}, false
			}
			l.done = true
			end := len(l.input)
			return Token{Kind: EOF, Span: Span{Start: end, End: end}}, true
		}

		tok := l.scan()
		if tok.Kind == ERROR {
			continue
		}
		return tok, true
	}
}

// All yields the remaining tokens, EOF included.
func (l *Lexer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok, ok := l.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// Tokenize lexes the whole input with a fresh Lexer.
func Tokenize(input string) []Token {
	return slices.Collect(NewLexer(input).All())
}

func (l *Lexer) scan() Token {
	start := l.pos
	rest := l.input[start:]

	kind, size := ERROR, 0
	for _, sp := range spellings {
		if len(sp.text) > size && strings.HasPrefix(rest, sp.text) {
			kind, size = sp.kind, len(sp.text)
		}
	}

	if n := identLen(rest); n > size {
		kind, size = VAR, n
	}

	if size == 0 {
		_, size = utf8.DecodeRuneInString(rest)
	}

	l.pos += size
	return Token{Kind: kind, Span: Span{Start: start, End: l.pos}}
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
}

func identLen(s string) int {
	if len(s) == 0 || !isIdentStart(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && (isIdentStart(s[n]) || isDigit(s[n])) {
		n++
	}
	return n
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\f'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
