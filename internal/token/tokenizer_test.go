package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Kind
	}{
		{
			name:     "empty",
			input:    "",
			expected: []Kind{EOF},
		},
		{
			name:     "keywords",
			input:    "NOT AND OR XOR true false",
			expected: []Kind{NOT, AND, OR, XOR, TRUE, FALSE, EOF},
		},
		{
			name:     "symbolic aliases",
			input:    "! . + ^ ⊕ ⊻ 1 0 ( ) = ->",
			expected: []Kind{NOT, AND, OR, XOR, XOR, XOR, TRUE, FALSE, LPAREN, RPAREN, EQUALS, EQUALS, EOF},
		},
		{
			name:     "equation",
			input:    "A AND (B OR C) = Z",
			expected: []Kind{VAR, AND, LPAREN, VAR, OR, VAR, RPAREN, EQUALS, VAR, EOF},
		},
		{
			name:     "identifier longer than keyword",
			input:    "ANDY NOTx true1 ORacle",
			expected: []Kind{VAR, VAR, VAR, VAR, EOF},
		},
		{
			name:     "keywords are case sensitive",
			input:    "and True",
			expected: []Kind{VAR, VAR, EOF},
		},
		{
			name:     "digits never start a variable",
			input:    "10a",
			expected: []Kind{TRUE, FALSE, VAR, EOF},
		},
		{
			name:     "underscores and digits in names",
			input:    "_x1 a_b2",
			expected: []Kind{VAR, VAR, EOF},
		},
		{
			name:     "unrecognized characters are dropped",
			input:    "A # OR $ B - = C",
			expected: []Kind{VAR, OR, VAR, EQUALS, VAR, EOF},
		},
		{
			name:     "unrecognized multibyte rune is dropped",
			input:    "A ∧ B",
			expected: []Kind{VAR, VAR, EOF},
		},
		{
			name:     "all whitespace kinds",
			input:    " \tA\r\n\f",
			expected: []Kind{VAR, EOF},
		},
		{
			name:     "no separators needed",
			input:    "!(A.B)+C->Z",
			expected: []Kind{NOT, LPAREN, VAR, AND, VAR, RPAREN, OR, VAR, EQUALS, VAR, EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, kinds(Tokenize(tt.input)))
		})
	}
}

func TestTokenize_Spans(t *testing.T) {
	input := "ab ⊕ c -> z"
	tokens := Tokenize(input)
	require.Len(t, tokens, 6)

	assert.Equal(t, Span{Start: 0, End: 2}, tokens[0].Span)
	assert.Equal(t, "ab", tokens[0].Text(input))
	assert.Equal(t, "⊕", tokens[1].Text(input))
	assert.Equal(t, "c", tokens[2].Text(input))
	assert.Equal(t, "->", tokens[3].Text(input))
	assert.Equal(t, "z", tokens[4].Text(input))
	assert.Equal(t, Span{Start: len(input), End: len(input)}, tokens[5].Span)
}

func TestLexer_TerminatesAfterEOF(t *testing.T) {
	l := NewLexer("A")

	tok, ok := l.Next()
	require.True(t, ok)
	assert.Equal(t, VAR, tok.Kind)

	tok, ok = l.Next()
	require.True(t, ok)
	assert.Equal(t, EOF, tok.Kind)
	assert.Equal(t, Span{Start: 1, End: 1}, tok.Span)

	for range 3 {
		_, ok = l.Next()
		assert.False(t, ok)
	}
	assert.Empty(t, kinds(collect(l)))
}

func TestLexer_AllStopsEarly(t *testing.T) {
	l := NewLexer("A B C")
	for tok := range l.All() {
		assert.Equal(t, VAR, tok.Kind)
		break
	}

	rest := collect(l)
	assert.Equal(t, []Kind{VAR, VAR, EOF}, kinds(rest))
}

func TestSpan_Join(t *testing.T) {
	a := Span{Start: 4, End: 6}
	b := Span{Start: 1, End: 2}
	assert.Equal(t, Span{Start: 1, End: 6}, a.Join(b))
	assert.Equal(t, "1..6", a.Join(b).String())
}

func collect(l *Lexer) []Token {
	var out []Token
	for tok := range l.All() {
		out = append(out, tok)
	}
	return out
}
