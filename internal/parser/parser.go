package parser

import (
	"github.com/DjordjeVuckovic/booltable/internal/token"
)

const (
	expectedTerm     = "boolean expression"
	expectedOperator = "AND, OR, XOR or )"
	expectedEnd      = "end of input"
)

// Parser turns one equation into an Equation with a single token of lookahead.
// A Parser is single use: after ParseEquation returns, build a new one for new input.
type Parser struct {
	input   string
	lexer   *token.Lexer
	symbols *SymbolTable

	ahead    token.Token
	aheadOK  bool
	hasAhead bool
}

func New(input string) *Parser {
	return &Parser{
		input:   input,
		lexer:   token.NewLexer(input),
		symbols: NewSymbolTable(),
	}
}

// Parse is shorthand for New(input).ParseEquation().
func Parse(input string) (*Equation, error) {
	return New(input).ParseEquation()
}

// ParseEquation parses `expr = VAR`. Any returned error is a SyntaxError.
func (p *Parser) ParseEquation() (*Equation, error) {
	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQUALS, token.EQUALS.String()); err != nil {
		return nil, err
	}
	out, err := p.expect(token.VAR, token.VAR.String())
	if err != nil {
		return nil, err
	}

	// Inputs are the expression variables only; the output is interned afterwards.
	inputs := p.symbols.Names()
	output := out.Text(p.input)
	p.symbols.Intern(output)

	if _, err := p.expect(token.EOF, expectedEnd); err != nil {
		return nil, err
	}

	return &Equation{
		Inputs: inputs,
		LHS:    lhs,
		Output: output,
	}, nil
}

// parseExpr is right-recursive: the right operand of a binary operator is the entire rest
// of the expression, so all operators share one precedence level and associate right.
func (p *Parser) parseExpr() (Expr, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	tok := p.peek()
	switch {
	case tok.Kind.IsBinary():
		p.advance()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return NewBinOp(binaryOpFrom(tok.Kind), lhs, rhs), nil
	case tok.Kind == token.RPAREN, tok.Kind == token.EQUALS, tok.Kind == token.EOF:
		return lhs, nil
	default:
		return nil, p.fail(expectedOperator)
	}
}

func (p *Parser) parseUnary() (Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.TRUE, token.FALSE:
		p.advance()
		return NewBool(tok.Kind == token.TRUE, tok.Span), nil
	case token.VAR:
		p.advance()
		return NewVar(p.symbols.Intern(tok.Text(p.input)), tok.Span), nil
	case token.NOT:
		p.advance()
		operand, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return NewNot(operand, tok.Span.Join(operand.Span())), nil
	case token.LPAREN:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		rp, err := p.expect(token.RPAREN, token.RPAREN.String())
		if err != nil {
			return nil, err
		}
		inner.base().span = tok.Span.Join(rp.Span)
		return inner, nil
	default:
		return nil, p.fail(expectedTerm)
	}
}

// peek returns the lookahead without consuming it. Once the lexer has terminated it keeps
// returning a synthetic EOF token.
func (p *Parser) peek() token.Token {
	if !p.hasAhead {
		tok, ok := p.lexer.Next()
		if !ok {
			end := len(p.input)
			tok = token.Token{Kind: token.EOF, Span: token.Span{Start: end, End: end}}
		}
		p.ahead, p.aheadOK, p.hasAhead = tok, ok, true
	}
	return p.ahead
}

func (p *Parser) advance() {
	p.peek()
	p.hasAhead = false
}

func (p *Parser) next(expected string) (token.Token, error) {
	tok := p.peek()
	ok := p.aheadOK
	p.hasAhead = false
	if !ok {
		return tok, &UnexpectedEOFError{Expected: expected, Token: tok}
	}
	return tok, nil
}

func (p *Parser) expect(kind token.Kind, expected string) (token.Token, error) {
	tok, err := p.next(expected)
	if err != nil {
		return tok, err
	}
	if tok.Kind != kind {
		return tok, unexpected(expected, tok)
	}
	return tok, nil
}

// fail consumes the offending lookahead and reports it.
func (p *Parser) fail(expected string) error {
	tok, err := p.next(expected)
	if err != nil {
		return err
	}
	return unexpected(expected, tok)
}

// unexpected reports a wrong lookahead. The EOF sentinel is an ordinary token here;
// UnexpectedEOFError is only for a stream that has already terminated.
func unexpected(expected string, tok token.Token) SyntaxError {
	return &UnexpectedTokenError{Expected: expected, Got: tok}
}
