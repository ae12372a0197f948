package parser

import (
	"github.com/tarn-lang/tarn/internal/ast"
	"github.com/tarn-lang/tarn/internal/lexer"
	"github.com/tarn-lang/tarn/internal/span"
)

// Parser implements recursive descent with precedence climbing over the
// lexer's token stream. Invariants:
//   - The token slice always ends with the lexer's EOF token; advance clamps
//     the cursor on the last index, so peeking past the end idempotently
//     yields EOF rather than panicking.
//   - The parser fails fast: the first syntactic error aborts the parse and
//     is returned to the caller as a single *ParseError. Multi-error
//     recovery is intentionally not attempted.
//   - Every node span is composed with span.Merge from the spans of the
//     node's children and the delimiter tokens the node owns, so spans grow
//     monotonically outward.
type Parser struct {
	tokens []span.Spanned[lexer.Token]
	pos    int
}

// New returns a parser over the given tokens. The slice is expected to come
// from lexer.Lex and therefore end with an EOF token; a missing sentinel is
// repaired so the cursor arithmetic stays total.
func New(tokens []span.Spanned[lexer.Token]) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Inner.Type != lexer.EOF {
		var end span.Span
		if n > 0 {
			last := tokens[n-1].Span
			end = span.New(last.Src, last.End, last.End)
		}
		tokens = append(tokens, span.NewSpanned(lexer.Token{Type: lexer.EOF}, end))
	}
	return &Parser{tokens: tokens}
}

// ParseExpr parses a single expression covering the whole input.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Inner.Type != lexer.EOF {
		return nil, unexpectedToken("end of input", tok)
	}
	return expr, nil
}

// ParseProgram parses a sequence of top-level declarations.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	var decls []ast.Decl
	total := p.peek().Span

	for p.peek().Inner.Type != lexer.EOF {
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
		total = total.Merge(decl.Span())
	}

	return ast.NewProgram(decls, total), nil
}

// peek returns the current token without consuming it.
func (p *Parser) peek() span.Spanned[lexer.Token] {
	return p.tokens[p.pos]
}

// advance returns the current token and moves the cursor forward, clamping
// on the trailing EOF so repeated calls at end of input stay put.
func (p *Parser) advance() span.Spanned[lexer.Token] {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// at reports whether the current token has the given type.
func (p *Parser) at(tt lexer.TokenType) bool {
	return p.peek().Inner.Type == tt
}

// expect consumes the current token if it has the given type and fails with
// an UnexpectedToken error otherwise.
func (p *Parser) expect(tt lexer.TokenType) (span.Spanned[lexer.Token], error) {
	if p.at(tt) {
		return p.advance(), nil
	}
	return span.Spanned[lexer.Token]{}, unexpectedToken(tt.Describe(), p.peek())
}
