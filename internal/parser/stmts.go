package parser

import (
	"github.com/tarn-lang/tarn/internal/ast"
	"github.com/tarn-lang/tarn/internal/lexer"
)

func isStmtStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.VAL, lexer.WHILE, lexer.IDENT:
		return true
	default:
		return false
	}
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.peek().Inner.Type {
	case lexer.VAL:
		return p.parseValBind()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.IDENT:
		return p.parseAssign()
	default:
		return nil, unexpectedToken("a statement", p.peek())
	}
}

// parseValBind parses `val name (: type)? = expr`. It is used both for
// statements inside `let` and for top-level declarations.
func (p *Parser) parseValBind() (*ast.ValBind, error) {
	valTok, err := p.expect(lexer.VAL)
	if err != nil {
		return nil, err
	}

	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	name := ast.NewIdent(nameTok.Inner.Ident, nameTok.Span)

	var typ *ast.TypeExpr
	if p.at(lexer.COLON) {
		p.advance()
		typ, err = p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.EQ); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewValBind(name, typ, value, valTok.Span.Merge(value.Span())), nil
}

// parseAssign parses `target := expr`. Only plain identifiers are valid
// assignment targets.
func (p *Parser) parseAssign() (ast.Stmt, error) {
	nameTok := p.advance()
	target := ast.NewIdent(nameTok.Inner.Ident, nameTok.Span)

	if _, err := p.expect(lexer.COLON_EQ); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewAssignStmt(target, value, nameTok.Span.Merge(value.Span())), nil
}

// parseWhile parses `while cond do stmt`.
func (p *Parser) parseWhile() (ast.Stmt, error) {
	whileTok := p.advance()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.DO); err != nil {
		return nil, err
	}

	body, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	return ast.NewWhileStmt(cond, body, whileTok.Span.Merge(body.Span())), nil
}
