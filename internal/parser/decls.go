package parser

import (
	"github.com/tarn-lang/tarn/internal/ast"
	"github.com/tarn-lang/tarn/internal/interner"
	"github.com/tarn-lang/tarn/internal/lexer"
)

func (p *Parser) parseDecl() (ast.Decl, error) {
	switch p.peek().Inner.Type {
	case lexer.VAL:
		return p.parseValBind()
	case lexer.FUN:
		return p.parseFuncDecl()
	default:
		return nil, unexpectedToken("a declaration", p.peek())
	}
}

// parseFuncDecl parses `fun name param* (: type)? = expr`.
func (p *Parser) parseFuncDecl() (ast.Decl, error) {
	funTok := p.advance()

	nameTok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	name := ast.NewIdent(nameTok.Inner.Ident, nameTok.Span)

	var params []ast.Param
	for isParamStart(p.peek().Inner.Type) {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}

	var returnType *ast.TypeExpr
	if p.at(lexer.COLON) {
		p.advance()
		returnType, err = p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(lexer.EQ); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewFuncDecl(name, params, returnType, body, funTok.Span.Merge(body.Span())), nil
}

func isParamStart(tt lexer.TokenType) bool {
	return tt == lexer.IDENT || tt == lexer.LPAREN
}

var wildcardSym = interner.Intern("_")

// parseParam parses `name`, `_` or `(param : type)`.
func (p *Parser) parseParam() (ast.Param, error) {
	tok := p.peek()

	switch tok.Inner.Type {
	case lexer.IDENT:
		p.advance()
		if tok.Inner.Ident == wildcardSym {
			return ast.NewWildcardParam(tok.Span), nil
		}
		return ast.NewIdentParam(ast.NewIdent(tok.Inner.Ident, tok.Span), tok.Span), nil

	case lexer.LPAREN:
		open := p.advance()

		inner, err := p.parseParam()
		if err != nil {
			return nil, err
		}

		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}

		typ, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}

		if !p.at(lexer.RPAREN) {
			return nil, expectedDelimiter("(", open.Span, ")", p.peek())
		}
		closeTok := p.advance()

		return ast.NewTypedParam(inner, typ, open.Span.Merge(closeTok.Span)), nil

	default:
		return nil, unexpectedToken("a parameter", tok)
	}
}

// parseTypeExpr maps a type keyword to its type. Anything else in a type
// position is an ExpectedType error.
func (p *Parser) parseTypeExpr() (*ast.TypeExpr, error) {
	tok := p.peek()

	var typ ast.Type
	switch tok.Inner.Type {
	case lexer.KW_INT:
		typ = ast.TypeInt
	case lexer.KW_BOOL:
		typ = ast.TypeBool
	case lexer.KW_REAL:
		typ = ast.TypeReal
	case lexer.KW_CHAR:
		typ = ast.TypeChar
	case lexer.KW_UNIT:
		typ = ast.TypeUnit
	default:
		return nil, expectedType(tok)
	}

	p.advance()
	return ast.NewTypeExpr(typ, tok.Span), nil
}
