package parser

import (
	"github.com/tarn-lang/tarn/internal/ast"
	"github.com/tarn-lang/tarn/internal/lexer"
	"github.com/tarn-lang/tarn/internal/span"
)

// Binary operator tables, one per precedence level (loosest to tightest).
// Comparison operators are non-associative in intent; the parser accepts
// them left-associatively and leaves rejecting chains like `a < b < c` to
// the semantic pass.
var (
	orOps       = map[lexer.TokenType]ast.BinaryOp{lexer.OR: ast.OpOr}
	andOps      = map[lexer.TokenType]ast.BinaryOp{lexer.AND: ast.OpAnd}
	compareOps  = map[lexer.TokenType]ast.BinaryOp{
		lexer.EQ:     ast.OpEq,
		lexer.NOT_EQ: ast.OpNotEq,
		lexer.LT:     ast.OpLess,
		lexer.LE:     ast.OpLessEq,
		lexer.GT:     ast.OpGreater,
		lexer.GE:     ast.OpGreaterEq,
	}
	additiveOps = map[lexer.TokenType]ast.BinaryOp{lexer.MINUS: ast.OpSub}
	multipOps   = map[lexer.TokenType]ast.BinaryOp{
		lexer.STAR: ast.OpMul,
		lexer.DIV:  ast.OpDiv,
		lexer.MOD:  ast.OpRem,
	}
)

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseOr()
}

// parseLeftAssoc implements one precedence-climb level: it parses an operand
// with next, then folds any number of `op operand` pairs into a left-leaning
// tree.
func (p *Parser) parseLeftAssoc(ops map[lexer.TokenType]ast.BinaryOp, next func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := ops[p.peek().Inner.Type]
		if !ok {
			return left, nil
		}
		opTok := p.advance()

		right, err := next()
		if err != nil {
			return nil, err
		}

		left = ast.NewBinaryExpr(op, opTok.Span, left, right, left.Span().Merge(right.Span()))
	}
}

func (p *Parser) parseOr() (ast.Expr, error) {
	return p.parseLeftAssoc(orOps, p.parseAnd)
}

func (p *Parser) parseAnd() (ast.Expr, error) {
	return p.parseLeftAssoc(andOps, p.parseCompare)
}

func (p *Parser) parseCompare() (ast.Expr, error) {
	return p.parseLeftAssoc(compareOps, p.parseAdditive)
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.parseLeftAssoc(additiveOps, p.parseMultip)
}

func (p *Parser) parseMultip() (ast.Expr, error) {
	return p.parseLeftAssoc(multipOps, p.parseUnary)
}

func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.peek().Inner.Type {
	case lexer.TILDE:
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(ast.OpNeg, opTok.Span, operand, opTok.Span.Merge(operand.Span())), nil

	case lexer.NOT:
		opTok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(ast.OpNot, opTok.Span, operand, opTok.Span.Merge(operand.Span())), nil

	default:
		return p.parseBorrow()
	}
}

func (p *Parser) parseBorrow() (ast.Expr, error) {
	if !p.at(lexer.AMP) {
		return p.parsePrimary()
	}

	ampTok := p.advance()
	mutable := false
	if p.at(lexer.MUT) {
		p.advance()
		mutable = true
	}

	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return ast.NewBorrowExpr(mutable, operand, ampTok.Span.Merge(operand.Span())), nil
}

// spanSetter is satisfied by nodes that expose SetSpan. parseParen uses it to
// widen the inner expression's span to the enclosing parentheses instead of
// wrapping the node in a synthetic AST type.
type spanSetter interface {
	SetSpan(span.Span)
}

func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Inner.Type {
	case lexer.INT:
		p.advance()
		return ast.NewIntLit(tok.Inner.Int, tok.Span), nil

	case lexer.REAL:
		p.advance()
		return ast.NewRealLit(tok.Inner.Real, tok.Span), nil

	case lexer.CHAR:
		p.advance()
		return ast.NewCharLit(tok.Inner.Char, tok.Span), nil

	case lexer.TRUE, lexer.FALSE:
		p.advance()
		return ast.NewBoolLit(tok.Inner.Type == lexer.TRUE, tok.Span), nil

	case lexer.IDENT:
		p.advance()
		return ast.NewIdent(tok.Inner.Ident, tok.Span), nil

	case lexer.LPAREN:
		return p.parseParen()

	case lexer.LET:
		return p.parseLetExpr()

	case lexer.IF:
		return p.parseIfExpr()

	case lexer.EOF:
		return nil, unexpectedEOF(tok.Span)

	default:
		return nil, expectedPrimary(tok)
	}
}

// parseParen parses `()` (the unit literal) or `(expr)`. A parenthesized
// expression keeps its own node; only its span is widened to the outer
// parentheses.
func (p *Parser) parseParen() (ast.Expr, error) {
	open := p.advance()

	if p.at(lexer.RPAREN) {
		closeTok := p.advance()
		return ast.NewUnitLit(open.Span.Merge(closeTok.Span)), nil
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if !p.at(lexer.RPAREN) {
		return nil, expectedDelimiter("(", open.Span, ")", p.peek())
	}
	closeTok := p.advance()

	if setter, ok := expr.(spanSetter); ok {
		setter.SetSpan(open.Span.Merge(closeTok.Span))
	}
	return expr, nil
}

// parseLetExpr parses `let stmt* in expr end`. The node span joins the `let`
// keyword and the closing `end`.
func (p *Parser) parseLetExpr() (ast.Expr, error) {
	letTok := p.advance()

	var stmts []ast.Stmt
	for isStmtStart(p.peek().Inner.Type) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(lexer.IN); err != nil {
		return nil, err
	}

	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if !p.at(lexer.END) {
		return nil, expectedDelimiter("let", letTok.Span, "end", p.peek())
	}
	endTok := p.advance()

	return ast.NewLetExpr(stmts, body, letTok.Span.Merge(endTok.Span)), nil
}

// parseIfExpr parses `if cond then a else b`. All three arms are required;
// the node span joins the `if` keyword and the else arm.
func (p *Parser) parseIfExpr() (ast.Expr, error) {
	ifTok := p.advance()

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.THEN); err != nil {
		return nil, err
	}

	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(lexer.ELSE); err != nil {
		return nil, err
	}

	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return ast.NewIfExpr(cond, then, els, ifTok.Span.Merge(els.Span())), nil
}
