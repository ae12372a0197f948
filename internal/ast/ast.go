package ast

import (
	"github.com/tarn-lang/tarn/internal/interner"
	"github.com/tarn-lang/tarn/internal/span"
)

// Node represents any AST node with an associated source span.
type Node interface {
	Span() span.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Decl represents a top-level declaration.
type Decl interface {
	Node
	declNode()
}

// Param represents a function parameter pattern.
type Param interface {
	Node
	paramNode()
}

// Type is the closed set of Tarn types.
type Type int

const (
	TypeInt Type = iota
	TypeChar
	TypeBool
	TypeReal
	TypeUnit
)

// String renders the type with its source keyword; Unit renders as "()".
func (t Type) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeChar:
		return "char"
	case TypeBool:
		return "bool"
	case TypeReal:
		return "real"
	case TypeUnit:
		return "()"
	default:
		return "<invalid type>"
	}
}

// TypeExpr is a type annotation carrying the span of its keyword.
type TypeExpr struct {
	Type Type
	span span.Span
}

// Span returns the annotation span.
func (t *TypeExpr) Span() span.Span { return t.span }

// NewTypeExpr constructs a type annotation node.
func NewTypeExpr(typ Type, sp span.Span) *TypeExpr {
	return &TypeExpr{Type: typ, span: sp}
}

// BinaryOp is a binary operator. There is deliberately no Add: the canonical
// grammar binds no operator to `+`.
type BinaryOp int

const (
	OpSub BinaryOp = iota
	OpMul
	OpDiv
	OpRem
	OpEq
	OpNotEq
	OpLess
	OpLessEq
	OpGreater
	OpGreaterEq
	OpAnd
	OpOr
)

func (op BinaryOp) String() string {
	switch op {
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "div"
	case OpRem:
		return "mod"
	case OpEq:
		return "="
	case OpNotEq:
		return "<>"
	case OpLess:
		return "<"
	case OpLessEq:
		return "<="
	case OpGreater:
		return ">"
	case OpGreaterEq:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	default:
		return "<invalid op>"
	}
}

// UnaryOp is a unary prefix operator.
type UnaryOp int

const (
	OpNeg UnaryOp = iota // ~
	OpNot
)

func (op UnaryOp) String() string {
	if op == OpNeg {
		return "~"
	}
	return "not"
}

// Ident is an interned identifier occurrence.
type Ident struct {
	Sym  interner.Symbol
	span span.Span
}

// Span returns the identifier span.
func (i *Ident) Span() span.Span { return i.span }

// Name returns the identifier's original lexeme.
func (i *Ident) Name() string { return i.Sym.String() }

// NewIdent constructs an identifier node.
func NewIdent(sym interner.Symbol, sp span.Span) *Ident {
	return &Ident{Sym: sym, span: sp}
}

// exprNode marks Ident as an expression (a local variable reference).
func (*Ident) exprNode() {}

// IntLit is a non-negative integer literal; negation is a unary operator,
// never part of the literal.
type IntLit struct {
	Value uint64
	span  span.Span
}

func (l *IntLit) Span() span.Span { return l.span }
func (*IntLit) exprNode()         {}

func NewIntLit(value uint64, sp span.Span) *IntLit {
	return &IntLit{Value: value, span: sp}
}

// RealLit is a 64-bit IEEE-754 literal.
type RealLit struct {
	Value float64
	span  span.Span
}

func (l *RealLit) Span() span.Span { return l.span }
func (*RealLit) exprNode()         {}

func NewRealLit(value float64, sp span.Span) *RealLit {
	return &RealLit{Value: value, span: sp}
}

// CharLit is a single Unicode scalar literal.
type CharLit struct {
	Value rune
	span  span.Span
}

func (l *CharLit) Span() span.Span { return l.span }
func (*CharLit) exprNode()         {}

func NewCharLit(value rune, sp span.Span) *CharLit {
	return &CharLit{Value: value, span: sp}
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Value bool
	span  span.Span
}

func (l *BoolLit) Span() span.Span { return l.span }
func (*BoolLit) exprNode()         {}

func NewBoolLit(value bool, sp span.Span) *BoolLit {
	return &BoolLit{Value: value, span: sp}
}

// UnitLit is the unit literal `()`. Its span covers both parentheses.
type UnitLit struct {
	span span.Span
}

func (l *UnitLit) Span() span.Span { return l.span }
func (*UnitLit) exprNode()         {}

func NewUnitLit(sp span.Span) *UnitLit {
	return &UnitLit{span: sp}
}

// UnaryExpr is `~x` or `not x`. OpSpan covers the operator token alone.
type UnaryExpr struct {
	Op      UnaryOp
	OpSpan  span.Span
	Operand Expr
	span    span.Span
}

func (e *UnaryExpr) Span() span.Span { return e.span }
func (*UnaryExpr) exprNode()         {}

func NewUnaryExpr(op UnaryOp, opSpan span.Span, operand Expr, sp span.Span) *UnaryExpr {
	return &UnaryExpr{Op: op, OpSpan: opSpan, Operand: operand, span: sp}
}

// BorrowExpr is `&x` or `& mut x`.
type BorrowExpr struct {
	Mutable bool
	Operand Expr
	span    span.Span
}

func (e *BorrowExpr) Span() span.Span { return e.span }
func (*BorrowExpr) exprNode()         {}

func NewBorrowExpr(mutable bool, operand Expr, sp span.Span) *BorrowExpr {
	return &BorrowExpr{Mutable: mutable, Operand: operand, span: sp}
}

// BinaryExpr is a left-associative binary operation. OpSpan covers the
// operator token alone.
type BinaryExpr struct {
	Op     BinaryOp
	OpSpan span.Span
	Left   Expr
	Right  Expr
	span   span.Span
}

func (e *BinaryExpr) Span() span.Span { return e.span }
func (*BinaryExpr) exprNode()         {}

func NewBinaryExpr(op BinaryOp, opSpan span.Span, left, right Expr, sp span.Span) *BinaryExpr {
	return &BinaryExpr{Op: op, OpSpan: opSpan, Left: left, Right: right, span: sp}
}

// LetExpr is `let stmt* in expr end`. Its span joins the `let` keyword and
// the closing `end`.
type LetExpr struct {
	Stmts []Stmt
	Body  Expr
	span  span.Span
}

func (e *LetExpr) Span() span.Span { return e.span }
func (*LetExpr) exprNode()         {}

func NewLetExpr(stmts []Stmt, body Expr, sp span.Span) *LetExpr {
	return &LetExpr{Stmts: stmts, Body: body, span: sp}
}

// IfExpr is `if cond then a else b`.
type IfExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	span span.Span
}

func (e *IfExpr) Span() span.Span { return e.span }
func (*IfExpr) exprNode()         {}

func NewIfExpr(cond, then, els Expr, sp span.Span) *IfExpr {
	return &IfExpr{Cond: cond, Then: then, Else: els, span: sp}
}

// ValBind is a `val name (: type)? = expr` binding. It serves both as a
// statement inside `let` and as a top-level declaration.
type ValBind struct {
	Name  *Ident
	Type  *TypeExpr // nil when the type is inferred
	Value Expr
	span  span.Span
}

func (b *ValBind) Span() span.Span { return b.span }
func (*ValBind) stmtNode()         {}
func (*ValBind) declNode()         {}

func NewValBind(name *Ident, typ *TypeExpr, value Expr, sp span.Span) *ValBind {
	return &ValBind{Name: name, Type: typ, Value: value, span: sp}
}

// AssignStmt is `target := expr`.
type AssignStmt struct {
	Target *Ident
	Value  Expr
	span   span.Span
}

func (s *AssignStmt) Span() span.Span { return s.span }
func (*AssignStmt) stmtNode()         {}

func NewAssignStmt(target *Ident, value Expr, sp span.Span) *AssignStmt {
	return &AssignStmt{Target: target, Value: value, span: sp}
}

// WhileStmt is `while cond do stmt`.
type WhileStmt struct {
	Cond Expr
	Body Stmt
	span span.Span
}

func (s *WhileStmt) Span() span.Span { return s.span }
func (*WhileStmt) stmtNode()         {}

func NewWhileStmt(cond Expr, body Stmt, sp span.Span) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body, span: sp}
}

// IdentParam is a plain named parameter.
type IdentParam struct {
	Name *Ident
	span span.Span
}

func (p *IdentParam) Span() span.Span { return p.span }
func (*IdentParam) paramNode()        {}

func NewIdentParam(name *Ident, sp span.Span) *IdentParam {
	return &IdentParam{Name: name, span: sp}
}

// WildcardParam is the `_` parameter.
type WildcardParam struct {
	span span.Span
}

func (p *WildcardParam) Span() span.Span { return p.span }
func (*WildcardParam) paramNode()        {}

func NewWildcardParam(sp span.Span) *WildcardParam {
	return &WildcardParam{span: sp}
}

// TypedParam wraps an inner parameter with a declared type: `(p : int)`.
type TypedParam struct {
	Inner Param
	Type  *TypeExpr
	span  span.Span
}

func (p *TypedParam) Span() span.Span { return p.span }
func (*TypedParam) paramNode()        {}

func NewTypedParam(inner Param, typ *TypeExpr, sp span.Span) *TypedParam {
	return &TypedParam{Inner: inner, Type: typ, span: sp}
}

// FuncDecl is `fun name param* (: type)? = expr`.
type FuncDecl struct {
	Name       *Ident
	Params     []Param
	ReturnType *TypeExpr // nil when the return type is inferred
	Body       Expr
	span       span.Span
}

func (d *FuncDecl) Span() span.Span { return d.span }
func (*FuncDecl) declNode()         {}

func NewFuncDecl(name *Ident, params []Param, returnType *TypeExpr, body Expr, sp span.Span) *FuncDecl {
	return &FuncDecl{Name: name, Params: params, ReturnType: returnType, Body: body, span: sp}
}

// SetSpan updates the identifier span.
func (i *Ident) SetSpan(sp span.Span) { i.span = sp }

// SetSpan updates the literal span.
func (l *IntLit) SetSpan(sp span.Span) { l.span = sp }

// SetSpan updates the literal span.
func (l *RealLit) SetSpan(sp span.Span) { l.span = sp }

// SetSpan updates the literal span.
func (l *CharLit) SetSpan(sp span.Span) { l.span = sp }

// SetSpan updates the literal span.
func (l *BoolLit) SetSpan(sp span.Span) { l.span = sp }

// SetSpan updates the literal span.
func (l *UnitLit) SetSpan(sp span.Span) { l.span = sp }

// SetSpan updates the expression span.
func (e *UnaryExpr) SetSpan(sp span.Span) { e.span = sp }

// SetSpan updates the expression span.
func (e *BorrowExpr) SetSpan(sp span.Span) { e.span = sp }

// SetSpan updates the expression span.
func (e *BinaryExpr) SetSpan(sp span.Span) { e.span = sp }

// SetSpan updates the expression span.
func (e *LetExpr) SetSpan(sp span.Span) { e.span = sp }

// SetSpan updates the expression span.
func (e *IfExpr) SetSpan(sp span.Span) { e.span = sp }

// Program is a parsed sequence of top-level declarations.
type Program struct {
	Decls []Decl
	span  span.Span
}

func (p *Program) Span() span.Span { return p.span }

func NewProgram(decls []Decl, sp span.Span) *Program {
	return &Program{Decls: decls, span: sp}
}
