package ast

import (
	"testing"

	"github.com/tarn-lang/tarn/internal/interner"
	"github.com/tarn-lang/tarn/internal/span"
)

func sp(start, end int) span.Span {
	return span.New(1, start, end)
}

func ident(name string, start, end int) *Ident {
	return NewIdent(interner.Intern(name), sp(start, end))
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeInt, "int"},
		{TypeChar, "char"},
		{TypeBool, "bool"},
		{TypeReal, "real"},
		{TypeUnit, "()"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestOpStrings(t *testing.T) {
	tests := []struct {
		op   BinaryOp
		want string
	}{
		{OpSub, "-"},
		{OpDiv, "div"},
		{OpRem, "mod"},
		{OpNotEq, "<>"},
		{OpAnd, "&&"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("BinaryOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}

	if OpNeg.String() != "~" || OpNot.String() != "not" {
		t.Errorf("unary ops render as %q and %q, want ~ and not", OpNeg, OpNot)
	}
}

func TestDump(t *testing.T) {
	a := ident("a", 0, 1)
	b := ident("b", 4, 5)

	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			"binary",
			NewBinaryExpr(OpSub, sp(2, 3), a, b, sp(0, 5)),
			"(- a b)",
		},
		{
			"nested unary",
			NewUnaryExpr(OpNeg, sp(0, 1),
				NewUnaryExpr(OpNeg, sp(1, 2), ident("x", 2, 3), sp(1, 3)),
				sp(0, 3)),
			"(~ (~ x))",
		},
		{
			"mutable borrow",
			NewBorrowExpr(true, ident("x", 6, 7), sp(0, 7)),
			"(&mut x)",
		},
		{
			"val with type",
			NewValBind(ident("x", 4, 5), NewTypeExpr(TypeInt, sp(8, 11)),
				NewIntLit(42, sp(14, 16)), sp(0, 16)),
			"(val x : int 42)",
		},
		{
			"if",
			NewIfExpr(NewBoolLit(true, sp(3, 7)), NewIntLit(1, sp(13, 14)),
				NewIntLit(2, sp(20, 21)), sp(0, 21)),
			"(if true 1 2)",
		},
		{
			"let",
			NewLetExpr(
				[]Stmt{NewAssignStmt(ident("x", 4, 5), NewIntLit(1, sp(9, 10)), sp(4, 10))},
				ident("x", 14, 15), sp(0, 19)),
			"(let ((:= x 1)) x)",
		},
		{
			"char",
			NewCharLit('\n', sp(0, 4)),
			`'\n'`,
		},
		{
			"unit",
			NewUnitLit(sp(0, 2)),
			"()",
		},
		{
			"fun",
			NewFuncDecl(ident("f", 4, 5),
				[]Param{
					NewWildcardParam(sp(6, 7)),
					NewTypedParam(NewIdentParam(ident("a", 9, 10), sp(9, 10)),
						NewTypeExpr(TypeBool, sp(13, 17)), sp(8, 18)),
				},
				NewTypeExpr(TypeInt, sp(21, 24)),
				ident("a", 27, 28), sp(0, 28)),
			"(fun f (_ (a : bool)) : int a)",
		},
	}

	for _, tt := range tests {
		if got := Dump(tt.node); got != tt.want {
			t.Errorf("%s: Dump = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestWalkOrderAndPruning(t *testing.T) {
	// (- (~ a) b)
	inner := NewUnaryExpr(OpNeg, sp(0, 1), ident("a", 1, 2), sp(0, 2))
	root := NewBinaryExpr(OpSub, sp(3, 4), inner, ident("b", 5, 6), sp(0, 6))

	var visited []Node
	Walk(root, func(n Node) bool {
		visited = append(visited, n)
		return true
	})
	if len(visited) != 4 {
		t.Fatalf("visited %d nodes, want 4", len(visited))
	}
	if visited[0] != Node(root) || visited[1] != Node(inner) {
		t.Errorf("traversal is not pre-order: %v", visited)
	}

	// Pruning the unary branch skips its operand.
	var pruned []Node
	Walk(root, func(n Node) bool {
		pruned = append(pruned, n)
		_, isUnary := n.(*UnaryExpr)
		return !isUnary
	})
	if len(pruned) != 3 {
		t.Errorf("visited %d nodes with pruning, want 3", len(pruned))
	}
}

func TestWalkNilNode(t *testing.T) {
	called := false
	Walk(nil, func(Node) bool {
		called = true
		return true
	})
	if called {
		t.Error("Walk(nil) invoked the callback")
	}
}

func TestSpanAccessors(t *testing.T) {
	lit := NewIntLit(7, sp(3, 4))
	if lit.Span() != sp(3, 4) {
		t.Errorf("Span() = %v, want [3, 4)", lit.Span())
	}

	lit.SetSpan(sp(2, 5))
	if lit.Span() != sp(2, 5) {
		t.Errorf("after SetSpan, Span() = %v, want [2, 5)", lit.Span())
	}
}
