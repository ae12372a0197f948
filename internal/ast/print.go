package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders a node as a compact s-expression. The output is stable and
// whitespace-insensitive to the original source, which makes it convenient
// for golden assertions in tests and for the CLI's parse command.
func Dump(node Node) string {
	var sb strings.Builder
	dump(&sb, node)
	return sb.String()
}

func dump(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case *IntLit:
		sb.WriteString(strconv.FormatUint(n.Value, 10))

	case *RealLit:
		sb.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))

	case *CharLit:
		sb.WriteString(strconv.QuoteRune(n.Value))

	case *BoolLit:
		sb.WriteString(strconv.FormatBool(n.Value))

	case *UnitLit:
		sb.WriteString("()")

	case *Ident:
		sb.WriteString(n.Name())

	case *TypeExpr:
		sb.WriteString(n.Type.String())

	case *UnaryExpr:
		fmt.Fprintf(sb, "(%s ", n.Op)
		dump(sb, n.Operand)
		sb.WriteByte(')')

	case *BorrowExpr:
		if n.Mutable {
			sb.WriteString("(&mut ")
		} else {
			sb.WriteString("(& ")
		}
		dump(sb, n.Operand)
		sb.WriteByte(')')

	case *BinaryExpr:
		fmt.Fprintf(sb, "(%s ", n.Op)
		dump(sb, n.Left)
		sb.WriteByte(' ')
		dump(sb, n.Right)
		sb.WriteByte(')')

	case *LetExpr:
		sb.WriteString("(let (")
		for i, stmt := range n.Stmts {
			if i > 0 {
				sb.WriteByte(' ')
			}
			dump(sb, stmt)
		}
		sb.WriteString(") ")
		dump(sb, n.Body)
		sb.WriteByte(')')

	case *IfExpr:
		sb.WriteString("(if ")
		dump(sb, n.Cond)
		sb.WriteByte(' ')
		dump(sb, n.Then)
		sb.WriteByte(' ')
		dump(sb, n.Else)
		sb.WriteByte(')')

	case *ValBind:
		sb.WriteString("(val ")
		dump(sb, n.Name)
		if n.Type != nil {
			sb.WriteString(" : ")
			dump(sb, n.Type)
		}
		sb.WriteByte(' ')
		dump(sb, n.Value)
		sb.WriteByte(')')

	case *AssignStmt:
		sb.WriteString("(:= ")
		dump(sb, n.Target)
		sb.WriteByte(' ')
		dump(sb, n.Value)
		sb.WriteByte(')')

	case *WhileStmt:
		sb.WriteString("(while ")
		dump(sb, n.Cond)
		sb.WriteByte(' ')
		dump(sb, n.Body)
		sb.WriteByte(')')

	case *IdentParam:
		dump(sb, n.Name)

	case *WildcardParam:
		sb.WriteByte('_')

	case *TypedParam:
		sb.WriteByte('(')
		dump(sb, n.Inner)
		sb.WriteString(" : ")
		dump(sb, n.Type)
		sb.WriteByte(')')

	case *FuncDecl:
		sb.WriteString("(fun ")
		dump(sb, n.Name)
		sb.WriteString(" (")
		for i, param := range n.Params {
			if i > 0 {
				sb.WriteByte(' ')
			}
			dump(sb, param)
		}
		sb.WriteByte(')')
		if n.ReturnType != nil {
			sb.WriteString(" : ")
			dump(sb, n.ReturnType)
		}
		sb.WriteByte(' ')
		dump(sb, n.Body)
		sb.WriteByte(')')

	case *Program:
		for i, decl := range n.Decls {
			if i > 0 {
				sb.WriteByte('\n')
			}
			dump(sb, decl)
		}

	default:
		fmt.Fprintf(sb, "<unknown node %T>", node)
	}
}
