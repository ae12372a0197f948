package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, decl := range n.Decls {
			Walk(decl, fn)
		}

	case *UnaryExpr:
		Walk(n.Operand, fn)

	case *BorrowExpr:
		Walk(n.Operand, fn)

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *LetExpr:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}
		Walk(n.Body, fn)

	case *IfExpr:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		Walk(n.Else, fn)

	case *ValBind:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		Walk(n.Value, fn)

	case *AssignStmt:
		if n.Target != nil {
			Walk(n.Target, fn)
		}
		Walk(n.Value, fn)

	case *WhileStmt:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)

	case *IdentParam:
		if n.Name != nil {
			Walk(n.Name, fn)
		}

	case *TypedParam:
		Walk(n.Inner, fn)
		if n.Type != nil {
			Walk(n.Type, fn)
		}

	case *FuncDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, param := range n.Params {
			Walk(param, fn)
		}
		if n.ReturnType != nil {
			Walk(n.ReturnType, fn)
		}
		Walk(n.Body, fn)
	}
}
