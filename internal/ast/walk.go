package ast

// Walk traverses the AST starting from node, calling fn for each node in
// source order. If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil {
		return
	}
	node.Accept(&walker{fn: fn})
}

// walker drives Walk. It is a Visitor so that every node kind is covered.
type walker struct {
	fn func(Node) bool
}

func (w *walker) walk(node Node) {
	if node == nil {
		return
	}
	node.Accept(w)
}

func (w *walker) VisitProgram(n *Program) {
	if !w.fn(n) {
		return
	}
	for _, s := range n.Stmts {
		w.walk(s)
	}
}

func (w *walker) VisitLetStmt(n *LetStmt) {
	if !w.fn(n) {
		return
	}
	if n.Name != nil {
		w.walk(n.Name)
	}
	if n.Value != nil {
		w.walk(n.Value)
	}
}

func (w *walker) VisitReturnStmt(n *ReturnStmt) {
	if !w.fn(n) {
		return
	}
	if n.Value != nil {
		w.walk(n.Value)
	}
}

func (w *walker) VisitExprStmt(n *ExprStmt) {
	if !w.fn(n) {
		return
	}
	if n.Expr != nil {
		w.walk(n.Expr)
	}
}

func (w *walker) VisitBlockStmt(n *BlockStmt) {
	if !w.fn(n) {
		return
	}
	for _, s := range n.Stmts {
		w.walk(s)
	}
}

func (w *walker) VisitProcedureStmt(n *ProcedureStmt) {
	if !w.fn(n) {
		return
	}
	w.walk(n.Name)
	for _, p := range n.Params {
		w.walk(p)
	}
	if n.Body != nil {
		w.walk(n.Body)
	}
}

func (w *walker) VisitParam(n *Param) {
	if !w.fn(n) {
		return
	}
	w.walk(n.Name)
}

func (w *walker) VisitIdent(n *Ident) { w.fn(n) }

func (w *walker) VisitIntegerLit(n *IntegerLit) { w.fn(n) }

func (w *walker) VisitBooleanLit(n *BooleanLit) { w.fn(n) }

func (w *walker) VisitPrefixExpr(n *PrefixExpr) {
	if !w.fn(n) {
		return
	}
	w.walk(n.Right)
}

func (w *walker) VisitInfixExpr(n *InfixExpr) {
	if !w.fn(n) {
		return
	}
	w.walk(n.Left)
	w.walk(n.Right)
}

func (w *walker) VisitIfExpr(n *IfExpr) {
	if !w.fn(n) {
		return
	}
	w.walk(n.Condition)
	w.walk(n.Consequence)
	if n.Alternative != nil {
		w.walk(n.Alternative)
	}
}

func (w *walker) VisitCallExpr(n *CallExpr) {
	if !w.fn(n) {
		return
	}
	w.walk(n.Callee)
	for _, a := range n.Args {
		w.walk(a)
	}
}
