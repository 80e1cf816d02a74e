package ast

// Visitor has one method per node kind. Adding a node kind without extending
// Visitor (and every implementation) fails to compile.
type Visitor interface {
	VisitProgram(*Program)
	VisitLetStmt(*LetStmt)
	VisitReturnStmt(*ReturnStmt)
	VisitExprStmt(*ExprStmt)
	VisitBlockStmt(*BlockStmt)
	VisitProcedureStmt(*ProcedureStmt)
	VisitParam(*Param)
	VisitIdent(*Ident)
	VisitIntegerLit(*IntegerLit)
	VisitBooleanLit(*BooleanLit)
	VisitPrefixExpr(*PrefixExpr)
	VisitInfixExpr(*InfixExpr)
	VisitIfExpr(*IfExpr)
	VisitCallExpr(*CallExpr)
}

func (p *Program) Accept(v Visitor)       { v.VisitProgram(p) }
func (s *LetStmt) Accept(v Visitor)       { v.VisitLetStmt(s) }
func (s *ReturnStmt) Accept(v Visitor)    { v.VisitReturnStmt(s) }
func (s *ExprStmt) Accept(v Visitor)      { v.VisitExprStmt(s) }
func (b *BlockStmt) Accept(v Visitor)     { v.VisitBlockStmt(b) }
func (s *ProcedureStmt) Accept(v Visitor) { v.VisitProcedureStmt(s) }
func (p *Param) Accept(v Visitor)         { v.VisitParam(p) }
func (i *Ident) Accept(v Visitor)         { v.VisitIdent(i) }
func (l *IntegerLit) Accept(v Visitor)    { v.VisitIntegerLit(l) }
func (l *BooleanLit) Accept(v Visitor)    { v.VisitBooleanLit(l) }
func (e *PrefixExpr) Accept(v Visitor)    { v.VisitPrefixExpr(e) }
func (e *InfixExpr) Accept(v Visitor)     { v.VisitInfixExpr(e) }
func (e *IfExpr) Accept(v Visitor)        { v.VisitIfExpr(e) }
func (e *CallExpr) Accept(v Visitor)      { v.VisitCallExpr(e) }
