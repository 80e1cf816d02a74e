package ast

import (
	"strings"

	"github.com/lal-lang/lal/internal/lexer"
)

// Node represents any AST node. Every node keeps the token it was built from
// and the source span it covers.
type Node interface {
	// TokenLiteral returns the literal of the node's originating token.
	TokenLiteral() string
	// String renders the node back to canonical source text.
	String() string
	Span() lexer.Span
	Accept(v Visitor)
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

// Program is the root of every tree the parser produces.
type Program struct {
	Stmts []Stmt
	span  lexer.Span
}

// NewProgram constructs an empty program node.
func NewProgram(span lexer.Span) *Program {
	return &Program{span: span}
}

// TokenLiteral returns the literal of the first statement, if any.
func (p *Program) TokenLiteral() string {
	if len(p.Stmts) > 0 {
		return p.Stmts[0].TokenLiteral()
	}
	return ""
}

// String concatenates the rendering of every statement. Statements carry their
// own terminators, so no separator is inserted.
func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Stmts {
		out.WriteString(s.String())
	}
	return out.String()
}

// Span returns the span covering the entire program.
func (p *Program) Span() lexer.Span { return p.span }

// SetSpan updates the program span.
func (p *Program) SetSpan(span lexer.Span) { p.span = span }

// LetStmt represents a typed declaration such as `int x = 5;`. Token is the
// declared-type keyword.
type LetStmt struct {
	Token lexer.Token
	Name  *Ident
	Value Expr
	span  lexer.Span
}

// NewLetStmt constructs a declaration node. Name and Value may be filled in
// later while the statement is still being parsed.
func NewLetStmt(tok lexer.Token, name *Ident, value Expr, span lexer.Span) *LetStmt {
	return &LetStmt{
		Token: tok,
		Name:  name,
		Value: value,
		span:  span,
	}
}

func (s *LetStmt) TokenLiteral() string { return s.Token.Literal }

func (s *LetStmt) String() string {
	var out strings.Builder
	out.WriteString(s.TokenLiteral())
	out.WriteString(" ")
	if s.Name != nil {
		out.WriteString(s.Name.String())
	}
	out.WriteString(" = ")
	if s.Value != nil {
		out.WriteString(s.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// Span returns the statement span.
func (s *LetStmt) Span() lexer.Span { return s.span }

// SetSpan updates the let statement span.
func (s *LetStmt) SetSpan(span lexer.Span) { s.span = span }

// stmtNode marks LetStmt as a statement.
func (*LetStmt) stmtNode() {}

// ReturnStmt represents a return statement. Value is nil for a bare `return;`.
type ReturnStmt struct {
	Token lexer.Token
	Value Expr
	span  lexer.Span
}

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(tok lexer.Token, value Expr, span lexer.Span) *ReturnStmt {
	return &ReturnStmt{
		Token: tok,
		Value: value,
		span:  span,
	}
}

func (s *ReturnStmt) TokenLiteral() string { return s.Token.Literal }

func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return s.TokenLiteral() + ";"
	}
	return s.TokenLiteral() + " " + s.Value.String() + ";"
}

// Span returns the statement span.
func (s *ReturnStmt) Span() lexer.Span { return s.span }

// stmtNode marks ReturnStmt as a statement.
func (*ReturnStmt) stmtNode() {}

// ExprStmt represents an expression used as a statement. Token is the first
// token of the expression.
type ExprStmt struct {
	Token lexer.Token
	Expr  Expr
	span  lexer.Span
}

// NewExprStmt constructs an expression statement node.
func NewExprStmt(tok lexer.Token, expr Expr, span lexer.Span) *ExprStmt {
	return &ExprStmt{
		Token: tok,
		Expr:  expr,
		span:  span,
	}
}

func (s *ExprStmt) TokenLiteral() string { return s.Token.Literal }

func (s *ExprStmt) String() string {
	if s.Expr == nil {
		return ""
	}
	return s.Expr.String() + ";"
}

// Span returns the statement span.
func (s *ExprStmt) Span() lexer.Span { return s.span }

// stmtNode marks ExprStmt as a statement.
func (*ExprStmt) stmtNode() {}

// BlockStmt represents a brace-delimited list of statements.
type BlockStmt struct {
	Token lexer.Token // the '{' token
	Stmts []Stmt
	span  lexer.Span
}

// NewBlockStmt constructs a block node.
func NewBlockStmt(tok lexer.Token, stmts []Stmt, span lexer.Span) *BlockStmt {
	return &BlockStmt{
		Token: tok,
		Stmts: stmts,
		span:  span,
	}
}

func (b *BlockStmt) TokenLiteral() string { return b.Token.Literal }

func (b *BlockStmt) String() string {
	var out strings.Builder
	out.WriteString("{")
	for _, s := range b.Stmts {
		out.WriteString(s.String())
	}
	out.WriteString("}")
	return out.String()
}

// Span returns the block span.
func (b *BlockStmt) Span() lexer.Span { return b.span }

// SetSpan updates the block span.
func (b *BlockStmt) SetSpan(span lexer.Span) { b.span = span }

// stmtNode marks BlockStmt as a statement.
func (*BlockStmt) stmtNode() {}

// Param represents a typed procedure parameter such as `int x`.
type Param struct {
	Type lexer.Token
	Name *Ident
	span lexer.Span
}

// NewParam constructs a parameter node.
func NewParam(typ lexer.Token, name *Ident, span lexer.Span) *Param {
	return &Param{
		Type: typ,
		Name: name,
		span: span,
	}
}

func (p *Param) TokenLiteral() string { return p.Type.Literal }

func (p *Param) String() string { return p.Type.Literal + " " + p.Name.String() }

// Span returns the parameter span.
func (p *Param) Span() lexer.Span { return p.span }

// ProcedureStmt represents `void name(int a, int b) { ... }`.
type ProcedureStmt struct {
	Token  lexer.Token // the 'void' token
	Name   *Ident
	Params []*Param
	Body   *BlockStmt
	span   lexer.Span
}

// NewProcedureStmt constructs a procedure declaration node.
func NewProcedureStmt(tok lexer.Token, name *Ident, params []*Param, body *BlockStmt, span lexer.Span) *ProcedureStmt {
	return &ProcedureStmt{
		Token:  tok,
		Name:   name,
		Params: params,
		Body:   body,
		span:   span,
	}
}

func (s *ProcedureStmt) TokenLiteral() string { return s.Token.Literal }

func (s *ProcedureStmt) String() string {
	params := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		params = append(params, p.String())
	}

	var out strings.Builder
	out.WriteString(s.TokenLiteral())
	out.WriteString(" ")
	out.WriteString(s.Name.String())
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(s.Body.String())
	return out.String()
}

// Span returns the declaration span.
func (s *ProcedureStmt) Span() lexer.Span { return s.span }

// stmtNode marks ProcedureStmt as a statement.
func (*ProcedureStmt) stmtNode() {}

// Ident represents an identifier.
type Ident struct {
	Token lexer.Token
	Name  string
}

// NewIdent constructs an identifier node from its token.
func NewIdent(tok lexer.Token) *Ident {
	return &Ident{
		Token: tok,
		Name:  tok.Literal,
	}
}

func (i *Ident) TokenLiteral() string { return i.Token.Literal }

func (i *Ident) String() string { return i.Name }

// Span returns the identifier span.
func (i *Ident) Span() lexer.Span { return i.Token.Span }

// exprNode marks Ident as an expression.
func (*Ident) exprNode() {}

// IntegerLit represents an integer literal.
type IntegerLit struct {
	Token lexer.Token
	Value int64
}

// NewIntegerLit constructs an integer literal node.
func NewIntegerLit(tok lexer.Token, value int64) *IntegerLit {
	return &IntegerLit{
		Token: tok,
		Value: value,
	}
}

func (l *IntegerLit) TokenLiteral() string { return l.Token.Literal }

func (l *IntegerLit) String() string { return l.Token.Literal }

// Span returns the literal span.
func (l *IntegerLit) Span() lexer.Span { return l.Token.Span }

// exprNode marks IntegerLit as an expression.
func (*IntegerLit) exprNode() {}

// BooleanLit represents `true` or `false`.
type BooleanLit struct {
	Token lexer.Token
	Value bool
}

// NewBooleanLit constructs a boolean literal node.
func NewBooleanLit(tok lexer.Token) *BooleanLit {
	return &BooleanLit{
		Token: tok,
		Value: tok.Type == lexer.TRUE,
	}
}

func (l *BooleanLit) TokenLiteral() string { return l.Token.Literal }

func (l *BooleanLit) String() string { return l.Token.Literal }

// Span returns the literal span.
func (l *BooleanLit) Span() lexer.Span { return l.Token.Span }

// exprNode marks BooleanLit as an expression.
func (*BooleanLit) exprNode() {}

// PrefixExpr represents a prefix expression such as `-x` or `!ok`.
type PrefixExpr struct {
	Token    lexer.Token
	Operator string
	Right    Expr
	span     lexer.Span
}

// NewPrefixExpr constructs a prefix expression node.
func NewPrefixExpr(tok lexer.Token, right Expr, span lexer.Span) *PrefixExpr {
	return &PrefixExpr{
		Token:    tok,
		Operator: tok.Literal,
		Right:    right,
		span:     span,
	}
}

func (e *PrefixExpr) TokenLiteral() string { return e.Token.Literal }

func (e *PrefixExpr) String() string {
	return "(" + e.Operator + e.Right.String() + ")"
}

// Span returns the expression span.
func (e *PrefixExpr) Span() lexer.Span { return e.span }

// SetSpan updates the prefix expression span.
func (e *PrefixExpr) SetSpan(span lexer.Span) { e.span = span }

// exprNode marks PrefixExpr as an expression.
func (*PrefixExpr) exprNode() {}

// InfixExpr represents an infix binary expression.
type InfixExpr struct {
	Token    lexer.Token
	Operator string
	Left     Expr
	Right    Expr
	span     lexer.Span
}

// NewInfixExpr constructs a binary expression node.
func NewInfixExpr(tok lexer.Token, left, right Expr, span lexer.Span) *InfixExpr {
	return &InfixExpr{
		Token:    tok,
		Operator: tok.Literal,
		Left:     left,
		Right:    right,
		span:     span,
	}
}

func (e *InfixExpr) TokenLiteral() string { return e.Token.Literal }

func (e *InfixExpr) String() string {
	return "(" + e.Left.String() + " " + e.Operator + " " + e.Right.String() + ")"
}

// Span returns the expression span.
func (e *InfixExpr) Span() lexer.Span { return e.span }

// SetSpan updates the infix expression span.
func (e *InfixExpr) SetSpan(span lexer.Span) { e.span = span }

// exprNode marks InfixExpr as an expression.
func (*InfixExpr) exprNode() {}

// IfExpr represents `if <cond> { ... } else { ... }`. Alternative is nil when
// there is no else branch.
type IfExpr struct {
	Token       lexer.Token
	Condition   Expr
	Consequence *BlockStmt
	Alternative *BlockStmt
	span        lexer.Span
}

// NewIfExpr constructs a conditional expression node.
func NewIfExpr(tok lexer.Token, cond Expr, cons, alt *BlockStmt, span lexer.Span) *IfExpr {
	return &IfExpr{
		Token:       tok,
		Condition:   cond,
		Consequence: cons,
		Alternative: alt,
		span:        span,
	}
}

func (e *IfExpr) TokenLiteral() string { return e.Token.Literal }

func (e *IfExpr) String() string {
	out := e.TokenLiteral() + " " + e.Condition.String() + " " + e.Consequence.String()
	if e.Alternative != nil {
		out += " else " + e.Alternative.String()
	}
	return out
}

// Span returns the expression span.
func (e *IfExpr) Span() lexer.Span { return e.span }

// SetSpan updates the conditional span.
func (e *IfExpr) SetSpan(span lexer.Span) { e.span = span }

// exprNode marks IfExpr as an expression.
func (*IfExpr) exprNode() {}

// CallExpr represents a procedure call.
type CallExpr struct {
	Token  lexer.Token // the '(' token
	Callee Expr
	Args   []Expr
	span   lexer.Span
}

// NewCallExpr constructs a call node.
func NewCallExpr(tok lexer.Token, callee Expr, args []Expr, span lexer.Span) *CallExpr {
	return &CallExpr{
		Token:  tok,
		Callee: callee,
		Args:   args,
		span:   span,
	}
}

func (e *CallExpr) TokenLiteral() string { return e.Token.Literal }

func (e *CallExpr) String() string {
	args := make([]string, 0, len(e.Args))
	for _, a := range e.Args {
		args = append(args, a.String())
	}
	return e.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

// Span returns the expression span.
func (e *CallExpr) Span() lexer.Span { return e.span }

// SetSpan updates the call span.
func (e *CallExpr) SetSpan(span lexer.Span) { e.span = span }

// exprNode marks CallExpr as an expression.
func (*CallExpr) exprNode() {}
