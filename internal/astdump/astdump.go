// Package astdump exports tokens and syntax trees as YAML documents.
package astdump

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lal-lang/lal/internal/ast"
	"github.com/lal-lang/lal/internal/lexer"
)

// Node is the serialisable form of an AST node.
type Node struct {
	Kind     string  `yaml:"kind"`
	Role     string  `yaml:"role,omitempty"`
	Name     string  `yaml:"name,omitempty"`
	Type     string  `yaml:"type,omitempty"`
	Operator string  `yaml:"operator,omitempty"`
	Value    string  `yaml:"value,omitempty"`
	Pos      string  `yaml:"pos,omitempty"`
	Children []*Node `yaml:"children,omitempty"`
}

// Token is the serialisable form of a lexer token.
type Token struct {
	Type    string `yaml:"type"`
	Literal string `yaml:"literal"`
	Pos     string `yaml:"pos"`
}

// Build converts node and its descendants into a Node tree.
func Build(node ast.Node) *Node {
	if node == nil {
		return nil
	}

	b := &builder{}
	node.Accept(b)
	return b.result
}

// Tokens converts a token stream into its serialisable form.
func Tokens(toks []lexer.Token) []Token {
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, Token{
			Type:    string(tok.Type),
			Literal: tok.Literal,
			Pos:     position(tok.Span),
		})
	}
	return out
}

// WriteProgram encodes program as a YAML document.
func WriteProgram(w io.Writer, program *ast.Program) error {
	return encode(w, Build(program))
}

// WriteTokens encodes toks as a YAML sequence.
func WriteTokens(w io.Writer, toks []lexer.Token) error {
	return encode(w, Tokens(toks))
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flush yaml: %w", err)
	}
	return nil
}

func position(span lexer.Span) string {
	if span.Line == 0 {
		return ""
	}
	return fmt.Sprintf("%d:%d", span.Line, span.Column)
}

// builder is an ast.Visitor that leaves the converted node in result.
type builder struct {
	result *Node
}

func (b *builder) build(node ast.Node, role string) *Node {
	if node == nil {
		return nil
	}

	sub := &builder{}
	node.Accept(sub)
	if sub.result != nil {
		sub.result.Role = role
	}
	return sub.result
}

func (b *builder) emit(kind string, span lexer.Span, children ...*Node) *Node {
	n := &Node{Kind: kind, Pos: position(span)}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	b.result = n
	return n
}

func (b *builder) stmts(stmts []ast.Stmt) []*Node {
	out := make([]*Node, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, b.build(s, ""))
	}
	return out
}

func (b *builder) VisitProgram(p *ast.Program) {
	b.emit("Program", p.Span(), b.stmts(p.Stmts)...)
}

func (b *builder) VisitLetStmt(s *ast.LetStmt) {
	n := b.emit("LetStatement", s.Span(), b.build(s.Value, "value"))
	n.Type = s.TokenLiteral()
	if s.Name != nil {
		n.Name = s.Name.Name
	}
}

func (b *builder) VisitReturnStmt(s *ast.ReturnStmt) {
	var value *Node
	if s.Value != nil {
		value = b.build(s.Value, "value")
	}
	b.emit("ReturnStatement", s.Span(), value)
}

func (b *builder) VisitExprStmt(s *ast.ExprStmt) {
	var expr *Node
	if s.Expr != nil {
		expr = b.build(s.Expr, "expression")
	}
	b.emit("ExpressionStatement", s.Span(), expr)
}

func (b *builder) VisitBlockStmt(s *ast.BlockStmt) {
	b.emit("BlockStatement", s.Span(), b.stmts(s.Stmts)...)
}

func (b *builder) VisitProcedureStmt(s *ast.ProcedureStmt) {
	children := make([]*Node, 0, len(s.Params)+1)
	for _, p := range s.Params {
		children = append(children, b.build(p, "parameter"))
	}
	if s.Body != nil {
		children = append(children, b.build(s.Body, "body"))
	}

	n := b.emit("ProcedureStatement", s.Span(), children...)
	if s.Name != nil {
		n.Name = s.Name.Name
	}
}

func (b *builder) VisitParam(p *ast.Param) {
	n := b.emit("Parameter", p.Span())
	n.Type = p.Type.Literal
	if p.Name != nil {
		n.Name = p.Name.Name
	}
}

func (b *builder) VisitIdent(i *ast.Ident) {
	b.emit("Identifier", i.Span()).Name = i.Name
}

func (b *builder) VisitIntegerLit(l *ast.IntegerLit) {
	b.emit("IntegerLiteral", l.Span()).Value = strconv.FormatInt(l.Value, 10)
}

func (b *builder) VisitBooleanLit(l *ast.BooleanLit) {
	b.emit("Boolean", l.Span()).Value = strconv.FormatBool(l.Value)
}

func (b *builder) VisitPrefixExpr(e *ast.PrefixExpr) {
	b.emit("PrefixExpression", e.Span(), b.build(e.Right, "right")).Operator = e.Operator
}

func (b *builder) VisitInfixExpr(e *ast.InfixExpr) {
	n := b.emit("InfixExpression", e.Span(), b.build(e.Left, "left"), b.build(e.Right, "right"))
	n.Operator = e.Operator
}

func (b *builder) VisitIfExpr(e *ast.IfExpr) {
	var alt *Node
	if e.Alternative != nil {
		alt = b.build(e.Alternative, "alternative")
	}

	var cons *Node
	if e.Consequence != nil {
		cons = b.build(e.Consequence, "consequence")
	}

	b.emit("IfExpression", e.Span(), b.build(e.Condition, "condition"), cons, alt)
}

func (b *builder) VisitCallExpr(e *ast.CallExpr) {
	children := []*Node{b.build(e.Callee, "function")}
	for _, a := range e.Args {
		children = append(children, b.build(a, "argument"))
	}
	b.emit("CallExpression", e.Span(), children...)
}
