package parser

import (
	"github.com/lal-lang/lal/internal/ast"
	"github.com/lal-lang/lal/internal/diag"
	"github.com/lal-lang/lal/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

const (
	precedenceLowest = iota
	precedenceEquality
	precedenceComparison
	precedenceSum
	precedenceProduct
	precedencePrefix
	precedenceCall
)

var precedences = map[lexer.TokenType]int{
	lexer.EQ:             precedenceEquality,
	lexer.NOT_EQ:         precedenceEquality,
	lexer.LT:             precedenceComparison,
	lexer.GT:             precedenceComparison,
	lexer.PLUS:           precedenceSum,
	lexer.MINUS:          precedenceSum,
	lexer.MULTIPLICATION: precedenceProduct,
	lexer.DIVISION:       precedenceProduct,
	lexer.LPAREN:         precedenceCall,
}

// ParseError captures a recoverable parsing error with location context.
type ParseError struct {
	Message  string
	Code     diag.Code
	Span     lexer.Span
	Severity diag.Severity
}

// ToDiagnostic converts a parse error into a shared diagnostic structure.
func (e ParseError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: e.Severity,
		Code:     e.Code,
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Parser implements a Pratt-style recursive descent parser.
// Invariants:
//   - Lookahead: curTok always reflects the token currently under examination;
//     peekTok mirrors the next token pulled from the lexer. The pair is only
//     mutated via nextToken.
//   - Expression parsers leave curTok on the last token of the expression.
//     Statement parsers leave curTok on the first token after the statement.
//   - Diagnostics: errors is an append-only accumulator. Parsing never aborts;
//     a failed statement is abandoned and parsing resumes at the next
//     statement boundary.
//   - The prefix/infix tables are filled once in New and never change.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	errors []ParseError

	prefixFns map[lexer.TokenType]prefixParseFn
	infixFns  map[lexer.TokenType]infixParseFn
}

// New returns a parser reading tokens from lx. A lexer must not be shared
// between parsers.
func New(lx *lexer.Lexer, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.filename != "" {
		lx.SetFilename(cfg.filename)
	}

	p := &Parser{
		lx:        lx,
		prefixFns: make(map[lexer.TokenType]prefixParseFn),
		infixFns:  make(map[lexer.TokenType]infixParseFn),
	}

	p.registerPrefix(lexer.IDENTIFIER, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpr)
	p.registerPrefix(lexer.NEGATION, p.parsePrefixExpr)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpr)
	p.registerPrefix(lexer.IF, p.parseIfExpr)

	p.registerInfix(lexer.PLUS, p.parseInfixExpr)
	p.registerInfix(lexer.MINUS, p.parseInfixExpr)
	p.registerInfix(lexer.MULTIPLICATION, p.parseInfixExpr)
	p.registerInfix(lexer.DIVISION, p.parseInfixExpr)
	p.registerInfix(lexer.EQ, p.parseInfixExpr)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpr)
	p.registerInfix(lexer.LT, p.parseInfixExpr)
	p.registerInfix(lexer.GT, p.parseInfixExpr)
	p.registerInfix(lexer.LPAREN, p.parseCallExpr)

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// ParseString parses src in one step and returns the program together with
// every diagnostic recorded along the way.
func ParseString(src string, opts ...Option) (*ast.Program, []ParseError) {
	p := New(lexer.New(src), opts...)
	program := p.ParseProgram()
	return program, p.Diagnostics()
}

// Errors returns the messages of all recoverable parse errors, in the order
// they were encountered.
func (p *Parser) Errors() []string {
	msgs := make([]string, 0, len(p.errors))
	for _, err := range p.errors {
		msgs = append(msgs, err.Message)
	}
	return msgs
}

// Diagnostics returns all recoverable parse errors with their locations.
func (p *Parser) Diagnostics() []ParseError {
	return append([]ParseError(nil), p.errors...)
}

// ParseProgram parses statements until EOF. It always returns a program; the
// caller decides whether a non-empty Errors() makes it unusable.
func (p *Parser) ParseProgram() *ast.Program {
	program := ast.NewProgram(p.curTok.Span)

	for p.curTok.Type != lexer.EOF {
		prevTok := p.curTok
		stmt := p.parseStmt()
		if stmt != nil {
			program.Stmts = append(program.Stmts, stmt)
			continue
		}

		p.recoverStatement(prevTok, false)
	}

	program.SetSpan(mergeSpan(program.Span(), p.curTok.Span))

	return program
}

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixFns[tokenType] = fn
}
