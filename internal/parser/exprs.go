package parser

import (
	"strconv"

	"github.com/lal-lang/lal/internal/ast"
	"github.com/lal-lang/lal/internal/lexer"
)

// spanSetter is satisfied by nodes that expose SetSpan. parseGroupedExpr uses it
// to widen spans without wrapping the underlying node in a synthetic AST type.
type spanSetter interface {
	SetSpan(lexer.Span)
}

func (p *Parser) parseExpr() ast.Expr {
	return p.parseExprPrecedence(precedenceLowest)
}

// parseExprPrecedence is the Pratt loop: parse a prefix, then keep folding
// infix operators that bind tighter than precedence.
func (p *Parser) parseExprPrecedence(precedence int) ast.Expr {
	prefix := p.prefixFns[p.curTok.Type]
	if prefix == nil {
		p.reportNoPrefixError(p.curTok)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for p.peekTok.Type != lexer.SEMICOLON && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peekTok.Type]
		if infix == nil {
			break
		}

		p.nextToken()

		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expr {
	return ast.NewIdent(p.curTok)
}

func (p *Parser) parseIntegerLiteral() ast.Expr {
	value, err := strconv.ParseInt(p.curTok.Literal, 10, 64)
	if err != nil {
		p.reportInvalidInteger(p.curTok)
		return nil
	}

	return ast.NewIntegerLit(p.curTok, value)
}

func (p *Parser) parseBooleanLiteral() ast.Expr {
	return ast.NewBooleanLit(p.curTok)
}

// parsePrefixExpr handles `-` and `!`. It consumes the operator before
// recursing so that precedencePrefix controls binding.
func (p *Parser) parsePrefixExpr() ast.Expr {
	operatorTok := p.curTok

	p.nextToken()

	right := p.parseExprPrecedence(precedencePrefix)
	if right == nil {
		return nil
	}

	span := mergeSpan(operatorTok.Span, right.Span())

	return ast.NewPrefixExpr(operatorTok, right, span)
}

// parseGroupedExpr parses "(expr)" without introducing an explicit ParenExpr
// node. Instead, it rewrites the span on the parsed sub-expression.
func (p *Parser) parseGroupedExpr() ast.Expr {
	start := p.curTok.Span
	p.nextToken() // consume '('

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if !p.expect(lexer.RPAREN) {
		return nil
	}

	if setter, ok := expr.(spanSetter); ok {
		setter.SetSpan(mergeSpan(start, p.curTok.Span))
	}

	return expr
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	operatorTok := p.curTok
	precedence := p.curPrecedence()

	p.nextToken()

	right := p.parseExprPrecedence(precedence)
	if right == nil {
		return nil
	}

	span := mergeSpan(left.Span(), right.Span())

	return ast.NewInfixExpr(operatorTok, left, right, span)
}

// parseIfExpr parses `if <cond> { ... } [else { ... }]`.
func (p *Parser) parseIfExpr() ast.Expr {
	ifTok := p.curTok

	p.nextToken()

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	cons := p.parseBlockStmt()
	if cons == nil {
		return nil
	}

	var alt *ast.BlockStmt
	if p.peekTok.Type == lexer.ELSE {
		p.nextToken()

		if !p.expect(lexer.LBRACE) {
			return nil
		}

		alt = p.parseBlockStmt()
		if alt == nil {
			return nil
		}
	}

	return ast.NewIfExpr(ifTok, cond, cons, alt, mergeSpan(ifTok.Span, p.curTok.Span))
}

// parseCallExpr parses the argument list following a callee. curTok is the
// opening '(' on entry and the closing ')' on return.
func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	openTok := p.curTok

	var args []ast.Expr

	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
	} else {
		p.nextToken()

		arg := p.parseExpr()
		if arg == nil {
			return nil
		}
		args = append(args, arg)

		for p.peekTok.Type == lexer.COMMA {
			p.nextToken() // move to comma
			p.nextToken() // move to next argument start

			arg := p.parseExpr()
			if arg == nil {
				return nil
			}
			args = append(args, arg)
		}

		if !p.expect(lexer.RPAREN) {
			return nil
		}
	}

	span := mergeSpan(callee.Span(), p.curTok.Span)

	return ast.NewCallExpr(openTok, callee, args, span)
}
