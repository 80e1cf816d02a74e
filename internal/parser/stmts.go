package parser

import (
	"github.com/lal-lang/lal/internal/ast"
	"github.com/lal-lang/lal/internal/lexer"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curTok.Type {
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.VOID:
		return p.parseProcedureStmt()
	default:
		return p.parseExprStmt()
	}
}

// endStmt consumes an optional ';', returns the span from start to the last
// token of the statement, and moves curTok past the statement.
func (p *Parser) endStmt(start lexer.Span) lexer.Span {
	if p.peekTok.Type == lexer.SEMICOLON {
		p.nextToken()
	}

	span := mergeSpan(start, p.curTok.Span)
	p.nextToken()

	return span
}

// parseLetStmt parses `<type> <name> = <expr>[;]`.
func (p *Parser) parseLetStmt() ast.Stmt {
	stmt := ast.NewLetStmt(p.curTok, nil, nil, p.curTok.Span)

	if !p.expect(lexer.IDENTIFIER) {
		return nil
	}

	stmt.Name = ast.NewIdent(p.curTok)

	if !p.expect(lexer.ASSIGN) {
		return nil
	}

	p.nextToken()

	value := p.parseExpr()
	if value == nil {
		return nil
	}
	stmt.Value = value

	stmt.SetSpan(p.endStmt(stmt.Span()))

	return stmt
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	returnTok := p.curTok

	switch p.peekTok.Type {
	case lexer.SEMICOLON, lexer.RBRACE, lexer.EOF:
		return ast.NewReturnStmt(returnTok, nil, p.endStmt(returnTok.Span))
	}

	p.nextToken()

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	return ast.NewReturnStmt(returnTok, value, p.endStmt(returnTok.Span))
}

func (p *Parser) parseExprStmt() ast.Stmt {
	startTok := p.curTok

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	span := mergeSpan(startTok.Span, expr.Span())

	return ast.NewExprStmt(startTok, expr, p.endStmt(span))
}

// parseBlockStmt parses `{ stmt* }`. curTok must be '{' on entry and is left
// on the closing '}'.
func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	block := ast.NewBlockStmt(p.curTok, nil, p.curTok.Span)

	p.nextToken()

	for p.curTok.Type != lexer.RBRACE && p.curTok.Type != lexer.EOF {
		prevTok := p.curTok
		stmt := p.parseStmt()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
			continue
		}

		p.recoverStatement(prevTok, true)
	}

	if p.curTok.Type != lexer.RBRACE {
		p.reportExpectedError(lexer.RBRACE, p.curTok)
		return nil
	}

	block.SetSpan(mergeSpan(block.Span(), p.curTok.Span))

	return block
}

// parseProcedureStmt parses `void <name>(<type> <param>, ...) { ... }`.
func (p *Parser) parseProcedureStmt() ast.Stmt {
	voidTok := p.curTok

	if !p.expect(lexer.IDENTIFIER) {
		return nil
	}

	name := ast.NewIdent(p.curTok)

	if !p.expect(lexer.LPAREN) {
		return nil
	}

	params, ok := p.parseParams()
	if !ok {
		return nil
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	body := p.parseBlockStmt()
	if body == nil {
		return nil
	}

	return ast.NewProcedureStmt(voidTok, name, params, body, p.endStmt(voidTok.Span))
}

// parseParams parses a parameter list. curTok must be '(' on entry and is
// left on the closing ')'.
func (p *Parser) parseParams() ([]*ast.Param, bool) {
	var params []*ast.Param

	if p.peekTok.Type == lexer.RPAREN {
		p.nextToken()
		return params, true
	}

	for {
		if !p.expect(lexer.LET) {
			return nil, false
		}
		typeTok := p.curTok

		if !p.expect(lexer.IDENTIFIER) {
			return nil, false
		}
		name := ast.NewIdent(p.curTok)

		params = append(params, ast.NewParam(typeTok, name, mergeSpan(typeTok.Span, name.Span())))

		if p.peekTok.Type != lexer.COMMA {
			break
		}
		p.nextToken()
	}

	if !p.expect(lexer.RPAREN) {
		return nil, false
	}

	return params, true
}
