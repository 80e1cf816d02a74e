package parser

import (
	"github.com/lal-lang/lal/internal/lexer"
)

// mergeSpan assumes start.End <= end.End and returns a span covering both.
// Callers pass the earliest start span first so node spans only grow.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}

func sameTokenPosition(a, b lexer.Token) bool {
	return a.Type == b.Type && a.Span.Start == b.Span.Start && a.Span.End == b.Span.End
}

func isStatementStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.LET, lexer.RETURN, lexer.VOID, lexer.IF:
		return true
	default:
		return false
	}
}

// recoverStatement skips the remains of an abandoned statement. It always
// makes progress past prev, then stops after the next ';' or in front of a
// token that starts a new statement. Inside a block it also stops in front
// of the closing '}'.
func (p *Parser) recoverStatement(prev lexer.Token, inBlock bool) {
	if p.curTok.Type == lexer.EOF {
		return
	}

	if sameTokenPosition(p.curTok, prev) {
		p.nextToken()
	}

	for p.curTok.Type != lexer.EOF {
		switch {
		case p.curTok.Type == lexer.SEMICOLON:
			p.nextToken()
			return
		case p.curTok.Type == lexer.RBRACE && inBlock:
			return
		case isStatementStart(p.curTok.Type):
			return
		}

		p.nextToken()
	}
}
