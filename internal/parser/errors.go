package parser

import (
	"fmt"

	"github.com/lal-lang/lal/internal/diag"
	"github.com/lal-lang/lal/internal/lexer"
)

// emitParseDiagnostic records a recoverable diagnostic without aborting
// parsing. Call sites supply the best-effort span available at the failure
// site.
func (p *Parser) emitParseDiagnostic(msg string, code diag.Code, span lexer.Span, severity diag.Severity) {
	p.errors = append(p.errors, ParseError{
		Message:  msg,
		Code:     code,
		Span:     span,
		Severity: severity,
	})
}

// reportExpectedError reports a failed mandatory-token check.
func (p *Parser) reportExpectedError(expected lexer.TokenType, found lexer.Token) {
	msg := fmt.Sprintf("expected token of kind %s but found kind %s", expected, found.Type)
	p.emitParseDiagnostic(msg, diag.CodeParseUnexpectedToken, found.Span, diag.SeverityError)
}

// reportNoPrefixError reports a token that cannot start an expression.
func (p *Parser) reportNoPrefixError(tok lexer.Token) {
	msg := fmt.Sprintf("no prefix parse function for kind %s", tok.Type)
	p.emitParseDiagnostic(msg, diag.CodeParseNoPrefix, tok.Span, diag.SeverityError)
}

// reportInvalidInteger reports an integer literal that does not fit in int64.
func (p *Parser) reportInvalidInteger(tok lexer.Token) {
	msg := fmt.Sprintf("could not parse %q as integer", tok.Literal)
	p.emitParseDiagnostic(msg, diag.CodeParseInvalidInteger, tok.Span, diag.SeverityError)
}
