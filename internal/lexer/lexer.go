package lexer

import (
	"strconv"
	"unicode"

	"github.com/lal-lang/lal/internal/diag"
)

type LexerErrorKind int

const (
	ErrIllegalRune LexerErrorKind = iota
)

// LexerError records a character the lexer could not classify. Scanning
// continues past it; the offending character is also emitted as an ILLEGAL
// token for the parser to reject.
type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
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

// Lexer represents the lexer state
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune, meaningless once pos reaches len(input)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	Errors []LexerError
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read() // move to first character
	return l
}

// SetFilename attributes every subsequent span to name.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// Tokenize scans src completely and returns its tokens, ending with EOF.
func Tokenize(src string) []Token {
	return New(src).Tokens()
}

// Tokens scans the rest of the input and returns its tokens, ending with EOF.
// Errors found along the way are recorded in l.Errors.
func (l *Lexer) Tokens() []Token {
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == EOF {
			return toks
		}
	}
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, LexerError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// read advances the lexer to the next character.
// Line/column always reflect the position of the character at pos.
func (l *Lexer) read() {
	if l.atEOF() && l.pos >= 0 {
		return
	}

	l.pos++
	prevPos := l.pos - 1

	if prevPos >= 0 && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.atEOF() {
		l.ch = 0
		return
	}
	l.ch = l.input[l.pos]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// peek returns the next character without advancing. Out of range reads as 0,
// which matches nothing the lexer looks for.
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) currentSpanStart() (line, column, pos int) {
	return l.line, l.column, l.pos
}

func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos int, literal string) Token {
	return Token{
		Type:    tokType,
		Literal: literal,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      l.pos,
		},
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEOF() && unicode.IsSpace(l.ch) {
		l.read()
	}
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for !l.atEOF() && (isLetter(l.ch) || isDigit(l.ch)) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// readNumber reads a decimal integer literal. Signs, decimal points and
// exponents are not part of the language.
func (l *Lexer) readNumber() string {
	start := l.pos
	for !l.atEOF() && isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

// twoChar emits the two-character token when the next rune is second,
// otherwise the one-character fallback.
func (l *Lexer) twoChar(second rune, double, fallback TokenType) Token {
	startLine, startColumn, startPos := l.currentSpanStart()
	if l.peek() == second {
		raw := string(l.ch) + string(second)
		l.read()
		l.read()
		return l.makeToken(double, startLine, startColumn, startPos, raw)
	}
	raw := string(l.ch)
	l.read()
	return l.makeToken(fallback, startLine, startColumn, startPos, raw)
}

// NextToken returns the next token from the input. Once the input is
// exhausted every call returns EOF.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	startLine, startColumn, startPos := l.currentSpanStart()

	if l.atEOF() {
		return l.makeToken(EOF, startLine, startColumn, startPos, "")
	}

	switch l.ch {
	case '=':
		return l.twoChar('=', EQ, ASSIGN)
	case '!':
		return l.twoChar('=', NOT_EQ, NEGATION)
	}

	if tokType, ok := single[l.ch]; ok {
		raw := string(l.ch)
		l.read()
		return l.makeToken(tokType, startLine, startColumn, startPos, raw)
	}

	switch {
	case isLetter(l.ch):
		literal := l.readIdentifier()
		return l.makeToken(LookupIdent(literal), startLine, startColumn, startPos, literal)
	case isDigit(l.ch):
		literal := l.readNumber()
		return l.makeToken(INT, startLine, startColumn, startPos, literal)
	default:
		raw := string(l.ch)
		l.read()
		tok := l.makeToken(ILLEGAL, startLine, startColumn, startPos, raw)
		l.addError(ErrIllegalRune, "illegal character "+strconv.Quote(raw), tok.Span)
		return tok
	}
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}
