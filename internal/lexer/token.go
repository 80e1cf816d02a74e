package lexer

import "fmt"

// TokenType represents the kind of a token. Values double as the kind names
// printed in diagnostics.
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // rune offset into the source
	End      int    // exclusive end offset
}

// Token represents a lexical token
type Token struct {
	Type    TokenType
	Literal string // exact text from source
	Span    Span
}

// String renders the token the way the read-loop echoes it.
func (t Token) String() string {
	return fmt.Sprintf("Type: %s. Literal: %s", t.Type, t.Literal)
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENTIFIER TokenType = "IDENTIFIER" // add, foobar, x, y, ...
	INT        TokenType = "INT"        // 1343456

	// Operators
	ASSIGN         TokenType = "ASSIGN"
	PLUS           TokenType = "PLUS"
	MINUS          TokenType = "MINUS"
	MULTIPLICATION TokenType = "MULTIPLICATION"
	DIVISION       TokenType = "DIVISION"
	NEGATION       TokenType = "NEGATION"

	LT     TokenType = "LT"
	GT     TokenType = "GT"
	EQ     TokenType = "EQ"
	NOT_EQ TokenType = "NOT_EQ"

	// Delimiters
	COMMA     TokenType = "COMMA"
	SEMICOLON TokenType = "SEMICOLON"

	LPAREN TokenType = "LPAREN"
	RPAREN TokenType = "RPAREN"
	LBRACE TokenType = "LBRACE"
	RBRACE TokenType = "RBRACE"

	// Keywords. LET is the declared-type keyword (`int`).
	LET    TokenType = "LET"
	RETURN TokenType = "RETURN"
	IF     TokenType = "IF"
	ELSE   TokenType = "ELSE"
	TRUE   TokenType = "TRUE"
	FALSE  TokenType = "FALSE"
	VOID   TokenType = "VOID"
)

var keywords = map[string]TokenType{
	"else":   ELSE,
	"false":  FALSE,
	"if":     IF,
	"int":    LET,
	"return": RETURN,
	"true":   TRUE,
	"void":   VOID,
}

// single maps one-character operators and delimiters that never combine with
// a following character.
var single = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': MULTIPLICATION,
	'/': DIVISION,
	'<': LT,
	'>': GT,
	'(': LPAREN,
	')': RPAREN,
	'{': LBRACE,
	'}': RBRACE,
	',': COMMA,
	';': SEMICOLON,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}
