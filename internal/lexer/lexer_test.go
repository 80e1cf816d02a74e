package lexer

import (
	"testing"
)

type expectedToken struct {
	expectedType    TokenType
	expectedLiteral string
}

func assertTokens(t *testing.T, input string, tests []expectedToken) {
	t.Helper()

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q",
				i, tt.expectedType, tok.Type)
		}

		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextToken_Illegal(t *testing.T) {
	assertTokens(t, "¿¡@", []expectedToken{
		{ILLEGAL, "¿"},
		{ILLEGAL, "¡"},
		{ILLEGAL, "@"},
		{EOF, ""},
	})
}

func TestNextToken_OneCharOperators(t *testing.T) {
	assertTokens(t, "+=-/*<>!", []expectedToken{
		{PLUS, "+"},
		{ASSIGN, "="},
		{MINUS, "-"},
		{DIVISION, "/"},
		{MULTIPLICATION, "*"},
		{LT, "<"},
		{GT, ">"},
		{NEGATION, "!"},
		{EOF, ""},
	})
}

func TestNextToken_SingleCharacterTable(t *testing.T) {
	tests := map[string]TokenType{
		"=": ASSIGN,
		"+": PLUS,
		"-": MINUS,
		"*": MULTIPLICATION,
		"/": DIVISION,
		"<": LT,
		">": GT,
		"!": NEGATION,
		"(": LPAREN,
		")": RPAREN,
		"{": LBRACE,
		"}": RBRACE,
		",": COMMA,
		";": SEMICOLON,
	}

	for input, want := range tests {
		toks := Tokenize(input)
		if len(toks) != 2 {
			t.Fatalf("%q: expected 1 token plus EOF, got %d tokens", input, len(toks))
		}
		if toks[0].Type != want {
			t.Fatalf("%q: expected %q, got %q", input, want, toks[0].Type)
		}
		if toks[0].Literal != input {
			t.Fatalf("%q: expected literal %q, got %q", input, input, toks[0].Literal)
		}
	}
}

func TestNextToken_EOFIsIdempotent(t *testing.T) {
	for _, input := range []string{"", "=", "int x = 1;", "   \n\t"} {
		l := New(input)
		for l.NextToken().Type != EOF {
		}
		for i := 0; i < 3; i++ {
			tok := l.NextToken()
			if tok.Type != EOF || tok.Literal != "" {
				t.Fatalf("%q: call %d after EOF returned %q %q", input, i, tok.Type, tok.Literal)
			}
		}
	}
}

func TestNextToken_TrailingAssign(t *testing.T) {
	assertTokens(t, "=", []expectedToken{
		{ASSIGN, "="},
		{EOF, ""},
	})
}

func TestNextToken_Delimiters(t *testing.T) {
	assertTokens(t, "(){},;", []expectedToken{
		{LPAREN, "("},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{COMMA, ","},
		{SEMICOLON, ";"},
		{EOF, ""},
	})
}

func TestNextToken_Assignment(t *testing.T) {
	assertTokens(t, "int value = 4;", []expectedToken{
		{LET, "int"},
		{IDENTIFIER, "value"},
		{ASSIGN, "="},
		{INT, "4"},
		{SEMICOLON, ";"},
		{EOF, ""},
	})
}

func TestNextToken_ProcedureDeclaration(t *testing.T) {
	input := `
	void add(int x, int y) {
		x+y;
	}
`
	assertTokens(t, input, []expectedToken{
		{VOID, "void"},
		{IDENTIFIER, "add"},
		{LPAREN, "("},
		{LET, "int"},
		{IDENTIFIER, "x"},
		{COMMA, ","},
		{LET, "int"},
		{IDENTIFIER, "y"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{IDENTIFIER, "x"},
		{PLUS, "+"},
		{IDENTIFIER, "y"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{EOF, ""},
	})
}

func TestNextToken_ProcedureCall(t *testing.T) {
	assertTokens(t, "     add(x, y);", []expectedToken{
		{IDENTIFIER, "add"},
		{LPAREN, "("},
		{IDENTIFIER, "x"},
		{COMMA, ","},
		{IDENTIFIER, "y"},
		{RPAREN, ")"},
		{SEMICOLON, ";"},
		{EOF, ""},
	})
}

func TestNextToken_ControlStatement(t *testing.T) {
	input := `
	if(a < b) {
		return true;
	} else {
		return false;
	}
`
	assertTokens(t, input, []expectedToken{
		{IF, "if"},
		{LPAREN, "("},
		{IDENTIFIER, "a"},
		{LT, "<"},
		{IDENTIFIER, "b"},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RETURN, "return"},
		{TRUE, "true"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{ELSE, "else"},
		{LBRACE, "{"},
		{RETURN, "return"},
		{FALSE, "false"},
		{SEMICOLON, ";"},
		{RBRACE, "}"},
		{EOF, ""},
	})
}

func TestNextToken_TwoCharOperators(t *testing.T) {
	input := `
	37!=73;
	12 == 12;
`
	assertTokens(t, input, []expectedToken{
		{INT, "37"},
		{NOT_EQ, "!="},
		{INT, "73"},
		{SEMICOLON, ";"},
		{INT, "12"},
		{EQ, "=="},
		{INT, "12"},
		{SEMICOLON, ";"},
		{EOF, ""},
	})
}

func TestNextToken_AssignThenEquality(t *testing.T) {
	assertTokens(t, "= ==== !", []expectedToken{
		{ASSIGN, "="},
		{EQ, "=="},
		{EQ, "=="},
		{NEGATION, "!"},
		{EOF, ""},
	})
}

func TestNextToken_IdentifiersAndNumbers(t *testing.T) {
	assertTokens(t, "_tmp x1 intx void_ 007 12ab", []expectedToken{
		{IDENTIFIER, "_tmp"},
		{IDENTIFIER, "x1"},
		{IDENTIFIER, "intx"},
		{IDENTIFIER, "void_"},
		{INT, "007"},
		{INT, "12"},
		{IDENTIFIER, "ab"},
		{EOF, ""},
	})
}

func TestNextToken_NumbersHaveNoFraction(t *testing.T) {
	assertTokens(t, "3.14", []expectedToken{
		{INT, "3"},
		{ILLEGAL, "."},
		{INT, "14"},
		{EOF, ""},
	})
}

func TestLookupIdent(t *testing.T) {
	tests := map[string]TokenType{
		"int":    LET,
		"return": RETURN,
		"if":     IF,
		"else":   ELSE,
		"true":   TRUE,
		"false":  FALSE,
		"void":   VOID,
		"let":    IDENTIFIER,
		"Int":    IDENTIFIER,
	}

	for ident, want := range tests {
		if got := LookupIdent(ident); got != want {
			t.Fatalf("LookupIdent(%q) = %q, want %q", ident, got, want)
		}
	}
}

func TestToken_String(t *testing.T) {
	tok := Token{Type: NOT_EQ, Literal: "!="}
	if got, want := tok.String(), "Type: NOT_EQ. Literal: !="; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
