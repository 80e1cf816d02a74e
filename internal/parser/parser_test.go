package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lal-lang/lal/internal/ast"
	"github.com/lal-lang/lal/internal/diag"
	"github.com/lal-lang/lal/internal/lexer"
	"github.com/lal-lang/lal/internal/parser"
)

func parseProgram(t *testing.T, src string) (*ast.Program, []string) {
	t.Helper()

	p := parser.New(lexer.New(src))
	program := p.ParseProgram()
	require.NotNil(t, program)

	return program, p.Errors()
}

func assertNoErrors(t *testing.T, errs []string) {
	t.Helper()
	require.Empty(t, errs, "parser reported %d error(s)", len(errs))
}

func singleExpr(t *testing.T, src string) ast.Expr {
	t.Helper()

	program, errs := parseProgram(t, src)
	assertNoErrors(t, errs)
	require.Len(t, program.Stmts, 1)

	stmt, ok := program.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok, "expected *ast.ExprStmt, got %T", program.Stmts[0])

	return stmt.Expr
}

func TestParseProgram_ReturnsProgram(t *testing.T) {
	program, errs := parseProgram(t, "int num =10;")
	assertNoErrors(t, errs)
	assert.IsType(t, &ast.Program{}, program)
}

func TestParseProgram_Empty(t *testing.T) {
	program, errs := parseProgram(t, "")
	assertNoErrors(t, errs)
	assert.Empty(t, program.Stmts)
	assert.Equal(t, "", program.String())
}

func TestParseLetStmts(t *testing.T) {
	src := `
		int foo = 10;
		int eg = 222;
		int dog = 4;
	`
	program, errs := parseProgram(t, src)
	assertNoErrors(t, errs)
	require.Len(t, program.Stmts, 3)

	names := []string{"foo", "eg", "dog"}
	values := []int64{10, 222, 4}
	for i, stmt := range program.Stmts {
		assert.Equal(t, "int", stmt.TokenLiteral())

		let, ok := stmt.(*ast.LetStmt)
		require.True(t, ok, "stmt %d is %T", i, stmt)
		assert.Equal(t, names[i], let.Name.Name)
		assert.Equal(t, names[i], let.Name.TokenLiteral())

		lit, ok := let.Value.(*ast.IntegerLit)
		require.True(t, ok, "value %d is %T", i, let.Value)
		assert.Equal(t, values[i], lit.Value)
	}
}

func TestParseLetStmt_RendersNormalized(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"int x = 5;", "int x = 5;"},
		{"int   y=z ;", "int y = z;"},
		{"int total =\n\tcount;", "int total = count;"},
		{"int flag = true", "int flag = true;"},
	}

	for _, tt := range tests {
		program, errs := parseProgram(t, tt.src)
		assertNoErrors(t, errs)
		require.Len(t, program.Stmts, 1, tt.src)
		assert.IsType(t, &ast.LetStmt{}, program.Stmts[0])
		assert.Equal(t, tt.want, program.String())
	}
}

func TestParseReturnStmts(t *testing.T) {
	program, errs := parseProgram(t, "return 5; return foo; return a + b; return;")
	assertNoErrors(t, errs)
	require.Len(t, program.Stmts, 4)

	for _, stmt := range program.Stmts {
		assert.IsType(t, &ast.ReturnStmt{}, stmt)
		assert.Equal(t, "return", stmt.TokenLiteral())
	}
	assert.Equal(t, "return 5;return foo;return (a + b);return;", program.String())
}

func TestParseIdentifierExpr(t *testing.T) {
	expr := singleExpr(t, "foobar;")

	ident, ok := expr.(*ast.Ident)
	require.True(t, ok, "expected *ast.Ident, got %T", expr)
	assert.Equal(t, "foobar", ident.Name)
	assert.Equal(t, "foobar", ident.TokenLiteral())
}

func TestParseIntegerLiteral(t *testing.T) {
	expr := singleExpr(t, "5;")

	lit, ok := expr.(*ast.IntegerLit)
	require.True(t, ok, "expected *ast.IntegerLit, got %T", expr)
	assert.Equal(t, int64(5), lit.Value)
	assert.Equal(t, "5", lit.TokenLiteral())
}

func TestParseBooleanLiteral(t *testing.T) {
	for src, want := range map[string]bool{"true;": true, "false;": false} {
		expr := singleExpr(t, src)

		lit, ok := expr.(*ast.BooleanLit)
		require.True(t, ok, "expected *ast.BooleanLit, got %T", expr)
		assert.Equal(t, want, lit.Value)
	}
}

func TestParsePrefixExprs(t *testing.T) {
	program, errs := parseProgram(t, "!5; -15;")
	assertNoErrors(t, errs)
	require.Len(t, program.Stmts, 2)

	tests := []struct {
		operator string
		value    int64
	}{
		{"!", 5},
		{"-", 15},
	}

	for i, tt := range tests {
		stmt, ok := program.Stmts[i].(*ast.ExprStmt)
		require.True(t, ok)

		prefix, ok := stmt.Expr.(*ast.PrefixExpr)
		require.True(t, ok, "expected *ast.PrefixExpr, got %T", stmt.Expr)
		assert.Equal(t, tt.operator, prefix.Operator)

		lit, ok := prefix.Right.(*ast.IntegerLit)
		require.True(t, ok, "expected *ast.IntegerLit, got %T", prefix.Right)
		assert.Equal(t, tt.value, lit.Value)
	}
}

func TestParseNegativeLiteralIsOneStatement(t *testing.T) {
	expr := singleExpr(t, "-15")

	prefix, ok := expr.(*ast.PrefixExpr)
	require.True(t, ok, "expected *ast.PrefixExpr, got %T", expr)
	assert.Equal(t, "-", prefix.Operator)
	assert.Equal(t, "(-15)", expr.String())
}

func TestParseInfixExprs(t *testing.T) {
	tests := []struct {
		src      string
		left     int64
		operator string
		right    int64
	}{
		{"5 + 5;", 5, "+", 5},
		{"5 - 5;", 5, "-", 5},
		{"5 * 5;", 5, "*", 5},
		{"5 / 5;", 5, "/", 5},
		{"5 > 5;", 5, ">", 5},
		{"5 < 5;", 5, "<", 5},
		{"5 == 5;", 5, "==", 5},
		{"5 != 5;", 5, "!=", 5},
	}

	for _, tt := range tests {
		expr := singleExpr(t, tt.src)

		infix, ok := expr.(*ast.InfixExpr)
		require.True(t, ok, "%s: expected *ast.InfixExpr, got %T", tt.src, expr)
		assert.Equal(t, tt.operator, infix.Operator)
		assert.Equal(t, tt.left, infix.Left.(*ast.IntegerLit).Value)
		assert.Equal(t, tt.right, infix.Right.(*ast.IntegerLit).Value)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"a + b + c", "((a + b) + c)"},
		{"a + b - c", "((a + b) - c)"},
		{"a * b * c", "((a * b) * c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a + b / c", "(a + (b / c))"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 5 == 5 < 5", "((5 > 5) == (5 < 5))"},
		{"5 < 4 != 3 > 4", "((5 < 4) != (3 > 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"3 > 5 == false", "((3 > 5) == false)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
	}

	for _, tt := range tests {
		expr := singleExpr(t, tt.src)
		assert.Equal(t, tt.want, expr.String(), tt.src)
	}
}

func TestProgramString_KeepsStatementsApart(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1; 2;", "1;2;"},
		{"x; y;", "x;y;"},
		{"3 + 4; -5 * 5", "(3 + 4);((-5) * 5);"},
		{"f(); int a = 1; a", "f();int a = 1;a;"},
	}

	for _, tt := range tests {
		program, errs := parseProgram(t, tt.src)
		assertNoErrors(t, errs)
		assert.Equal(t, tt.want, program.String(), tt.src)
	}
}

func TestProgramString_Reparses(t *testing.T) {
	src := "int a = 1; a; -a * 2; void f(int x) { x; return x; } f(a); if (a < 2) { a } else { 0 }"

	program, errs := parseProgram(t, src)
	assertNoErrors(t, errs)

	again, errs := parseProgram(t, program.String())
	assertNoErrors(t, errs)
	assert.Equal(t, program.String(), again.String())
	assert.Len(t, again.Stmts, len(program.Stmts))
}

func TestParseIfExpr(t *testing.T) {
	expr := singleExpr(t, "if (x < y) { x }")

	ifExpr, ok := expr.(*ast.IfExpr)
	require.True(t, ok, "expected *ast.IfExpr, got %T", expr)
	assert.Equal(t, "(x < y)", ifExpr.Condition.String())
	require.Len(t, ifExpr.Consequence.Stmts, 1)
	assert.Nil(t, ifExpr.Alternative)
	assert.Equal(t, "if (x < y) {x;}", expr.String())
}

func TestParseIfElseExpr(t *testing.T) {
	src := `
		if (a < b) {
			return true;
		} else {
			return false;
		}
	`
	expr := singleExpr(t, src)

	ifExpr, ok := expr.(*ast.IfExpr)
	require.True(t, ok, "expected *ast.IfExpr, got %T", expr)
	require.NotNil(t, ifExpr.Alternative)
	assert.Equal(t, "if (a < b) {return true;} else {return false;}", expr.String())
}

func TestParseCallExpr(t *testing.T) {
	expr := singleExpr(t, "add(1, 2 * 3, x + y);")

	call, ok := expr.(*ast.CallExpr)
	require.True(t, ok, "expected *ast.CallExpr, got %T", expr)
	assert.Equal(t, "add", call.Callee.String())
	require.Len(t, call.Args, 3)
	assert.Equal(t, "1", call.Args[0].String())
	assert.Equal(t, "(2 * 3)", call.Args[1].String())
	assert.Equal(t, "(x + y)", call.Args[2].String())

	empty := singleExpr(t, "run();")
	assert.Equal(t, "run()", empty.String())
}

func TestParseProcedureStmt(t *testing.T) {
	src := `
		void add(int x, int y) {
			return x + y;
		}
		void main() { }
	`
	program, errs := parseProgram(t, src)
	assertNoErrors(t, errs)
	require.Len(t, program.Stmts, 2)

	proc, ok := program.Stmts[0].(*ast.ProcedureStmt)
	require.True(t, ok, "expected *ast.ProcedureStmt, got %T", program.Stmts[0])
	assert.Equal(t, "add", proc.Name.Name)
	require.Len(t, proc.Params, 2)
	assert.Equal(t, "int x", proc.Params[0].String())
	assert.Equal(t, "int y", proc.Params[1].String())
	assert.Equal(t, "void add(int x, int y) {return (x + y);}", proc.String())

	assert.Equal(t, "void main() {}", program.Stmts[1].String())
}

func TestParseErrors_MissingAssign(t *testing.T) {
	program, errs := parseProgram(t, "int a 5;")

	require.NotNil(t, program)
	require.Equal(t, []string{"expected token of kind ASSIGN but found kind INT"}, errs)
	assert.Empty(t, program.Stmts)
}

func TestParseErrors_MissingIdentifier(t *testing.T) {
	_, errs := parseProgram(t, "int = 5;")
	assert.Equal(t, []string{"expected token of kind IDENTIFIER but found kind ASSIGN"}, errs)
}

func TestParseErrors_NoPrefix(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"@;", "no prefix parse function for kind ILLEGAL"},
		{"int x = ;", "no prefix parse function for kind SEMICOLON"},
		{"5 + ;", "no prefix parse function for kind SEMICOLON"},
		{")", "no prefix parse function for kind RPAREN"},
		{"return else;", "no prefix parse function for kind ELSE"},
	}

	for _, tt := range tests {
		_, errs := parseProgram(t, tt.src)
		assert.Equal(t, []string{tt.want}, errs, tt.src)
	}
}

func TestParseErrors_IntegerOverflow(t *testing.T) {
	_, errs := parseProgram(t, "99999999999999999999;")
	assert.Equal(t, []string{`could not parse "99999999999999999999" as integer`}, errs)
}

func TestParseErrors_UnclosedBlock(t *testing.T) {
	_, errs := parseProgram(t, "if (a) { x")
	assert.Equal(t, []string{"expected token of kind RBRACE but found kind EOF"}, errs)
}

func TestParseErrors_UnclosedGroup(t *testing.T) {
	_, errs := parseProgram(t, "(1 + 2;")
	assert.Equal(t, []string{"expected token of kind RPAREN but found kind SEMICOLON"}, errs)
}

func TestParseErrors_RecoversAtNextStatement(t *testing.T) {
	src := `
		int a 5;
		int b = 2;
		int = 3;
		return b;
	`
	program, errs := parseProgram(t, src)

	assert.Equal(t, []string{
		"expected token of kind ASSIGN but found kind INT",
		"expected token of kind IDENTIFIER but found kind ASSIGN",
	}, errs)
	assert.Equal(t, "int b = 2;return b;", program.String())
}

func TestParseErrors_RecoversWithoutSemicolon(t *testing.T) {
	program, errs := parseProgram(t, "int x = int y = 2;")

	assert.Equal(t, []string{"no prefix parse function for kind LET"}, errs)
	assert.Equal(t, "int y = 2;", program.String())
}

func TestParseErrors_RecoversInsideBlock(t *testing.T) {
	program, errs := parseProgram(t, "void f() { int = 1; return 2; } f();")

	assert.Equal(t, []string{"expected token of kind IDENTIFIER but found kind ASSIGN"}, errs)
	assert.Equal(t, "void f() {return 2;}f();", program.String())
}

func TestDiagnostics_CarrySpans(t *testing.T) {
	p := parser.New(lexer.New("int x = 1;\nint a 5;"), parser.WithFilename("main.lal"))
	p.ParseProgram()

	ds := p.Diagnostics()
	require.Len(t, ds, 1)
	assert.Equal(t, diag.CodeParseUnexpectedToken, ds[0].Code)
	assert.Equal(t, "main.lal", ds[0].Span.Filename)
	assert.Equal(t, 2, ds[0].Span.Line)
	assert.Equal(t, 7, ds[0].Span.Column)

	d := ds[0].ToDiagnostic()
	assert.Equal(t, diag.StageParser, d.Stage)
	assert.Equal(t, diag.SeverityError, d.Severity)
	assert.Equal(t, "main.lal:2:7", d.Span.String())
}

func TestDiagnostics_ReturnsCopy(t *testing.T) {
	p := parser.New(lexer.New("int a 5;"))
	p.ParseProgram()

	ds := p.Diagnostics()
	require.Len(t, ds, 1)
	want := ds[0].Message

	ds[0].Message = "changed"

	assert.Equal(t, []string{want}, p.Errors())
	assert.Equal(t, want, p.Diagnostics()[0].Message)
}

func TestStmtSpans(t *testing.T) {
	program, diags := parser.ParseString("int x = 5;\nreturn x;", parser.WithFilename("main.lal"))
	require.Empty(t, diags)
	require.Len(t, program.Stmts, 2)

	let := program.Stmts[0].Span()
	assert.Equal(t, 0, let.Start)
	assert.Equal(t, 10, let.End)

	ret := program.Stmts[1].Span()
	assert.Equal(t, "main.lal", ret.Filename)
	assert.Equal(t, 2, ret.Line)
	assert.Equal(t, 1, ret.Column)
	assert.Equal(t, 20, ret.End)
}

func TestErrorsIsAppendOnly(t *testing.T) {
	p := parser.New(lexer.New("int a 5; @;"))
	p.ParseProgram()

	errs := p.Errors()
	require.Len(t, errs, 2)
	assert.Equal(t, "expected token of kind ASSIGN but found kind INT", errs[0])
	assert.Equal(t, "no prefix parse function for kind ILLEGAL", errs[1])
	assert.Equal(t, errs, p.Errors())
}
