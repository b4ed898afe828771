package parser

import (
	"testing"

	"github.com/vela-lang/vela/internal/lexer"
	"github.com/vela-lang/vela/pkg/ast"
)

func testParser(input string) *Parser {
	return New(lexer.New(input))
}

func checkParserErrors(t *testing.T, p *Parser) {
	t.Helper()
	errs := p.Errors()
	if len(errs) == 0 {
		return
	}
	for _, e := range errs {
		t.Errorf("parser error: %s", e.Error())
	}
	t.FailNow()
}

func TestValStatementWithPrecedence(t *testing.T) {
	p := testParser("val x : int = 2 + 3 * 4;\nx;")
	program := p.Parse()
	checkParserErrors(t, p)

	if len(program.Statements) != 2 {
		t.Fatalf("program has %d statements, want 2", len(program.Statements))
	}

	val, ok := program.Statements[0].(*ast.ValStatement)
	if !ok {
		t.Fatalf("statement 0 is %T, want *ast.ValStatement", program.Statements[0])
	}
	if val.Name.Value != "x" {
		t.Errorf("val.Name.Value = %q, want x", val.Name.Value)
	}
	if val.Type == nil || val.Type.Name != "int" {
		t.Fatalf("val.Type = %v, want int", val.Type)
	}

	bin, ok := val.Value.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("val.Value is %T, want *ast.BinaryExpression", val.Value)
	}
	if bin.Operator != "+" {
		t.Fatalf("top-level operator = %q, want + (precedence: * must bind tighter)", bin.Operator)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != "*" {
		t.Fatalf("right-hand side = %#v, want a * binary expression", bin.Right)
	}
}

func TestIfExpression(t *testing.T) {
	p := testParser("if x == 0 { true };")
	program := p.Parse()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExpressionStatement", program.Statements[0])
	}
	ifExpr, ok := stmt.Expr.(*ast.IfExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.IfExpression", stmt.Expr)
	}
	if ifExpr.Alternative != nil {
		t.Error("expected no alternative branch")
	}
	if len(ifExpr.Consequence.Statements) != 1 {
		t.Fatalf("consequence has %d statements, want 1", len(ifExpr.Consequence.Statements))
	}
}

func TestFunctionLiteral(t *testing.T) {
	p := testParser("ƒ add(a: int, b: int) -> int { a + b }")
	program := p.Parse()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExpressionStatement", program.Statements[0])
	}
	fn, ok := stmt.Expr.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("expression is %T, want *ast.FunctionLiteral", stmt.Expr)
	}
	if fn.Name == nil || fn.Name.Value != "add" {
		t.Fatalf("fn.Name = %v, want add", fn.Name)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("fn.Params has %d entries, want 2", len(fn.Params))
	}
	if fn.ReturnType == nil || fn.ReturnType.Name != "int" {
		t.Fatalf("fn.ReturnType = %v, want int", fn.ReturnType)
	}
}

func TestClosureLiteral(t *testing.T) {
	p := testParser("|x| { x + 1 };")
	program := p.Parse()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	closure, ok := stmt.Expr.(*ast.ClosureLiteral)
	if !ok {
		t.Fatalf("expression is %T, want *ast.ClosureLiteral", stmt.Expr)
	}
	if len(closure.Params) != 1 || closure.Params[0].Name.Value != "x" {
		t.Fatalf("closure.Params = %#v", closure.Params)
	}
}

func TestLoopForRange(t *testing.T) {
	p := testParser("for 0..10 { true; }")
	program := p.Parse()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.LoopForRangeStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.LoopForRangeStatement", program.Statements[0])
	}
	start, ok := stmt.Start.(*ast.IntLiteral)
	if !ok || start.Value != 0 {
		t.Fatalf("stmt.Start = %#v, want Int(0)", stmt.Start)
	}
	end, ok := stmt.End.(*ast.IntLiteral)
	if !ok || end.Value != 10 {
		t.Fatalf("stmt.End = %#v, want Int(10)", stmt.End)
	}
}

func TestLoopForIn(t *testing.T) {
	p := testParser("for [xs] |v| { v; }")
	program := p.Parse()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.LoopForInStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.LoopForInStatement", program.Statements[0])
	}
	if stmt.Var.Value != "v" {
		t.Fatalf("stmt.Var.Value = %q, want v", stmt.Var.Value)
	}
	ident, ok := stmt.Iterable.(*ast.Identifier)
	if !ok || ident.Value != "xs" {
		t.Fatalf("stmt.Iterable = %#v, want Identifier(xs)", stmt.Iterable)
	}
}

func TestLoopWhile(t *testing.T) {
	p := testParser("while x { x; }")
	program := p.Parse()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.LoopWhileStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.LoopWhileStatement", program.Statements[0])
	}
	if _, ok := stmt.Condition.(*ast.Identifier); !ok {
		t.Fatalf("stmt.Condition = %#v, want *ast.Identifier", stmt.Condition)
	}
}

func TestLoopInfinite(t *testing.T) {
	p := testParser("loop { true; }")
	program := p.Parse()
	checkParserErrors(t, p)

	if _, ok := program.Statements[0].(*ast.LoopInfiniteStatement); !ok {
		t.Fatalf("statement is %T, want *ast.LoopInfiniteStatement", program.Statements[0])
	}
}

func TestReturnStatement(t *testing.T) {
	p := testParser("return 5;")
	program := p.Parse()
	checkParserErrors(t, p)

	ret, ok := program.Statements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ReturnStatement", program.Statements[0])
	}
	if lit, ok := ret.Value.(*ast.IntLiteral); !ok || lit.Value != 5 {
		t.Fatalf("ret.Value = %#v, want Int(5)", ret.Value)
	}
}

func TestCallAndIndexExpressions(t *testing.T) {
	p := testParser("add(1, 2)[0];")
	program := p.Parse()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.ExpressionStatement)
	idx, ok := stmt.Expr.(*ast.IndexExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.IndexExpression", stmt.Expr)
	}
	call, ok := idx.Left.(*ast.CallExpression)
	if !ok {
		t.Fatalf("idx.Left is %T, want *ast.CallExpression", idx.Left)
	}
	if len(call.Arguments) != 2 {
		t.Fatalf("call.Arguments has %d entries, want 2", len(call.Arguments))
	}
}

func TestArrayAndHashLiterals(t *testing.T) {
	p := testParser(`[1, 2, 3]; {"a": 1, "b": 2};`)
	program := p.Parse()
	checkParserErrors(t, p)

	arrStmt := program.Statements[0].(*ast.ExpressionStatement)
	arr, ok := arrStmt.Expr.(*ast.ArrayLiteral)
	if !ok || len(arr.Elements) != 3 {
		t.Fatalf("expression = %#v, want 3-element ArrayLiteral", arrStmt.Expr)
	}

	hashStmt := program.Statements[1].(*ast.ExpressionStatement)
	hash, ok := hashStmt.Expr.(*ast.HashLiteral)
	if !ok || len(hash.Keys) != 2 {
		t.Fatalf("expression = %#v, want 2-entry HashLiteral", hashStmt.Expr)
	}
}

func TestUnaryExpressions(t *testing.T) {
	p := testParser("-5; !true;")
	program := p.Parse()
	checkParserErrors(t, p)

	neg := program.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.UnaryExpression)
	if neg.Operator != "-" {
		t.Errorf("neg.Operator = %q, want -", neg.Operator)
	}
	bang := program.Statements[1].(*ast.ExpressionStatement).Expr.(*ast.UnaryExpression)
	if bang.Operator != "!" {
		t.Errorf("bang.Operator = %q, want !", bang.Operator)
	}
}

func TestErrorRecoverySkipsMalformedStatement(t *testing.T) {
	p := testParser("val = ; val y = 1;")
	program := p.Parse()

	if len(p.Errors()) == 0 {
		t.Fatal("expected at least one parse error")
	}

	found := false
	for _, stmt := range program.Statements {
		if v, ok := stmt.(*ast.ValStatement); ok && v.Name != nil && v.Name.Value == "y" {
			found = true
		}
	}
	if !found {
		t.Error("parser did not recover to parse the statement after the malformed one")
	}
}

func TestCommentAsExpression(t *testing.T) {
	l := lexer.New("# a comment\ntrue;", lexer.WithPreserveComments(true))
	p := New(l)
	program := p.Parse()
	checkParserErrors(t, p)

	if len(program.Statements) != 2 {
		t.Fatalf("program has %d statements, want 2", len(program.Statements))
	}
	if _, ok := program.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.CommentExpression); !ok {
		t.Fatalf("statement 0 expression is %T, want *ast.CommentExpression", program.Statements[0])
	}
}
