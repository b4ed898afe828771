package transpiler

import (
	"fmt"
	"strings"

	"github.com/vela-lang/vela/pkg/ast"
)

// Transpiler renders AST nodes as JS text in a single Mode, selected once
// per run and carried through every recursive call.
type Transpiler struct {
	Mode Mode
}

// New returns a Transpiler fixed to mode for the lifetime of one transpile
// run.
func New(mode Mode) *Transpiler {
	return &Transpiler{Mode: mode}
}

// Transpile renders node as JS text. A TranspileError is unreachable on a
// well-formed AST produced by the parser; it only surfaces here if an
// unrecognized node type is handed in directly.
func (t *Transpiler) Transpile(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.Program:
		return t.transpileProgram(n), nil
	case ast.Statement:
		return t.transpileStatement(n), nil
	case ast.Expression:
		return t.transpileExpression(n), nil
	default:
		return "", fmt.Errorf("transpile: unreachable node type %T", n)
	}
}

func (t *Transpiler) transpileProgram(p *ast.Program) string {
	var parts []string
	for _, s := range p.Statements {
		parts = append(parts, t.transpileStatement(s))
	}

	if t.Mode == Json {
		return fmt.Sprintf(`{"body": [%s], "type": "Program"}`, strings.Join(parts, ", "))
	}
	return strings.Join(parts, "")
}

func (t *Transpiler) transpileStatement(s ast.Statement) string {
	switch n := s.(type) {
	case *ast.ValStatement:
		return t.transpileVal(n)
	case *ast.ReturnStatement:
		return t.transpileReturn(n)
	case *ast.ExpressionStatement:
		if n.Expr == nil {
			return ""
		}
		return t.transpileExpression(n.Expr)
	case *ast.LoopInfiniteStatement:
		return t.transpileLoopInfinite(n)
	case *ast.LoopWhileStatement:
		return t.transpileLoopWhile(n)
	case *ast.LoopForRangeStatement:
		return t.transpileLoopForRange(n)
	case *ast.LoopForInStatement:
		return t.transpileLoopForIn(n)
	case *ast.ShebangStatement:
		// No JS equivalent; a shebang has no runtime effect and is dropped
		// from emitted output.
		return ""
	default:
		return ""
	}
}

func (t *Transpiler) transpileVal(v *ast.ValStatement) string {
	name := t.transpileExpression(v.Name)
	value := t.transpileExpression(v.Value)

	if t.Mode == Json {
		return fmt.Sprintf(`{"declarations": [{"id": %s, "init": %s, "type": "VariableDeclarator"}], "kind": "var", "type": "VariableDeclaration"}`,
			name, value)
	}
	return fmt.Sprintf("var %s = %s;\n", name, value)
}

func (t *Transpiler) transpileReturn(r *ast.ReturnStatement) string {
	value := t.transpileExpression(r.Value)

	if t.Mode == Json {
		return fmt.Sprintf(`{"argument": %s, "type": "ReturnStatement"}`, value)
	}
	return fmt.Sprintf("return %s;", value)
}

// transpileBlock renders a block's statements verbatim, with no return
// wrapping. Used for if/else branches and loop bodies, none of which are
// evaluated for their trailing value in JS the way they are by the
// interpreter.
func (t *Transpiler) transpileBlock(b *ast.BlockStatement) string {
	parts := make([]string, len(b.Statements))
	for i, stmt := range b.Statements {
		parts[i] = t.transpileStatement(stmt)
	}

	if t.Mode == Json {
		return fmt.Sprintf(`{"body": [%s], "type": "BlockStatement"}`, strings.Join(parts, ", "))
	}
	return strings.Join(parts, "")
}

// transpileFunctionBody renders a function or closure body. Its final
// statement is wrapped in a return when that statement is a bare
// expression with no trailing semicolon, mirroring how the interpreter
// treats the last statement's value as the block's result (the interpreter
// does so with or without a semicolon).
func (t *Transpiler) transpileFunctionBody(b *ast.BlockStatement) string {
	var parts []string
	for i, stmt := range b.Statements {
		if i == len(b.Statements)-1 {
			if expr, ok := stmt.(*ast.ExpressionStatement); ok && expr.Expr != nil && !expr.HasSemicolon {
				parts = append(parts, t.transpileReturn(&ast.ReturnStatement{Value: expr.Expr}))
				continue
			}
		}
		parts = append(parts, t.transpileStatement(stmt))
	}

	if t.Mode == Json {
		return fmt.Sprintf(`{"body": [%s], "type": "BlockStatement"}`, strings.Join(parts, ", "))
	}
	return strings.Join(parts, "")
}

func (t *Transpiler) transpileLoopInfinite(l *ast.LoopInfiniteStatement) string {
	body := t.transpileBlock(l.Body)

	switch t.Mode {
	case Json:
		return fmt.Sprintf(`{"body": %s, "init": null, "test": null, "update": null, "type": "ForStatement"}`, body)
	case Pretty:
		return fmt.Sprintf("for (;;) {\n\t%s\n}", body)
	default:
		return fmt.Sprintf("for (;;) { %s }", body)
	}
}

func (t *Transpiler) transpileLoopWhile(l *ast.LoopWhileStatement) string {
	cond := t.transpileExpression(l.Condition)
	body := t.transpileBlock(l.Body)

	switch t.Mode {
	case Json:
		return fmt.Sprintf(`{"body": %s, "test": %s, "type": "WhileStatement"}`, body, cond)
	case Pretty:
		return fmt.Sprintf("while (%s) {\n\t%s\n}", cond, body)
	default:
		return fmt.Sprintf("while (%s) { %s }", cond, body)
	}
}

// loopRangeSentinel is the fixed counter name the transpiler emits for a
// range loop, matching the source language's documented `$$x` convention.
const loopRangeSentinel = "$$x"

func (t *Transpiler) transpileLoopForRange(l *ast.LoopForRangeStatement) string {
	start := l.Start.String()
	end := l.End.String()
	body := t.transpileBlock(l.Body)

	switch t.Mode {
	case Json:
		return fmt.Sprintf(`{"body": %s, "init": {"declarations": [{"id": {"name": "%s", "type": "Identifier"}, "init": {"type": "Literal", "value": %s}, "type": "VariableDeclarator"}], "kind": "var", "type": "VariableDeclaration"}, "test": {"left": {"name": "%s", "type": "Identifier"}, "operator": "<", "right": {"type": "Literal", "value": %s}, "type": "BinaryExpression"}, "type": "ForStatement", "update": {"argument": {"name": "%s", "type": "Identifier"}, "operator": "++", "type": "UpdateExpression"}}`,
			body, loopRangeSentinel, start, loopRangeSentinel, end, loopRangeSentinel)
	case Pretty:
		return fmt.Sprintf("for (var %s = %s; %s < %s; %s++) {\n\t%s\n}", loopRangeSentinel, start, loopRangeSentinel, end, loopRangeSentinel, body)
	default:
		return fmt.Sprintf("for (var %s = %s; %s < %s; %s++) { %s }", loopRangeSentinel, start, loopRangeSentinel, end, loopRangeSentinel, body)
	}
}

func (t *Transpiler) transpileLoopForIn(l *ast.LoopForInStatement) string {
	variable := t.transpileExpression(l.Var)
	iterable := t.transpileExpression(l.Iterable)
	body := t.transpileBlock(l.Body)

	switch t.Mode {
	case Json:
		return fmt.Sprintf(`{"body": %s, "left": {"declarations": [{"id": %s, "init": null, "type": "VariableDeclarator"}], "kind": "var", "type": "VariableDeclaration"}, "right": %s, "type": "ForInStatement"}`,
			body, variable, iterable)
	case Pretty:
		return fmt.Sprintf("for (var %s in %s) {\n\t%s\n}", variable, iterable, body)
	default:
		return fmt.Sprintf("for (var %s in %s) { %s }", variable, iterable, body)
	}
}
