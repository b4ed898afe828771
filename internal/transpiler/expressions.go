package transpiler

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/vela-lang/vela/pkg/ast"
)

func (t *Transpiler) transpileExpression(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		return t.transpileIdentifier(n)
	case *ast.BoolLiteral:
		return t.transpileLiteral(n.String())
	case *ast.IntLiteral:
		return t.transpileLiteral(n.String())
	case *ast.FloatLiteral:
		return t.transpileLiteral(n.String())
	case *ast.StrLiteral:
		return t.transpileLiteral(n.String())
	case *ast.CharLiteral:
		return n.String()
	case *ast.GroupedExpression:
		return "(" + t.transpileExpression(n.Expr) + ")"
	case *ast.UnaryExpression:
		return t.transpileUnary(n)
	case *ast.BinaryExpression:
		return t.transpileBinary(n)
	case *ast.IndexExpression:
		return t.transpileIndex(n)
	case *ast.CallExpression:
		return t.transpileCall(n)
	case *ast.ArrayLiteral:
		return t.transpileArray(n)
	case *ast.HashLiteral:
		return t.transpileHash(n)
	case *ast.IfExpression:
		return t.transpileIf(n)
	case *ast.FunctionLiteral:
		return t.transpileFunction(n)
	case *ast.ClosureLiteral:
		return t.transpileClosure(n)
	case *ast.TypeExpression:
		return n.Name
	case *ast.CommentExpression:
		// A preserved comment carries no JS equivalent.
		return ""
	default:
		return ""
	}
}

func (t *Transpiler) transpileIdentifier(i *ast.Identifier) string {
	if t.Mode == Json {
		return fmt.Sprintf(`{"name": "%s", "type": "Identifier"}`, strcase.ToLowerCamel(i.Value))
	}
	return i.Value
}

func (t *Transpiler) transpileLiteral(text string) string {
	if t.Mode == Json {
		return fmt.Sprintf(`{"type": "Literal", "raw": "%s", "value": %s}`, text, text)
	}
	return text
}

func (t *Transpiler) transpileUnary(u *ast.UnaryExpression) string {
	operand := t.transpileExpression(u.Right)

	if t.Mode == Json {
		return fmt.Sprintf(`{"argument": %s, "operator": "%s", "prefix": true, "type": "UnaryExpression"}`, operand, u.Operator)
	}
	return fmt.Sprintf("%s%s", u.Operator, operand)
}

func (t *Transpiler) transpileBinary(b *ast.BinaryExpression) string {
	left := t.transpileExpression(b.Left)
	right := t.transpileExpression(b.Right)
	// Operator mapping is identity for arithmetic and comparison; `==`
	// maps to JS `==` as emitted (see DESIGN.md for the `===` open question).
	operator := b.Operator

	if t.Mode == Json {
		return fmt.Sprintf(`{"left": %s, "operator": "%s", "right": %s, "type": "BinaryExpression"}`, left, operator, right)
	}
	return fmt.Sprintf("%s %s %s", left, operator, right)
}

func (t *Transpiler) transpileIndex(i *ast.IndexExpression) string {
	object := t.transpileExpression(i.Left)
	property := t.transpileExpression(i.Index)

	if t.Mode == Json {
		return fmt.Sprintf(`{"computed": true, "object": %s, "property": %s, "type": "MemberExpression"}`, object, property)
	}
	return fmt.Sprintf("%s[%s]", object, property)
}

func (t *Transpiler) transpileCall(c *ast.CallExpression) string {
	callee := t.transpileExpression(c.Callee)
	args := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		args[i] = t.transpileExpression(a)
	}
	joined := strings.Join(args, ", ")

	if t.Mode == Json {
		return fmt.Sprintf(`{"arguments": [%s], "callee": %s, "type": "CallExpression"}`, joined, callee)
	}
	return fmt.Sprintf("%s(%s)", callee, joined)
}

func (t *Transpiler) transpileArray(a *ast.ArrayLiteral) string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = t.transpileExpression(e)
	}

	switch t.Mode {
	case Json:
		return fmt.Sprintf(`{"elements": [%s], "type": "ArrayExpression"}`, strings.Join(parts, ", "))
	case Pretty:
		return fmt.Sprintf("[\n%s\n]", strings.Join(parts, "\n"))
	default:
		return fmt.Sprintf("[%s]", strings.Join(parts, ", "))
	}
}

func (t *Transpiler) transpileHash(h *ast.HashLiteral) string {
	switch t.Mode {
	case Json:
		props := make([]string, len(h.Keys))
		for i := range h.Keys {
			key := t.transpileExpression(h.Keys[i])
			value := t.transpileExpression(h.Values[i])
			props[i] = fmt.Sprintf(`{"key": %s, "kind": "init", "type": "Property", "value": %s}`, key, value)
		}
		return fmt.Sprintf(`{"properties": [%s], "type": "ObjectExpression"}`, strings.Join(props, ", "))
	case Pretty:
		pairs := make([]string, len(h.Keys))
		for i := range h.Keys {
			key := t.transpileExpression(h.Keys[i])
			value := t.transpileExpression(h.Values[i])
			pairs[i] = fmt.Sprintf("\n%s: %s\n", key, value)
		}
		return fmt.Sprintf("{ %s }", strings.Join(pairs, ", "))
	default:
		return h.String()
	}
}

func (t *Transpiler) transpileIf(i *ast.IfExpression) string {
	condition := t.transpileExpression(i.Condition)
	consequence := t.transpileBlock(i.Consequence)

	var alternative string
	if i.Alternative != nil {
		alternative = t.transpileBlock(i.Alternative)
	}

	switch t.Mode {
	case Json:
		var alt string
		if i.Alternative != nil {
			alt = alternative
		} else {
			alt = "null"
		}
		return fmt.Sprintf(`{"alternate": %s, "consequent": %s, "test": %s, "type": "IfStatement"}`, alt, consequence, condition)
	case Inline:
		out := fmt.Sprintf("if (%s) { %s }", condition, consequence)
		if i.Alternative != nil {
			out += fmt.Sprintf(" else { %s }", alternative)
		}
		return out
	default: // Pretty
		out := fmt.Sprintf("if (%s) {\n\t%s\n}", condition, consequence)
		if i.Alternative != nil {
			out += fmt.Sprintf(" else {\n\t%s\n}", alternative)
		}
		return out
	}
}
