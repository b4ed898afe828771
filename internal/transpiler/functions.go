package transpiler

import (
	"fmt"
	"strings"

	"github.com/vela-lang/vela/pkg/ast"
)

func (t *Transpiler) transpileParams(params []*ast.FunctionParam) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = t.transpileIdentifier(p.Name)
	}
	return strings.Join(parts, ", ")
}

func (t *Transpiler) transpileFunction(f *ast.FunctionLiteral) string {
	var name string
	if f.Name != nil {
		name = t.transpileIdentifier(f.Name)
	} else if t.Mode == Json {
		name = "null"
	}
	params := t.transpileParams(f.Params)
	body := t.transpileFunctionBody(f.Body)

	switch t.Mode {
	case Json:
		return fmt.Sprintf(`{"body": %s, "id": %s, "params": [%s], "type": "FunctionDeclaration"}`, body, name, params)
	case Pretty:
		return fmt.Sprintf("function %s(%s) {\n\t%s\n}", name, params, body)
	default:
		return fmt.Sprintf("function %s(%s) { %s }", name, params, body)
	}
}

func (t *Transpiler) transpileClosure(c *ast.ClosureLiteral) string {
	params := t.transpileParams(c.Params)
	body := t.transpileFunctionBody(c.Body)

	switch t.Mode {
	case Json:
		return fmt.Sprintf(`{"body": %s, "params": [%s], "type": "ArrowFunctionExpression"}`, body, params)
	case Pretty:
		return fmt.Sprintf("(%s) => {\n\t%s\n}", params, body)
	default:
		return fmt.Sprintf("(%s) => { %s }", params, body)
	}
}
