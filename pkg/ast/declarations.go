package ast

import "strings"

// ValStatement binds Name to Value in the enclosing scope: `val x : int = 1;`.
// Type is nil when the declaration carries no annotation. Immutable is
// always true in this language revision (there is no `var` counterpart),
// but is carried as a field rather than assumed, matching the data model.
type ValStatement struct {
	BaseNode
	Name      *Identifier
	Type      *TypeExpression
	Value     Expression
	Immutable bool
}

func (*ValStatement) statementNode() {}
func (v *ValStatement) String() string {
	out := "val " + v.Name.String()
	if v.Type != nil {
		out += " : " + v.Type.String()
	}
	return out + " = " + v.Value.String() + ";"
}

// FunctionParam is a single named parameter in a function's signature.
// Type is nil when the parameter carries no annotation.
type FunctionParam struct {
	Name *Identifier
	Type *TypeExpression
}

func (p *FunctionParam) String() string {
	if p.Type == nil {
		return p.Name.String()
	}
	return p.Name.String() + ": " + p.Type.String()
}

// FunctionLiteral is a named or anonymous function declared with the `ƒ`
// keyword: `ƒ add(a, b) { a + b }`.
type FunctionLiteral struct {
	BaseNode
	Name       *Identifier
	Params     []*FunctionParam
	ReturnType *TypeExpression
	Body       *BlockStatement
}

func (*FunctionLiteral) expressionNode() {}
func (f *FunctionLiteral) String() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = p.String()
	}
	out := "ƒ"
	if f.Name != nil {
		out += " " + f.Name.String()
	}
	out += "(" + strings.Join(parts, ", ") + ")"
	if f.ReturnType != nil {
		out += " -> " + f.ReturnType.String()
	}
	return out + " { " + f.Body.String() + " }"
}

// ClosureLiteral is a pipe-delimited anonymous function with a braced body:
// `|x| { x + 1 }`.
// ReturnType is nil when the closure carries no declared return type.
type ClosureLiteral struct {
	BaseNode
	Params     []*FunctionParam
	ReturnType *TypeExpression
	Body       *BlockStatement
}

func (*ClosureLiteral) expressionNode() {}
func (c *ClosureLiteral) String() string {
	parts := make([]string, len(c.Params))
	for i, p := range c.Params {
		parts[i] = p.String()
	}
	out := "|" + strings.Join(parts, ", ") + "|"
	if c.ReturnType != nil {
		out += " -> " + c.ReturnType.String()
	}
	return out + " { " + c.Body.String() + " }"
}
