package ast

// TypeExpression is a type annotation attached to a parameter, return type,
// or value binding. Vela's type system is not checked by the evaluator; the
// annotation is carried through the tree for the transpiler and for source
// round-tripping only.
type TypeExpression struct {
	BaseNode
	Name string
}

func (*TypeExpression) expressionNode() {}
func (t *TypeExpression) String() string { return t.Name }
