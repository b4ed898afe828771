package ast

import "strings"

// ArrayLiteral is an ordered sequence of element expressions: `[a, b, c]`.
type ArrayLiteral struct {
	BaseNode
	Elements []Expression
}

func (*ArrayLiteral) expressionNode() {}
func (a *ArrayLiteral) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// HashLiteral is an ordered sequence of key/value pairs: `{k1: v1, k2: v2}`.
// Keys are restricted at evaluation time to Bool, Int, or Str; the parser
// accepts any expression so that a bad key type produces a clean eval-time
// error instead of a parse-time one.
type HashLiteral struct {
	BaseNode
	Keys   []Expression
	Values []Expression
}

func (*HashLiteral) expressionNode() {}
func (h *HashLiteral) String() string {
	parts := make([]string, len(h.Keys))
	for i := range h.Keys {
		parts[i] = h.Keys[i].String() + ": " + h.Values[i].String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
