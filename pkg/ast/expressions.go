package ast

import (
	"fmt"
	"strings"
)

// GroupedExpression is a parenthesized expression: `(expr)`.
type GroupedExpression struct {
	BaseNode
	Expr Expression
}

func (*GroupedExpression) expressionNode() {}
func (g *GroupedExpression) String() string {
	return "(" + g.Expr.String() + ")"
}

// UnaryExpression is a prefix operator applied to a single operand: `-x`, `!x`.
type UnaryExpression struct {
	BaseNode
	Operator string
	Right    Expression
}

func (*UnaryExpression) expressionNode() {}
func (u *UnaryExpression) String() string {
	return "(" + u.Operator + u.Right.String() + ")"
}

// BinaryExpression is an infix operator applied to two operands: `a + b`.
type BinaryExpression struct {
	BaseNode
	Left     Expression
	Operator string
	Right    Expression
}

func (*BinaryExpression) expressionNode() {}
func (b *BinaryExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Operator, b.Right.String())
}

// IndexExpression is a subscript applied to a collection: `xs[0]`.
type IndexExpression struct {
	BaseNode
	Left  Expression
	Index Expression
}

func (*IndexExpression) expressionNode() {}
func (i *IndexExpression) String() string {
	return fmt.Sprintf("(%s[%s])", i.Left.String(), i.Index.String())
}

// CallExpression invokes a callee with an ordered argument list: `f(a, b)`.
type CallExpression struct {
	BaseNode
	Callee    Expression
	Arguments []Expression
}

func (*CallExpression) expressionNode() {}
func (c *CallExpression) String() string {
	parts := make([]string, len(c.Arguments))
	for i, a := range c.Arguments {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee.String(), strings.Join(parts, ", "))
}
