// Package ast defines the abstract syntax tree node types produced by the
// parser and consumed by the interpreter and transpiler.
//
// Node data is deliberately "dumb": unlike the trait-object design with
// per-node eval/transpile methods and downcasting this language's
// implementations elsewhere have used, Vela follows a closed tagged-union
// shape: one concrete Go struct per node kind, and exhaustive type-switch
// dispatch living in the interpreter and transpiler packages instead of on
// the nodes themselves.
// Every node still renders its own source-like text via String(), since
// that capability is cheap and self-contained.
package ast

import (
	"strings"

	"github.com/vela-lang/vela/pkg/token"
)

// Node is the base capability every AST node provides: its source position
// and a source-like textual rendering.
type Node interface {
	Pos() token.Position
	String() string
}

// Expression is a node that produces a value when evaluated.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action without itself producing a
// value usable by an enclosing expression.
type Statement interface {
	Node
	statementNode()
}

// BaseNode carries the token an AST node was built from, giving every node
// a Pos() for free.
type BaseNode struct {
	Token token.Token
}

// Pos returns the node's source position.
func (b BaseNode) Pos() token.Position { return b.Token.Pos }

// Program is the root of every parsed source file: an ordered sequence of
// top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var sb strings.Builder
	for _, s := range p.Statements {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
