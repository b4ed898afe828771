package interp

import (
	"strconv"
	"strings"

	"github.com/vela-lang/vela/pkg/ast"
)

// Value is a runtime value produced by evaluation. Every concrete literal
// and structural type in the language implements it.
type Value interface {
	Kind() string
	String() string
}

// BooleanValue wraps a bool.
type BooleanValue struct{ Value bool }

func (*BooleanValue) Kind() string { return "Bool" }
func (b *BooleanValue) String() string {
	return strconv.FormatBool(b.Value)
}

// IntegerValue wraps an int64.
type IntegerValue struct{ Value int64 }

func (*IntegerValue) Kind() string { return "Int" }
func (i *IntegerValue) String() string {
	return strconv.FormatInt(i.Value, 10)
}

// FloatValue wraps a float64.
type FloatValue struct{ Value float64 }

func (*FloatValue) Kind() string { return "Float" }
func (f *FloatValue) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// StringValue wraps a string, held NFC-normalized (see strnorm.go).
type StringValue struct{ Value string }

func (*StringValue) Kind() string { return "Str" }
func (s *StringValue) String() string { return s.Value }

// CharValue wraps a single rune.
type CharValue struct{ Value rune }

func (*CharValue) Kind() string { return "Char" }
func (c *CharValue) String() string { return string(c.Value) }

// ArrayValue is an ordered, insertion-order sequence of elements.
type ArrayValue struct{ Elements []Value }

func (*ArrayValue) Kind() string { return "Array" }
func (a *ArrayValue) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// HashKey is one key/value entry of a HashValue. Key is restricted to Bool,
// Int, or Str, which eval checks when it evaluates a hash literal.
type HashKey struct {
	Key   Value
	Value Value
}

// HashValue is an ordered sequence of key/value pairs, preserving insertion
// order for both iteration and positional indexing.
type HashValue struct{ Pairs []HashKey }

func (*HashValue) Kind() string { return "Hash" }
func (h *HashValue) String() string {
	parts := make([]string, len(h.Pairs))
	for i, p := range h.Pairs {
		parts[i] = p.Key.String() + ": " + p.Value.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// FunctionValue is a callable closing over the Scope visible at its
// definition site. Params carries each parameter's name and declared type;
// the interpreter binds arguments by name and does not enforce declared
// types at call time.
type FunctionValue struct {
	Name     string
	Params   []*ast.FunctionParam
	Body     *ast.BlockStatement
	Captured *Scope
}

func (*FunctionValue) Kind() string { return "Function" }
func (f *FunctionValue) String() string {
	if f.Name != "" {
		return "ƒ " + f.Name
	}
	return "ƒ <anonymous>"
}

// VoidValue is the designated "no value" sentinel returned by an if
// expression with no matching branch. The data model's prose describes the
// source representation as an empty array; a dedicated variant makes that
// case distinguishable from a genuinely empty Array value (see DESIGN.md).
type VoidValue struct{}

func (VoidValue) Kind() string   { return "Void" }
func (VoidValue) String() string { return "void" }

// Void is the single shared VoidValue instance.
var Void = VoidValue{}

// Truthy implements the language's truthiness rule: Bool(false) is the only
// falsy value, everything else is truthy.
func Truthy(v Value) bool {
	if b, ok := v.(*BooleanValue); ok {
		return b.Value
	}
	return true
}
