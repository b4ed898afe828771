package interp

import (
	"github.com/vela-lang/vela/pkg/ast"
)

// returnValue wraps the value produced by a return statement so that
// evalSequence can detect it and short-circuit the remaining statements in
// its block, the way the original tree-walker's ikind() == Return check
// does. It is never visible outside this package: evalCall and the Program
// case of eval unwrap it before handing a result back to the caller.
type returnValue struct{ value Value }

func (*returnValue) Kind() string   { return "Return" }
func (r *returnValue) String() string { return r.value.String() }

// Interpreter drives evaluation over an AST, owning the currently active
// Scope. A fresh Interpreter from New starts with an empty root scope; one
// from NewWithOuter starts with a scope extending a given Scope.
type Interpreter struct {
	scope *Scope
}

// Option configures an Interpreter at construction time, following the same
// functional-options shape internal/lexer uses for its own settings.
type Option func(*Interpreter)

// WithMaxCallDepth bounds recursive closures: a call whose activation scope
// would exceed n enclosing scopes from the root fails with an EvalError
// instead of recursing until the Go stack overflows. n <= 0 means
// unlimited, the default.
func WithMaxCallDepth(n int) Option {
	return func(in *Interpreter) {
		in.scope.maxDepth = n
	}
}

// New creates an Interpreter with a fresh, empty root scope.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{scope: NewScope()}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// NewWithOuter creates an Interpreter whose root scope extends outer, so
// evaluation through it resolves names from outer without adding bindings
// to outer itself. Function calls do not go through it; evalCall builds
// its activation scope with NewActivationScope.
func NewWithOuter(outer *Scope, opts ...Option) *Interpreter {
	in := &Interpreter{scope: NewEnclosedScope(outer)}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Scope returns the interpreter's current scope.
func (in *Interpreter) Scope() *Scope { return in.scope }

// Eval drives a single top-level evaluation of node against the
// interpreter's current scope.
func (in *Interpreter) Eval(node ast.Node) (Value, error) {
	return eval(node, in.scope)
}

// eval is the exhaustive type-switch dispatch shared by every node kind,
// taking the scope explicitly so that nested evaluations (function bodies,
// block-as-expression, loop bodies) can thread a different scope than the
// interpreter's own without mutating it.
func eval(node ast.Node, scope *Scope) (Value, error) {
	switch n := node.(type) {

	case *ast.Program:
		val, err := evalSequence(n.Statements, scope)
		if err != nil {
			return nil, err
		}
		return unwrapReturn(val), nil

	case *ast.BlockStatement:
		return evalSequence(n.Statements, scope)

	case *ast.ExpressionStatement:
		if n.Expr == nil {
			return Void, nil
		}
		return eval(n.Expr, scope)

	case *ast.ShebangStatement:
		return Void, nil

	case *ast.CommentExpression:
		return Void, nil

	case *ast.ValStatement:
		val, err := eval(n.Value, scope)
		if err != nil {
			return nil, err
		}
		if err := scope.DefineVariable(n.Name.Value, val); err != nil {
			return nil, newEvalError(ErrRedefinition, "%s", err)
		}
		return Void, nil

	case *ast.ReturnStatement:
		if n.Value == nil {
			return &returnValue{value: Void}, nil
		}
		val, err := eval(n.Value, scope)
		if err != nil {
			return nil, err
		}
		return &returnValue{value: val}, nil

	case *ast.LoopInfiniteStatement:
		val, err := evalSequence(n.Body.Statements, scope)
		if err != nil {
			return nil, err
		}
		if isReturn(val) {
			return val, nil
		}
		return Void, nil

	case *ast.LoopWhileStatement:
		for {
			cond, err := eval(n.Condition, scope)
			if err != nil {
				return nil, err
			}
			if !Truthy(cond) {
				break
			}
			val, err := evalSequence(n.Body.Statements, scope)
			if err != nil {
				return nil, err
			}
			if isReturn(val) {
				return val, nil
			}
		}
		return Void, nil

	case *ast.LoopForRangeStatement:
		start, err := eval(n.Start, scope)
		if err != nil {
			return nil, err
		}
		end, err := eval(n.End, scope)
		if err != nil {
			return nil, err
		}
		startInt, ok := start.(*IntegerValue)
		if !ok {
			return nil, newEvalError(ErrTypeMismatch, "for range start must be Int, got %s", start.Kind())
		}
		endInt, ok := end.(*IntegerValue)
		if !ok {
			return nil, newEvalError(ErrTypeMismatch, "for range end must be Int, got %s", end.Kind())
		}
		for i := startInt.Value; i < endInt.Value; i++ {
			val, err := evalSequence(n.Body.Statements, scope)
			if err != nil {
				return nil, err
			}
			if isReturn(val) {
				return val, nil
			}
		}
		return Void, nil

	case *ast.LoopForInStatement:
		iterable, err := eval(n.Iterable, scope)
		if err != nil {
			return nil, err
		}
		arr, ok := iterable.(*ArrayValue)
		if !ok {
			return nil, newEvalError(ErrNonIterable, "cannot iterate over %s", iterable.Kind())
		}
		for _, elem := range arr.Elements {
			loopScope := NewEnclosedScope(scope)
			if err := loopScope.DefineVariable(n.Var.Value, elem); err != nil {
				return nil, newEvalError(ErrRedefinition, "%s", err)
			}
			val, err := evalSequence(n.Body.Statements, loopScope)
			if err != nil {
				return nil, err
			}
			if isReturn(val) {
				return val, nil
			}
		}
		return Void, nil

	case *ast.FunctionLiteral:
		fn := &FunctionValue{Params: n.Params, Body: n.Body, Captured: scope}
		if n.Name != nil {
			fn.Name = n.Name.Value
			if err := scope.DefineFunction(n.Name.Value, fn); err != nil {
				return nil, newEvalError(ErrRedefinition, "%s", err)
			}
		}
		return fn, nil

	case *ast.ClosureLiteral:
		return &FunctionValue{Params: n.Params, Body: n.Body, Captured: scope}, nil

	case *ast.Identifier:
		val, ok := scope.Resolve(n.Value)
		if !ok {
			return nil, newEvalError(ErrUnknownIdentifier, "unknown identifier %q", n.Value)
		}
		return val, nil

	case *ast.BoolLiteral:
		return &BooleanValue{Value: n.Value}, nil

	case *ast.IntLiteral:
		return &IntegerValue{Value: n.Value}, nil

	case *ast.FloatLiteral:
		return &FloatValue{Value: n.Value}, nil

	case *ast.StrLiteral:
		return &StringValue{Value: normalizeString(n.Value)}, nil

	case *ast.CharLiteral:
		return &CharValue{Value: n.Value}, nil

	case *ast.ArrayLiteral:
		elements := make([]Value, len(n.Elements))
		for i, e := range n.Elements {
			val, err := eval(e, scope)
			if err != nil {
				return nil, err
			}
			elements[i] = val
		}
		return &ArrayValue{Elements: elements}, nil

	case *ast.HashLiteral:
		hash := &HashValue{}
		for i, keyExpr := range n.Keys {
			key, err := eval(keyExpr, scope)
			if err != nil {
				return nil, err
			}
			switch k := key.(type) {
			case *BooleanValue, *IntegerValue:
			case *StringValue:
				k.Value = normalizeString(k.Value)
			default:
				return nil, newEvalError(ErrTypeMismatch, "hash key must be Bool, Int, or Str, got %s", key.Kind())
			}
			val, err := eval(n.Values[i], scope)
			if err != nil {
				return nil, err
			}
			hash.Pairs = append(hash.Pairs, HashKey{Key: key, Value: val})
		}
		return hash, nil

	case *ast.GroupedExpression:
		return eval(n.Expr, scope)

	case *ast.UnaryExpression:
		return evalUnary(n, scope)

	case *ast.BinaryExpression:
		return evalBinary(n, scope)

	case *ast.IndexExpression:
		return evalIndex(n, scope)

	case *ast.CallExpression:
		return evalCall(n, scope)

	case *ast.IfExpression:
		return evalIf(n, scope)

	default:
		return nil, newEvalError(ErrTypeMismatch, "cannot evaluate node of type %T", node)
	}
}

// evalSequence evaluates stmts in order, threading scope, and returns early
// with a *returnValue the moment one is produced. A return statement
// anywhere in the sequence, including inside a nested if/loop block, stops
// the remaining statements from running. With no statements, or when the
// last statement carries no value, the result is Void.
func evalSequence(stmts []ast.Statement, scope *Scope) (Value, error) {
	var result Value = Void
	for _, stmt := range stmts {
		val, err := eval(stmt, scope)
		if err != nil {
			return nil, err
		}
		result = val
		if isReturn(result) {
			return result, nil
		}
	}
	return result, nil
}

func isReturn(v Value) bool {
	_, ok := v.(*returnValue)
	return ok
}

func unwrapReturn(v Value) Value {
	if rv, ok := v.(*returnValue); ok {
		return rv.value
	}
	return v
}

func evalIf(n *ast.IfExpression, scope *Scope) (Value, error) {
	cond, err := eval(n.Condition, scope)
	if err != nil {
		return nil, err
	}
	if Truthy(cond) {
		return evalSequence(n.Consequence.Statements, scope)
	}
	if n.Alternative != nil {
		return evalSequence(n.Alternative.Statements, scope)
	}
	return Void, nil
}

func evalCall(n *ast.CallExpression, scope *Scope) (Value, error) {
	calleeVal, err := eval(n.Callee, scope)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(*FunctionValue)
	if !ok {
		return nil, newEvalError(ErrNonCallee, "cannot call a %s value", calleeVal.Kind())
	}

	if len(n.Arguments) != len(fn.Params) {
		return nil, newEvalError(ErrArityMismatch, "function %s expects %d arguments, got %d", fn.String(), len(fn.Params), len(n.Arguments))
	}

	args := make([]Value, len(n.Arguments))
	for i, a := range n.Arguments {
		val, err := eval(a, scope)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	activation := NewActivationScope(fn.Captured, scope)
	if activation.ExceedsMaxDepth() {
		return nil, newEvalError(ErrMaxCallDepth, "call depth exceeds configured maximum (%d)", activation.maxDepth)
	}
	for i, param := range fn.Params {
		if err := activation.DefineVariable(param.Name.Value, args[i]); err != nil {
			return nil, newEvalError(ErrRedefinition, "%s", err)
		}
	}

	result, err := evalSequence(fn.Body.Statements, activation)
	if err != nil {
		return nil, err
	}
	return unwrapReturn(result), nil
}

func evalIndex(n *ast.IndexExpression, scope *Scope) (Value, error) {
	left, err := eval(n.Left, scope)
	if err != nil {
		return nil, err
	}
	index, err := eval(n.Index, scope)
	if err != nil {
		return nil, err
	}

	switch coll := left.(type) {
	case *ArrayValue:
		idx, ok := index.(*IntegerValue)
		if !ok {
			return nil, newEvalError(ErrTypeMismatch, "array index must be Int, got %s", index.Kind())
		}
		if idx.Value < 0 || int(idx.Value) >= len(coll.Elements) {
			return nil, newEvalError(ErrOutOfBounds, "array index %d out of bounds (length %d)", idx.Value, len(coll.Elements))
		}
		return coll.Elements[idx.Value], nil

	case *HashValue:
		switch idx := index.(type) {
		case *IntegerValue:
			if idx.Value < 0 || int(idx.Value) >= len(coll.Pairs) {
				return nil, newEvalError(ErrOutOfBounds, "hash position %d out of bounds (length %d)", idx.Value, len(coll.Pairs))
			}
			return coll.Pairs[idx.Value].Value, nil
		case *BooleanValue:
			for _, pair := range coll.Pairs {
				if b, ok := pair.Key.(*BooleanValue); ok && b.Value == idx.Value {
					return pair.Value, nil
				}
			}
		case *StringValue:
			key := normalizeString(idx.Value)
			for _, pair := range coll.Pairs {
				if s, ok := pair.Key.(*StringValue); ok && s.Value == key {
					return pair.Value, nil
				}
			}
		default:
			return nil, newEvalError(ErrTypeMismatch, "hash key must be Bool, Int, or Str, got %s", index.Kind())
		}
		return nil, newEvalError(ErrMissingHashKey, "no hash entry for key %s", index.String())

	default:
		return nil, newEvalError(ErrTypeMismatch, "cannot index a %s value", left.Kind())
	}
}

func evalUnary(n *ast.UnaryExpression, scope *Scope) (Value, error) {
	right, err := eval(n.Right, scope)
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case "!":
		switch v := right.(type) {
		case *BooleanValue:
			return &BooleanValue{Value: !v.Value}, nil
		case *IntegerValue:
			return &BooleanValue{Value: v.Value == 0}, nil
		}
	case "-":
		switch v := right.(type) {
		case *IntegerValue:
			return &IntegerValue{Value: -v.Value}, nil
		case *FloatValue:
			return &FloatValue{Value: -v.Value}, nil
		}
	}
	return nil, newEvalError(ErrTypeMismatch, "unary %s not defined for %s", n.Operator, right.Kind())
}

func evalBinary(n *ast.BinaryExpression, scope *Scope) (Value, error) {
	left, err := eval(n.Left, scope)
	if err != nil {
		return nil, err
	}
	right, err := eval(n.Right, scope)
	if err != nil {
		return nil, err
	}

	switch l := left.(type) {
	case *BooleanValue:
		if r, ok := right.(*BooleanValue); ok {
			switch n.Operator {
			case "==":
				return &BooleanValue{Value: l.Value == r.Value}, nil
			case "!=":
				return &BooleanValue{Value: l.Value != r.Value}, nil
			}
		}

	case *IntegerValue:
		if r, ok := right.(*IntegerValue); ok {
			switch n.Operator {
			case "+":
				return &IntegerValue{Value: l.Value + r.Value}, nil
			case "-":
				return &IntegerValue{Value: l.Value - r.Value}, nil
			case "*":
				return &IntegerValue{Value: l.Value * r.Value}, nil
			case "/":
				if r.Value == 0 {
					return nil, newEvalError(ErrTypeMismatch, "integer division by zero")
				}
				return &IntegerValue{Value: l.Value / r.Value}, nil
			case "==":
				return &BooleanValue{Value: l.Value == r.Value}, nil
			case "!=":
				return &BooleanValue{Value: l.Value != r.Value}, nil
			case "<":
				return &BooleanValue{Value: l.Value < r.Value}, nil
			case "<=":
				return &BooleanValue{Value: l.Value <= r.Value}, nil
			case ">":
				return &BooleanValue{Value: l.Value > r.Value}, nil
			case ">=":
				return &BooleanValue{Value: l.Value >= r.Value}, nil
			}
		}

	case *FloatValue:
		if r, ok := right.(*FloatValue); ok {
			switch n.Operator {
			case "+":
				return &FloatValue{Value: l.Value + r.Value}, nil
			case "-":
				return &FloatValue{Value: l.Value - r.Value}, nil
			case "*":
				return &FloatValue{Value: l.Value * r.Value}, nil
			case "/":
				return &FloatValue{Value: l.Value / r.Value}, nil
			case "==":
				return &BooleanValue{Value: l.Value == r.Value}, nil
			case "!=":
				return &BooleanValue{Value: l.Value != r.Value}, nil
			case "<":
				return &BooleanValue{Value: l.Value < r.Value}, nil
			case "<=":
				return &BooleanValue{Value: l.Value <= r.Value}, nil
			case ">":
				return &BooleanValue{Value: l.Value > r.Value}, nil
			case ">=":
				return &BooleanValue{Value: l.Value >= r.Value}, nil
			}
		}

	case *StringValue:
		if r, ok := right.(*StringValue); ok && n.Operator == "+" {
			return &StringValue{Value: normalizeString(l.Value + r.Value)}, nil
		}
	}

	return nil, newEvalError(ErrTypeMismatch, "operator %s not defined for %s and %s", n.Operator, left.Kind(), right.Kind())
}
