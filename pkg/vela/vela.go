// Package vela is the library surface a front end drives: four entry
// points over the lexer, parser, interpreter and transpiler, each taking
// source text and returning a result plus any accumulated errors. Nothing
// here prints, prompts, or reads a terminal; that belongs to a command-line
// collaborator built on top of this package.
package vela

import (
	"fmt"
	"iter"

	"github.com/vela-lang/vela/internal/interp"
	"github.com/vela-lang/vela/internal/lexer"
	"github.com/vela-lang/vela/internal/parser"
	"github.com/vela-lang/vela/internal/transpiler"
	"github.com/vela-lang/vela/pkg/ast"
	"github.com/vela-lang/vela/pkg/token"
)

// Tokenify lazily scans source and yields its tokens, stopping after EOF.
func Tokenify(source string) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		l := lexer.New(source)
		for {
			tok := l.NextToken()
			if !yield(tok) {
				return
			}
			if tok.Type == token.EOF {
				return
			}
		}
	}
}

// Astify parses source into a Program. Parse errors are appended to errSink
// (a caller-owned accumulator) rather than failing the call outright, since
// the parser recovers and keeps producing a partial tree; a nil errSink
// discards them. The returned error is non-nil only when the parser
// produced no usable statements at all.
func Astify(source string, errSink *[]error) (*ast.Program, error) {
	p := parser.New(lexer.New(source))
	program := p.Parse()

	for _, lexErr := range p.LexerErrors() {
		lexErr := lexErr
		if errSink != nil {
			*errSink = append(*errSink, &lexErr)
		}
	}
	for _, parseErr := range p.Errors() {
		if errSink != nil {
			*errSink = append(*errSink, parseErr)
		}
	}

	if len(program.Statements) == 0 && len(p.Errors()) > 0 {
		return program, fmt.Errorf("astify: %s", p.Errors()[0])
	}
	return program, nil
}

// Evalify parses and evaluates source against in, an interpreter the
// caller owns across calls so top-level bindings persist between them (the
// REPL use case). It returns the value of the program's last statement.
func Evalify(source string, in *interp.Interpreter) (interp.Value, error) {
	program, err := Astify(source, nil)
	if err != nil {
		return nil, err
	}
	return in.Eval(program)
}

// Transformify parses source and renders it as JS text in the mode named
// by modeStr ("json", "pretty", anything else maps to inline). in is
// accepted to match Evalify's signature and reserved for a future
// evaluation-dependent transpile path; the current transpiler is purely
// syntactic and does not use it.
func Transformify(source, modeStr string, in *interp.Interpreter) (string, error) {
	program, err := Astify(source, nil)
	if err != nil {
		return "", err
	}
	t := transpiler.New(transpiler.ModeFromString(modeStr))
	return t.Transpile(program)
}
