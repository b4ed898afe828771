// Package reporter collects errors surfaced by the lexer, parser and
// interpreter and prints them. It is intentionally thin: each stage already
// formats its own error text (lexer.Error, parser.ParserError,
// interp.EvalError all implement error), so the reporter's only job is to
// gather a batch and write it out. A richer diagnostic UI (source-snippet
// rendering, severity levels, suggested fixes) was never built for this
// language; callers that want that should format errors themselves.
package reporter

import (
	"fmt"
	"io"
)

// Diagnostic is one reported failure, optionally tagged with a machine
// code (parser.ParserError and interp.EvalError are the current sources of
// these).
type Diagnostic struct {
	Code    string
	Message string
}

// FromError builds a Diagnostic from any error, pulling a Code out of
// errors that expose an ErrorCode method (parser.ParserError does).
func FromError(err error) Diagnostic {
	d := Diagnostic{Message: err.Error()}
	if coded, ok := err.(interface{ ErrorCode() string }); ok {
		d.Code = coded.ErrorCode()
	}
	return d
}

// Builder accumulates diagnostics across a batch (e.g. a parser's full
// error list) before they're printed together.
type Builder struct {
	diagnostics []Diagnostic
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a diagnostic built from err.
func (b *Builder) Add(err error) {
	b.diagnostics = append(b.diagnostics, FromError(err))
}

// AddAll appends diagnostics built from every error in errs.
func (b *Builder) AddAll(errs []error) {
	for _, err := range errs {
		b.Add(err)
	}
}

// Diagnostics returns the accumulated diagnostics, in the order they were
// added.
func (b *Builder) Diagnostics() []Diagnostic {
	return b.diagnostics
}

// Empty reports whether no diagnostics have been added.
func (b *Builder) Empty() bool {
	return len(b.diagnostics) == 0
}

// PrintErrors writes one line per diagnostic to w, prefixed with its code
// when present. It does nothing when the builder is empty.
func (b *Builder) PrintErrors(w io.Writer) {
	for _, d := range b.diagnostics {
		if d.Code != "" {
			fmt.Fprintf(w, "[%s] %s\n", d.Code, d.Message)
			continue
		}
		fmt.Fprintln(w, d.Message)
	}
}
