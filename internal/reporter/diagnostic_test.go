package reporter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vela-lang/vela/internal/parser"
	"github.com/vela-lang/vela/pkg/token"
)

func TestBuilderCollectsAndPrintsDiagnostics(t *testing.T) {
	b := NewBuilder()
	if !b.Empty() {
		t.Fatal("new builder should be empty")
	}

	b.Add(errors.New("unknown identifier: y"))
	b.Add(parser.NewParserError(token.Position{Line: 1, Column: 9}, 1, "token SEMICOLON expected, but current is EOF", parser.ErrUnexpectedToken))

	if b.Empty() {
		t.Fatal("builder should not be empty after Add")
	}
	if len(b.Diagnostics()) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(b.Diagnostics()))
	}
	if got := b.Diagnostics()[1].Code; got != parser.ErrUnexpectedToken {
		t.Fatalf("got code %q, want %q", got, parser.ErrUnexpectedToken)
	}

	var buf bytes.Buffer
	b.PrintErrors(&buf)
	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("unknown identifier: y")) {
		t.Fatalf("output missing plain error: %q", out)
	}
	if !bytes.Contains([]byte(out), []byte("[E_UNEXPECTED_TOKEN]")) {
		t.Fatalf("output missing coded error prefix: %q", out)
	}
}

func TestFromErrorLeavesCodeEmptyForPlainErrors(t *testing.T) {
	d := FromError(errors.New("boom"))
	if d.Code != "" {
		t.Fatalf("got code %q, want empty", d.Code)
	}
	if d.Message != "boom" {
		t.Fatalf("got message %q, want %q", d.Message, "boom")
	}
}
