package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command failed: %v", err)
	}
	return out.String()
}

func TestEvalCommandPrintsValue(t *testing.T) {
	out := runCmd(t, "eval", "2 + 3 * 4;")
	if !strings.Contains(out, "14") {
		t.Fatalf("got %q, want output containing 14", out)
	}
}

func TestJsCommandDefaultsToInline(t *testing.T) {
	out := runCmd(t, "js", "ƒ add(a: int, b: int) -> int { a + b }")
	if !strings.Contains(out, "function add(a, b) { return a + b; }") {
		t.Fatalf("got %q", out)
	}
}

func TestJsCommandAcceptsModeFlag(t *testing.T) {
	out := runCmd(t, "js", "--mode", "json", "val x : int = 1;")
	if !strings.Contains(out, `"type"`) {
		t.Fatalf("got %q, want JSON-ish output", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out := runCmd(t, "version")
	if !strings.Contains(out, "vela version") {
		t.Fatalf("got %q", out)
	}
}
