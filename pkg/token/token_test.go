package token

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{"simple position", Position{Line: 1, Column: 5}, "1:5"},
		{"larger numbers", Position{Line: 123, Column: 456}, "123:456"},
		{"zero position", Position{Line: 0, Column: 0}, "0:0"},
		{"with offset", Position{Line: 10, Column: 20, Offset: 100}, "10:20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.expected {
				t.Errorf("Position.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPositionIsValid(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{"valid position", Position{Line: 1, Column: 1}, true},
		{"valid with offset", Position{Line: 10, Column: 5, Offset: 50}, true},
		{"zero line invalid", Position{Line: 0, Column: 1}, false},
		{"negative line invalid", Position{Line: -1, Column: 1}, false},
		{"zero column but valid line", Position{Line: 1, Column: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.expected {
				t.Errorf("Position.IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			"simple identifier",
			Token{Type: IDENT, Literal: "foo", Pos: Position{Line: 1, Column: 5}},
			`IDENT("foo") at 1:5`,
		},
		{
			"keyword",
			Token{Type: VAL, Literal: "val", Pos: Position{Line: 2, Column: 1}},
			`VAL("val") at 2:1`,
		},
		{
			"EOF token",
			Token{Type: EOF, Literal: "", Pos: Position{Line: 10, Column: 20}},
			`EOF at 10:20`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.String(); got != tt.expected {
				t.Errorf("Token.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident    string
		expected TokenType
	}{
		{"val", VAL},
		{"if", IF},
		{"else", ELSE},
		{"loop", LOOP},
		{"while", WHILE},
		{"true", TRUE},
		{"false", FALSE},
		{"return", RETURN},
		{"ƒ", FUNCTION},
		{"myVar", IDENT},
		{"_", UNDERSCORE},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupIdent(tt.ident); got != tt.expected {
				t.Errorf("LookupIdent(%q) = %s, want %s", tt.ident, got, tt.expected)
			}
		})
	}
}

func TestIsKeyword(t *testing.T) {
	if !IsKeyword("val") {
		t.Error("expected val to be a keyword")
	}
	if IsKeyword("myVar") {
		t.Error("expected myVar to not be a keyword")
	}
	if !IsKeyword("ƒ") {
		t.Error("expected ƒ to be a keyword")
	}
}

func TestNewTokenLength(t *testing.T) {
	tok := NewToken(IDENT, "hello", Position{Line: 1, Column: 1})
	if tok.Length != 5 {
		t.Errorf("Length = %d, want 5", tok.Length)
	}

	// Multi-byte literal: length must be the byte length, not rune count.
	tok2 := NewToken(IDENT, "café", Position{Line: 1, Column: 1})
	if tok2.Length != len("café") {
		t.Errorf("Length = %d, want %d", tok2.Length, len("café"))
	}
}
