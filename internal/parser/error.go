package parser

import (
	"fmt"

	"github.com/vela-lang/vela/pkg/token"
)

// ParserError is a single structured parsing error with position information.
type ParserError struct {
	Message string
	Code    string
	Pos     token.Position
	Length  int
}

func (e *ParserError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// ErrorCode returns the error's machine-readable code, letting callers like
// reporter.FromError recover it without importing the parser package's
// concrete type.
func (e *ParserError) ErrorCode() string {
	return e.Code
}

// NewParserError constructs a ParserError.
func NewParserError(pos token.Position, length int, message, code string) *ParserError {
	return &ParserError{Message: message, Pos: pos, Length: length, Code: code}
}

// Error code constants for programmatic handling.
const (
	ErrUnexpectedToken  = "E_UNEXPECTED_TOKEN"
	ErrNoPrefixParse    = "E_NO_PREFIX_PARSE"
	ErrEmptyExpression  = "E_EMPTY_EXPRESSION"
	ErrMalformedNumber  = "E_MALFORMED_NUMBER"
	ErrMissingRParen    = "E_MISSING_RPAREN"
	ErrMissingRBracket  = "E_MISSING_RBRACKET"
	ErrMissingRBrace    = "E_MISSING_RBRACE"
	ErrMissingColon     = "E_MISSING_COLON"
	ErrMissingAssign    = "E_MISSING_ASSIGN"
	ErrMissingSemicolon = "E_MISSING_SEMICOLON"
	ErrMissingPipe      = "E_MISSING_PIPE"
	ErrMissingRange     = "E_MISSING_RANGE"
	ErrInvalidHashKey   = "E_INVALID_HASH_KEY"
)

// statementStarters are token types panic-mode recovery treats as safe
// places to resume parsing after an error.
var statementStarters = []token.TokenType{
	token.VAL, token.FUNCTION, token.IF, token.WHILE, token.LOOP, token.FOR,
	token.RETURN,
}

// synchronize advances past tokens until EOF, a semicolon (consumed), a
// closing brace (left for the caller to consume), or a statement starter.
// This is the parser's panic-mode recovery: one bad statement is dropped,
// but parsing continues from the next statement boundary. The current
// token is always consumed at least once, since it is what triggered the
// error in the first place and may itself be a statement starter.
func (p *Parser) synchronize() {
	p.nextToken()
	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			return
		}
		if p.curTokenIs(token.RBRACE) {
			return
		}
		for _, t := range statementStarters {
			if p.curTokenIs(t) {
				return
			}
		}
		p.nextToken()
	}
}
