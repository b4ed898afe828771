// Package parser implements a Pratt (operator-precedence) parser over the
// token stream produced by internal/lexer, building the pkg/ast node tree.
//
// The parser keeps two tokens of lookahead, current and peek (named "first"
// in older notes); nextToken slides peek into current and pulls a new peek
// from the lexer. Expression parsing is driven by per-token-type prefix and
// infix dispatch tables rather than a hand-nested grammar, so adding an
// operator is a matter of registering a function, not threading a new case
// through every call site.
package parser

import (
	"fmt"

	"github.com/vela-lang/vela/internal/lexer"
	"github.com/vela-lang/vela/pkg/ast"
	"github.com/vela-lang/vela/pkg/token"
)

// Precedence levels, lowest to highest binding power.
const (
	_ int = iota
	LOWEST
	ASSIGNMENT  // == !=
	CONDITIONAL // < <= > >=
	SUM         // + -
	EXPONENT    // * /
	UNARY       // -x !x
	CALL        // f(...)
	INDEX       // xs[i]
)

var precedences = map[token.TokenType]int{
	token.EQUAL:     ASSIGNMENT,
	token.NOT_EQUAL:  ASSIGNMENT,
	token.LT:        CONDITIONAL,
	token.LT_EQ:     CONDITIONAL,
	token.GT:        CONDITIONAL,
	token.GT_EQ:     CONDITIONAL,
	token.PLUS:      SUM,
	token.MINUS:     SUM,
	token.STAR:      EXPONENT,
	token.SLASH:     EXPONENT,
	token.LPAREN:    CALL,
	token.LBRACK:    INDEX,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser turns a token stream into a *ast.Program.
type Parser struct {
	l *lexer.Lexer

	cur  token.Token
	peek token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	errors []*ParserError
}

// New constructs a Parser over l and primes the two-token lookahead.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixParseFns = map[token.TokenType]prefixParseFn{
		token.IDENT:         p.parseIdentifier,
		token.INT:           p.parseIntLiteral,
		token.FLOAT:         p.parseFloatLiteral,
		token.STRING:        p.parseStrLiteral,
		token.CHAR:          p.parseCharLiteral,
		token.BINARY:        p.parseIntLiteral,
		token.TRUE:          p.parseBoolLiteral,
		token.FALSE:         p.parseBoolLiteral,
		token.LPAREN:        p.parseGroupedExpression,
		token.LBRACK:        p.parseArrayLiteral,
		token.LBRACE:        p.parseHashLiteral,
		token.MINUS:         p.parseUnaryExpression,
		token.BANG:          p.parseUnaryExpression,
		token.IF:            p.parseIfExpression,
		token.OR:            p.parseClosureLiteral,
		token.FUNCTION:      p.parseFunctionLiteral,
		token.COMMENT_LINE:  p.parseComment,
		token.COMMENT_BLOCK: p.parseComment,
		token.COMMENT_DOC:   p.parseComment,
	}

	p.infixParseFns = map[token.TokenType]infixParseFn{
		token.LBRACK: p.parseIndexExpression,
		token.LPAREN: p.parseCallExpression,
	}
	for tt := range precedences {
		if tt == token.LBRACK || tt == token.LPAREN {
			continue
		}
		p.infixParseFns[tt] = p.parseBinaryExpression
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns the accumulated parse errors, in encounter order.
func (p *Parser) Errors() []*ParserError { return p.errors }

// LexerErrors returns the lexer errors accumulated while scanning the
// underlying token stream.
func (p *Parser) LexerErrors() []lexer.Error { return p.l.Errors() }

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peek.Type == t }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.cur.Type]; ok {
		return prec
	}
	return LOWEST
}

// expectFirst advances past peek if it matches t, recording a structured
// error and leaving the cursor in place otherwise. Named for the lookahead
// ("first") token it checks.
func (p *Parser) expectFirst(t token.TokenType, code string) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorf(code, "token %s expected, but current is %s", t, p.peek.Type)
	return false
}

func (p *Parser) errorf(code, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	p.errors = append(p.errors, NewParserError(p.peek.Pos, p.peek.Length, msg, code))
}

// Parse parses the whole token stream into a Program, recovering from
// per-statement errors so that one malformed statement does not abort the
// entire parse.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		before := p.cur
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		// Guard against a parse function that failed to advance at all,
		// which would otherwise spin forever on the same token.
		if p.cur == before && !p.curTokenIs(token.EOF) {
			p.nextToken()
		}
	}

	return program
}

// parseStatement dispatches on the current token's leading keyword; any
// other token is parsed as an expression-statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.SHEBANG:
		stmt := &ast.ShebangStatement{BaseNode: ast.BaseNode{Token: p.cur}, Text: p.cur.Literal}
		p.nextToken()
		return stmt
	case token.VAL:
		return p.parseValStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.LOOP:
		return p.parseLoopInfiniteStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.WHILE:
		return p.parseLoopWhileStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.cur
	expr := p.parseExpression(LOWEST)
	stmt := &ast.ExpressionStatement{BaseNode: ast.BaseNode{Token: tok}, Expr: expr}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		stmt.HasSemicolon = true
	}
	return stmt
}

// parseExpression is the Pratt loop: a prefix parser builds the left-hand
// side, then infix parsers keep extending it while peek's precedence
// strictly exceeds prec and peek is not a semicolon.
func (p *Parser) parseExpression(prec int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.cur.Type]
	if !ok {
		p.errorf(ErrNoPrefixParse, "unary error: no prefix parse function for %s", p.cur.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && prec < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peek.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}

	return left
}

// parseBlockStatement parses `{ stmt* }`, assuming cur is the opening brace.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{BaseNode: ast.BaseNode{Token: p.cur}}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		before := p.cur
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		if p.cur == before && !p.curTokenIs(token.EOF) {
			p.nextToken()
		}
	}

	if !p.curTokenIs(token.RBRACE) {
		p.errorf(ErrMissingRBrace, "token RBRACE expected, but current is %s", p.cur.Type)
		return block
	}
	return block
}

// parseUntil reads comma-separated expressions until it sees end, consuming
// end. An empty list is permitted.
func (p *Parser) parseUntil(end token.TokenType) []ast.Expression {
	var list []ast.Expression

	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}

	p.nextToken()
	list = append(list, p.parseExpression(LOWEST))

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(LOWEST))
	}

	if !p.expectFirst(end, ErrUnexpectedToken) {
		return list
	}
	return list
}
