package parser

import (
	"github.com/vela-lang/vela/pkg/ast"
	"github.com/vela-lang/vela/pkg/token"
)

// parseValStatement parses `val name [: type] = expr;`.
func (p *Parser) parseValStatement() ast.Statement {
	tok := p.cur
	stmt := &ast.ValStatement{BaseNode: ast.BaseNode{Token: tok}, Immutable: true}

	if !p.expectFirst(token.IDENT, ErrUnexpectedToken) {
		p.synchronize()
		return stmt
	}
	stmt.Name = &ast.Identifier{BaseNode: ast.BaseNode{Token: p.cur}, Value: p.cur.Literal}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		stmt.Type = &ast.TypeExpression{BaseNode: ast.BaseNode{Token: p.cur}, Name: p.cur.Literal}
	}

	if !p.expectFirst(token.ASSIGN, ErrMissingAssign) {
		p.synchronize()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseReturnStatement parses `return [expr];`.
func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.cur
	stmt := &ast.ReturnStatement{BaseNode: ast.BaseNode{Token: tok}}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return stmt
	}

	p.nextToken()
	stmt.Value = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseLoopInfiniteStatement parses `loop { ... }`.
func (p *Parser) parseLoopInfiniteStatement() ast.Statement {
	tok := p.cur
	if !p.expectFirst(token.LBRACE, ErrUnexpectedToken) {
		p.synchronize()
		return &ast.LoopInfiniteStatement{BaseNode: ast.BaseNode{Token: tok}}
	}
	body := p.parseBlockStatement()

	stmt := &ast.LoopInfiniteStatement{BaseNode: ast.BaseNode{Token: tok}, Body: body}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseLoopWhileStatement parses `while cond { ... }`.
func (p *Parser) parseLoopWhileStatement() ast.Statement {
	tok := p.cur
	p.nextToken()
	condition := p.parseExpression(LOWEST)

	if !p.expectFirst(token.LBRACE, ErrUnexpectedToken) {
		p.synchronize()
		return &ast.LoopWhileStatement{BaseNode: ast.BaseNode{Token: tok}, Condition: condition}
	}
	body := p.parseBlockStatement()

	stmt := &ast.LoopWhileStatement{BaseNode: ast.BaseNode{Token: tok}, Condition: condition, Body: body}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

// parseForStatement disambiguates the two `for` forms by peeking at the
// token right after `for`: `[` starts the for-in form, anything else
// starts a range. Neither form is named in the leading-keyword dispatch
// table beyond "for -> LoopForRange"; the for-in form is recovered from the
// data model and the transpiler's lowering rule for `for [xs] |v| { ... }`.
func (p *Parser) parseForStatement() ast.Statement {
	tok := p.cur
	if p.peekTokenIs(token.LBRACK) {
		return p.parseLoopForInStatement(tok)
	}
	return p.parseLoopForRangeStatement(tok)
}

func (p *Parser) parseLoopForRangeStatement(tok token.Token) ast.Statement {
	p.nextToken()
	start := p.parseExpression(SUM)

	if !p.expectFirst(token.RANGE, ErrMissingRange) {
		p.synchronize()
		return &ast.LoopForRangeStatement{BaseNode: ast.BaseNode{Token: tok}, Start: start}
	}

	p.nextToken()
	end := p.parseExpression(SUM)

	if !p.expectFirst(token.LBRACE, ErrUnexpectedToken) {
		p.synchronize()
		return &ast.LoopForRangeStatement{BaseNode: ast.BaseNode{Token: tok}, Start: start, End: end}
	}
	body := p.parseBlockStatement()

	stmt := &ast.LoopForRangeStatement{BaseNode: ast.BaseNode{Token: tok}, Start: start, End: end, Body: body}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}

func (p *Parser) parseLoopForInStatement(tok token.Token) ast.Statement {
	p.nextToken() // consume '['
	p.nextToken()
	iterable := p.parseExpression(LOWEST)

	if !p.expectFirst(token.RBRACK, ErrMissingRBracket) {
		p.synchronize()
		return &ast.LoopForInStatement{BaseNode: ast.BaseNode{Token: tok}, Iterable: iterable}
	}

	if !p.expectFirst(token.OR, ErrMissingPipe) {
		p.synchronize()
		return &ast.LoopForInStatement{BaseNode: ast.BaseNode{Token: tok}, Iterable: iterable}
	}

	if !p.expectFirst(token.IDENT, ErrUnexpectedToken) {
		p.synchronize()
		return &ast.LoopForInStatement{BaseNode: ast.BaseNode{Token: tok}, Iterable: iterable}
	}
	loopVar := &ast.Identifier{BaseNode: ast.BaseNode{Token: p.cur}, Value: p.cur.Literal}

	if !p.expectFirst(token.OR, ErrMissingPipe) {
		p.synchronize()
		return &ast.LoopForInStatement{BaseNode: ast.BaseNode{Token: tok}, Var: loopVar, Iterable: iterable}
	}

	if !p.expectFirst(token.LBRACE, ErrUnexpectedToken) {
		p.synchronize()
		return &ast.LoopForInStatement{BaseNode: ast.BaseNode{Token: tok}, Var: loopVar, Iterable: iterable}
	}
	body := p.parseBlockStatement()

	stmt := &ast.LoopForInStatement{BaseNode: ast.BaseNode{Token: tok}, Var: loopVar, Iterable: iterable, Body: body}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return stmt
}
