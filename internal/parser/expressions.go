package parser

import (
	"strconv"
	"strings"

	"github.com/vela-lang/vela/pkg/ast"
	"github.com/vela-lang/vela/pkg/token"
)

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{BaseNode: ast.BaseNode{Token: p.cur}, Value: p.cur.Literal}
}

func (p *Parser) parseBoolLiteral() ast.Expression {
	return &ast.BoolLiteral{BaseNode: ast.BaseNode{Token: p.cur}, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	lit := strings.ReplaceAll(p.cur.Literal, "_", "")
	base := 10
	if strings.HasPrefix(lit, "0b") || strings.HasPrefix(lit, "0B") {
		lit = lit[2:]
		base = 2
	}
	value, err := strconv.ParseInt(lit, base, 64)
	if err != nil {
		p.errorf(ErrMalformedNumber, "malformed integer literal %q", p.cur.Literal)
		return nil
	}
	return &ast.IntLiteral{BaseNode: ast.BaseNode{Token: p.cur}, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	lit := strings.ReplaceAll(p.cur.Literal, "_", "")
	value, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		p.errorf(ErrMalformedNumber, "malformed float literal %q", p.cur.Literal)
		return nil
	}
	return &ast.FloatLiteral{BaseNode: ast.BaseNode{Token: p.cur}, Value: value}
}

func (p *Parser) parseStrLiteral() ast.Expression {
	return &ast.StrLiteral{BaseNode: ast.BaseNode{Token: p.cur}, Value: p.cur.Literal}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	runes := []rune(p.cur.Literal)
	var r rune
	if len(runes) > 0 {
		r = runes[0]
	}
	return &ast.CharLiteral{BaseNode: ast.BaseNode{Token: p.cur}, Value: r}
}

func (p *Parser) parseComment() ast.Expression {
	return &ast.CommentExpression{BaseNode: ast.BaseNode{Token: p.cur}, Text: p.cur.Literal}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	tok := p.cur
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectFirst(token.RPAREN, ErrMissingRParen) {
		return nil
	}
	return &ast.GroupedExpression{BaseNode: ast.BaseNode{Token: tok}, Expr: expr}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.cur
	elements := p.parseUntil(token.RBRACK)
	return &ast.ArrayLiteral{BaseNode: ast.BaseNode{Token: tok}, Elements: elements}
}

// parseHashLiteral parses `{ k: v, k: v }`. Keys are parsed as ordinary
// expressions; the restriction to Bool/Int/Str keys is enforced at
// evaluation time, not here.
func (p *Parser) parseHashLiteral() ast.Expression {
	tok := p.cur
	hash := &ast.HashLiteral{BaseNode: ast.BaseNode{Token: tok}}

	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return hash
	}

	for {
		p.nextToken()
		key := p.parseExpression(LOWEST)
		if !p.expectFirst(token.COLON, ErrMissingColon) {
			return hash
		}
		p.nextToken()
		value := p.parseExpression(LOWEST)
		hash.Keys = append(hash.Keys, key)
		hash.Values = append(hash.Values, value)

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		p.nextToken()
	}

	if !p.expectFirst(token.RBRACE, ErrMissingRBrace) {
		return hash
	}
	return hash
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	tok := p.cur
	op := p.cur.Literal
	p.nextToken()
	right := p.parseExpression(UNARY)
	return &ast.UnaryExpression{BaseNode: ast.BaseNode{Token: tok}, Operator: op, Right: right}
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.cur
	op := p.cur.Literal
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.BinaryExpression{BaseNode: ast.BaseNode{Token: tok}, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseIndexExpression(left ast.Expression) ast.Expression {
	tok := p.cur
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectFirst(token.RBRACK, ErrMissingRBracket) {
		return nil
	}
	return &ast.IndexExpression{BaseNode: ast.BaseNode{Token: tok}, Left: left, Index: index}
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.cur
	args := p.parseUntil(token.RPAREN)
	return &ast.CallExpression{BaseNode: ast.BaseNode{Token: tok}, Callee: callee, Arguments: args}
}

func (p *Parser) parseIfExpression() ast.Expression {
	tok := p.cur
	p.nextToken()
	condition := p.parseExpression(LOWEST)

	if !p.expectFirst(token.LBRACE, ErrUnexpectedToken) {
		return nil
	}
	consequence := p.parseBlockStatement()

	ifExpr := &ast.IfExpression{BaseNode: ast.BaseNode{Token: tok}, Condition: condition, Consequence: consequence}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectFirst(token.LBRACE, ErrUnexpectedToken) {
			return ifExpr
		}
		ifExpr.Alternative = p.parseBlockStatement()
	}

	return ifExpr
}

// parseClosureLiteral parses a pipe-delimited anonymous function:
// `|a, b| -> T { a + b }`. Assumes cur is the opening `|`.
func (p *Parser) parseClosureLiteral() ast.Expression {
	tok := p.cur
	closure := &ast.ClosureLiteral{BaseNode: ast.BaseNode{Token: tok}}
	closure.Params = p.parseFunctionParams(token.OR)

	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		closure.ReturnType = &ast.TypeExpression{BaseNode: ast.BaseNode{Token: p.cur}, Name: p.cur.Literal}
	}

	if !p.expectFirst(token.LBRACE, ErrUnexpectedToken) {
		return closure
	}
	closure.Body = p.parseBlockStatement()
	return closure
}

// parseFunctionParams parses a comma-separated parameter list delimited by
// end on both ends; cur is assumed to be the opening delimiter.
func (p *Parser) parseFunctionParams(end token.TokenType) []*ast.FunctionParam {
	var params []*ast.FunctionParam

	if p.peekTokenIs(end) {
		p.nextToken()
		return params
	}

	p.nextToken()
	params = append(params, p.parseFunctionParam())

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseFunctionParam())
	}

	if !p.expectFirst(end, ErrUnexpectedToken) {
		return params
	}
	return params
}

func (p *Parser) parseFunctionParam() *ast.FunctionParam {
	name := &ast.Identifier{BaseNode: ast.BaseNode{Token: p.cur}, Value: p.cur.Literal}
	param := &ast.FunctionParam{Name: name}

	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		param.Type = &ast.TypeExpression{BaseNode: ast.BaseNode{Token: p.cur}, Name: p.cur.Literal}
	}
	return param
}

// parseFunctionLiteral parses `ƒ name(params) -> T { ... }` or the anonymous
// form `ƒ(params) { ... }` when used in expression position.
func (p *Parser) parseFunctionLiteral() ast.Expression {
	tok := p.cur
	fn := &ast.FunctionLiteral{BaseNode: ast.BaseNode{Token: tok}}

	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		fn.Name = &ast.Identifier{BaseNode: ast.BaseNode{Token: p.cur}, Value: p.cur.Literal}
	}

	if !p.expectFirst(token.LPAREN, ErrUnexpectedToken) {
		return fn
	}
	fn.Params = p.parseFunctionParams(token.RPAREN)

	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		p.nextToken()
		fn.ReturnType = &ast.TypeExpression{BaseNode: ast.BaseNode{Token: p.cur}, Name: p.cur.Literal}
	}

	if !p.expectFirst(token.LBRACE, ErrUnexpectedToken) {
		return fn
	}
	fn.Body = p.parseBlockStatement()
	return fn
}
