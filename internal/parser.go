package internal

import (
	log "github.com/sirupsen/logrus"
)

// parser builds the AST from the token stream by recursive descent.
// The first structural mismatch aborts the whole parse: fatalError
// panics and parse/parseExpression recover at the stage boundary.
type parser struct {
	current int

	state *interpreterState
}

// parse consumes the token stream as a list of declarations.
func (p *parser) parse() {
	defer func() {
		if r := recover(); r != nil {
			p.state.stmts = nil
		}
	}()
	for !p.isAtEnd() {
		p.state.stmts = append(p.state.stmts, p.declaration())
	}
	log.WithField("stmts", len(p.state.stmts)).Debug("parse complete")
}

// parseExpression consumes the token stream as a single expression.
func (p *parser) parseExpression() (result expr) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
		}
	}()
	return p.expression()
}

func (p *parser) declaration() stmt {
	if p.match(tkVar) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *parser) varDeclaration() stmt {
	name := p.consume(tkIdentifier, errExpectedVarName)

	var initializer expr
	if p.match(tkEqual) {
		initializer = p.expression()
	}

	p.consume(tkSemicolon, errExpectedSemicolon)
	return &varStmt{
		name:        name,
		initializer: initializer,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkPrint) {
		return p.printStatement()
	}
	if p.match(tkLeftBrace) {
		return &blockStmt{stmts: p.block()}
	}
	return p.expressionStmt()
}

func (p *parser) printStatement() stmt {
	value := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &printStmt{expression: value}
}

func (p *parser) block() []stmt {
	stmts := make([]stmt, 0)
	for !p.check(tkRightBrace) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(tkRightBrace, errUnclosedBrace)
	return stmts
}

func (p *parser) expressionStmt() stmt {
	expression := p.expression()
	p.consume(tkSemicolon, errExpectedSemicolon)
	return &exprStmt{expression: expression}
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	expression := p.equality()
	if p.match(tkEqual) {
		equal := p.previous()
		value := p.assignment()

		if variable, isVar := expression.(*variableExpr); isVar {
			return &assignExpr{
				name:  variable.name,
				value: value,
			}
		}

		p.state.fatalError(errInvalidAssignment, equal)
	}
	return expression
}

func (p *parser) equality() expr {
	expression := p.comparison()
	for p.match(tkBangEqual, tkEqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expression = &binaryExpr{
			left:     expression,
			operator: operator,
			right:    right,
		}
	}
	return expression
}

func (p *parser) comparison() expr {
	expression := p.term()
	for p.match(tkGreater, tkGreaterEqual, tkLess, tkLessEqual) {
		operator := p.previous()
		right := p.term()
		expression = &binaryExpr{
			left:     expression,
			operator: operator,
			right:    right,
		}
	}
	return expression
}

func (p *parser) term() expr {
	expression := p.factor()
	for p.match(tkMinus, tkPlus) {
		operator := p.previous()
		right := p.factor()
		expression = &binaryExpr{
			left:     expression,
			operator: operator,
			right:    right,
		}
	}
	return expression
}

func (p *parser) factor() expr {
	expression := p.unary()
	for p.match(tkSlash, tkStar) {
		operator := p.previous()
		right := p.unary()
		expression = &binaryExpr{
			left:     expression,
			operator: operator,
			right:    right,
		}
	}
	return expression
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	return p.primary()
}

func (p *parser) primary() expr {
	switch {
	case p.match(tkNumber, tkString):
		return &literalExpr{value: p.previous().literal}
	case p.match(tkTrue):
		return &literalExpr{value: true}
	case p.match(tkFalse):
		return &literalExpr{value: false}
	case p.match(tkNil):
		return &literalExpr{value: nil}
	case p.match(tkIdentifier):
		return &variableExpr{name: p.previous()}
	case p.match(tkLeftParen):
		expression := p.expression()
		p.consume(tkRightParen, errUnclosedParen)
		return &groupingExpr{expression: expression}
	}
	p.state.fatalError(errExpectedExpression, p.peek())
	return nil
}

func (p *parser) match(types ...tokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(tokenType tokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().token == tokenType
}

func (p *parser) consume(tokenType tokenType, err error) *token {
	if p.check(tokenType) {
		p.current++
		return p.previous()
	}
	p.state.fatalError(err, p.peek())
	return nil
}

func (p *parser) peek() *token {
	return p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}
