package internal

import (
	log "github.com/sirupsen/logrus"
)

// exec is the tree-walking evaluator. Runtime errors panic through
// state.runtimeErr and are recovered at interpret/evaluate, so the first
// failing statement aborts the rest of the sequence.
type exec struct {
	state *interpreterState

	globals *env
	env     *env
}

func newExec(state *interpreterState) *exec {
	globals := newEnv(state, nil)
	return &exec{
		state:   state,
		globals: globals,
		env:     globals,
	}
}

// interpret executes the parsed statements in order. Returns false if a
// runtime error stopped execution.
func (e *exec) interpret() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	for _, s := range e.state.stmts {
		s.accept(e)
	}
	return true
}

// evaluate computes a single expression. Returns false if a runtime
// error occurred; the error itself lives on the state.
func (e *exec) evaluate(expression expr) (value interface{}, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			value, ok = nil, false
		}
	}()
	return expression.accept(e), true
}

func (e *exec) visitExprStmt(stmt *exprStmt) R {
	stmt.expression.accept(e)
	return nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) R {
	value := stmt.expression.accept(e)
	e.state.logger.Println(writeValue(value))
	return nil
}

func (e *exec) visitVarStmt(stmt *varStmt) R {
	var value interface{}
	if stmt.initializer != nil {
		value = stmt.initializer.accept(e)
	}
	e.env.define(stmt.name.lexeme, value)
	return nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) R {
	e.executeBlock(stmt.stmts, newEnv(e.state, e.env))
	return nil
}

func (e *exec) executeBlock(stmts []stmt, env *env) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		s.accept(e)
	}
}

func (e *exec) visitAssignExpr(expr *assignExpr) R {
	value := expr.value.accept(e)
	e.env.assign(expr.name, value)
	return value
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) R {
	left := expr.left.accept(e)
	right := expr.right.accept(e)
	switch expr.operator.token {
	case tkEqualEqual:
		return left == right
	case tkBangEqual:
		return left != right
	case tkGreater:
		leftNum, rightNum := e.getNums(expr.operator, left, right)
		return leftNum > rightNum
	case tkGreaterEqual:
		leftNum, rightNum := e.getNums(expr.operator, left, right)
		return leftNum >= rightNum
	case tkLess:
		leftNum, rightNum := e.getNums(expr.operator, left, right)
		return leftNum < rightNum
	case tkLessEqual:
		leftNum, rightNum := e.getNums(expr.operator, left, right)
		return leftNum <= rightNum
	case tkPlus:
		return e.add(expr.operator, left, right)
	case tkMinus:
		leftNum, rightNum := e.getNums(expr.operator, left, right)
		return leftNum - rightNum
	case tkStar:
		leftNum, rightNum := e.getNums(expr.operator, left, right)
		return leftNum * rightNum
	case tkSlash:
		leftNum, rightNum := e.getNums(expr.operator, left, right)
		if rightNum == 0 {
			e.state.runtimeErr(errDivisionByZero, expr.operator)
		}
		return leftNum / rightNum
	}
	log.WithField("operator", expr.operator.lexeme).Error("unreachable binary operator")
	return nil
}

// add implements '+': two numbers add, two strings concatenate, any
// other pairing is a runtime error.
func (e *exec) add(operator *token, left, right interface{}) interface{} {
	leftNum, leftIsNum := left.(float64)
	rightNum, rightIsNum := right.(float64)
	if leftIsNum && rightIsNum {
		return leftNum + rightNum
	}

	leftStr, leftIsStr := left.(string)
	rightStr, rightIsStr := right.(string)
	if leftIsStr && rightIsStr {
		return leftStr + rightStr
	}

	e.state.runtimeErr(errNumbersOrStrings, operator)
	return nil
}

func (e *exec) getNums(operator *token, left, right interface{}) (float64, float64) {
	leftNum, ok := left.(float64)
	if !ok {
		e.state.runtimeErr(errOnlyNumbers, operator)
	}
	rightNum, ok := right.(float64)
	if !ok {
		e.state.runtimeErr(errOnlyNumbers, operator)
	}
	return leftNum, rightNum
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) R {
	return expr.expression.accept(e)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) R {
	return expr.value
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) R {
	value := expr.right.accept(e)
	switch expr.operator.token {
	case tkBang:
		return !truthy(value)
	case tkMinus:
		valueNum, ok := value.(float64)
		if !ok {
			e.state.runtimeErr(errOnlyNumber, expr.operator)
		}
		return -valueNum
	}
	log.WithField("operator", expr.operator.lexeme).Error("unreachable unary operator")
	return nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) R {
	return e.env.get(expr.name)
}

// truthy: only nil and false are falsy. Number 0 and the empty string
// are truthy.
func truthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if valueBool, isBool := value.(bool); isBool {
		return valueBool
	}
	return true
}
