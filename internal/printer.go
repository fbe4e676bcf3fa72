package internal

import (
	"fmt"
	"math"
	"strconv"
)

// R generic visitor result type
type R interface{}

// printNumber is the diagnostic formatter: whole numbers keep exactly one
// decimal place, everything else renders at full precision. Used by the
// AST printer and the token display.
func printNumber(value float64) string {
	if value == math.Trunc(value) && !math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', 1, 64)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// runtimeNumber is the runtime-output formatter: whole numbers render as
// plain integers, everything else at full precision. Deliberately not the
// same rule as printNumber.
func runtimeNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// printValue renders a value for diagnostics (AST print form).
func printValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return printNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	}
	return fmt.Sprintf("%v", value)
}

// writeValue renders a value for runtime output (print statements and
// the evaluate entry point).
func writeValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case float64:
		return runtimeNumber(v)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	}
	return fmt.Sprintf("%v", value)
}

// stringVisitor renders the AST in parenthesized prefix notation.
type stringVisitor struct{}

func (v stringVisitor) print(expression expr) string {
	return expression.accept(v).(string)
}

func (v stringVisitor) printStmts(stmts []stmt) string {
	out := ""
	for _, s := range stmts {
		out += s.accept(v).(string) + "\n"
	}
	return out
}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) R {
	return stmt.expression.accept(v)
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) R {
	return fmt.Sprintf("(print %v)", stmt.expression.accept(v))
}

func (v stringVisitor) visitVarStmt(stmt *varStmt) R {
	if stmt.initializer == nil {
		return fmt.Sprintf("(var %s)", stmt.name.lexeme)
	}
	return fmt.Sprintf("(var %s %v)", stmt.name.lexeme, stmt.initializer.accept(v))
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) R {
	out := "(block"
	for _, s := range stmt.stmts {
		out += fmt.Sprintf(" %v", s.accept(v))
	}
	return out + ")"
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) R {
	return fmt.Sprintf("(assign %s = %v)", expr.name.lexeme, expr.value.accept(v))
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.operator.lexeme, expr.left.accept(v), expr.right.accept(v))
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) R {
	return fmt.Sprintf("(group %v)", expr.expression.accept(v))
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) R {
	return printValue(expr.value)
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.operator.lexeme, expr.right.accept(v))
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) R {
	return expr.name.lexeme
}
