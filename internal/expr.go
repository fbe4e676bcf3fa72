package internal

type expr interface {
	accept(exprVisitor) R
}

type exprVisitor interface {
	visitAssignExpr(expr *assignExpr) R
	visitBinaryExpr(expr *binaryExpr) R
	visitGroupingExpr(expr *groupingExpr) R
	visitLiteralExpr(expr *literalExpr) R
	visitUnaryExpr(expr *unaryExpr) R
	visitVariableExpr(expr *variableExpr) R
}

type assignExpr struct {
	name  *token
	value expr
}

func (s *assignExpr) accept(visitor exprVisitor) R {
	return visitor.visitAssignExpr(s)
}

type binaryExpr struct {
	left     expr
	operator *token
	right    expr
}

func (s *binaryExpr) accept(visitor exprVisitor) R {
	return visitor.visitBinaryExpr(s)
}

type groupingExpr struct {
	expression expr
}

func (s *groupingExpr) accept(visitor exprVisitor) R {
	return visitor.visitGroupingExpr(s)
}

type literalExpr struct {
	value interface{}
}

func (s *literalExpr) accept(visitor exprVisitor) R {
	return visitor.visitLiteralExpr(s)
}

type unaryExpr struct {
	operator *token
	right    expr
}

func (s *unaryExpr) accept(visitor exprVisitor) R {
	return visitor.visitUnaryExpr(s)
}

type variableExpr struct {
	name *token
}

func (s *variableExpr) accept(visitor exprVisitor) R {
	return visitor.visitVariableExpr(s)
}
