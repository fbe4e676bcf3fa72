package internal

import (
	"fmt"
	"testing"
)

func checkParse(t *testing.T, source string, result string) {
	t.Helper()
	tp := &testPrinter{}
	code := ParseSource(source, tp)
	if code != ExitOK {
		t.Errorf("Error on: \n%s\n\texit code should be %d instead of %d", source, ExitOK, code)
	}
	if tp.printed != result+"\n" {
		t.Errorf("Error on: \n%s\n\tAST should be %s instead of %s", source, result, tp.printed)
	}
}

func checkParseErr(t *testing.T, source string, at string, errorMsg string, line int) {
	t.Helper()
	result := fmt.Sprintf("[line %d] Error at %s: %s\n", line, at, errorMsg)
	tp := &testPrinter{}
	code := ParseSource(source, tp)
	if code != ExitCompileError {
		t.Errorf("Error on: \n%s\n\texit code should be %d instead of %d", source, ExitCompileError, code)
	}
	if tp.printed != result {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected:\n----\n%s----\nFound:\n----\n%s----", source, result, tp.printed)
	}
}

func checkRunParseErr(t *testing.T, source string, at string, errorMsg string, line int) {
	t.Helper()
	result := fmt.Sprintf("[line %d] Error at %s: %s\n", line, at, errorMsg)
	tp := &testPrinter{}
	code := RunSource(source, tp)
	if code != ExitCompileError {
		t.Errorf("Error on: \n%s\n\texit code should be %d instead of %d", source, ExitCompileError, code)
	}
	if tp.printed != result {
		t.Errorf("\nSource:\n----\n%s\n----\nExpected:\n----\n%s----\nFound:\n----\n%s----", source, result, tp.printed)
	}
}

func TestParseLiterals(t *testing.T) {
	// Whole number literals keep one decimal place in the print form
	checkParse(t, "3", "3.0")
	checkParse(t, "200.00", "200.0")
	checkParse(t, "1234.1234", "1234.1234")
	checkParse(t, "\"hello\"", "hello")
	checkParse(t, "true", "true")
	checkParse(t, "false", "false")
	checkParse(t, "nil", "nil")
	checkParse(t, "foo", "foo")
}

func TestParsePrecedence(t *testing.T) {
	checkParse(t, "1 + 2 * 3", "(+ 1.0 (* 2.0 3.0))")
	checkParse(t, "(1 + 2) * 3", "(* (group (+ 1.0 2.0)) 3.0)")
	checkParse(t, "1 - 2 / 3", "(- 1.0 (/ 2.0 3.0))")
	checkParse(t, "1 < 2 + 3", "(< 1.0 (+ 2.0 3.0))")
	checkParse(t, "1 < 2 == true", "(== (< 1.0 2.0) true)")
	checkParse(t, "!true == false", "(== (! true) false)")
}

func TestParseAssociativity(t *testing.T) {
	// Binary operators fold left
	checkParse(t, "1 + 2 + 3", "(+ (+ 1.0 2.0) 3.0)")
	checkParse(t, "1 - 2 - 3", "(- (- 1.0 2.0) 3.0)")
	checkParse(t, "8 / 4 / 2", "(/ (/ 8.0 4.0) 2.0)")
	checkParse(t, "1 == 2 != 3", "(!= (== 1.0 2.0) 3.0)")

	// Unary binds tighter and nests right
	checkParse(t, "!!true", "(! (! true))")
	checkParse(t, "-5 - -3", "(- (- 5.0) (- 3.0))")

	// Assignment is right-associative
	checkParse(t, "a = b = 3", "(assign a = (assign b = 3.0))")
}

func TestParseGrouping(t *testing.T) {
	checkParse(t, "(nil)", "(group nil)")
	checkParse(t, "((1))", "(group (group 1.0))")
	checkParse(t, "-(1 + 2)", "(- (group (+ 1.0 2.0)))")
}

func TestParseErrors(t *testing.T) {
	checkParseErr(t, "(1 + 2", "end", "Expect ')' after expression.", 1)
	checkParseErr(t, "", "end", "Expect expression.", 1)
	checkParseErr(t, "1 +", "end", "Expect expression.", 1)
	checkParseErr(t, "+ 1", "'+'", "Expect expression.", 1)

	// The assignment target must have parsed as a variable
	checkParseErr(t, "1 = 2", "'='", "Invalid assignment target.", 1)
	checkParseErr(t, "(a) = 2", "'='", "Invalid assignment target.", 1)

	// Errors carry the line of the offending token
	checkParseErr(t, "(1 +\n2", "end", "Expect ')' after expression.", 2)
}

func TestParseStatementErrors(t *testing.T) {
	checkRunParseErr(t, "print 1", "end", "Expect ';' after statement.", 1)
	checkRunParseErr(t, "var = 1;", "'='", "Expect variable name.", 1)
	checkRunParseErr(t, "var 1 = 2;", "'1'", "Expect variable name.", 1)
	checkRunParseErr(t, "{ print 1;", "end", "Expect '}' after block.", 1)
	checkRunParseErr(t, "print 1;\nprint ;", "';'", "Expect expression.", 2)

	// The first malformed construct aborts the whole parse: statements
	// after it are never reached, no output is produced
	checkRunParseErr(t, "print 1 print 2;", "'print'", "Expect ';' after statement.", 1)
}

func TestParseStatementsAST(t *testing.T) {
	state := newInterpreterState("var a = 1;\n{ a = 2; print a + 1; }", &testPrinter{})
	lexer := &lexer{line: 1, state: state}
	lexer.scan()
	parser := &parser{state: state}
	parser.parse()

	if !state.valid() {
		t.Fatalf("parse should not record errors: %v", state.parseErrors)
	}

	want := "(var a 1.0)\n(block (assign a = 2.0) (print (+ a 1.0)))\n"
	if got := (stringVisitor{}).printStmts(state.stmts); got != want {
		t.Errorf("AST should be %q instead of %q", want, got)
	}
}
