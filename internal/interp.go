package internal

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

var stderr io.Writer = os.Stderr

// Exit codes reported to the calling layer.
const (
	ExitOK           = 0
	ExitCompileError = 65
	ExitRuntimeError = 70
)

// TokenizeSource scans source and prints every token, one per line.
// Lexical errors go to stderr; scanning still runs to the end of the
// input so every lexical problem is reported in one pass.
func TokenizeSource(source string, p IPrinter) int {
	state := newInterpreterState(source, p)
	lexer := &lexer{line: 1, state: state}
	lexer.scan()

	hadError := state.printLexErrors()
	for _, t := range state.tokens {
		p.Println(t)
	}

	if hadError {
		return ExitCompileError
	}
	return ExitOK
}

// ParseSource scans and parses source as a single expression and prints
// its parenthesized prefix form.
func ParseSource(source string, p IPrinter) int {
	_, expression := parseExpr(source, p)
	if expression == nil {
		return ExitCompileError
	}
	p.Println(stringVisitor{}.print(expression))
	return ExitOK
}

// EvaluateSource scans, parses and evaluates source as a single
// expression and prints the runtime rendering of its value.
func EvaluateSource(source string, p IPrinter) int {
	state, expression := parseExpr(source, p)
	if expression == nil {
		return ExitCompileError
	}

	value, ok := newExec(state).evaluate(expression)
	if !ok {
		state.printRuntimeError()
		return ExitRuntimeError
	}

	p.Println(writeValue(value))
	return ExitOK
}

// RunSource scans, parses and executes source as a statement list.
func RunSource(source string, p IPrinter) int {
	state := newInterpreterState(source, p)
	lexer := &lexer{line: 1, state: state}
	lexer.scan()

	if state.printLexErrors() {
		return ExitCompileError
	}

	parser := &parser{state: state}
	parser.parse()

	if state.printParseErrors() {
		return ExitCompileError
	}

	if !newExec(state).interpret() {
		state.printRuntimeError()
		return ExitRuntimeError
	}

	log.Debug("run complete")
	return ExitOK
}

func parseExpr(source string, p IPrinter) (*interpreterState, expr) {
	state := newInterpreterState(source, p)
	lexer := &lexer{line: 1, state: state}
	lexer.scan()

	if state.printLexErrors() {
		return state, nil
	}

	parser := &parser{state: state}
	expression := parser.parseExpression()

	if state.printParseErrors() {
		return state, nil
	}

	return state, expression
}
