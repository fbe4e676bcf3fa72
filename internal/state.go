package internal

import (
	"errors"
	"fmt"
)

type lexError struct {
	err  error
	line int
}

type parseError struct {
	err   error
	token *token
}

type runtimeError struct {
	err   error
	token *token
}

// interpreterState stores the state of one interpreter run: the source
// text, the artifacts of each stage and every error the stages recorded.
type interpreterState struct {
	source string
	tokens []*token
	stmts  []stmt

	lexErrors    []lexError
	parseErrors  []parseError
	runtimeError *runtimeError

	logger IPrinter
}

func newInterpreterState(source string, p IPrinter) *interpreterState {
	return &interpreterState{
		source: source,
		logger: p,
	}
}

// setLexError records a lexical error and lets the scan continue, so a
// single pass reports every lexical problem in the file.
func (s *interpreterState) setLexError(err error, line int) {
	s.lexErrors = append(s.lexErrors, lexError{err: err, line: line})
}

// fatalError records a parse error and unwinds the parse. There is no
// synchronization to the next statement: the first malformed construct
// aborts the whole parse.
func (s *interpreterState) fatalError(err error, at *token) {
	s.parseErrors = append(s.parseErrors, parseError{err: err, token: at})
	panic(err)
}

// runtimeErr records a runtime error and unwinds evaluation up to
// interpret/evaluate.
func (s *interpreterState) runtimeErr(err error, at *token) {
	s.runtimeError = &runtimeError{err: err, token: at}
	panic(err)
}

func (s *interpreterState) valid() bool {
	return len(s.lexErrors) == 0 && len(s.parseErrors) == 0 && s.runtimeError == nil
}

func (s *interpreterState) printLexErrors() bool {
	for _, e := range s.lexErrors {
		s.logger.Fprintf(stderr, "[line %d] Error: %s\n", e.line, e.err)
	}
	return len(s.lexErrors) > 0
}

func (s *interpreterState) printParseErrors() bool {
	for _, e := range s.parseErrors {
		at := "end"
		if e.token.token != tkEOF {
			at = fmt.Sprintf("'%s'", e.token.lexeme)
		}
		s.logger.Fprintf(stderr, "[line %d] Error at %s: %s\n", e.token.line, at, e.err)
	}
	return len(s.parseErrors) > 0
}

func (s *interpreterState) printRuntimeError() bool {
	if s.runtimeError == nil {
		return false
	}
	s.logger.Fprintf(stderr, "%s\n[line %d]\n", s.runtimeError.err, s.runtimeError.token.line)
	return true
}

// Lexer errors
var errUnterminatedString = errors.New("Unterminated string.")

// Parser errors
var errUnclosedParen = errors.New("Expect ')' after expression.")
var errUnclosedBrace = errors.New("Expect '}' after block.")
var errExpectedExpression = errors.New("Expect expression.")
var errExpectedSemicolon = errors.New("Expect ';' after statement.")
var errExpectedVarName = errors.New("Expect variable name.")
var errInvalidAssignment = errors.New("Invalid assignment target.")

// Runtime errors
var errOnlyNumber = errors.New("Operand must be a number.")
var errOnlyNumbers = errors.New("Operands must be numbers.")
var errNumbersOrStrings = errors.New("Operands must be two numbers or two strings.")
var errDivisionByZero = errors.New("Division by zero.")
