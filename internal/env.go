package internal

import "fmt"

// env is one scope in the chain. enclosing is shared, never copied:
// assignments through the chain mutate the outer scope in place, while
// define only ever touches the current scope.
type env struct {
	state *interpreterState

	enclosing *env
	values    map[string]interface{}
}

func newEnv(state *interpreterState, enclosing *env) *env {
	return &env{
		state:     state,
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *token) interface{} {
	if value, ok := e.values[name.lexeme]; ok {
		return value
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	e.state.runtimeErr(fmt.Errorf("Undefined variable '%s'.", name.lexeme), name)
	return nil
}

func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

func (e *env) assign(name *token, value interface{}) {
	if _, ok := e.values[name.lexeme]; ok {
		e.values[name.lexeme] = value
		return
	}
	if e.enclosing != nil {
		e.enclosing.assign(name, value)
		return
	}
	e.state.runtimeErr(fmt.Errorf("Undefined variable '%s'.", name.lexeme), name)
}
