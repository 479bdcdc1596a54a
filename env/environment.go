/*
File   : flow/env/environment.go
Package: env
*/

// Package env implements Flow's variable environment: a single flat mapping
// from name to value, living for the whole interpreter run.
//
// This is deliberately not a scope chain: Flow has no block scopes, so a
// `loop from` variable or a `let` inside a `when`/`repeat`/`loop` body
// stays visible after the construct ends. Environment is a direct
// simplification of a scope.Scope — same Get/Set/lookup shape, minus the
// Parent chain and the const/let-type bookkeeping that Flow's single Value
// type has no use for.
package env

import "github.com/akashmaji946/flow/value"

// Environment holds every variable binding created during a run. Names are
// case-sensitive; a binding is created on first assignment and overwritten
// on every subsequent one.
type Environment struct {
	vars map[string]value.Value
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{vars: make(map[string]value.Value)}
}

// Set creates or overwrites the binding for name.
func (e *Environment) Set(name string, v value.Value) {
	e.vars[name] = v
}

// Get looks up name. The second return value is false when name has never
// been bound; callers substitute value.Zero and report a diagnostic in
// that case.
func (e *Environment) Get(name string) (value.Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}
