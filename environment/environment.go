/*
File    : mini-script/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements spec §3.5/§4.4's chained lexical scopes:
// an ordered set of name-to-value bindings with an optional pointer to an
// enclosing environment. It is grounded on the teacher's scope.Scope
// (same LookUp/Bind/Assign shape), renamed to the vocabulary spec.md itself
// uses and narrowed to the three operations spec §4.4 names.
package environment

import "github.com/akashmaji946/mini-script/values"

// Environment is one lexical scope: global, block, or function activation
// (spec §3.5). Names are stored in a map rather than the linear-scan list
// spec §3.5 describes for the original C implementation — idiomatic Go for
// a dynamic name table, and observably identical for every operation spec
// §4.4 defines (define/get/assign never depend on binding order).
type Environment struct {
	vars   map[string]values.Value
	Parent *Environment
}

// New creates a scope enclosed by parent (nil for the global scope).
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]values.Value), Parent: parent}
}

// Define binds or rebinds name in the current scope only, replacing any
// existing binding at this level (spec §4.4).
func (e *Environment) Define(name string, v values.Value) {
	e.vars[name] = v
}

// Get resolves name in the nearest enclosing scope that binds it (spec
// §4.4). The caller attaches the line number to the "Undefined variable"
// error, since the environment itself doesn't track call sites.
func (e *Environment) Get(name string) (values.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign rebinds name in the scope where it was originally defined, walking
// outward through enclosing scopes (spec §4.4). It never creates a new
// binding in an outer scope, and reports whether any scope held the name.
func (e *Environment) Assign(name string, v values.Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return false
}

// Global walks to the outermost enclosing scope. Bare assignment to an
// undefined name is treated as an implicit global declaration (spec §4.4),
// so the evaluator uses this to find where that binding belongs.
func (e *Environment) Global() *Environment {
	env := e
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}
