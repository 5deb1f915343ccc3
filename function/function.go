/*
File    : mini-script/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function defines the closure object spec §3.6 describes: a
// (declaration, parameter list, captured environment) triple, grounded on
// the teacher's function.Function.
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/mini-script/environment"
	"github.com/akashmaji946/mini-script/lexer"
	"github.com/akashmaji946/mini-script/parser"
)

// Function is a Mini Script closure: its name, its parameter tokens, the
// parsed body of the declaration it came from, and the environment that was
// current at the declaration site (spec §3.6). Body and Closure are borrowed
// references — a
// Function value going away must not free either (spec §3.4's invariant);
// Go's garbage collector enforces this automatically since nothing in this
// package ever takes ownership away from the evaluator or the parser.
type Function struct {
	Name    string
	Params  []lexer.Token
	Body    []parser.Stmt
	Closure *environment.Environment
}

func (f *Function) Type() string { return "func" }

// String renders a function value with an opaque placeholder, per spec
// §4.3's printing rule for functions/builtins/files, in the same bracketed
// shape the teacher's Function.ToObject uses.
func (f *Function) String() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Lexeme
	}
	return fmt.Sprintf("<function %s(%s)>", f.Name, strings.Join(names, ", "))
}
