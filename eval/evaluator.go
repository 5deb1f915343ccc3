/*
File    : mini-script/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval tree-walks the AST parser produces, implementing spec §4.5's
// statement/expression semantics, §4.6's module loader, and §7's error
// model. It is grounded on the teacher's eval.Evaluator (same
// Eval(node)/Execute(stmt) split and the same "define the function's own
// name in its closure scope before running the body" recursion trick), with
// control flow rebuilt around Go's (value, error) idiom instead of the
// teacher's in-band ReturnValue/ErrorValue objects.
package eval

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/mini-script/builtins"
	"github.com/akashmaji946/mini-script/environment"
	"github.com/akashmaji946/mini-script/function"
	"github.com/akashmaji946/mini-script/lexer"
	"github.com/akashmaji946/mini-script/parser"
	"github.com/akashmaji946/mini-script/values"
)

// Evaluator is a Mini Script interpreter session: a persistent global scope
// plus the bookkeeping the module loader needs (spec §4.6: current filename,
// guard against re-entering a module that is still being imported). A REPL keeps one Evaluator alive across lines so
// variables and functions persist between them (spec §6.2); running a
// script file uses one Evaluator for the whole run.
type Evaluator struct {
	Globals  *environment.Environment
	Filename string
	Out      io.Writer

	// importing tracks module paths currently being loaded, turning a
	// circular import into a silent no-op on the second visit rather than
	// infinite recursion (spec §4.6, an implementer's choice the spec
	// leaves open).
	importing map[string]bool
}

// New creates an Evaluator writing program output to out, with every
// builtin name pre-bound in the global scope to a values.Builtin reference
// (spec §4.6: builtins are callable without any import statement).
func New(out io.Writer) *Evaluator {
	globals := environment.New(nil)
	for _, name := range builtins.Names() {
		globals.Define(name, values.Builtin{Name: name})
	}
	return &Evaluator{Globals: globals, Filename: "<input>", Out: out, importing: make(map[string]bool)}
}

// Run executes a top-level statement list against the global scope, in the
// filename's context (used for both "run this whole file" and "run this one
// REPL line" — the caller decides what filename to attribute errors to).
func (e *Evaluator) Run(stmts []parser.Stmt, filename string) error {
	prev := e.Filename
	e.Filename = filename
	defer func() { e.Filename = prev }()

	for _, stmt := range stmts {
		if err := e.execute(e.Globals, stmt); err != nil {
			var ret *signalReturn
			if errors.As(err, &ret) {
				return newRuntimeError(e.Filename, 0, "'return' used outside of a function")
			}
			return err
		}
	}
	return nil
}

// execute runs one statement in env, per spec §4.5.
func (e *Evaluator) execute(env *environment.Environment, stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := e.evaluate(env, s.Expression)
		return err

	case *parser.PrintStmt:
		return e.execPrint(env, s)

	case *parser.VarStmt:
		return e.execVar(env, s)

	case *parser.AssertStmt:
		return e.execAssert(env, s)

	case *parser.BlockStmt:
		return e.executeBlock(environment.New(env), s.Statements)

	case *parser.IfStmt:
		return e.execIf(env, s)

	case *parser.WhileStmt:
		return e.execWhile(env, s)

	case *parser.FunctionStmt:
		fn := &function.Function{Name: s.Name.Lexeme, Params: s.Params, Body: s.Body, Closure: env}
		env.Define(s.Name.Lexeme, fn)
		return nil

	case *parser.ReturnStmt:
		var v values.Value = values.NilValue
		if s.Value != nil {
			val, err := e.evaluate(env, s.Value)
			if err != nil {
				return err
			}
			v = val
		}
		return &signalReturn{Value: v}

	case *parser.ImportStmt:
		return e.execImport(env, s)

	default:
		return newRuntimeError(e.Filename, 0, "unhandled statement type %T", stmt)
	}
}

// executeBlock runs a statement list in env, which callers create fresh for
// the block or call, stopping (and propagating) on the first error or
// return signal (spec §4.5).
func (e *Evaluator) executeBlock(env *environment.Environment, stmts []parser.Stmt) error {
	for _, stmt := range stmts {
		if err := e.execute(env, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) execPrint(env *environment.Environment, s *parser.PrintStmt) error {
	parts := make([]string, len(s.Expressions))
	for i, expr := range s.Expressions {
		v, err := e.evaluate(env, expr)
		if err != nil {
			return err
		}
		parts[i] = v.String()
	}
	for i, part := range parts {
		if i > 0 {
			fmt.Fprint(e.Out, " ")
		}
		fmt.Fprint(e.Out, part)
	}
	fmt.Fprintln(e.Out)
	return nil
}

func (e *Evaluator) execVar(env *environment.Environment, s *parser.VarStmt) error {
	var v values.Value = values.NilValue
	if s.Initializer != nil {
		val, err := e.evaluate(env, s.Initializer)
		if err != nil {
			return err
		}
		v = val
	}
	env.Define(s.Name.Lexeme, v)
	return nil
}

func (e *Evaluator) execAssert(env *environment.Environment, s *parser.AssertStmt) error {
	cond, err := e.evaluate(env, s.Cond)
	if err != nil {
		return err
	}
	if values.IsTruthy(cond) {
		return nil
	}
	msg, err := e.evaluate(env, s.Message)
	if err != nil {
		return err
	}
	return newRuntimeError(e.Filename, s.LineNo, "assertion failed: %s", msg.String())
}

func (e *Evaluator) execIf(env *environment.Environment, s *parser.IfStmt) error {
	cond, err := e.evaluate(env, s.Cond)
	if err != nil {
		return err
	}
	if values.IsTruthy(cond) {
		return e.execute(env, s.Then)
	}
	if s.Else != nil {
		return e.execute(env, s.Else)
	}
	return nil
}

func (e *Evaluator) execWhile(env *environment.Environment, s *parser.WhileStmt) error {
	for {
		cond, err := e.evaluate(env, s.Cond)
		if err != nil {
			return err
		}
		if !values.IsTruthy(cond) {
			return nil
		}
		if err := e.execute(env, s.Body); err != nil {
			return err
		}
	}
}

// execImport resolves and runs a module file against the SAME global scope
// (spec §4.6): declarations it makes at top level become visible to the
// importer. current_filename is saved and restored around the run so error
// messages inside the module attribute to the module's own file.
func (e *Evaluator) execImport(env *environment.Environment, s *parser.ImportStmt) error {
	rawPath, _ := s.Path.Literal.(string)
	resolved, err := resolveModulePath(rawPath, e.Filename)
	if err != nil {
		return newRuntimeError(e.Filename, s.Path.Line, "%s", err)
	}

	if e.importing[resolved] {
		return nil
	}

	src, err := os.ReadFile(resolved)
	if err != nil {
		return newRuntimeError(e.Filename, s.Path.Line, "failed to import '%s': %s", rawPath, err)
	}

	p, err := parser.NewParser(string(src), resolved)
	if err != nil {
		return newRuntimeError(e.Filename, s.Path.Line, "failed to import '%s': %s", rawPath, err)
	}
	stmts := p.Parse()
	if p.HasErrors() {
		return newRuntimeError(e.Filename, s.Path.Line, "failed to import '%s': %s", rawPath, p.GetErrors()[0])
	}

	e.importing[resolved] = true
	defer delete(e.importing, resolved)

	prevFile := e.Filename
	e.Filename = resolved
	defer func() { e.Filename = prevFile }()

	for _, stmt := range stmts {
		if err := e.execute(e.Globals, stmt); err != nil {
			return err
		}
	}
	return nil
}

// evaluate computes an expression's value in env, per spec §4.3.
func (e *Evaluator) evaluate(env *environment.Environment, expr parser.Expr) (values.Value, error) {
	switch ex := expr.(type) {
	case *parser.LiteralExpr:
		return literalValue(ex)

	case *parser.VariableExpr:
		v, ok := env.Get(ex.Name.Lexeme)
		if !ok {
			return nil, newRuntimeError(e.Filename, ex.Name.Line, "undefined variable '%s'", ex.Name.Lexeme)
		}
		return v, nil

	case *parser.GroupingExpr:
		return e.evaluate(env, ex.Expression)

	case *parser.ListExpr:
		elems := make([]values.Value, len(ex.Elements))
		for i, el := range ex.Elements {
			v, err := e.evaluate(env, el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &values.List{Elements: elems}, nil

	case *parser.UnaryExpr:
		return e.evalUnary(env, ex)

	case *parser.BinaryExpr:
		return e.evalBinary(env, ex)

	case *parser.LogicalExpr:
		return e.evalLogical(env, ex)

	case *parser.AssignExpr:
		return e.evalAssign(env, ex)

	case *parser.IndexGetExpr:
		return e.evalIndexGet(env, ex)

	case *parser.IndexSetExpr:
		return e.evalIndexSet(env, ex)

	case *parser.CallExpr:
		return e.evalCall(env, ex)

	default:
		return nil, newRuntimeError(e.Filename, expr.Line(), "unhandled expression type %T", expr)
	}
}

func literalValue(ex *parser.LiteralExpr) (values.Value, error) {
	switch ex.Kind {
	case lexer.INT_LIT:
		return values.Number{Value: float64(ex.Raw.(int64))}, nil
	case lexer.NUMBER_LIT:
		return values.Number{Value: ex.Raw.(float64)}, nil
	case lexer.STRING_LIT:
		return values.String{Value: ex.Raw.(string)}, nil
	case lexer.CHAR_LIT:
		return values.String{Value: string(ex.Raw.(byte))}, nil
	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		return values.Boolean{Value: ex.Raw.(bool)}, nil
	case lexer.NIL_KEY:
		return values.NilValue, nil
	default:
		return nil, fmt.Errorf("unhandled literal kind %s", ex.Kind)
	}
}

func (e *Evaluator) evalAssign(env *environment.Environment, ex *parser.AssignExpr) (values.Value, error) {
	v, err := e.evaluate(env, ex.Value)
	if err != nil {
		return nil, err
	}
	// A bare assignment to a name no enclosing scope has ever bound creates
	// an implicit global (spec §4.4), matching the teacher's Scope.Assign
	// fallback behavior.
	if !env.Assign(ex.Name.Lexeme, v) {
		env.Global().Define(ex.Name.Lexeme, v)
	}
	return v, nil
}
