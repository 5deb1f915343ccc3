/*
File    : mini-script/eval/call.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"errors"

	"github.com/akashmaji946/mini-script/builtins"
	"github.com/akashmaji946/mini-script/environment"
	"github.com/akashmaji946/mini-script/function"
	"github.com/akashmaji946/mini-script/parser"
	"github.com/akashmaji946/mini-script/values"
)

// evalCall dispatches a call expression to either a user-defined function or
// a builtin, the two callable value kinds spec §3.4 defines.
func (e *Evaluator) evalCall(env *environment.Environment, ex *parser.CallExpr) (values.Value, error) {
	callee, err := e.evaluate(env, ex.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]values.Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := e.evaluate(env, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *function.Function:
		return e.callFunction(fn, args, ex.Paren.Line)
	case values.Builtin:
		v, err := builtins.Call(fn.Name, args, ex.Paren.Line)
		if err != nil {
			return nil, newRuntimeError(e.Filename, ex.Paren.Line, "%s", err)
		}
		return v, nil
	default:
		return nil, newRuntimeError(e.Filename, ex.Paren.Line, "cannot call a value of type %s", callee.Type())
	}
}

// callFunction invokes a user-defined function: a fresh activation scope
// enclosing the function's CAPTURED environment (not the caller's), so free
// variables resolve lexically and recursion works because the function's
// own name is already bound in that captured scope by the time the body
// runs (spec §3.6).
func (e *Evaluator) callFunction(fn *function.Function, args []values.Value, callLine int) (values.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, newRuntimeError(e.Filename, callLine, "function '%s' expects %d argument(s), got %d", fn.Name, len(fn.Params), len(args))
	}

	activation := environment.New(fn.Closure)
	for i, param := range fn.Params {
		activation.Define(param.Lexeme, args[i])
	}

	err := e.executeBlock(activation, fn.Body)
	if err == nil {
		return values.NilValue, nil
	}

	var ret *signalReturn
	if errors.As(err, &ret) {
		return ret.Value, nil
	}
	return nil, err
}
