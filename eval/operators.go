/*
File    : mini-script/eval/operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/mini-script/environment"
	"github.com/akashmaji946/mini-script/lexer"
	"github.com/akashmaji946/mini-script/parser"
	"github.com/akashmaji946/mini-script/values"
)

func (e *Evaluator) evalUnary(env *environment.Environment, ex *parser.UnaryExpr) (values.Value, error) {
	right, err := e.evaluate(env, ex.Right)
	if err != nil {
		return nil, err
	}
	switch ex.Op.Type {
	case lexer.MINUS_OP:
		n, ok := right.(values.Number)
		if !ok {
			return nil, newRuntimeError(e.Filename, ex.Op.Line, "unary '-' requires a number, got %s", right.Type())
		}
		return values.Number{Value: -n.Value}, nil
	case lexer.NOT_OP:
		return values.Boolean{Value: !values.IsTruthy(right)}, nil
	default:
		return nil, newRuntimeError(e.Filename, ex.Op.Line, "unknown unary operator '%s'", ex.Op.Lexeme)
	}
}

// evalBinary implements spec §4.3's arithmetic, comparison, and equality
// operators. '+' between two strings concatenates (spec §3.4); every other
// arithmetic/comparison operator requires both operands to be numbers.
func (e *Evaluator) evalBinary(env *environment.Environment, ex *parser.BinaryExpr) (values.Value, error) {
	left, err := e.evaluate(env, ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(env, ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Type {
	case lexer.EQ_OP:
		return values.Boolean{Value: values.Equal(left, right)}, nil
	case lexer.NE_OP:
		return values.Boolean{Value: !values.Equal(left, right)}, nil
	}

	if ex.Op.Type == lexer.PLUS_OP {
		if ls, ok := left.(values.String); ok {
			if rs, ok := right.(values.String); ok {
				return values.String{Value: ls.Value + rs.Value}, nil
			}
		}
	}

	ln, lok := left.(values.Number)
	rn, rok := right.(values.Number)
	if !lok || !rok {
		return nil, newRuntimeError(e.Filename, ex.Op.Line, "operator '%s' requires two numbers (or two strings for '+'), got %s and %s", ex.Op.Lexeme, left.Type(), right.Type())
	}

	switch ex.Op.Type {
	case lexer.PLUS_OP:
		return values.Number{Value: ln.Value + rn.Value}, nil
	case lexer.MINUS_OP:
		return values.Number{Value: ln.Value - rn.Value}, nil
	case lexer.MUL_OP:
		return values.Number{Value: ln.Value * rn.Value}, nil
	case lexer.DIV_OP:
		if rn.Value == 0 {
			return nil, newRuntimeError(e.Filename, ex.Op.Line, "division by zero")
		}
		return values.Number{Value: ln.Value / rn.Value}, nil
	case lexer.LT_OP:
		return values.Boolean{Value: ln.Value < rn.Value}, nil
	case lexer.LE_OP:
		return values.Boolean{Value: ln.Value <= rn.Value}, nil
	case lexer.GT_OP:
		return values.Boolean{Value: ln.Value > rn.Value}, nil
	case lexer.GE_OP:
		return values.Boolean{Value: ln.Value >= rn.Value}, nil
	default:
		return nil, newRuntimeError(e.Filename, ex.Op.Line, "unknown binary operator '%s'", ex.Op.Lexeme)
	}
}

// evalLogical implements short-circuit '&&'/'||' (spec §4.3): the right
// operand is never evaluated when the left already determines the result.
func (e *Evaluator) evalLogical(env *environment.Environment, ex *parser.LogicalExpr) (values.Value, error) {
	left, err := e.evaluate(env, ex.Left)
	if err != nil {
		return nil, err
	}
	if ex.Op.Type == lexer.OR_OP {
		if values.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !values.IsTruthy(left) {
			return left, nil
		}
	}
	return e.evaluate(env, ex.Right)
}

func (e *Evaluator) evalIndexGet(env *environment.Environment, ex *parser.IndexGetExpr) (values.Value, error) {
	obj, err := e.evaluate(env, ex.Object)
	if err != nil {
		return nil, err
	}
	idx, err := e.evaluate(env, ex.Index)
	if err != nil {
		return nil, err
	}
	idxNum, ok := idx.(values.Number)
	if !ok {
		return nil, newRuntimeError(e.Filename, ex.Bracket.Line, "index must be a number, got %s", idx.Type())
	}
	i := int(idxNum.Value)

	switch o := obj.(type) {
	case *values.List:
		if i < 0 || i >= len(o.Elements) {
			return nil, newRuntimeError(e.Filename, ex.Bracket.Line, "list index %d out of range (length %d)", i, len(o.Elements))
		}
		return o.Elements[i], nil
	case values.String:
		if i < 0 || i >= len(o.Value) {
			return nil, newRuntimeError(e.Filename, ex.Bracket.Line, "string index %d out of range (length %d)", i, len(o.Value))
		}
		return values.String{Value: string(o.Value[i])}, nil
	default:
		return nil, newRuntimeError(e.Filename, ex.Bracket.Line, "cannot index into a %s", obj.Type())
	}
}

func (e *Evaluator) evalIndexSet(env *environment.Environment, ex *parser.IndexSetExpr) (values.Value, error) {
	obj, err := e.evaluate(env, ex.Object)
	if err != nil {
		return nil, err
	}
	idx, err := e.evaluate(env, ex.Index)
	if err != nil {
		return nil, err
	}
	val, err := e.evaluate(env, ex.Value)
	if err != nil {
		return nil, err
	}

	list, ok := obj.(*values.List)
	if !ok {
		return nil, newRuntimeError(e.Filename, ex.Bracket.Line, "cannot assign into a %s", obj.Type())
	}
	idxNum, ok := idx.(values.Number)
	if !ok {
		return nil, newRuntimeError(e.Filename, ex.Bracket.Line, "index must be a number, got %s", idx.Type())
	}
	i := int(idxNum.Value)
	if i < 0 || i >= len(list.Elements) {
		return nil, newRuntimeError(e.Filename, ex.Bracket.Line, "list index %d out of range (length %d)", i, len(list.Elements))
	}
	list.Elements[i] = val
	return val, nil
}
