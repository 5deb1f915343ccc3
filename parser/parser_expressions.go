/*
File    : mini-script/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/mini-script/lexer"

// expression is the entry point of the precedence ladder (spec §4.2):
// assignment binds loosest, so it sits at the top.
func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

// assignment parses `target = value`, where target must be a variable
// reference or an indexed-get (desugared here into an indexed-set), per
// spec §4.2. Assignment is right-associative, so after parsing the
// left-hand side we recurse into assignment() again for the right-hand
// side rather than looping.
func (p *Parser) assignment() (Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.ASSIGN_OP) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{Name: target.Name, Value: value}, nil
		case *IndexGetExpr:
			return &IndexSetExpr{Object: target.Object, Bracket: target.Bracket, Index: target.Index, Value: value}, nil
		default:
			return nil, &ParseError{Filename: p.Filename, Line: equals.Line, Message: "invalid assignment target"}
		}
	}

	return expr, nil
}

// or parses left-associative `||` with short-circuit semantics (spec §4.3).
func (p *Parser) or() (Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR_OP) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// and parses left-associative `&&`.
func (p *Parser) and() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND_OP) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.EQ_OP, lexer.NE_OP) {
		op := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.LT_OP, lexer.LE_OP, lexer.GT_OP, lexer.GE_OP) {
		op := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.PLUS_OP, lexer.MINUS_OP) {
		op := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.MUL_OP, lexer.DIV_OP) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// unary parses right-associative prefix `!`/`-`, falling through to call/
// index chains.
func (p *Parser) unary() (Expr, error) {
	if p.match(lexer.NOT_OP, lexer.MINUS_OP) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Right: right}, nil
	}
	return p.callOrIndex()
}

// callOrIndex parses a primary expression followed by zero or more `(args)`
// or `[index]` suffixes, left-associatively (spec §4.2).
func (p *Parser) callOrIndex() (Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(lexer.LEFT_BRACKET):
			bracket := p.previous()
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.RIGHT_BRACKET, "expected ']' after index expression"); err != nil {
				return nil, err
			}
			expr = &IndexGetExpr{Object: expr, Bracket: bracket, Index: index}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee Expr) (Expr, error) {
	args := make([]Expr, 0)
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after arguments")
	if err != nil {
		return nil, err
	}
	return &CallExpr{Callee: callee, Paren: paren, Args: args}, nil
}

// primary parses literals, identifiers, parenthesized expressions, and
// list literals — the base of the precedence ladder (spec §4.2).
func (p *Parser) primary() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.INT_LIT, lexer.NUMBER_LIT, lexer.STRING_LIT, lexer.CHAR_LIT, lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.NIL_KEY:
		p.advance()
		return &LiteralExpr{LineNo: tok.Line, Kind: tok.Type, Raw: tok.Literal}, nil
	case lexer.IDENTIFIER_ID:
		p.advance()
		return &VariableExpr{Name: tok}, nil
	case lexer.LEFT_PAREN:
		p.advance()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return &GroupingExpr{LineNo: tok.Line, Expression: expr}, nil
	case lexer.LEFT_BRACKET:
		p.advance()
		elements := make([]Expr, 0)
		if !p.check(lexer.RIGHT_BRACKET) {
			for {
				el, err := p.expression()
				if err != nil {
					return nil, err
				}
				elements = append(elements, el)
				if !p.match(lexer.COMMA) {
					break
				}
			}
		}
		if _, err := p.consume(lexer.RIGHT_BRACKET, "expected ']' after list literal"); err != nil {
			return nil, err
		}
		return &ListExpr{LineNo: tok.Line, Elements: elements}, nil
	default:
		return nil, &ParseError{Filename: p.Filename, Line: tok.Line, Message: "expected an expression, got '" + string(tok.Type) + "'"}
	}
}
