/*
File    : mini-script/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/mini-script/lexer"
)

// ParseError reports a malformed token sequence with position info, in the
// "<Phase> Error in <filename> at line <N>: <message>" shape spec §7 wants
// for every error kind.
type ParseError struct {
	Filename string
	Line     int
	Message  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse Error in %s at line %d: %s", e.Filename, e.Line, e.Message)
}

// Parser is a one-token-lookahead recursive-descent parser for Mini
// Script's grammar (spec §4.2). Unlike the teacher's Pratt-table parser,
// each precedence level in spec §4.2's ladder gets its own method — the
// ladder is short and fixed, so a direct recursive-descent walk reads more
// plainly than building per-operator parse-function tables for it.
type Parser struct {
	Filename string
	tokens   []lexer.Token
	current  int
	Errors   []string
}

// NewParser lexes src completely and returns a parser positioned at the
// first token, or the lex error if tokenizing failed.
func NewParser(src string, filename string) (*Parser, error) {
	tokens, err := lexer.Tokenize(src, filename)
	if err != nil {
		return nil, err
	}
	return &Parser{Filename: filename, tokens: tokens, Errors: make([]string, 0)}, nil
}

// HasErrors reports whether the parser collected any errors.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// GetErrors returns every parse error collected so far.
func (p *Parser) GetErrors() []string { return p.Errors }

func (p *Parser) peek() lexer.Token { return p.tokens[p.current] }

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Type == lexer.EOF_TYPE }

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return t == lexer.EOF_TYPE
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(t) {
		return p.advance(), nil
	}
	return lexer.Token{}, &ParseError{Filename: p.Filename, Line: p.peek().Line, Message: message}
}

// Parse runs the parser to completion and returns the top-level statement
// list. Parse errors are collected (not panicked on) so multiple can be
// reported, matching the teacher's Parser.Errors strategy; synchronize()
// lets the parser keep scanning after a bad statement.
func (p *Parser) Parse() []Stmt {
	statements := make([]Stmt, 0)
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.Errors = append(p.Errors, err.Error())
			p.synchronize()
			continue
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// synchronize discards tokens until it reaches a likely statement boundary,
// so a single parse error doesn't cascade into spurious follow-on errors.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.FUNCTION_KEY, lexer.VAR_KEY, lexer.FOR_KEY, lexer.IF_KEY,
			lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY, lexer.IMPORT_KEY, lexer.ASSERT_KEY:
			return
		}
		p.advance()
	}
}

// declaration dispatches the statement forms that introduce a new binding
// (var, function) before falling through to plain statements.
func (p *Parser) declaration() (Stmt, error) {
	if p.match(lexer.VAR_KEY) {
		return p.varDeclaration()
	}
	if p.match(lexer.FUNCTION_KEY) {
		return p.functionDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER_ID, "expected variable name after 'var'")
	if err != nil {
		return nil, err
	}
	var initializer Expr
	if p.match(lexer.ASSIGN_OP) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: initializer}, nil
}

func (p *Parser) functionDeclaration() (Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER_ID, "expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after function name"); err != nil {
		return nil, err
	}
	params := make([]lexer.Token, 0)
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			param, err := p.consume(lexer.IDENTIFIER_ID, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LEFT_BRACE, "expected '{' before function body"); err != nil {
		return nil, err
	}
	body, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return &FunctionStmt{Name: name, Params: params, Body: body}, nil
}

// statement dispatches every non-declaring statement form in spec §4.2.
func (p *Parser) statement() (Stmt, error) {
	switch {
	case p.match(lexer.PRINT_KEY):
		return p.printStatement()
	case p.match(lexer.ASSERT_KEY):
		return p.assertStatement()
	case p.match(lexer.IF_KEY):
		return p.ifStatement()
	case p.match(lexer.WHILE_KEY):
		return p.whileStatement()
	case p.match(lexer.FOR_KEY):
		return p.forStatement()
	case p.match(lexer.RETURN_KEY):
		return p.returnStatement()
	case p.match(lexer.IMPORT_KEY):
		return p.importStatement()
	case p.match(lexer.LEFT_BRACE):
		stmts, err := p.blockBody()
		if err != nil {
			return nil, err
		}
		return &BlockStmt{Statements: stmts}, nil
	default:
		return p.expressionStatement()
	}
}

// blockBody parses statements until the matching '}', consuming it.
func (p *Parser) blockBody() ([]Stmt, error) {
	stmts := make([]Stmt, 0)
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, "expected '}' to close block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

// printStatement parses `print expr (, expr)* ;`. Spec §4.2 requires at
// least one expression.
func (p *Parser) printStatement() (Stmt, error) {
	line := p.previous().Line
	exprs := make([]Expr, 0, 1)
	first, err := p.expression()
	if err != nil {
		return nil, err
	}
	exprs = append(exprs, first)
	for p.match(lexer.COMMA) {
		next, err := p.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after print statement"); err != nil {
		return nil, err
	}
	return &PrintStmt{LineNo: line, Expressions: exprs}, nil
}

func (p *Parser) assertStatement() (Stmt, error) {
	line := p.previous().Line
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.COMMA, "expected ',' between assert condition and message"); err != nil {
		return nil, err
	}
	msg, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after assert statement"); err != nil {
		return nil, err
	}
	return &AssertStmt{LineNo: line, Cond: cond, Message: msg}, nil
}

// ifStatement binds a trailing else to the nearest unmatched if, which
// falls out naturally here: the recursive call to statement() for the
// "then" branch consumes its own else (if any) before this call looks for
// one of its own (spec §4.2's dangling-else rule).
func (p *Parser) ifStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch Stmt
	if p.match(lexer.ELSE_KEY) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &IfStmt{Cond: cond, Then: then, Else: elseBranch}, nil
}

func (p *Parser) whileStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{Cond: cond, Body: body}, nil
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }` right here in the parser, the way
// spec §4.5 specifies the evaluator should treat it — doing the desugaring
// once at parse time means the evaluator needs no special-cased for-loop
// execution path at all.
func (p *Parser) forStatement() (Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var init Stmt
	var err error
	if p.match(lexer.VAR_KEY) {
		init, err = p.varDeclaration()
	} else {
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after for condition"); err != nil {
		return nil, err
	}

	incr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	loopBody := &BlockStmt{Statements: []Stmt{body, &ExpressionStmt{Expression: incr}}}
	loop := &WhileStmt{Cond: cond, Body: loopBody}
	return &BlockStmt{Statements: []Stmt{init, loop}}, nil
}

// returnStatement allows the trailing ';' to be omitted immediately before
// '}' (spec §4.2).
func (p *Parser) returnStatement() (Stmt, error) {
	keyword := p.previous()
	var value Expr
	var err error
	if !p.check(lexer.SEMICOLON) && !p.check(lexer.RIGHT_BRACE) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if p.check(lexer.SEMICOLON) {
		p.advance()
	}
	return &ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) importStatement() (Stmt, error) {
	path, err := p.consume(lexer.STRING_LIT, "expected a string literal module path after 'import'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after import statement"); err != nil {
		return nil, err
	}
	return &ImportStmt{Path: path}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expression: expr}, nil
}
