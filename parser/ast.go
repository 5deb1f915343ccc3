/*
File    : mini-script/parser/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a Mini Script token stream into an AST, then the AST
// into a statement list the evaluator walks directly. Nodes are owned by
// their parent and never shared (spec §3.3) — Go's garbage collector frees
// the whole tree in one step once the root goes out of scope, which is the
// arena-style option spec §9 calls out as eliminating the original C
// implementation's ownership ambiguity.
package parser

import "github.com/akashmaji946/mini-script/lexer"

// Expr is implemented by every expression AST node (spec §3.3).
type Expr interface {
	exprNode()
	// Line reports the source line to attribute runtime errors to.
	Line() int
}

// Stmt is implemented by every statement AST node (spec §3.3).
type Stmt interface {
	stmtNode()
}

// --- Expressions ---

// LiteralExpr is a decoded literal value baked into the AST at parse time.
type LiteralExpr struct {
	LineNo int
	// Kind distinguishes which decoded payload to build a runtime value
	// from; Raw is the decoded payload itself (int64/float64/string/byte/
	// bool/nil), matching spec §3.2's literal payload set.
	Kind lexer.TokenType
	Raw  interface{}
}

func (e *LiteralExpr) exprNode() {}
func (e *LiteralExpr) Line() int { return e.LineNo }

// VariableExpr references a bound name.
type VariableExpr struct {
	Name lexer.Token
}

func (e *VariableExpr) exprNode() {}
func (e *VariableExpr) Line() int { return e.Name.Line }

// UnaryExpr is `-right` or `!right`; Op carries the operator token so the
// evaluator can report the right line and operator kind (spec §3.3).
type UnaryExpr struct {
	Op    lexer.Token
	Right Expr
}

func (e *UnaryExpr) exprNode() {}
func (e *UnaryExpr) Line() int { return e.Op.Line }

// BinaryExpr is `left OP right` for the arithmetic/comparison/equality
// operators.
type BinaryExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (e *BinaryExpr) exprNode() {}
func (e *BinaryExpr) Line() int { return e.Op.Line }

// LogicalExpr is `left && right` or `left || right`, evaluated with
// short-circuiting (spec §4.3).
type LogicalExpr struct {
	Left  Expr
	Op    lexer.Token
	Right Expr
}

func (e *LogicalExpr) exprNode() {}
func (e *LogicalExpr) Line() int { return e.Op.Line }

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	LineNo     int
	Expression Expr
}

func (e *GroupingExpr) exprNode() {}
func (e *GroupingExpr) Line() int { return e.LineNo }

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Callee Expr
	Paren  lexer.Token // closing ')' token, for error line attribution
	Args   []Expr
}

func (e *CallExpr) exprNode() {}
func (e *CallExpr) Line() int { return e.Paren.Line }

// ListExpr is a `[e1, e2, ...]` list literal.
type ListExpr struct {
	LineNo   int
	Elements []Expr
}

func (e *ListExpr) exprNode() {}
func (e *ListExpr) Line() int { return e.LineNo }

// IndexGetExpr is `object[index]` read access.
type IndexGetExpr struct {
	Object  Expr
	Bracket lexer.Token
	Index   Expr
}

func (e *IndexGetExpr) exprNode() {}
func (e *IndexGetExpr) Line() int { return e.Bracket.Line }

// IndexSetExpr is `object[index] = value`, produced by desugaring an
// assignment whose target is an indexed-get (spec §4.2's assignment rule).
type IndexSetExpr struct {
	Object  Expr
	Bracket lexer.Token
	Index   Expr
	Value   Expr
}

func (e *IndexSetExpr) exprNode() {}
func (e *IndexSetExpr) Line() int { return e.Bracket.Line }

// AssignExpr is `name = value` for a simple variable target.
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

func (e *AssignExpr) exprNode() {}
func (e *AssignExpr) Line() int { return e.Name.Line }

// --- Statements ---

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct{ Expression Expr }

func (s *ExpressionStmt) stmtNode() {}

// PrintStmt evaluates each expression left to right, printing them
// single-space separated with one trailing newline (spec §4.5).
type PrintStmt struct {
	LineNo      int
	Expressions []Expr
}

func (s *PrintStmt) stmtNode() {}

// VarStmt declares a variable with an optional initializer (defaults to nil
// per spec §4.2).
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr // nil if absent
}

func (s *VarStmt) stmtNode() {}

// AssertStmt fails with the stringified message when Cond is falsy (spec
// §4.5).
type AssertStmt struct {
	LineNo  int
	Cond    Expr
	Message Expr
}

func (s *AssertStmt) stmtNode() {}

// BlockStmt is a `{ ... }` sequence of statements; the evaluator pushes a
// fresh environment on entry and pops it on exit (spec §4.5).
type BlockStmt struct{ Statements []Stmt }

func (s *BlockStmt) stmtNode() {}

// IfStmt is `if (cond) then (else else)?`; dangling-else binds to the
// nearest if because the parser attaches Else directly to the IfStmt it was
// parsed under (spec §4.2).
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

func (s *IfStmt) stmtNode() {}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func (s *WhileStmt) stmtNode() {}

// FunctionStmt is `function name(params) { body }`. The body is stored as a
// parsed statement list, not re-parsed text, per spec §9's "function bodies
// are stored as parsed statement lists" decision.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *FunctionStmt) stmtNode() {}

// ReturnStmt is `return expr? ;`. Value is nil when no expression is given.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *ReturnStmt) stmtNode() {}

// ImportStmt is `import "path";` (spec §4.6).
type ImportStmt struct {
	Path lexer.Token // string literal token
}

func (s *ImportStmt) stmtNode() {}
