// Package ast defines the abstract syntax tree produced by the parser: pure
// data, no behavior beyond what is needed to walk and print it. Every
// recursive field is exclusively owned by its parent (the tree has no
// sharing), matching spec.md §9's "Recursive AST ownership" note.
package ast

import "github.com/mcastorina/flowc/internal/token"

// Type is a (possibly generic) type reference, e.g. `u8` or `stream<u8>`.
type Type struct {
	Name     string
	Generics []Type
}

// LitKind tags the three literal shapes.
type LitKind int

const (
	LitInt LitKind = iota
	LitStr
	LitByt
)

// Lit is a literal value: an unsigned integer, or the body text of a
// string/byte literal (already stripped of its delimiters).
type Lit struct {
	Kind LitKind
	Int  uint64
	Text string
}

// Expr is any expression node.
type Expr interface {
	exprNode()
}

// Literal wraps a Lit as an expression.
type Literal struct {
	Value Lit
}

func (*Literal) exprNode() {}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
}

func (*Ident) exprNode() {}

// FnCall is a call to a named function with an ordered argument list.
type FnCall struct {
	FnName string
	Args   []Expr
}

func (*FnCall) exprNode() {}

// PrefixOp is `op expr` (+, -, !).
type PrefixOp struct {
	Op   token.Type
	Expr Expr
}

func (*PrefixOp) exprNode() {}

// InfixOp is `lhs op rhs`.
type InfixOp struct {
	Op  token.Type
	Lhs Expr
	Rhs Expr
}

func (*InfixOp) exprNode() {}

// PostfixOp is `expr op` (!).
type PostfixOp struct {
	Op   token.Type
	Expr Expr
}

func (*PostfixOp) exprNode() {}

// Placeholder is the `_` expression-position marker used by pipeline
// argument splicing.
type Placeholder struct{}

func (*Placeholder) exprNode() {}

// Tuple is a transient grouping of expressions; it never survives
// expression parsing except as left-hand-side sugar consumed by the `->`
// rewrite, or as a legal (semantics-free) zero/multi-element literal.
type Tuple struct {
	Elements []Expr
}

func (*Tuple) exprNode() {}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

// Declaration introduces one or more new names bound to a single value
// (`a, b := expr;`).
type Declaration struct {
	VarNames []string
	Value    Expr
}

func (*Declaration) stmtNode() {}

// Assignment rebinds one or more existing names (`a, b = expr;`).
type Assignment struct {
	VarNames []string
	Value    Expr
}

func (*Assignment) stmtNode() {}

// IfStmt is `if cond { body } (else (if ... | { ... }))?`.
type IfStmt struct {
	Condition Expr
	Body      []Stmt
	Else      Stmt // *IfStmt, *Block, or nil
}

func (*IfStmt) stmtNode() {}

// ReturnStmt is `return;` or `return expr;`.
type ReturnStmt struct {
	Value Expr // nil if bare `return;`
}

func (*ReturnStmt) stmtNode() {}

// ContinueStmt is `continue;`.
type ContinueStmt struct{}

func (*ContinueStmt) stmtNode() {}

// ForLoop is `for name in stream { stmts }`.
type ForLoop struct {
	VarName string
	Stream  Expr
	Stmts   []Stmt
}

func (*ForLoop) stmtNode() {}

// Block is a brace-delimited statement sequence.
type Block struct {
	Stmts []Stmt
}

func (*Block) stmtNode() {}

// ExprStmt is a bare expression used as a statement.
type ExprStmt struct {
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// Param is a single named, typed parameter (input or return parameter).
type Param struct {
	Name string
	Type Type
}

// Item is any top-level declaration. Presently only Function exists.
type Item interface {
	itemNode()
}

// Function is a `fn name(params) (-> (return_params))? { body }` item.
type Function struct {
	Name         string
	Parameters   []Param
	Body         []Stmt
	ReturnParams []Param
}

func (*Function) itemNode() {}

// File is a parsed source file: an ordered sequence of items.
type File struct {
	Items []Item
	// Path is the originating file path. ParseFile does not set it, so it
	// is empty unless the caller fills it in; no parsing, checking or
	// diagnostics code reads it.
	Path string
}
