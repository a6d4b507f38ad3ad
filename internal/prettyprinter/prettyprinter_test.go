package prettyprinter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcastorina/flowc/internal/ast"
	"github.com/mcastorina/flowc/internal/prettyprinter"
)

func TestPrintLiterals(t *testing.T) {
	require.Equal(t, `"hello"`, prettyprinter.Print(&ast.Literal{Value: ast.Lit{Kind: ast.LitStr, Text: "hello"}}))
	require.Equal(t, "`a`", prettyprinter.Print(&ast.Literal{Value: ast.Lit{Kind: ast.LitByt, Text: "a"}}))
	require.Equal(t, "42", prettyprinter.Print(&ast.Literal{Value: ast.Lit{Kind: ast.LitInt, Int: 42}}))
}

func TestPrintPlaceholderAndIdent(t *testing.T) {
	require.Equal(t, "_", prettyprinter.Print(&ast.Placeholder{}))
	require.Equal(t, "x", prettyprinter.Print(&ast.Ident{Name: "x"}))
}

func TestPrintCallAlwaysParenthesizesArgs(t *testing.T) {
	call := &ast.FnCall{FnName: "f", Args: []ast.Expr{
		&ast.Ident{Name: "a"},
		&ast.Literal{Value: ast.Lit{Kind: ast.LitInt, Int: 1}},
	}}
	require.Equal(t, "f(a, 1)", prettyprinter.Print(call))
}

func TestPrintInfixPrefixPostfixFullyParenthesized(t *testing.T) {
	expr := &ast.InfixOp{
		Op:  "+",
		Lhs: &ast.PrefixOp{Op: "-", Expr: &ast.Ident{Name: "a"}},
		Rhs: &ast.PostfixOp{Op: "!", Expr: &ast.Ident{Name: "b"}},
	}
	require.Equal(t, "((- a) + (b !))", prettyprinter.Print(expr))
}
