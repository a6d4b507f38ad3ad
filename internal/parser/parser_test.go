package parser_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcastorina/flowc/internal/ast"
	"github.com/mcastorina/flowc/internal/parser"
)

func TestParseFileRot13Example(t *testing.T) {
	source := `
fn rot13(input stream<u8>) -> (out stream<u8>) {
    for byte in input {
        if byte >= ` + "`a`" + ` && byte <= ` + "`m`" + ` || byte >= ` + "`A`" + ` && byte <= ` + "`M`" + ` {
            byte + 13 -> out;
        } else if byte >= ` + "`n`" + ` && byte <= ` + "`z`" + ` || byte >= ` + "`N`" + ` && byte <= ` + "`Z`" + ` {
            byte - 13 -> out;
        } else {
            byte -> out;
        }
    }
}

fn main() {
    SOURCES::stdin() -> rot13() -> SINKS::stdout();
}
`
	file, err := parser.ParseFile(source)
	require.NoError(t, err)
	require.Len(t, file.Items, 2)

	rot13, ok := file.Items[0].(*ast.Function)
	require.True(t, ok)
	require.Equal(t, "rot13", rot13.Name)
	require.Len(t, rot13.Parameters, 1)
	require.Equal(t, "input", rot13.Parameters[0].Name)
	require.Equal(t, "stream", rot13.Parameters[0].Type.Name)
	require.Len(t, rot13.Parameters[0].Type.Generics, 1)
	require.Equal(t, "u8", rot13.Parameters[0].Type.Generics[0].Name)
	require.Len(t, rot13.ReturnParams, 1)

	main, ok := file.Items[1].(*ast.Function)
	require.True(t, ok)
	require.Equal(t, "main", main.Name)
	require.Empty(t, main.Parameters)
	require.Empty(t, main.ReturnParams)
}

func TestMultiNameDeclarationAndAssignment(t *testing.T) {
	source := `
fn main() {
    a, b := foo();
    a, b = bar();
}
`
	file, err := parser.ParseFile(source)
	require.NoError(t, err)
	main := file.Items[0].(*ast.Function)
	require.Len(t, main.Body, 2)

	decl, ok := main.Body[0].(*ast.Declaration)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, decl.VarNames)

	assign, ok := main.Body[1].(*ast.Assignment)
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, assign.VarNames)
}

func TestIfElseIfElseChain(t *testing.T) {
	source := `
fn main() {
    if a {
        return;
    } else if b {
        continue;
    } else {
        return 1;
    }
}
`
	file, err := parser.ParseFile(source)
	require.NoError(t, err)
	main := file.Items[0].(*ast.Function)
	require.Len(t, main.Body, 1)

	ifStmt, ok := main.Body[0].(*ast.IfStmt)
	require.True(t, ok)
	require.IsType(t, &ast.ReturnStmt{}, ifStmt.Body[0])

	elseIf, ok := ifStmt.Else.(*ast.IfStmt)
	require.True(t, ok)
	require.IsType(t, &ast.ContinueStmt{}, elseIf.Body[0])

	elseBlock, ok := elseIf.Else.(*ast.Block)
	require.True(t, ok)
	require.IsType(t, &ast.ReturnStmt{}, elseBlock.Stmts[0])
}

func TestForLoop(t *testing.T) {
	source := `
fn main() {
    for x in stream {
        x -> sink();
    }
}
`
	file, err := parser.ParseFile(source)
	require.NoError(t, err)
	main := file.Items[0].(*ast.Function)
	forLoop, ok := main.Body[0].(*ast.ForLoop)
	require.True(t, ok)
	require.Equal(t, "x", forLoop.VarName)
	require.Len(t, forLoop.Stmts, 1)
}

func TestWrongTopLevelItemIsFatal(t *testing.T) {
	_, err := parser.ParseFile(`let x = 5;`)
	require.Error(t, err)
}

func TestExpressionStatementPushesBackIdentifier(t *testing.T) {
	source := `
fn main() {
    foo();
}
`
	file, err := parser.ParseFile(source)
	require.NoError(t, err)
	main := file.Items[0].(*ast.Function)
	_, ok := main.Body[0].(*ast.ExprStmt)
	require.True(t, ok)
}
