package checker_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcastorina/flowc/internal/checker"
	"github.com/mcastorina/flowc/internal/diagnostics"
	"github.com/mcastorina/flowc/internal/parser"
)

func checkSource(t *testing.T, source string) error {
	t.Helper()
	file, err := parser.ParseFile(source)
	require.NoError(t, err)
	return checker.CheckAll(file)
}

func TestDuplicateFunctionFails(t *testing.T) {
	err := checkSource(t, `fn main() {} fn main() {}`)
	require.Error(t, err)
	de, ok := err.(*diagnostics.DiagnosticError)
	require.True(t, ok)
	require.Equal(t, diagnostics.ErrDuplicateFunction, de.Code)
}

func TestUnknownTypeFails(t *testing.T) {
	err := checkSource(t, `fn test(foo stream<u32>) -> (bar int) {}`)
	require.Error(t, err)
	de, ok := err.(*diagnostics.DiagnosticError)
	require.True(t, ok)
	require.Equal(t, diagnostics.ErrUnknownType, de.Code)
}

func TestMissingMainFails(t *testing.T) {
	err := checkSource(t, `fn helper() {}`)
	require.Error(t, err)
	de, ok := err.(*diagnostics.DiagnosticError)
	require.True(t, ok)
	require.Equal(t, diagnostics.ErrMissingMain, de.Code)
}

func TestDuplicateParameterAcrossInputsAndOutputsFails(t *testing.T) {
	err := checkSource(t, `fn main() {} fn f(x u8) -> (x u8) {}`)
	require.Error(t, err)
	de, ok := err.(*diagnostics.DiagnosticError)
	require.True(t, ok)
	require.Equal(t, diagnostics.ErrDuplicateParameter, de.Code)
}

func TestBadStreamArityFails(t *testing.T) {
	err := checkSource(t, `fn main() {} fn f(x stream<u8, u8>) {}`)
	require.Error(t, err)
	de, ok := err.(*diagnostics.DiagnosticError)
	require.True(t, ok)
	require.Equal(t, diagnostics.ErrBadTypeArity, de.Code)
}

func TestWellFormedFilePasses(t *testing.T) {
	err := checkSource(t, `
fn rot13(input stream<u8>) -> (out stream<u8>) {}
fn main() {}
`)
	require.NoError(t, err)
}
