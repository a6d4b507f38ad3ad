// Package checker implements the front end's single semantic pass:
// function-name uniqueness, presence of `main`, per-function parameter
// uniqueness, and type validity. It mirrors the teacher's walker-over-items
// shape (internal/analyzer) but narrowed to spec.md §4.5's single pass —
// body-statement checking is an explicit, undone extension point.
package checker

import (
	"github.com/mcastorina/flowc/internal/ast"
	"github.com/mcastorina/flowc/internal/config"
	"github.com/mcastorina/flowc/internal/diagnostics"
	"github.com/mcastorina/flowc/internal/token"
)

// CheckAll walks file's items once, in order, and returns the first
// violation encountered, or nil if the file is well-formed.
func CheckAll(file *ast.File) error {
	seen := make(map[string]bool, len(file.Items))

	for _, item := range file.Items {
		fn, ok := item.(*ast.Function)
		if !ok {
			continue
		}
		if seen[fn.Name] {
			return diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrDuplicateFunction, token.Token{}, fn.Name)
		}
		seen[fn.Name] = true

		if err := checkFunction(fn); err != nil {
			return err
		}
	}

	if !seen["main"] {
		return diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrMissingMain, token.Token{})
	}
	return nil
}

// checkFunction validates one function's parameter names (inputs followed
// by outputs share one name space) and parameter types.
func checkFunction(fn *ast.Function) error {
	paramNames := make(map[string]bool, len(fn.Parameters)+len(fn.ReturnParams))

	for _, param := range fn.Parameters {
		if err := checkParam(fn.Name, param, paramNames); err != nil {
			return err
		}
	}
	for _, param := range fn.ReturnParams {
		if err := checkParam(fn.Name, param, paramNames); err != nil {
			return err
		}
	}
	return nil
}

func checkParam(fnName string, param ast.Param, seen map[string]bool) error {
	if err := checkType(param.Type); err != nil {
		return err
	}
	if seen[param.Name] {
		return diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrDuplicateParameter, token.Token{}, param.Name, fnName)
	}
	seen[param.Name] = true
	return nil
}

// checkType validates one type node: a zero-arity primitive, or
// `stream<T>` with exactly one valid generic argument.
func checkType(t ast.Type) error {
	if t.Name == config.StreamType {
		if len(t.Generics) != 1 {
			return diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrBadTypeArity, token.Token{}, t.Name)
		}
		return checkType(t.Generics[0])
	}

	if !config.PrimitiveTypes[t.Name] {
		return diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrUnknownType, token.Token{}, t.Name)
	}
	if len(t.Generics) != 0 {
		return diagnostics.New(diagnostics.PhaseChecker, diagnostics.ErrBadTypeArity, token.Token{}, t.Name)
	}
	return nil
}
