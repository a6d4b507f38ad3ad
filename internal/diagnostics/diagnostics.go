// Package diagnostics defines the typed, coded, fatal-by-construction
// errors shared by every front-end phase, mirroring the teacher's
// errorTemplates/DiagnosticError pattern.
package diagnostics

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mcastorina/flowc/internal/token"
)

// Phase identifies which pipeline stage raised an error.
type Phase string

const (
	PhaseLexer   Phase = "lexer"
	PhaseParser  Phase = "parser"
	PhaseChecker Phase = "checker"
)

// ErrorCode is one of the abstract error kinds spec.md §7 lists.
type ErrorCode string

const (
	ErrLexError          ErrorCode = "LexError"
	ErrUnexpectedToken   ErrorCode = "UnexpectedToken"
	ErrArrowTargetNotCall ErrorCode = "ArrowTargetNotCall"
	ErrPushBufferFull    ErrorCode = "PushBufferFull"
	ErrDuplicateFunction ErrorCode = "DuplicateFunction"
	ErrMissingMain       ErrorCode = "MissingMain"
	ErrDuplicateParameter ErrorCode = "DuplicateParameter"
	ErrUnknownType       ErrorCode = "UnknownType"
	ErrBadTypeArity      ErrorCode = "BadTypeArity"
)

var errorTemplates = map[ErrorCode]string{
	ErrLexError:           "no lexical pattern matched: %s",
	ErrUnexpectedToken:    "unexpected token: %s",
	ErrArrowTargetNotCall: "expected a function call after the arrow operator, found %s",
	ErrPushBufferFull:     "cannot push back %s; push-back slot already occupied",
	ErrDuplicateFunction:  "duplicate function name %q",
	ErrMissingMain:        "no function named \"main\" found",
	ErrDuplicateParameter: "duplicate parameter name %q in function %q",
	ErrUnknownType:        "unrecognized type %q",
	ErrBadTypeArity:       "type %q used with wrong number of type arguments",
}

// DiagnosticError is the single error type returned by every parser and
// checker function that can fail. The lexer returns plain errors; the
// parser wraps them in a DiagnosticError with code LexError.
type DiagnosticError struct {
	Code      ErrorCode
	Phase     Phase
	Args      []interface{}
	Token     token.Token
	SessionID uuid.UUID
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown diagnostic code: %s", e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}
	if e.Token.Line > 0 {
		return fmt.Sprintf("%s%s error at %d:%d: %s", phaseStr, e.Code, e.Token.Line, e.Token.Column, message)
	}
	return fmt.Sprintf("%s%s error: %s", phaseStr, e.Code, message)
}

// New builds a DiagnosticError for the given phase, code, offending token
// and message arguments.
func New(phase Phase, code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: phase, Token: tok, Args: args}
}

// Tag attaches a session id to err if it is a *DiagnosticError, for
// verbose CLI correlation output. Non-DiagnosticError values pass through
// unchanged.
func Tag(err error, id uuid.UUID) error {
	if de, ok := err.(*DiagnosticError); ok {
		de.SessionID = id
	}
	return err
}
