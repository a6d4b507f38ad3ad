// Package parser consumes a token stream produced by internal/lexer and
// builds the AST defined in internal/ast. The driver (this file) supplies
// a one-token peek and a single-slot push-back buffer; internal/parser's
// other files build on top of it for expressions, statements and items.
package parser

import (
	"github.com/mcastorina/flowc/internal/ast"
	"github.com/mcastorina/flowc/internal/diagnostics"
	"github.com/mcastorina/flowc/internal/lexer"
	"github.com/mcastorina/flowc/internal/token"
)

// Parser drives a lexer.Lexer with one token of lookahead and an optional
// single pushed-back token.
type Parser struct {
	lex       *lexer.Lexer
	lookahead token.Token
	pushed    *token.Token
}

// New creates a Parser over l, priming the first lookahead token.
func New(l *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: l}
	tok, err := l.NextToken()
	if err != nil {
		return nil, lexErr(err)
	}
	p.lookahead = tok
	return p, nil
}

func lexErr(err error) error {
	return &diagnostics.DiagnosticError{
		Code:  diagnostics.ErrLexError,
		Phase: diagnostics.PhaseLexer,
		Args:  []interface{}{err.Error()},
	}
}

// peek returns the next token without consuming it.
func (p *Parser) peek() token.Token {
	if p.pushed != nil {
		return *p.pushed
	}
	return p.lookahead
}

// at reports whether peek() has the given type.
func (p *Parser) at(t token.Type) bool {
	return p.peek().Type == t
}

// next consumes and returns the next token. If a token was pushed back, it
// is returned first and the slot is freed.
func (p *Parser) next() (token.Token, error) {
	if p.pushed != nil {
		tok := *p.pushed
		p.pushed = nil
		return tok, nil
	}
	tok := p.lookahead
	if tok.Type != token.EOF {
		nextTok, err := p.lex.NextToken()
		if err != nil {
			return token.Token{}, lexErr(err)
		}
		p.lookahead = nextTok
	}
	return tok, nil
}

// push returns tok to the single-slot push-back buffer, to be replayed by
// the next call to next(). Pushing into an occupied slot is a parser bug
// (spec.md's "a second push is a bug, not a runtime condition"), but it is
// still surfaced as a DiagnosticError rather than a panic, since
// PushBufferFull is one of the documented error kinds.
func (p *Parser) push(tok token.Token) error {
	if p.pushed != nil {
		return diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrPushBufferFull, tok, tok.Lexeme)
	}
	t := tok
	p.pushed = &t
	return nil
}

// consume asserts that the next token has type expected, returning it, or
// fails with UnexpectedToken.
func (p *Parser) consume(expected token.Type) (token.Token, error) {
	tok, err := p.next()
	if err != nil {
		return token.Token{}, err
	}
	if tok.Type != expected {
		return token.Token{}, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrUnexpectedToken, tok,
			"expected "+string(expected)+", found "+string(tok.Type))
	}
	return tok, nil
}

// ParseFile parses a complete source file into an ast.File.
func ParseFile(source string) (*ast.File, error) {
	p, err := New(lexer.New(source))
	if err != nil {
		return nil, err
	}
	return p.File()
}
