package parser

import (
	"strconv"
	"strings"

	"github.com/mcastorina/flowc/internal/ast"
	"github.com/mcastorina/flowc/internal/diagnostics"
	"github.com/mcastorina/flowc/internal/token"
)

// Binding powers, straight out of the precedence table: right-associative
// operators (^, ., ::) give their right child a lower minimum bp than
// their left bp; every other infix operator is left-associative (right bp
// = left bp + 1).
const (
	bpOrL, bpOrR           = 1, 2
	bpAndL, bpAndR         = 3, 4
	bpEqL, bpEqR           = 5, 6
	bpCmpL, bpCmpR         = 7, 8
	bpArrowL, bpArrowR     = 9, 10
	bpAddL, bpAddR         = 11, 12
	bpMulL, bpMulR         = 13, 14
	bpCaretL, bpCaretR     = 22, 21
	bpDotL, bpDotR         = 24, 23
	bpPrefix               = 51
	bpPostfix              = 101
)

func infixBindingPower(op token.Type) (left, right int, ok bool) {
	switch op {
	case token.OR:
		return bpOrL, bpOrR, true
	case token.AND:
		return bpAndL, bpAndR, true
	case token.EQ, token.NEQ:
		return bpEqL, bpEqR, true
	case token.LT, token.GT, token.LTE, token.GTE:
		return bpCmpL, bpCmpR, true
	case token.ARROW:
		return bpArrowL, bpArrowR, true
	case token.PLUS, token.MINUS:
		return bpAddL, bpAddR, true
	case token.ASTERISK, token.SLASH:
		return bpMulL, bpMulR, true
	case token.CARET:
		return bpCaretL, bpCaretR, true
	case token.DOT, token.DCOLON:
		return bpDotL, bpDotR, true
	}
	return 0, 0, false
}

func prefixBindingPower(op token.Type) (right int, ok bool) {
	switch op {
	case token.PLUS, token.MINUS, token.BANG:
		return bpPrefix, true
	}
	return 0, false
}

func postfixBindingPower(op token.Type) (left int, ok bool) {
	if op == token.BANG {
		return bpPostfix, true
	}
	return 0, false
}

// parseExpression is the Pratt climber: parse a primary, then repeatedly
// fold in postfix/infix operators whose binding power clears minBP.
func (p *Parser) parseExpression(minBP int) (ast.Expr, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for {
		opTok := p.peek()
		op := opTok.Type

		if token.IsStopToken(op) {
			break
		}

		if leftBP, ok := postfixBindingPower(op); ok {
			if leftBP < minBP {
				break
			}
			if _, err := p.next(); err != nil {
				return nil, err
			}
			lhs = &ast.PostfixOp{Op: op, Expr: lhs}
			continue
		}

		if leftBP, rightBP, ok := infixBindingPower(op); ok {
			if leftBP < minBP {
				break
			}
			if _, err := p.next(); err != nil {
				return nil, err
			}
			rhs, err := p.parseExpression(rightBP)
			if err != nil {
				return nil, err
			}
			if op == token.ARROW {
				lhs, err = splicePipeline(lhs, rhs, opTok)
				if err != nil {
					return nil, err
				}
			} else {
				lhs = &ast.InfixOp{Op: op, Lhs: lhs, Rhs: rhs}
			}
			continue
		}

		return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrUnexpectedToken, opTok, describeToken(opTok))
	}

	return lhs, nil
}

// parsePrimary parses one primary production: literal, identifier or call,
// parenthesized tuple, prefix operator, or placeholder.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()

	switch tok.Type {
	case token.INT:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		cleaned := strings.ReplaceAll(tok.Lexeme, "_", "")
		n, err := strconv.ParseUint(cleaned, 10, 64)
		if err != nil {
			return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrUnexpectedToken, tok, "malformed integer literal "+tok.Lexeme)
		}
		return &ast.Literal{Value: ast.Lit{Kind: ast.LitInt, Int: n}}, nil

	case token.STRING:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: ast.Lit{Kind: ast.LitStr, Text: stripDelimiters(tok.Lexeme)}}, nil

	case token.BYTE:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		return &ast.Literal{Value: ast.Lit{Kind: ast.LitByt, Text: stripDelimiters(tok.Lexeme)}}, nil

	case token.IDENT:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		if p.at(token.LPAREN) {
			return p.parseCall(tok.Lexeme)
		}
		return &ast.Ident{Name: tok.Lexeme}, nil

	case token.LPAREN:
		return p.parseParenOrTuple()

	case token.PLUS, token.MINUS, token.BANG:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		rightBP, _ := prefixBindingPower(tok.Type)
		expr, err := p.parseExpression(rightBP)
		if err != nil {
			return nil, err
		}
		return &ast.PrefixOp{Op: tok.Type, Expr: expr}, nil

	case token.UNDERSCORE:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		return &ast.Placeholder{}, nil
	}

	return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrUnexpectedToken, tok, "expected start of expression, found "+describeToken(tok))
}

// parseCall parses the `(args)` suffix of a call whose name has already
// been consumed. A trailing comma immediately before `)` is tolerated.
func (p *Parser) parseCall(name string) (ast.Expr, error) {
	if _, err := p.consume(token.LPAREN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for !p.at(token.RPAREN) {
		arg, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.at(token.COMMA) {
			if _, err := p.next(); err != nil {
				return nil, err
			}
			if p.at(token.RPAREN) {
				break
			}
		} else if !p.at(token.RPAREN) {
			return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrUnexpectedToken, p.peek(), "expected ',' or ')' in call arguments, found "+describeToken(p.peek()))
		}
	}
	if _, err := p.consume(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.FnCall{FnName: name, Args: args}, nil
}

// parseParenOrTuple parses a `(` already peeked but not consumed: a
// zero-or-more comma-separated expression list, unwrapped to its sole
// element when exactly one is present.
func (p *Parser) parseParenOrTuple() (ast.Expr, error) {
	if _, err := p.next(); err != nil { // consume '('
		return nil, err
	}
	var elems []ast.Expr
	for !p.at(token.RPAREN) {
		e, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
		if p.at(token.COMMA) {
			if _, err := p.next(); err != nil {
				return nil, err
			}
			if p.at(token.RPAREN) {
				break
			}
		} else if !p.at(token.RPAREN) {
			return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrUnexpectedToken, p.peek(), "expected ',' or ')' in tuple, found "+describeToken(p.peek()))
		}
	}
	if _, err := p.consume(token.RPAREN); err != nil {
		return nil, err
	}
	if len(elems) == 1 {
		return elems[0], nil
	}
	return &ast.Tuple{Elements: elems}, nil
}

// splicePipeline implements the `->` pipeline rewrite: lhs feeds into the
// function call buried under the `.`/`::` spine of rhs.
func splicePipeline(lhs, rhs ast.Expr, arrow token.Token) (ast.Expr, error) {
	if ident, ok := rhs.(*ast.Ident); ok {
		return &ast.InfixOp{Op: token.ARROW, Lhs: lhs, Rhs: ident}, nil
	}

	leftSeq := tupleElements(lhs)
	return spliceSpine(rhs, leftSeq, arrow)
}

func tupleElements(e ast.Expr) []ast.Expr {
	if t, ok := e.(*ast.Tuple); ok {
		return t.Elements
	}
	return []ast.Expr{e}
}

// spliceSpine walks the `.`/`::` chain on the right of `->`, rebuilding it
// node by node, until it reaches the target FnCall whose argument list
// receives leftSeq.
func spliceSpine(expr ast.Expr, leftSeq []ast.Expr, arrow token.Token) (ast.Expr, error) {
	switch e := expr.(type) {
	case *ast.FnCall:
		return &ast.FnCall{FnName: e.FnName, Args: spliceArgs(e.Args, leftSeq)}, nil
	case *ast.InfixOp:
		if e.Op == token.DOT || e.Op == token.DCOLON {
			newRhs, err := spliceSpine(e.Rhs, leftSeq, arrow)
			if err != nil {
				return nil, err
			}
			return &ast.InfixOp{Op: e.Op, Lhs: e.Lhs, Rhs: newRhs}, nil
		}
	}
	return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrArrowTargetNotCall, arrow, describeExpr(expr))
}

// spliceArgs fills the first k placeholders in args with leftSeq in order,
// left to right, and appends any remaining elements of leftSeq.
func spliceArgs(args []ast.Expr, leftSeq []ast.Expr) []ast.Expr {
	result := append([]ast.Expr(nil), args...)
	for _, elem := range leftSeq {
		idx := -1
		for i, a := range result {
			if _, ok := a.(*ast.Placeholder); ok {
				idx = i
				break
			}
		}
		if idx >= 0 {
			result[idx] = elem
		} else {
			result = append(result, elem)
		}
	}
	return result
}

func stripDelimiters(lexeme string) string {
	if len(lexeme) < 2 {
		return ""
	}
	return lexeme[1 : len(lexeme)-1]
}

func describeToken(tok token.Token) string {
	if tok.Lexeme != "" {
		return string(tok.Type) + " " + strconv.Quote(tok.Lexeme)
	}
	return string(tok.Type)
}

// describeExpr gives a short, non-recursive description of an expression
// node kind for error messages; it intentionally doesn't pretty-print the
// whole subtree.
func describeExpr(e ast.Expr) string {
	switch e.(type) {
	case *ast.Literal:
		return "a literal"
	case *ast.Ident:
		return "an identifier"
	case *ast.PrefixOp:
		return "a prefix expression"
	case *ast.PostfixOp:
		return "a postfix expression"
	case *ast.Placeholder:
		return "a placeholder"
	case *ast.Tuple:
		return "a tuple"
	case *ast.InfixOp:
		return "an infix expression"
	default:
		return "an unrecognized expression"
	}
}
