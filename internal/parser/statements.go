package parser

import (
	"github.com/mcastorina/flowc/internal/ast"
	"github.com/mcastorina/flowc/internal/diagnostics"
	"github.com/mcastorina/flowc/internal/token"
)

// File parses a complete source file: items until EOF.
func (p *Parser) File() (*ast.File, error) {
	var items []ast.Item
	for !p.at(token.EOF) {
		item, err := p.item()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &ast.File{Items: items}, nil
}

// item parses a single top-level declaration. Only `fn` items exist.
func (p *Parser) item() (ast.Item, error) {
	tok := p.peek()
	if tok.Type != token.KEYWORD_FN {
		return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrUnexpectedToken, tok, "expected 'fn', found "+describeToken(tok))
	}
	return p.function()
}

func (p *Parser) function() (*ast.Function, error) {
	if _, err := p.consume(token.KEYWORD_FN); err != nil {
		return nil, err
	}
	name, err := p.consume(token.IDENT)
	if err != nil {
		return nil, err
	}
	params, err := p.namedParams()
	if err != nil {
		return nil, err
	}

	var returnParams []ast.Param
	if p.at(token.ARROW) {
		if _, err := p.next(); err != nil {
			return nil, err
		}
		returnParams, err = p.namedParams()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Name:         name.Lexeme,
		Parameters:   params,
		ReturnParams: returnParams,
		Body:         body,
	}, nil
}

// namedParams parses `( (identifier type (, identifier type)*)? )`.
func (p *Parser) namedParams() ([]ast.Param, error) {
	if _, err := p.consume(token.LPAREN); err != nil {
		return nil, err
	}
	var params []ast.Param
	for !p.at(token.RPAREN) {
		nameTok, err := p.consume(token.IDENT)
		if err != nil {
			return nil, err
		}
		typ, err := p.typeNode()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: nameTok.Lexeme, Type: typ})
		if p.at(token.COMMA) {
			if _, err := p.next(); err != nil {
				return nil, err
			}
			if p.at(token.RPAREN) {
				return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrUnexpectedToken, p.peek(), "trailing comma not permitted in parameter list")
			}
		} else if !p.at(token.RPAREN) {
			return nil, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrUnexpectedToken, p.peek(), "expected ',' or ')' in parameter list, found "+describeToken(p.peek()))
		}
	}
	if _, err := p.consume(token.RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// typeNode parses `identifier (< type (, type)* >)?`.
func (p *Parser) typeNode() (ast.Type, error) {
	nameTok, err := p.consume(token.IDENT)
	if err != nil {
		return ast.Type{}, err
	}
	typ := ast.Type{Name: nameTok.Lexeme}
	if !p.at(token.LT) {
		return typ, nil
	}
	if _, err := p.next(); err != nil { // consume '<'
		return ast.Type{}, err
	}
	for {
		generic, err := p.typeNode()
		if err != nil {
			return ast.Type{}, err
		}
		typ.Generics = append(typ.Generics, generic)
		if p.at(token.COMMA) {
			if _, err := p.next(); err != nil {
				return ast.Type{}, err
			}
			continue
		}
		break
	}
	if _, err := p.consume(token.GT); err != nil {
		return ast.Type{}, err
	}
	return typ, nil
}

// block parses `{ stmt* }`.
func (p *Parser) block() ([]ast.Stmt, error) {
	if _, err := p.consume(token.LBRACE); err != nil {
		return nil, err
	}
	var stmts []ast.Stmt
	for !p.at(token.RBRACE) {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RBRACE); err != nil {
		return nil, err
	}
	return stmts, nil
}

// statement dispatches on the next token per spec.md's statement grammar.
func (p *Parser) statement() (ast.Stmt, error) {
	tok := p.peek()

	switch tok.Type {
	case token.KEYWORD_IF:
		return p.ifStatement()
	case token.LBRACE:
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.Block{Stmts: stmts}, nil
	case token.KEYWORD_RETURN:
		return p.returnStatement()
	case token.KEYWORD_CONTINUE:
		if _, err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.consume(token.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.ContinueStmt{}, nil
	case token.KEYWORD_FOR:
		return p.forLoop()
	case token.IDENT:
		return p.identLeadStatement()
	}

	return p.exprStatement()
}

// identLeadStatement handles the identifier-led productions: a
// declaration/assignment if the identifier is followed by `,`, `:=` or
// `=`; otherwise the identifier is pushed back and parsed as an
// expression-statement.
func (p *Parser) identLeadStatement() (ast.Stmt, error) {
	first, err := p.next()
	if err != nil {
		return nil, err
	}

	if p.at(token.DECLARE) || p.at(token.ASSIGN) {
		return p.finishVarStatement([]string{first.Lexeme})
	}
	if p.at(token.COMMA) {
		names := []string{first.Lexeme}
		for p.at(token.COMMA) {
			if _, err := p.next(); err != nil {
				return nil, err
			}
			nameTok, err := p.consume(token.IDENT)
			if err != nil {
				return nil, err
			}
			names = append(names, nameTok.Lexeme)
		}
		return p.finishVarStatement(names)
	}

	if err := p.push(first); err != nil {
		return nil, err
	}
	return p.exprStatement()
}

// finishVarStatement parses `:= expr ;` or `= expr ;` given the already
// parsed comma-separated names.
func (p *Parser) finishVarStatement(names []string) (ast.Stmt, error) {
	declare := p.at(token.DECLARE)
	if declare {
		if _, err := p.next(); err != nil {
			return nil, err
		}
	} else if _, err := p.consume(token.ASSIGN); err != nil {
		return nil, err
	}

	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}

	if declare {
		return &ast.Declaration{VarNames: names, Value: value}, nil
	}
	return &ast.Assignment{VarNames: names, Value: value}, nil
}

func (p *Parser) exprStatement() (ast.Stmt, error) {
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expr: expr}, nil
}

func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(token.KEYWORD_IF); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfStmt{Condition: cond, Body: body}
	if p.at(token.KEYWORD_ELSE) {
		if _, err := p.next(); err != nil {
			return nil, err
		}
		if p.at(token.KEYWORD_IF) {
			stmt.Else, err = p.ifStatement()
			if err != nil {
				return nil, err
			}
		} else {
			elseBody, err := p.block()
			if err != nil {
				return nil, err
			}
			stmt.Else = &ast.Block{Stmts: elseBody}
		}
	}
	return stmt, nil
}

func (p *Parser) returnStatement() (ast.Stmt, error) {
	if _, err := p.next(); err != nil { // consume 'return'
		return nil, err
	}
	if p.at(token.SEMICOLON) {
		if _, err := p.next(); err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{}, nil
	}
	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value}, nil
}

func (p *Parser) forLoop() (ast.Stmt, error) {
	if _, err := p.consume(token.KEYWORD_FOR); err != nil {
		return nil, err
	}
	nameTok, err := p.consume(token.IDENT)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.KEYWORD_IN); err != nil {
		return nil, err
	}
	stream, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	stmts, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.ForLoop{VarName: nameTok.Lexeme, Stream: stream, Stmts: stmts}, nil
}
