// Package parser turns Lumen source text into the expression tree consumed
// by the inference engine. It is an external collaborator to the core
// algorithm — the engine never depends on this package — but a real
// implementation lives here so the whole tool is runnable end to end.
package parser

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/token"
)

// ParseError reports a syntax error with its source position.
type ParseError struct {
	Line, Column int
	Msg          string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token
}

// New constructs a parser over input. The first two tokens are primed
// immediately so curToken/peekToken are valid before the first parse call.
func New(input string) *Parser {
	p := &Parser{l: lexer.New(input)}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// curTokenIsIdent reports whether curToken can name a variable. Case is not
// restricted at the expression level — only the type-literal surface treats
// a leading uppercase letter specially.
func (p *Parser) curTokenIsIdent() bool {
	return p.curTokenIs(token.IDENT) || p.curTokenIs(token.IDENT_UPPER)
}

func (p *Parser) expect(t token.TokenType) error {
	if !p.curTokenIs(t) {
		return &ParseError{
			Line: p.curToken.Line, Column: p.curToken.Column,
			Msg: fmt.Sprintf("expected %s, got %s (%q)", t, p.curToken.Type, p.curToken.Lexeme),
		}
	}
	p.nextToken()
	return nil
}

// ParseExpr parses a single top-level expression. Parsing consumes the
// entire input; trailing tokens other than EOF are a syntax error.
func ParseExpr(input string) (ast.Expr, error) {
	p := New(input)
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.EOF) {
		return nil, &ParseError{
			Line: p.curToken.Line, Column: p.curToken.Column,
			Msg: fmt.Sprintf("unexpected trailing token %s (%q)", p.curToken.Type, p.curToken.Lexeme),
		}
	}
	return expr, nil
}

// parseExpr dispatches on the leading token. let/if/lambda bodies extend as
// far right as the grammar allows, so each of those is parsed by recursing
// into parseExpr rather than a tighter sub-rule.
func (p *Parser) parseExpr() (ast.Expr, error) {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLet()
	case token.IF:
		return p.parseIf()
	case token.BACKSLASH:
		return p.parseLambda()
	default:
		return p.parseApp()
	}
}

func (p *Parser) parseLet() (ast.Expr, error) {
	tok := p.curToken
	p.nextToken() // consume 'let'

	if !p.curTokenIsIdent() {
		return nil, &ParseError{Line: p.curToken.Line, Column: p.curToken.Column, Msg: "expected identifier after let"}
	}
	name := p.curToken.Literal
	p.nextToken()

	if err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	bound, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.IN); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Let{Token: tok, Name: name, Bound: bound, Body: body}, nil
}

func (p *Parser) parseIf() (ast.Expr, error) {
	tok := p.curToken
	p.nextToken() // consume 'if'

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.THEN); err != nil {
		return nil, err
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.ELSE); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.If{Token: tok, Cond: cond, Then: then, Else: els}, nil
}

func (p *Parser) parseLambda() (ast.Expr, error) {
	tok := p.curToken
	p.nextToken() // consume '\'

	if !p.curTokenIsIdent() {
		return nil, &ParseError{Line: p.curToken.Line, Column: p.curToken.Column, Msg: "expected parameter name after \\"}
	}
	param := p.curToken.Literal
	p.nextToken()

	if err := p.expect(token.ARROW); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Token: tok, Param: param, Body: body}, nil
}

// parseApp parses left-associative juxtaposition application: a sequence of
// atoms folds into nested App nodes, f a b c => App(App(App(f,a),b),c).
func (p *Parser) parseApp() (ast.Expr, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		arg, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		expr = &ast.App{Token: expr.GetToken(), Function: expr, Argument: arg}
	}
	return expr, nil
}

func (p *Parser) startsAtom() bool {
	switch p.curToken.Type {
	case token.INT, token.STRING, token.TRUE, token.FALSE, token.IDENT, token.IDENT_UPPER, token.LPAREN:
		return true
	default:
		return false
	}
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.curToken
	switch tok.Type {
	case token.INT:
		n, err := lexer.ParseIntLiteral(tok.Literal)
		if err != nil {
			return nil, &ParseError{Line: tok.Line, Column: tok.Column, Msg: fmt.Sprintf("invalid integer literal %q", tok.Literal)}
		}
		p.nextToken()
		return &ast.IntLit{Token: tok, Value: n}, nil
	case token.STRING:
		p.nextToken()
		return &ast.StringLit{Token: tok, Value: tok.Literal}, nil
	case token.TRUE:
		p.nextToken()
		return &ast.BoolLit{Token: tok, Value: true}, nil
	case token.FALSE:
		p.nextToken()
		return &ast.BoolLit{Token: tok, Value: false}, nil
	case token.IDENT, token.IDENT_UPPER:
		p.nextToken()
		return &ast.Var{Token: tok, Name: tok.Literal}, nil
	case token.LPAREN:
		p.nextToken()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, &ParseError{Line: tok.Line, Column: tok.Column, Msg: fmt.Sprintf("unexpected token %s (%q)", tok.Type, tok.Lexeme)}
	}
}
