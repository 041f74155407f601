package parser

import (
	"fmt"
	"strconv"

	"github.com/lumen-lang/lumen/internal/config"
	"github.com/lumen-lang/lumen/internal/lexer"
	"github.com/lumen-lang/lumen/internal/token"
	"github.com/lumen-lang/lumen/internal/typesystem"
)

// typeParser parses the type-literal surface: Base names (Int, Bool,
// String), unknowns (uN), right-associative arrows, and parenthesized
// groups.
type typeParser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
}

// ParseType parses the type-literal surface used by tests and the CLI's
// lumen.yaml env bindings.
func ParseType(input string) (typesystem.Type, error) {
	p := &typeParser{l: lexer.New(input)}
	p.nextToken()
	p.nextToken()

	ty, err := p.parseFunc()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != token.EOF {
		return nil, &ParseError{
			Line: p.curToken.Line, Column: p.curToken.Column,
			Msg: fmt.Sprintf("unexpected trailing token %s (%q) in type literal", p.curToken.Type, p.curToken.Lexeme),
		}
	}
	return ty, nil
}

func (p *typeParser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// parseFunc parses A -> B -> C as A -> (B -> C), i.e. arrows fold right.
func (p *typeParser) parseFunc() (typesystem.Type, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.curToken.Type != token.ARROW {
		return left, nil
	}
	p.nextToken() // consume '->'
	right, err := p.parseFunc()
	if err != nil {
		return nil, err
	}
	return typesystem.Func{Arg: left, Result: right}, nil
}

func (p *typeParser) parseAtom() (typesystem.Type, error) {
	tok := p.curToken
	switch tok.Type {
	case token.IDENT_UPPER:
		if !config.IsBaseTypeName(tok.Literal) {
			return nil, &ParseError{Line: tok.Line, Column: tok.Column, Msg: fmt.Sprintf("unknown base type %q", tok.Literal)}
		}
		p.nextToken()
		return typesystem.Base{Name: tok.Literal}, nil
	case token.IDENT:
		id, ok := parseUnknownName(tok.Literal)
		if !ok {
			return nil, &ParseError{Line: tok.Line, Column: tok.Column, Msg: fmt.Sprintf("expected type (uN or a base type name), got %q", tok.Literal)}
		}
		p.nextToken()
		return typesystem.Unknown{ID: id}, nil
	case token.LPAREN:
		p.nextToken()
		inner, err := p.parseFunc()
		if err != nil {
			return nil, err
		}
		if p.curToken.Type != token.RPAREN {
			return nil, &ParseError{Line: p.curToken.Line, Column: p.curToken.Column, Msg: "expected )"}
		}
		p.nextToken()
		return inner, nil
	default:
		return nil, &ParseError{Line: tok.Line, Column: tok.Column, Msg: fmt.Sprintf("unexpected token %s (%q) in type literal", tok.Type, tok.Lexeme)}
	}
}

// parseUnknownName recognizes the uN surface: lowercase 'u' followed by a
// positive integer.
func parseUnknownName(lit string) (int, bool) {
	if len(lit) < 2 || lit[0] != 'u' {
		return 0, false
	}
	n, err := strconv.Atoi(lit[1:])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
