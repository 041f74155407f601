// Package ast defines the expression tree produced by the parser and
// consumed by the inference engine.
package ast

import "github.com/lumen-lang/lumen/internal/token"

// Expr is the base interface for all expression nodes.
type Expr interface {
	GetToken() token.Token
	expressionNode()
}

// IntLit is an integer literal, e.g. 42.
type IntLit struct {
	Token token.Token
	Value int64
}

func (n *IntLit) expressionNode()         {}
func (n *IntLit) GetToken() token.Token   { return n.Token }

// BoolLit is a boolean literal, e.g. true.
type BoolLit struct {
	Token token.Token
	Value bool
}

func (n *BoolLit) expressionNode()       {}
func (n *BoolLit) GetToken() token.Token { return n.Token }

// StringLit is a double-quoted string literal.
type StringLit struct {
	Token token.Token
	Value string
}

func (n *StringLit) expressionNode()       {}
func (n *StringLit) GetToken() token.Token { return n.Token }

// Var is a reference to a bound name.
type Var struct {
	Token token.Token
	Name  string
}

func (n *Var) expressionNode()       {}
func (n *Var) GetToken() token.Token { return n.Token }

// Lambda is a single-parameter function literal: \param -> body.
// Multi-parameter functions are curried at the surface.
type Lambda struct {
	Token token.Token
	Param string
	Body  Expr
}

func (n *Lambda) expressionNode()       {}
func (n *Lambda) GetToken() token.Token { return n.Token }

// App is function application, left-associative at the surface.
type App struct {
	Token    token.Token
	Function Expr
	Argument Expr
}

func (n *App) expressionNode()       {}
func (n *App) GetToken() token.Token { return n.Token }

// If is a conditional: if Cond then Then else Else.
type If struct {
	Token token.Token
	Cond  Expr
	Then  Expr
	Else  Expr
}

func (n *If) expressionNode()       {}
func (n *If) GetToken() token.Token { return n.Token }

// Let is a (potentially recursive) binding: let Name = Bound in Body.
// Name is in scope inside both Bound and Body.
type Let struct {
	Token token.Token
	Name  string
	Bound Expr
	Body  Expr
}

func (n *Let) expressionNode()       {}
func (n *Let) GetToken() token.Token { return n.Token }
