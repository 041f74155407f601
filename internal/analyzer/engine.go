// Package analyzer implements Algorithm W style Hindley-Milner inference
// over the expression tree in internal/ast: fresh variable generation,
// dispatch on expression shape, unification-driven constraint solving, and
// zonking of the final result.
package analyzer

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/ast"
	"github.com/lumen-lang/lumen/internal/symbols"
	"github.com/lumen-lang/lumen/internal/typesystem"
)

// Engine owns the mutable substitution and fresh-variable counter for the
// duration of one or more InferExpr calls. It is not safe for concurrent
// use; callers that need independent inferences running at once should
// construct one Engine per goroutine.
type Engine struct {
	subst typesystem.Subst
	next  int
}

// NewEngine returns an engine with an empty substitution and its fresh
// counter at 0.
func NewEngine() *Engine {
	return &Engine{subst: typesystem.Subst{}}
}

// Fresh produces a new, never-before-seen unification variable.
func (e *Engine) Fresh() typesystem.Unknown {
	e.next++
	return typesystem.Unknown{ID: e.next}
}

// Reset clears accumulated substitutions and restarts the fresh counter at
// 0. Test harnesses call this between cases so printed unknowns (u1, u2,
// ...) are deterministic across independent inferences sharing one Engine.
func (e *Engine) Reset() {
	e.subst = typesystem.Subst{}
	e.next = 0
}

// InferExpr infers the principal type of expr under env, mutating the
// engine's substitution as a side effect of unification. The returned type
// has the accumulated substitution already applied (zonked), so no solved
// unknown leaks into the result.
func (e *Engine) InferExpr(env *symbols.Environment, expr ast.Expr) (typesystem.Type, error) {
	t, err := e.infer(env, expr)
	if err != nil {
		return nil, err
	}
	return t.Apply(e.subst), nil
}

func (e *Engine) infer(env *symbols.Environment, expr ast.Expr) (typesystem.Type, error) {
	switch n := expr.(type) {
	case *ast.IntLit:
		return typesystem.IntType, nil
	case *ast.BoolLit:
		return typesystem.BoolType, nil
	case *ast.StringLit:
		return typesystem.StringType, nil
	case *ast.Var:
		return env.Lookup(n.Name)
	case *ast.Lambda:
		return e.inferLambda(env, n)
	case *ast.App:
		return e.inferApp(env, n)
	case *ast.If:
		return e.inferIf(env, n)
	case *ast.Let:
		return e.inferLet(env, n)
	default:
		return nil, fmt.Errorf("analyzer: unhandled expression type %T", expr)
	}
}

func (e *Engine) inferLambda(env *symbols.Environment, n *ast.Lambda) (typesystem.Type, error) {
	param := e.Fresh()
	bodyEnv := env.Extend(n.Param, param)
	result, err := e.infer(bodyEnv, n.Body)
	if err != nil {
		return nil, err
	}
	return typesystem.Func{Arg: param, Result: result}, nil
}

func (e *Engine) inferApp(env *symbols.Environment, n *ast.App) (typesystem.Type, error) {
	fnType, err := e.infer(env, n.Function)
	if err != nil {
		return nil, err
	}
	argType, err := e.infer(env, n.Argument)
	if err != nil {
		return nil, err
	}
	result := e.Fresh()
	if err := typesystem.Unify(e.subst, fnType, typesystem.Func{Arg: argType, Result: result}); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) inferIf(env *symbols.Environment, n *ast.If) (typesystem.Type, error) {
	condType, err := e.infer(env, n.Cond)
	if err != nil {
		return nil, err
	}
	if err := typesystem.Unify(e.subst, condType, typesystem.BoolType); err != nil {
		return nil, err
	}
	thenType, err := e.infer(env, n.Then)
	if err != nil {
		return nil, err
	}
	elseType, err := e.infer(env, n.Else)
	if err != nil {
		return nil, err
	}
	if err := typesystem.Unify(e.subst, thenType, elseType); err != nil {
		return nil, err
	}
	return thenType, nil
}

// inferLet implements monomorphic, always-recursive let: name is bound to a
// fresh unknown for the duration of both bound and body, the unknown is
// unified with bound's inferred type, and name receives no generalized
// scheme — every use of it in body must agree on one type.
func (e *Engine) inferLet(env *symbols.Environment, n *ast.Let) (typesystem.Type, error) {
	alpha := e.Fresh()
	innerEnv := env.Extend(n.Name, alpha)

	boundType, err := e.infer(innerEnv, n.Bound)
	if err != nil {
		return nil, err
	}
	if err := typesystem.Unify(e.subst, alpha, boundType); err != nil {
		return nil, err
	}
	return e.infer(innerEnv, n.Body)
}
