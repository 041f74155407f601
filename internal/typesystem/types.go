// Package typesystem implements the type term model, substitution, and
// unification for Lumen's Hindley-Milner inference engine.
package typesystem

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/config"
)

// Type is the interface for all type terms.
type Type interface {
	String() string
	Apply(Subst) Type
	FreeTypeVariables() []int
}

// Base is a built-in base type: Int, Bool, or String.
type Base struct {
	Name string
}

func (t Base) String() string           { return t.Name }
func (t Base) Apply(s Subst) Type       { return t }
func (t Base) FreeTypeVariables() []int { return nil }

// Unknown is a unification variable, printed as "u<ID>".
type Unknown struct {
	ID int
}

func (t Unknown) String() string {
	return fmt.Sprintf("u%d", t.ID)
}

// Apply resolves t through s, following chains to a fixed point.
func (t Unknown) Apply(s Subst) Type {
	if repl, ok := s[t.ID]; ok {
		if u, ok := repl.(Unknown); ok && u.ID == t.ID {
			return t
		}
		return repl.Apply(s)
	}
	return t
}

func (t Unknown) FreeTypeVariables() []int { return []int{t.ID} }

// Func is a function arrow Arg -> Result. Arrows are right-associative in
// surface syntax: A -> B -> C parses as A -> (B -> C).
type Func struct {
	Arg    Type
	Result Type
}

func (t Func) String() string {
	argStr := t.Arg.String()
	if _, ok := t.Arg.(Func); ok {
		argStr = "(" + argStr + ")"
	}
	return fmt.Sprintf("%s -> %s", argStr, t.Result.String())
}

func (t Func) Apply(s Subst) Type {
	return Func{Arg: t.Arg.Apply(s), Result: t.Result.Apply(s)}
}

func (t Func) FreeTypeVariables() []int {
	return append(t.Arg.FreeTypeVariables(), t.Result.FreeTypeVariables()...)
}

// Built-in base types (config.BaseTypeNames is the closed set they draw from).
var (
	IntType    = Base{Name: config.IntTypeName}
	BoolType   = Base{Name: config.BoolTypeName}
	StringType = Base{Name: config.StringTypeName}
)

// Subst maps unification variable ids to type terms. No key ever maps to
// Unknown(itself) — Extend refuses to insert a trivial identity binding.
type Subst map[int]Type

// Compose produces a substitution equivalent to "apply s first, then other":
// Compose(s1, s2).Apply(t) == s2.Apply(s1.Apply(t)).
func (s Subst) Compose(other Subst) Subst {
	result := Subst{}
	for id, t := range s {
		result[id] = t.Apply(other)
	}
	for id, t := range other {
		if _, ok := result[id]; !ok {
			result[id] = t
		}
	}
	return result
}

// Extend inserts a single binding. Callers (the unifier) are responsible for
// the occurs check; Extend itself only guards against the trivial identity.
func (s Subst) Extend(id int, t Type) {
	if u, ok := t.(Unknown); ok && u.ID == id {
		return
	}
	s[id] = t
}
