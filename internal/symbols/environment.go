// Package symbols implements the typing environment: an immutable mapping
// from variable names to type terms.
package symbols

import (
	"fmt"

	"github.com/lumen-lang/lumen/internal/typesystem"
)

// UnboundVariableError is raised when Var inference looks up a name that is
// not bound in the current environment.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("Unknown variable %s", e.Name)
}

// Environment is a persistent, immutable mapping from names to type terms.
// Extend returns a new Environment that shares the parent's bindings rather
// than copying them, so sibling subtrees never observe each other's
// extensions and a shadowed outer binding is restored once the inner scope
// ends.
type Environment struct {
	name   string
	typ    typesystem.Type
	parent *Environment
}

// NewEnvironment returns the empty environment.
func NewEnvironment() *Environment {
	return nil
}

// Extend returns a new environment identical to env but with name rebound
// to typ, shadowing any existing binding of name.
func (env *Environment) Extend(name string, typ typesystem.Type) *Environment {
	return &Environment{name: name, typ: typ, parent: env}
}

// Lookup returns the type bound to name, or an *UnboundVariableError if no
// enclosing scope binds it.
func (env *Environment) Lookup(name string) (typesystem.Type, error) {
	for frame := env; frame != nil; frame = frame.parent {
		if frame.name == name {
			return frame.typ, nil
		}
	}
	return nil, &UnboundVariableError{Name: name}
}
