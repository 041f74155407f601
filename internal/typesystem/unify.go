package typesystem

// Unify reconciles t1 and t2 by extending s in place so that
// s.Apply(t1) == s.Apply(t2). It returns an error without
// mutating s further on failure, but any bindings already extended by a
// partially-successful Func unification are retained — callers that need
// all-or-nothing semantics should clone s before calling.
func Unify(s Subst, t1, t2 Type) error {
	t1 = t1.Apply(s)
	t2 = t2.Apply(s)

	switch a := t1.(type) {
	case Unknown:
		if b, ok := t2.(Unknown); ok && b.ID == a.ID {
			return nil
		}
		return bind(s, a, t2)
	default:
		if b, ok := t2.(Unknown); ok {
			return bind(s, b, t1)
		}
	}

	switch a := t1.(type) {
	case Base:
		b, ok := t2.(Base)
		if !ok || a.Name != b.Name {
			return newUnificationError(t1, t2)
		}
		return nil
	case Func:
		b, ok := t2.(Func)
		if !ok {
			return newUnificationError(t1, t2)
		}
		if err := Unify(s, a.Arg, b.Arg); err != nil {
			return err
		}
		return Unify(s, a.Result, b.Result)
	default:
		return newUnificationError(t1, t2)
	}
}

// bind extends s with id -> t after checking that id does not occur free in
// t. The occurs-check failure is reported as the same "Can't match" message
// the rest of unification uses.
func bind(s Subst, tv Unknown, t Type) error {
	if other, ok := t.(Unknown); ok && other.ID == tv.ID {
		return nil
	}
	if Occurs(tv.ID, t) {
		return newUnificationError(tv, t)
	}
	s.Extend(tv.ID, t)
	return nil
}

// Occurs returns true iff id appears in any Unknown node of t.
func Occurs(id int, t Type) bool {
	for _, v := range t.FreeTypeVariables() {
		if v == id {
			return true
		}
	}
	return false
}
