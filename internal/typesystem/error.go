package typesystem

import "fmt"

// UnificationError reports that two type terms could not be made equal,
// either because their shapes disagree or because of an occurs-check
// violation. Message formatting happens after the current substitution has
// been applied to both terms, so the printed types are the ones actually in
// conflict.
type UnificationError struct {
	Left  Type
	Right Type
}

func (e *UnificationError) Error() string {
	return fmt.Sprintf("Can't match %s with %s", e.Left.String(), e.Right.String())
}

func newUnificationError(left, right Type) *UnificationError {
	return &UnificationError{Left: left, Right: right}
}
