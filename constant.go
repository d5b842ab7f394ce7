package unify

import "strings"

// Constant is an atomic term with no sub-structure. Two constants are equal
// iff their values are equal.
type Constant string

func (c Constant) String() string {
	var sb strings.Builder
	_ = Write(&sb, c)
	return sb.String()
}

// Clone returns a deep copy of the constant.
func (c Constant) Clone() Term {
	return c
}

func (Constant) isTerm() {}
