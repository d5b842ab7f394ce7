package unify

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Variable is a logic variable. Two variables denote the same entity iff
// their names are equal.
type Variable string

var varCounter uint64

// NewVariable returns a fresh variable with a name of the form _N.
func NewVariable() Variable {
	n := atomic.AddUint64(&varCounter, 1)
	return Variable(fmt.Sprintf("_%d", n))
}

func (v Variable) String() string {
	var sb strings.Builder
	_ = Write(&sb, v)
	return sb.String()
}

// Clone returns a deep copy of the variable.
func (v Variable) Clone() Term {
	return v
}

func (Variable) isTerm() {}
