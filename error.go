package unify

import "fmt"

// ArgumentError is an error that signifies an out-of-range argument index.
type ArgumentError struct {
	Index int
	Arity int
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument index out of range: index %d, arity %d", e.Index, e.Arity)
}
