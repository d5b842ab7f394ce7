// Package unify implements unification of first-order logic terms with an
// occurs check.
package unify

import (
	"fmt"
	"io"
)

// Term is a logic term: a Variable, a Constant, or a *Compound.
type Term interface {
	fmt.Stringer
	// Clone returns a deep copy of the term.
	Clone() Term
	isTerm()
}

// Write outputs the external representation of t: variables print their
// name, constants their value, and compounds print functor(arg1, arg2).
func Write(w io.Writer, t Term) error {
	switch t := t.(type) {
	case Variable:
		_, err := fmt.Fprint(w, string(t))
		return err
	case Constant:
		_, err := fmt.Fprint(w, string(t))
		return err
	case *Compound:
		if _, err := fmt.Fprintf(w, "%s(", t.Functor); err != nil {
			return err
		}
		for i, arg := range t.Args {
			if i > 0 {
				if _, err := fmt.Fprint(w, ", "); err != nil {
					return err
				}
			}
			if err := Write(w, arg); err != nil {
				return err
			}
		}
		_, err := fmt.Fprint(w, ")")
		return err
	}
	return nil
}
