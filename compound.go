package unify

import "strings"

// Compound is a term with a functor and an ordered list of arguments.
// Functor and arity together define its shape.
type Compound struct {
	Functor string
	Args    []Term
}

func (c *Compound) String() string {
	var sb strings.Builder
	_ = Write(&sb, c)
	return sb.String()
}

// Arity returns the number of arguments.
func (c *Compound) Arity() int {
	return len(c.Args)
}

// Arg returns the i-th argument, or an *ArgumentError if i is out of range.
func (c *Compound) Arg(i int) (Term, error) {
	if i < 0 || i >= len(c.Args) {
		return nil, &ArgumentError{Index: i, Arity: len(c.Args)}
	}
	return c.Args[i], nil
}

// Clone returns a deep copy of the compound.
func (c *Compound) Clone() Term {
	args := make([]Term, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.Clone()
	}
	return &Compound{Functor: c.Functor, Args: args}
}

func (*Compound) isTerm() {}

// Cons returns a list cell cons(car, cdr).
func Cons(car, cdr Term) Term {
	return &Compound{
		Functor: "cons",
		Args:    []Term{car, cdr},
	}
}

// List returns a cons list of ts terminated by the constant nil.
func List(ts ...Term) Term {
	return ListRest(Constant("nil"), ts...)
}

// ListRest returns a cons list of ts followed by rest.
func ListRest(rest Term, ts ...Term) Term {
	l := rest
	for i := len(ts) - 1; i >= 0; i-- {
		l = Cons(ts[i], l)
	}
	return l
}
