package unify

import "github.com/sirupsen/logrus"

// Unify attempts to make a and b syntactically equal and returns the most
// general substitution that does so. ok is false if no such substitution
// exists; a failed attempt leaks no bindings.
func Unify(a, b Term) (sub Substitution, ok bool) {
	working := Substitution{}
	if !unify(a, b, working) {
		return nil, false
	}
	return working, true
}

// Substitute applies s to t, replacing every bound variable with its value,
// resolved transitively. The result contains no variable bound in s.
func Substitute(t Term, s Substitution) Term {
	switch t := t.(type) {
	case Variable:
		if ref, ok := s.Lookup(t); ok {
			return Substitute(ref, s)
		}
		return t
	case *Compound:
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Substitute(arg, s)
		}
		return &Compound{Functor: t.Functor, Args: args}
	default:
		return t
	}
}

// Occurs checks if v appears in t, following binding chains in s.
func Occurs(v Variable, t Term, s Substitution) bool {
	switch t := t.(type) {
	case Variable:
		if t == v {
			return true
		}
		ref, ok := s.Lookup(t)
		if !ok {
			return false
		}
		return Occurs(v, ref, s)
	case *Compound:
		for _, arg := range t.Args {
			if Occurs(v, arg, s) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func unify(a, b Term, working Substitution) bool {
	a, b = Substitute(a, working), Substitute(b, working)

	log := logrus.WithFields(logrus.Fields{
		"a": a,
		"b": b,
	})

	switch a := a.(type) {
	case Variable:
		if b, ok := b.(Variable); ok {
			if a == b {
				log.Debug("same variable")
				return true
			}
			// The lexicographically earlier name gets the binding.
			if a > b {
				a, b = b, a
			}
			log.Debug("bind variable to variable")
			working.Bind(a, b)
			return true
		}
		return bind(a, b, working, log)
	case Constant:
		switch b := b.(type) {
		case Variable:
			return bind(b, a, working, log)
		case Constant:
			log.Debug("compare constants")
			return a == b
		default:
			log.Debug("kind mismatch")
			return false
		}
	case *Compound:
		switch b := b.(type) {
		case Variable:
			return bind(b, a, working, log)
		case *Compound:
			if a.Functor != b.Functor || len(a.Args) != len(b.Args) {
				log.Debug("shape mismatch")
				return false
			}
			log.Debug("unify arguments")
			for i := range a.Args {
				if !unify(a.Args[i], b.Args[i], working) {
					return false
				}
			}
			return true
		default:
			log.Debug("kind mismatch")
			return false
		}
	}
	return false
}

func bind(v Variable, t Term, working Substitution, log *logrus.Entry) bool {
	if Occurs(v, t, working) {
		log.Debug("occurs check failed")
		return false
	}
	log.Debug("bind variable")
	working.Bind(v, t)
	return true
}
