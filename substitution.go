package unify

import (
	"fmt"
	"sort"
	"strings"
)

// Substitution is a set of variable bindings accumulated by a unification
// attempt. Unify keeps it acyclic: no binding makes a variable reachable
// from its own value.
type Substitution map[string]Term

// Bind binds v to t.
func (s Substitution) Bind(v Variable, t Term) {
	s[string(v)] = t
}

// Lookup returns the term bound to v.
func (s Substitution) Lookup(v Variable) (Term, bool) {
	t, ok := s[string(v)]
	return t, ok
}

// Resolve follows the variable chain and returns the first non-variable term
// or the last free variable.
func (s Substitution) Resolve(t Term) Term {
	var stop []Variable
	for {
		v, ok := t.(Variable)
		if !ok {
			return t
		}
		for _, sv := range stop {
			if v == sv {
				return v
			}
		}
		ref, ok := s.Lookup(v)
		if !ok {
			return v
		}
		stop = append(stop, v)
		t = ref
	}
}

// FreeVariables extracts the unbound variables in the given terms.
func (s Substitution) FreeVariables(ts ...Term) []Variable {
	var fvs []Variable
	for _, t := range ts {
		fvs = s.appendFreeVariables(fvs, t)
	}
	return fvs
}

func (s Substitution) appendFreeVariables(fvs []Variable, t Term) []Variable {
	switch t := t.(type) {
	case Variable:
		if ref, ok := s.Lookup(t); ok {
			return s.appendFreeVariables(fvs, ref)
		}
		for _, v := range fvs {
			if v == t {
				return fvs
			}
		}
		return append(fvs, t)
	case *Compound:
		for _, arg := range t.Args {
			fvs = s.appendFreeVariables(fvs, arg)
		}
	}
	return fvs
}

// String lists the bindings as {X -> a, Y -> b} with names in sorted order.
func (s Substitution) String() string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	_, _ = sb.WriteString("{")
	for i, name := range names {
		if i > 0 {
			_, _ = sb.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&sb, "%s -> %s", name, s[name])
	}
	_, _ = sb.WriteString("}")
	return sb.String()
}
