package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/cjl525/unify"
)

type testCase struct {
	name          string
	t1, t2        unify.Term
	expectSuccess bool
}

func compound(functor string, args ...unify.Term) unify.Term {
	return &unify.Compound{Functor: functor, Args: args}
}

func main() {
	var verbose bool
	pflag.BoolVarP(&verbose, "verbose", "v", false, `verbose`)
	pflag.Parse()

	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	tests := []testCase{
		{name: "var-const", t1: unify.Variable("X"), t2: unify.Constant("a"), expectSuccess: true},
		{name: "const-var", t1: unify.Constant("b"), t2: unify.Variable("X"), expectSuccess: true},
		{name: "const mismatch", t1: unify.Constant("a"), t2: unify.Constant("b"), expectSuccess: false},
		{name: "compound match", t1: compound("f", unify.Variable("X"), unify.Constant("b")), t2: compound("f", unify.Constant("a"), unify.Constant("b")), expectSuccess: true},
		{name: "functor mismatch", t1: compound("f", unify.Variable("X")), t2: compound("g", unify.Variable("X")), expectSuccess: false},
		{name: "arity mismatch", t1: compound("f", unify.Variable("X")), t2: compound("f", unify.Variable("X"), unify.Variable("Y")), expectSuccess: false},
		{name: "occurs check", t1: unify.Variable("X"), t2: compound("f", unify.Variable("X")), expectSuccess: false},
		{name: "deep cons", t1: unify.Cons(unify.Variable("H"), unify.Variable("T")), t2: unify.List(unify.Constant("1"), unify.Constant("2")), expectSuccess: true},
		{name: "var-compound", t1: unify.Variable("X"), t2: compound("g", unify.Constant("a"), unify.Variable("Y")), expectSuccess: true},
		{name: "two vars", t1: unify.Variable("X"), t2: unify.Variable("Y"), expectSuccess: true},
		{name: "pair mismatch", t1: compound("pair", unify.Constant("a"), unify.Constant("b")), t2: compound("pair", unify.Constant("a"), unify.Constant("c")), expectSuccess: false},
	}

	passed := 0
	for i, tt := range tests {
		sub, ok := unify.Unify(tt.t1, tt.t2)
		fmt.Printf("Test %d (%s): %s  ~  %s => ", i+1, tt.name, tt.t1, tt.t2)
		if ok {
			fmt.Printf("success %s\n", sub)
		} else {
			fmt.Println("failure")
		}
		if ok == tt.expectSuccess {
			passed++
		}
	}

	fmt.Printf("Summary: %d/%d outcomes matched expectations.\n", passed, len(tests))
	if passed != len(tests) {
		os.Exit(1)
	}
}
