package unify

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		title string
		t     Term
		want  string
	}{
		{title: `variable`, t: Variable("X"), want: `X`},
		{title: `constant`, t: Constant("a"), want: `a`},
		{title: `compound`, t: comp("f", Variable("X"), comp("g", Constant("a"))), want: `f(X, g(a))`},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			var sb strings.Builder
			assert.NoError(t, Write(&sb, tt.t))
			assert.Equal(t, tt.want, sb.String())
		})
	}

	t.Run("write error", func(t *testing.T) {
		assert.Error(t, Write(failWriter{}, comp("f", Constant("a"))))
	})
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}
