package fnplot

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cause := &UnknownFunctionError{Col: 1, Name: "foo"}
	_, perr := strconv.ParseFloat("x", 64)
	cases := []struct {
		err  error
		want string
	}{
		{&LexError{Text: "1..", Kind: "number", Col: 3}, "invalid number token at column 3: 1.."},
		{&LexError{Text: "?", Col: 1}, "invalid token at column 1: ?"},
		{&SyntaxError{Col: 1, Left: "("}, "1: open bracket ( with no close bracket"},
		{&SyntaxError{Col: 6, Right: ")"}, "6: close bracket ) with no open bracket"},
		{cause, `1: unknown function "foo"`},
		{&EvaluationError{Col: 3, Token: "+", Msg: "missing operand"}, `3: missing operand at "+"`},
		{&EvaluationError{Left: 2, Msg: "missing operator: 2 values left"}, "missing operator: 2 values left"},
		{&InternalError{Col: 2, Token: Token{Kind: TokenLeftParen, Text: "(", Col: 2}}, "2: invalid token in postfix expression: LeftParen:(@2"},
		{&ConfigError{Domain: "0:0:1", Reason: "step must be positive"}, `bad domain "0:0:1": step must be positive`},
		{&ConfigError{Domain: "x:1:2", Reason: "invalid lower bound", Err: perr}, `bad domain "x:1:2": invalid lower bound: ` + perr.Error()},
		{&SampleError{Index: 0, X: 1.5, Expr: "foo(1.5)", Err: cause}, `evaluating "foo(1.5)" at $=1.5: 1: unknown function "foo"`},
	}
	for _, c := range cases {
		assert.EqualError(t, c.err, c.want)
	}
	var uf *UnknownFunctionError
	assert.True(t, errors.As(&SampleError{Err: cause}, &uf))
	assert.Same(t, cause, uf)
}
