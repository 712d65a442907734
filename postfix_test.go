package fnplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"num", "1", "1"},
		{"var", "$", "$"},
		{"prec", "1 + 2 * 3", "1 2 3 * +"},
		{"prec-lhs", "1 * 2 + 3", "1 2 * 3 +"},
		{"left-assoc", "1 - 2 - 3", "1 2 - 3 -"},
		{"left-assoc-mixed", "8 / 2 * 4", "8 2 / 4 *"},
		{"right-assoc", "2^3^2", "2 3 2 ^ ^"},
		{"paren", "(1 + 2) * 3", "1 2 + 3 *"},
		{"paren-pow", "2 * (3 + 4) ^ 2", "2 3 4 + 2 ^ *"},
		{"call", "sin(0) * 4", "0 sin 4 *"},
		{"call-sum", "sqrt(2 + 2)", "2 2 + sqrt"},
		{"nested-call", "cos(sin($))", "$ sin cos"},
		{"bare-call", "sin 3", "3 sin"},
		{"mix", "4^2 - (1 - 5)^2^1", "4 2 ^ 1 5 - 2 1 ^ ^ -"},
		{"mix-div", "(2*4) / (2^2 + 4^2)", "2 4 * 2 2 ^ 4 2 ^ + /"},
		{"negative", "-8 / 4", "-8 4 /"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := ScanString(c.src)
			require.NoError(t, err)
			postfix, err := ToPostfix(toks)
			require.NoError(t, err)
			assert.Equal(t, c.want, FormatPostfix(postfix))
			for _, tok := range postfix {
				assert.NotEqual(t, TokenLeftParen, tok.Kind)
				assert.NotEqual(t, TokenRightParen, tok.Kind)
			}
		})
	}
}

func TestToPostfixUnbalanced(t *testing.T) {
	cases := []struct {
		name        string
		src         string
		col         int
		left, right string
	}{
		{"unclosed", "(1 + 2", 1, "(", ""},
		{"unopened", "1 + 2)", 6, "", ")"},
		{"outer-unclosed", "((1)", 1, "(", ""},
		{"inner-unclosed", "(1 + (2)", 1, "(", ""},
		{"call-extra", "sin(1))", 7, "", ")"},
		{"backward", ")(", 1, "", ")"},
		{"call-unclosed", "sqrt(4", 5, "(", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := ScanString(c.src)
			require.NoError(t, err)
			postfix, err := ToPostfix(toks)
			assert.Nil(t, postfix)
			var serr *SyntaxError
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, c.col, serr.Pos())
			assert.Equal(t, c.left, serr.Left)
			assert.Equal(t, c.right, serr.Right)
		})
	}
}

func TestToPostfixKeepsInput(t *testing.T) {
	toks, err := ScanString("sin($ + 1) * (2 - 3) ^ 4")
	require.NoError(t, err)
	orig := append([]Token(nil), toks...)
	postfix, err := ToPostfix(toks)
	require.NoError(t, err)
	assert.Equal(t, orig, toks)
	// The result must not share the input's backing array.
	postfix[0].Num = 100
	assert.Equal(t, orig, toks)
}

func TestToPostfixInvalidToken(t *testing.T) {
	_, err := ToPostfix([]Token{num(1, "1", 1), {Col: 2}})
	var ierr *InternalError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 2, ierr.Pos())
}
