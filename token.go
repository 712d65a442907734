package fnplot

import (
	"math"
	"strconv"
	"strings"
)

// Token is a lexical unit of an expression. Tokens are small values; the
// postfix form of an expression holds copies of the tokens it was built from.
type Token struct {
	// Kind is the kind of the token. The fields used depend on it.
	Kind TokenKind
	// Num is the value of a number token.
	Num float64
	// Op is the operator of an operator token.
	Op Operator
	// Fn is the function of a function token. It is FuncNone if the name in
	// Text is not a known function.
	Fn Func
	// Text is the source text of the token.
	Text string
	// Col is the 1-based rune column at which the token starts.
	Col int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNumber is a number literal, possibly negative.
	TokenNumber
	// TokenFunction is a function name.
	TokenFunction
	// TokenOperator is a binary operator.
	TokenOperator
	// TokenLeftParen is (.
	TokenLeftParen
	// TokenRightParen is ).
	TokenRightParen
	// TokenVariable is the variable placeholder.
	TokenVariable
)

var tokenKindNames = [...]string{
	tokenNone:       "None",
	TokenNumber:     "Number",
	TokenFunction:   "Function",
	TokenOperator:   "Operator",
	TokenLeftParen:  "LeftParen",
	TokenRightParen: "RightParen",
	TokenVariable:   "Variable",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operator is a binary arithmetic operator.
type Operator int8

const (
	opNone Operator = iota
	Plus
	Minus
	Multiplication
	Division
	Pow
)

// Associativity decides how operators of equal precedence group.
type Associativity int8

const (
	// Left groups a-b-c as (a-b)-c.
	Left Associativity = iota
	// Right groups a^b^c as a^(b^c).
	Right
)

type opinfo struct {
	sym   string
	prec  int
	assoc Associativity
}

var operators = [...]opinfo{
	opNone:         {"?", 0, Left},
	Plus:           {"+", 1, Left},
	Minus:          {"-", 1, Left},
	Multiplication: {"*", 2, Left},
	Division:       {"/", 2, Left},
	Pow:            {"^", 3, Right},
}

func (op Operator) info() opinfo {
	if op < 0 || int(op) >= len(operators) {
		return operators[opNone]
	}
	return operators[op]
}

// Precedence returns the binding strength of the operator. Higher binds
// tighter.
func (op Operator) Precedence() int {
	return op.info().prec
}

// Associativity returns the operator's associativity.
func (op Operator) Associativity() Associativity {
	return op.info().assoc
}

func (op Operator) String() string {
	return op.info().sym
}

// apply computes lhs op rhs.
func (op Operator) apply(lhs, rhs float64) (float64, bool) {
	switch op {
	case Plus:
		return lhs + rhs, true
	case Minus:
		return lhs - rhs, true
	case Multiplication:
		return lhs * rhs, true
	case Division:
		return lhs / rhs, true
	case Pow:
		return math.Pow(lhs, rhs), true
	default:
		return 0, false
	}
}

// FormatPostfix writes a sequence of tokens as space-separated source text.
// It is mostly useful for showing the order a postfix expression evaluates in.
func FormatPostfix(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch tok.Kind {
		case TokenNumber:
			b.WriteString(strconv.FormatFloat(tok.Num, 'g', -1, 64))
		case TokenOperator:
			b.WriteString(tok.Op.String())
		case TokenFunction:
			b.WriteString(tok.Text)
		case TokenLeftParen:
			b.WriteByte('(')
		case TokenRightParen:
			b.WriteByte(')')
		case TokenVariable:
			b.WriteRune(Placeholder)
		default:
			// Invalid tokens use invalid characters.
			b.WriteString("#?#")
		}
	}
	return b.String()
}
