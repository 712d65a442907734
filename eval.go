package fnplot

import (
	"io"
	"strconv"
	"strings"
)

// stack is the operand stack for a single evaluation.
type stack struct {
	v []float64
}

func (s *stack) push(x float64) {
	s.v = append(s.v, x)
}

// pop removes the top value. ok is false if the stack is empty.
func (s *stack) pop() (x float64, ok bool) {
	if len(s.v) == 0 {
		return 0, false
	}
	x = s.v[len(s.v)-1]
	s.v = s.v[:len(s.v)-1]
	return x, true
}

// Evaluate computes the value of an expression in postfix order, as produced
// by ToPostfix. Arithmetic follows IEEE-754, so e.g. division by zero is not
// an error.
//
// A missing operand, a leftover operand, or a variable token is an
// *EvaluationError. An unknown function is an *UnknownFunctionError.
// Parentheses are an *InternalError.
func Evaluate(postfix []Token) (float64, error) {
	s := stack{v: make([]float64, 0, len(postfix)/2+1)}
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenNumber:
			s.push(tok.Num)
		case TokenOperator:
			rhs, ok := s.pop()
			if !ok {
				return 0, missing(tok)
			}
			lhs, ok := s.pop()
			if !ok {
				return 0, missing(tok)
			}
			r, ok := tok.Op.apply(lhs, rhs)
			if !ok {
				return 0, &InternalError{Col: tok.Col, Token: tok}
			}
			s.push(r)
		case TokenFunction:
			if tok.Fn == FuncNone {
				return 0, &UnknownFunctionError{Col: tok.Col, Name: tok.Text}
			}
			x, ok := s.pop()
			if !ok {
				return 0, missing(tok)
			}
			r, ok := tok.Fn.Call(x)
			if !ok {
				return 0, &UnknownFunctionError{Col: tok.Col, Name: tok.Text}
			}
			s.push(r)
		case TokenVariable:
			return 0, &EvaluationError{Col: tok.Col, Token: string(Placeholder), Msg: "variable has no value"}
		default:
			return 0, &InternalError{Col: tok.Col, Token: tok}
		}
	}
	switch len(s.v) {
	case 0:
		return 0, &EvaluationError{Msg: "no expression"}
	case 1:
		return s.v[0], nil
	default:
		return 0, &EvaluationError{Left: len(s.v), Msg: "missing operator: " + strconv.Itoa(len(s.v)) + " values left"}
	}
}

func missing(tok Token) error {
	return &EvaluationError{Col: tok.Col, Token: tok.Text, Msg: "missing operand"}
}

// Eval scans, converts, and evaluates an expression read from src.
func Eval(src io.RuneScanner) (float64, error) {
	toks, err := Scan(src)
	if err != nil {
		return 0, err
	}
	postfix, err := ToPostfix(toks)
	if err != nil {
		return 0, err
	}
	return Evaluate(postfix)
}

// EvalString scans, converts, and evaluates an expression. The expression
// must not contain the variable; see Substitute.
func EvalString(s string) (float64, error) {
	return Eval(strings.NewReader(s))
}
