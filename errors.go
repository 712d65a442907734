package fnplot

import "strconv"

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. Currently this is
	// always "number".
	Kind string
	// Col is the position of the start of the token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

// SyntaxError is an error indicating unbalanced parentheses. It implements
// InputError.
type SyntaxError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the unclosed open parenthesis, or empty if the error is a close
	// parenthesis with nothing to close.
	Left string
	// Right is the unmatched close parenthesis, or empty.
	Right string
}

func (err *SyntaxError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// UnknownFunctionError is an error indicating a call to a function name that
// isn't defined. It implements InputError.
type UnknownFunctionError struct {
	// Col is the position of the function name.
	Col int
	// Name is the function name as written.
	Name string
}

func (err *UnknownFunctionError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Name))
}

func (err *UnknownFunctionError) Pos() int {
	return err.Col
}

// EvaluationError indicates a malformed expression discovered while
// evaluating it: a missing operand, too many operands, or an unbound
// variable. It implements InputError.
type EvaluationError struct {
	// Col is the position of the token that could not be evaluated, or 0 if
	// the error concerns the whole expression.
	Col int
	// Token is the text of the token that could not be evaluated, if any.
	Token string
	// Left is the number of values left on the stack after evaluating, when
	// that is not exactly one.
	Left int
	// Msg describes the error.
	Msg string
}

func (err *EvaluationError) Error() string {
	msg := err.Msg
	if err.Token != "" {
		msg += " at " + strconv.Quote(err.Token)
	}
	if err.Col <= 0 {
		return msg
	}
	return errpos(err.Col, msg)
}

func (err *EvaluationError) Pos() int {
	return err.Col
}

// InternalError indicates a postfix sequence containing a token that cannot
// appear in postfix, e.g. a parenthesis. ToPostfix never produces such
// sequences. It implements InputError.
type InternalError struct {
	// Col is the position of the offending token.
	Col int
	// Token is the offending token.
	Token Token
}

func (err *InternalError) Error() string {
	return errpos(err.Col, "invalid token in postfix expression: "+err.Token.String())
}

func (err *InternalError) Pos() int {
	return err.Col
}

// ConfigError indicates a malformed or unusable domain.
type ConfigError struct {
	// Domain is the domain text.
	Domain string
	// Reason describes what is wrong with it.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (err *ConfigError) Error() string {
	msg := "bad domain " + strconv.Quote(err.Domain) + ": " + err.Reason
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}

// SampleError is an error evaluating an expression at one point of a domain.
// It unwraps to the error from evaluation.
type SampleError struct {
	// Index is the index of the point in the domain.
	Index int
	// X is the value of the point.
	X float64
	// Expr is the expression after substitution.
	Expr string
	// Err is the evaluation error.
	Err error
}

func (err *SampleError) Error() string {
	return "evaluating " + strconv.Quote(err.Expr) + " at " + string(Placeholder) + "=" + strconv.FormatFloat(err.X, 'g', -1, 64) + ": " + err.Err.Error()
}

func (err *SampleError) Unwrap() error {
	return err.Err
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid expression text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*UnknownFunctionError)(nil)
	_ InputError = (*EvaluationError)(nil)
	_ InputError = (*InternalError)(nil)
)
