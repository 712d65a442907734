// Package fnplot evaluates arithmetic expressions of one variable and samples
// them over a domain.
//
// Expressions are written the way you'd type them into a calculator:
// "(2*4) / (2^2 + 4^2)", "sqrt(2 + 2)", "sin($) * -9.99". The variable is
// written as $. Evaluation converts the text to tokens, reorders the tokens
// into postfix with the shunting-yard algorithm, and runs the postfix form on
// a stack of float64 values. "2^3^2" is the same as "2^(3^2)".
//
// A minus sign immediately followed by a digit is part of the number, so
// "-8 / 4" is -2 but "1 -1" is two numbers with no operator between them.
// Write "1 - 1" to subtract.
//
// Sample evaluates an expression once for each point in a domain written as
// "lower:step:upper", substituting the point for $ each time.
package fnplot
