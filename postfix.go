package fnplot

// ToPostfix reorders tokens from infix to postfix order using the
// shunting-yard algorithm. Parentheses do not appear in the result; a
// function follows its argument. tokens is not modified. Unbalanced
// parentheses are a *SyntaxError.
func ToPostfix(tokens []Token) ([]Token, error) {
	out := make([]Token, 0, len(tokens))
	// ops holds functions, operators, and open parentheses.
	var ops []Token
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber, TokenVariable:
			out = append(out, tok)
		case TokenFunction, TokenLeftParen:
			ops = append(ops, tok)
		case TokenOperator:
			// Pop operators that bind at least as tightly, unless the new
			// operator is right-associative. That exception is what makes
			// a^b^c group as a^(b^c).
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != TokenOperator {
					break
				}
				if top.Op.Precedence() < tok.Op.Precedence() || tok.Op.Associativity() != Left {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case TokenRightParen:
			for len(ops) > 0 && ops[len(ops)-1].Kind != TokenLeftParen {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, &SyntaxError{Col: tok.Col, Right: ")"}
			}
			ops = ops[:len(ops)-1]
			// A function before the parenthesis applies to its contents.
			if len(ops) > 0 && ops[len(ops)-1].Kind == TokenFunction {
				out = append(out, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
		default:
			return nil, &InternalError{Col: tok.Col, Token: tok}
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.Kind == TokenLeftParen {
			return nil, &SyntaxError{Col: top.Col, Left: "("}
		}
		out = append(out, top)
		ops = ops[:len(ops)-1]
	}
	return out, nil
}
