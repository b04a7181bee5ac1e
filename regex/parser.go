package regex

// precedence orders the infix operators. Star and plus are unary postfix;
// their precedence only pops lower-precedence operators off the stack.
var precedence = map[tokenKind]int{
	tokenKindPipe:   1,
	tokenKindConcat: 2,
	tokenKindStar:   3,
	tokenKindPlus:   3,
}

// Parse turns a pattern into its syntax tree. The empty pattern parses to ε.
func Parse(pattern string) (Node, error) {
	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return &SymbolNode{Epsilon: true}, nil
	}

	postfix, err := infixToPostfix(insertConcat(tokens))
	if err != nil {
		return nil, err
	}
	return postfixToAST(postfix)
}

// infixToPostfix is the shunting-yard pass. All operators are
// left-associative.
func infixToPostfix(infix []token) ([]token, error) {
	var postfix []token
	var opStack []token

	for _, tok := range infix {
		switch tok.kind {
		case tokenKindLiteral:
			postfix = append(postfix, tok)
		case tokenKindLParen:
			opStack = append(opStack, tok)
		case tokenKindRParen:
			matched := false
			for len(opStack) > 0 {
				top := opStack[len(opStack)-1]
				opStack = opStack[:len(opStack)-1]
				if top.kind == tokenKindLParen {
					matched = true
					break
				}
				postfix = append(postfix, top)
			}
			if !matched {
				return nil, malformed(tok.pos, synErrUnmatchedParen)
			}
		default:
			for len(opStack) > 0 {
				top := opStack[len(opStack)-1]
				if top.kind == tokenKindLParen || precedence[top.kind] < precedence[tok.kind] {
					break
				}
				postfix = append(postfix, top)
				opStack = opStack[:len(opStack)-1]
			}
			opStack = append(opStack, tok)
		}
	}

	for len(opStack) > 0 {
		top := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		if top.kind == tokenKindLParen {
			return nil, malformed(top.pos, synErrUnmatchedParen)
		}
		postfix = append(postfix, top)
	}

	return postfix, nil
}

// postfixToAST runs the operand/operator stack machine over the postfix
// token stream.
func postfixToAST(postfix []token) (Node, error) {
	var stack []Node

	pop := func() Node {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}

	for _, tok := range postfix {
		switch tok.kind {
		case tokenKindLiteral:
			stack = append(stack, &SymbolNode{Char: tok.char})
		case tokenKindStar:
			if len(stack) < 1 {
				return nil, malformed(tok.pos, synErrRepNoTarget)
			}
			stack = append(stack, &StarNode{Child: pop()})
		case tokenKindPlus:
			if len(stack) < 1 {
				return nil, malformed(tok.pos, synErrRepNoTarget)
			}
			stack = append(stack, &PlusNode{Child: pop()})
		case tokenKindConcat:
			if len(stack) < 2 {
				return nil, malformed(tok.pos, synErrOperatorNoOperand)
			}
			rhs := pop()
			lhs := pop()
			stack = append(stack, &ConcatNode{Left: lhs, Right: rhs})
		case tokenKindPipe:
			if len(stack) < 2 {
				return nil, malformed(tok.pos, synErrOperatorNoOperand)
			}
			rhs := pop()
			lhs := pop()
			stack = append(stack, &AltNode{Left: lhs, Right: rhs})
		}
	}

	if len(stack) != 1 {
		return nil, malformed(0, synErrLeftoverOperand)
	}
	return stack[0], nil
}
