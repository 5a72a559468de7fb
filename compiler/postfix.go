package compiler

import (
	"github.com/JustAnOrangeCat/TinyMathParser/stack"
	"github.com/JustAnOrangeCat/TinyMathParser/token"
)

// ToPostfix reorders infix tokens into evaluation order with the
// shunting-yard algorithm. Binary operators are left associative; prefix
// operators and functions bind tighter than any binary operator.
//
// The holding stack and output queue live only for the duration of the call.
func (c *Compiler) ToPostfix(tokens []token.Token) ([]token.Token, error) {
	holding := stack.Stack[token.Token]{}
	postfix := make([]token.Token, 0, len(tokens))

	for _, tk := range tokens {
		switch tk.Type {
		case token.NumericLiteral, token.Variable:
			postfix = append(postfix, tk)

		case token.Operator:
			if !tk.IsUnary() {
				var err error
				if postfix, err = flushOperators(&holding, postfix, tk); err != nil {
					return nil, err
				}
			}
			holding.Push(tk)

		case token.ParenOpen, token.Function:
			holding.Push(tk)

		case token.ParenClose:
			matched := false
			for top, ok := holding.Pop(); ok; top, ok = holding.Pop() {
				if top.Type == token.ParenOpen {
					matched = true
					break
				}
				postfix = append(postfix, top)
			}

			if !matched {
				return nil, token.NewError(token.UnexpectedParenthesis, tk.Text, tk.Pos)
			}

			if top, ok := holding.Peek(); ok && top.Type == token.Function {
				holding.Pop()
				postfix = append(postfix, top)
			}

		case token.Unknown:
			return nil, token.NewError(token.UnexpectedToken, tk.Text, tk.Pos)

		default:
			return nil, token.NewError(token.UnexpectedToken, tk.Text, tk.Pos)
		}
	}

	for top, ok := holding.Pop(); ok; top, ok = holding.Pop() {
		if top.Type == token.ParenOpen {
			return nil, token.NewError(token.UnbalancedParentheses, top.Text, top.Pos)
		}
		postfix = append(postfix, top)
	}

	return postfix, nil
}

// flushOperators moves to out every entry on top of the holding stack that
// binds at least as tightly as op, stopping at an open parenthesis.
func flushOperators(holding *stack.Stack[token.Token], out []token.Token, op token.Token) ([]token.Token, error) {
	for {
		top, ok := holding.Peek()
		if !ok || top.Type == token.ParenOpen {
			return out, nil
		}

		switch top.Type {
		case token.Function:
		case token.Operator:
			if top.Op.Precedence < op.Op.Precedence {
				return out, nil
			}
		default:
			return nil, token.NewError(token.UnknownOperatorOnStack, top.Text, top.Pos)
		}

		holding.Pop()
		out = append(out, top)
	}
}
