// Package token defines the lexical units shared by the compiler and the
// evaluator, the operator table that drives both, and the error kinds every
// stage of the pipeline reports.
package token

import (
	"fmt"
	"strings"
)

// Type tags a Token. The set is closed: every consumer switches over all of
// these values.
type Type int

const (
	Unknown Type = iota
	NumericLiteral
	Operator
	ParenOpen
	ParenClose
	Variable
	Function
)

func (t Type) String() string {
	switch t {
	case Unknown:
		return "Unknown"
	case NumericLiteral:
		return "Literal, Numeric"
	case Operator:
		return "Operator"
	case ParenOpen:
		return "Parenthesis, Open"
	case ParenClose:
		return "Parenthesis, Close"
	case Variable:
		return "Variable"
	case Function:
		return "Function"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Token is one lexical unit of an expression.
//
// Value is meaningful for NumericLiteral tokens (including variables that
// have been bound), Op only for Operator tokens.
type Token struct {
	Type  Type
	Text  string
	Value float64
	Op    OperatorInfo

	// Pos is the byte offset of the token in the source.
	Pos int
}

// String describes the token for diagnostics, e.g. "[Literal, Numeric] : 3".
func (tk Token) String() string {
	return fmt.Sprintf("[%s] : %s", tk.Type, tk.Text)
}

func (tk *Token) IsOperand() bool {
	return tk.Type == NumericLiteral || tk.Type == Variable
}

func (tk *Token) IsParenthesis() bool {
	return tk.Type == ParenOpen || tk.Type == ParenClose
}

func (tk *Token) IsUnary() bool {
	return tk.Type == Operator && tk.Op.Arity == 1
}

// Join renders tokens as space separated source text, e.g. "3 4 *".
func Join(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tk := range tokens {
		parts[i] = tk.Text
	}

	return strings.Join(parts, " ")
}
