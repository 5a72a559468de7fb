package token

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline errors.
type Kind string

const (
	EmptyInput             Kind = "empty_input"
	UnexpectedCharacter    Kind = "unexpected_character"
	InvalidNumber          Kind = "invalid_number"
	UnrecognizedOperator   Kind = "unrecognized_operator"
	UnbalancedParentheses  Kind = "unbalanced_parentheses"
	UnexpectedParenthesis  Kind = "unexpected_parenthesis"
	UnknownOperatorOnStack Kind = "unknown_operator_on_stack"
	UnexpectedToken        Kind = "unexpected_token"
	StackUnderflow         Kind = "stack_underflow"
	UnboundVariable        Kind = "unbound_variable"
	UnknownOperator        Kind = "unknown_operator"
	UnknownFunction        Kind = "unknown_function"
	MalformedExpression    Kind = "malformed_expression"
	NotAVariable           Kind = "not_a_variable"
	NoSuchVariable         Kind = "no_such_variable"
)

var descriptions = map[Kind]string{
	EmptyInput:             "no input provided",
	UnexpectedCharacter:    "unexpected character",
	InvalidNumber:          "invalid numeric literal",
	UnrecognizedOperator:   "unrecognized operator",
	UnbalancedParentheses:  "unbalanced parentheses",
	UnexpectedParenthesis:  "unexpected closing parenthesis",
	UnknownOperatorOnStack: "unknown token on the holding stack",
	UnexpectedToken:        "token is invalid as part of an expression",
	StackUnderflow:         "not enough operands for",
	UnboundVariable:        "variable has no value",
	UnknownOperator:        "operator cannot be evaluated",
	UnknownFunction:        "unknown function",
	MalformedExpression:    "malformed expression",
	NotAVariable:           "token is not an unbound variable",
	NoSuchVariable:         "no such variable",
}

// Error is the error type returned by every stage of the pipeline.
type Error struct {
	Kind Kind
	// Text is the offending source text, if any.
	Text string
	// Pos is the byte offset of Text in the source, or -1.
	Pos int
}

func NewError(kind Kind, text string, pos int) *Error {
	return &Error{Kind: kind, Text: text, Pos: pos}
}

func (e *Error) Error() string {
	msg, ok := descriptions[e.Kind]
	if !ok {
		msg = string(e.Kind)
	}

	if e.Text != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.Text)
	}

	if e.Pos >= 0 {
		msg = fmt.Sprintf("%s at position %d", msg, e.Pos)
	}

	return msg
}

// Is matches any *Error of the same kind, so the sentinels below work with
// errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrEmptyInput             = &Error{Kind: EmptyInput, Pos: -1}
	ErrUnexpectedCharacter    = &Error{Kind: UnexpectedCharacter, Pos: -1}
	ErrInvalidNumber          = &Error{Kind: InvalidNumber, Pos: -1}
	ErrUnrecognizedOperator   = &Error{Kind: UnrecognizedOperator, Pos: -1}
	ErrUnbalancedParentheses  = &Error{Kind: UnbalancedParentheses, Pos: -1}
	ErrUnexpectedParenthesis  = &Error{Kind: UnexpectedParenthesis, Pos: -1}
	ErrUnknownOperatorOnStack = &Error{Kind: UnknownOperatorOnStack, Pos: -1}
	ErrUnexpectedToken        = &Error{Kind: UnexpectedToken, Pos: -1}
	ErrStackUnderflow         = &Error{Kind: StackUnderflow, Pos: -1}
	ErrUnboundVariable        = &Error{Kind: UnboundVariable, Pos: -1}
	ErrUnknownOperator        = &Error{Kind: UnknownOperator, Pos: -1}
	ErrUnknownFunction        = &Error{Kind: UnknownFunction, Pos: -1}
	ErrMalformedExpression    = &Error{Kind: MalformedExpression, Pos: -1}
	ErrNotAVariable           = &Error{Kind: NotAVariable, Pos: -1}
	ErrNoSuchVariable         = &Error{Kind: NoSuchVariable, Pos: -1}
)

// KindOf returns the kind of the first *Error in err's chain, or "" if there
// is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}
