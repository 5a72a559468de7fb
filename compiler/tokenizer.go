package compiler

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/JustAnOrangeCat/TinyMathParser/token"
)

type state uint8

const (
	stateNewToken state = iota
	stateNumericLiteral
	stateParenOpen
	stateParenClose
	stateOperator
	stateStringLiteral
	stateCompleteToken
)

// tokenizer is a one-shot finite state machine over a single input. The byte
// that ends a token is not consumed; it is examined again from stateNewToken.
type tokenizer struct {
	table *token.Table
	src   string

	cursor  int
	start   int
	current token.Token
	balance int

	tokens []token.Token
}

func newTokenizer(table *token.Table, input string) *tokenizer {
	return &tokenizer{
		table:  table,
		src:    input + string(sentinel),
		tokens: make([]token.Token, 0, len(input)/2+1),
	}
}

func (t *tokenizer) run() ([]token.Token, error) {
	now := stateNewToken

	for t.cursor < len(t.src) {
		next, err := t.step(now, t.src[t.cursor])
		if err != nil {
			return nil, err
		}

		now = next
	}

	if t.balance != 0 {
		return nil, token.NewError(token.UnbalancedParentheses, "", len(t.src)-1)
	}

	return t.tokens, nil
}

func (t *tokenizer) step(now state, ch byte) (state, error) {
	switch now {
	case stateNewToken:
		t.start = t.cursor
		t.current = token.Token{Pos: t.cursor}

		switch {
		case whitespaceChars.has(ch):
			t.cursor++
			return stateNewToken, nil
		case digitChars.has(ch):
			t.cursor++
			return stateNumericLiteral, nil
		case operatorChars.has(ch):
			return stateOperator, nil
		case ch == parenOpenChar:
			return stateParenOpen, nil
		case ch == parenCloseChar:
			return stateParenClose, nil
		case alphabeticChars.has(ch):
			t.cursor++
			return stateStringLiteral, nil
		}

		return now, token.NewError(token.UnexpectedCharacter, quoteByte(ch), t.cursor)

	case stateNumericLiteral:
		if realDigitChars.has(ch) {
			t.cursor++
			return stateNumericLiteral, nil
		}

		text := t.text()
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return now, token.NewError(token.InvalidNumber, text, t.start)
		}

		t.complete(token.NumericLiteral, text)
		t.current.Value = v
		return stateCompleteToken, nil

	case stateOperator:
		text := t.text()
		if operatorChars.has(ch) {
			if t.table.Contains(t.src[t.start : t.cursor+1]) {
				t.cursor++
				return stateOperator, nil
			}

			if t.table.Contains(text) {
				t.completeOperator(text)
				return stateCompleteToken, nil
			}

			// Unknown so far; a longer run may still be in the table.
			t.cursor++
			return stateOperator, nil
		}

		if !t.table.Contains(text) {
			return now, token.NewError(token.UnrecognizedOperator, text, t.start)
		}

		t.completeOperator(text)
		return stateCompleteToken, nil

	case stateParenOpen:
		t.cursor++
		t.balance++
		t.complete(token.ParenOpen, t.text())
		return stateCompleteToken, nil

	case stateParenClose:
		t.cursor++
		t.balance--
		if t.balance < 0 {
			return now, token.NewError(token.UnexpectedParenthesis, t.text(), t.start)
		}

		t.complete(token.ParenClose, t.text())
		return stateCompleteToken, nil

	case stateStringLiteral:
		if alphabeticChars.has(ch) {
			t.cursor++
			return stateStringLiteral, nil
		}

		text := t.text()
		if len(text) == 1 {
			t.complete(token.Variable, text)
		} else {
			t.complete(token.Function, text)
		}
		return stateCompleteToken, nil

	case stateCompleteToken:
		t.tokens = append(t.tokens, t.current)
		return stateNewToken, nil
	}

	return now, token.NewError(token.UnexpectedCharacter, quoteByte(ch), t.cursor)
}

// quoteByte renders ch for error messages. Bytes outside ASCII are written
// as \xNN since they are usually part of a multi-byte character.
func quoteByte(ch byte) string {
	if ch < utf8.RuneSelf {
		return string(ch)
	}

	return fmt.Sprintf(`\x%02x`, ch)
}

func (t *tokenizer) text() string {
	return t.src[t.start:t.cursor]
}

func (t *tokenizer) complete(_type token.Type, text string) {
	t.current.Type = _type
	t.current.Text = text
}

// completeOperator resolves text against the table. The prefix meaning is
// used when nothing that yields a value precedes the operator.
func (t *tokenizer) completeOperator(text string) {
	op, _ := t.table.Resolve(text, t.atPrefixPosition())

	t.complete(token.Operator, text)
	t.current.Op = op
}

func (t *tokenizer) atPrefixPosition() bool {
	if len(t.tokens) == 0 {
		return true
	}

	prev := t.tokens[len(t.tokens)-1]
	return prev.Type == token.Operator || prev.Type == token.ParenOpen
}
