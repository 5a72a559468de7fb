package compiler

type charClass [256]bool

func newCharClass(chars string) *charClass {
	var c charClass
	for i := 0; i < len(chars); i++ {
		c[chars[i]] = true
	}

	return &c
}

func (c *charClass) has(ch byte) bool {
	return c[ch]
}

var (
	whitespaceChars = newCharClass(" \t\r\n\v\f")
	digitChars      = newCharClass("0123456789")
	realDigitChars  = newCharClass(".0123456789")
	operatorChars   = newCharClass("!$%^&*+-=#@?|`/\\<>~")
	alphabeticChars = newCharClass("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
)

const (
	parenOpenChar  = '('
	parenCloseChar = ')'
)

// sentinel is appended to every input so the last token in progress is
// flushed. It belongs to no content class.
const sentinel = ' '

// IsOperatorChar reports whether ch can be part of an operator symbol.
func IsOperatorChar(ch byte) bool {
	return operatorChars.has(ch)
}

// IsOperatorSymbol reports whether every byte of s is an operator character,
// i.e. whether the tokenizer could ever produce s as an operator.
func IsOperatorSymbol(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if !IsOperatorChar(s[i]) {
			return false
		}
	}

	return true
}

// IsVariableName reports whether s tokenizes as a Variable.
func IsVariableName(s string) bool {
	return len(s) == 1 && alphabeticChars.has(s[0])
}

// IsFunctionName reports whether s tokenizes as a Function.
func IsFunctionName(s string) bool {
	if len(s) < 2 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if !alphabeticChars.has(s[i]) {
			return false
		}
	}

	return true
}
