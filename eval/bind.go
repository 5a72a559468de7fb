package eval

import "github.com/JustAnOrangeCat/TinyMathParser/token"

// Bind turns the first unbound variable called name in tokens into a numeric
// literal holding value. tokens is modified in place.
func Bind(tokens []token.Token, name string, value float64) error {
	found := false

	for i := range tokens {
		tk := &tokens[i]
		if tk.Text != name {
			continue
		}

		found = true
		if tk.Type == token.Variable {
			bindToken(tk, value)
			return nil
		}
	}

	if found {
		return token.NewError(token.NotAVariable, name, -1)
	}

	return token.NewError(token.NoSuchVariable, name, -1)
}

// BindAll binds every unbound variable whose name is in vars and returns how
// many tokens were bound.
func BindAll(tokens []token.Token, vars map[string]float64) int {
	n := 0
	for i := range tokens {
		tk := &tokens[i]
		if tk.Type != token.Variable {
			continue
		}

		if v, ok := vars[tk.Text]; ok {
			bindToken(tk, v)
			n++
		}
	}

	return n
}

func bindToken(tk *token.Token, value float64) {
	tk.Type = token.NumericLiteral
	tk.Value = value
}
