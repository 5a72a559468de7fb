package eval

import "math"

// Operators are applied by symbol. The table decides which symbols the
// tokenizer produces and how they group; this file decides what they compute.
var (
	binaryOperators = map[string]func(l, r float64) float64{
		"+": func(l, r float64) float64 { return l + r },
		"-": func(l, r float64) float64 { return l - r },
		"*": func(l, r float64) float64 { return l * r },
		"/": func(l, r float64) float64 { return l / r },
		"^": math.Pow,
		"%": math.Mod,
	}

	unaryOperators = map[string]func(v float64) float64{
		"+": func(v float64) float64 { return v },
		"-": func(v float64) float64 { return -v },
	}
)

// SupportsOperator reports whether the evaluator can apply symbol with the
// given arity.
func SupportsOperator(symbol string, arity int) bool {
	switch arity {
	case 1:
		_, ok := unaryOperators[symbol]
		return ok
	case 2:
		_, ok := binaryOperators[symbol]
		return ok
	}

	return false
}
