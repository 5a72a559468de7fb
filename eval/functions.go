package eval

import (
	"maps"
	"math"
	"slices"
)

// Func is a unary function callable from an expression.
type Func func(x float64) float64

// Registry maps function names to implementations. Register everything
// before the registry is handed to an Evaluator; lookups are not guarded.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a registry with the built-in functions.
func NewRegistry() *Registry {
	r := &Registry{
		funcs: make(map[string]Func),
	}
	r.registerTrig()
	r.registerExp()
	r.registerRounding()

	return r
}

// EmptyRegistry returns a registry without any function.
func EmptyRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names lists registered functions alphabetically.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.funcs))
}

func (r *Registry) registerTrig() {
	r.Register("sin", math.Sin)
	r.Register("cos", math.Cos)
	r.Register("tan", math.Tan)
	r.Register("asin", math.Asin)
	r.Register("acos", math.Acos)
	r.Register("atan", math.Atan)
}

func (r *Registry) registerExp() {
	r.Register("sqrt", math.Sqrt)
	r.Register("exp", math.Exp)
	r.Register("ln", math.Log)
	r.Register("log", math.Log10)
}

func (r *Registry) registerRounding() {
	r.Register("abs", math.Abs)
	r.Register("floor", math.Floor)
	r.Register("ceil", math.Ceil)
}
