// Package eval evaluates postfix token sequences produced by the compiler
// package, binds variables and formats results.
package eval

import (
	"fmt"

	"github.com/JustAnOrangeCat/TinyMathParser/compiler"
	"github.com/JustAnOrangeCat/TinyMathParser/stack"
	"github.com/JustAnOrangeCat/TinyMathParser/token"
)

// Evaluator runs postfix programs. Like the Compiler it holds no per-call
// state; the value stack is created by every Evaluate call.
type Evaluator struct {
	funcs *Registry
}

// New returns an Evaluator calling functions from funcs, or from
// NewRegistry() when funcs is nil.
func New(funcs *Registry) *Evaluator {
	if funcs == nil {
		funcs = NewRegistry()
	}

	return &Evaluator{funcs: funcs}
}

func (e *Evaluator) Functions() *Registry {
	return e.funcs
}

// Evaluate walks postfix once and returns the single value left on the
// stack. It stops at the first error; an operator or function short of
// operands fails with token.StackUnderflow.
func (e *Evaluator) Evaluate(postfix []token.Token) (float64, error) {
	values := stack.Stack[float64]{}

	for _, tk := range postfix {
		switch tk.Type {
		case token.NumericLiteral:
			values.Push(tk.Value)

		case token.Variable:
			return 0, token.NewError(token.UnboundVariable, tk.Text, tk.Pos)

		case token.Operator:
			args, err := popOperands(&values, tk, tk.Op.Arity)
			if err != nil {
				return 0, err
			}

			v, err := applyOperator(tk, args)
			if err != nil {
				return 0, err
			}
			values.Push(v)

		case token.Function:
			fn, ok := e.funcs.Lookup(tk.Text)
			if !ok {
				return 0, token.NewError(token.UnknownFunction, tk.Text, tk.Pos)
			}

			args, err := popOperands(&values, tk, 1)
			if err != nil {
				return 0, err
			}
			values.Push(fn(args[0]))

		case token.ParenOpen, token.ParenClose, token.Unknown:
			return 0, token.NewError(token.UnexpectedToken, tk.Text, tk.Pos)

		default:
			return 0, token.NewError(token.UnexpectedToken, tk.Text, tk.Pos)
		}
	}

	if values.Len() != 1 {
		return 0, token.NewError(token.MalformedExpression, fmt.Sprintf("%d values left", values.Len()), -1)
	}

	v, _ := values.Pop()
	return v, nil
}

// popOperands pops n values and returns them in source order, so for a
// binary operator args[0] is the left-hand side.
func popOperands(values *stack.Stack[float64], tk token.Token, n int) ([]float64, error) {
	if values.Len() < n {
		return nil, token.NewError(token.StackUnderflow, tk.Text, tk.Pos)
	}

	args := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		args[i], _ = values.Pop()
	}

	return args, nil
}

func applyOperator(tk token.Token, args []float64) (float64, error) {
	switch len(args) {
	case 1:
		if fn, ok := unaryOperators[tk.Text]; ok {
			return fn(args[0]), nil
		}
	case 2:
		if fn, ok := binaryOperators[tk.Text]; ok {
			return fn(args[0], args[1]), nil
		}
	}

	return 0, token.NewError(token.UnknownOperator, tk.Text, tk.Pos)
}

// Result is the outcome of Run.
type Result struct {
	Program *compiler.Program
	Value   float64
}

// Run compiles input with c, binds every variable found in vars on the
// postfix sequence and evaluates it. Names in vars that do not occur in the
// expression are ignored.
func (e *Evaluator) Run(c *compiler.Compiler, input string, vars map[string]float64) (*Result, error) {
	p, err := c.Compile(input)
	if err != nil {
		return nil, err
	}

	BindAll(p.Postfix, vars)

	v, err := e.Evaluate(p.Postfix)
	if err != nil {
		return nil, err
	}

	return &Result{Program: p, Value: v}, nil
}
