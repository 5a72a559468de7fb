// Package stack provides the LIFO used for the converter's holding stack and
// the evaluator's value stack.
package stack

type Stack[T any] []T

func (s *Stack[T]) Push(e T) {
	*s = append(*s, e)
}

// Pop removes the top element. ok is false, and e the zero value, when the
// stack is empty.
func (s *Stack[T]) Pop() (e T, ok bool) {
	l := len(*s)
	if l == 0 {
		return e, false
	}

	e = (*s)[l-1]
	*s = (*s)[:l-1]

	return e, true
}

func (s *Stack[T]) Peek() (e T, ok bool) {
	l := len(*s)
	if l == 0 {
		return e, false
	}

	return (*s)[l-1], true
}

func (s *Stack[T]) Len() int {
	return len(*s)
}

func (s *Stack[T]) Empty() bool {
	return len(*s) == 0
}
