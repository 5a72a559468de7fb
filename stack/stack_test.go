package stack

import "testing"

func TestStack(t *testing.T) {
	s := Stack[string]{}

	if v, ok := s.Pop(); ok || v != "" {
		t.Error("expected empty value from an empty stack")
		return
	}

	s.Push("1")

	if v, ok := s.Pop(); !ok || v != "1" {
		t.Errorf("expected %q, but got %q", "1", v)
		return
	}

	s.Push("1")
	s.Push("3")
	s.Push("2")

	if s.Len() != 3 {
		t.Errorf("expected 3 elements, but got %d", s.Len())
		return
	}

	if v, ok := s.Peek(); !ok || v != "2" {
		t.Errorf("expected %q on top, but got %q", "2", v)
		return
	}

	for _, want := range []string{"2", "3", "1"} {
		if v, ok := s.Pop(); !ok || v != want {
			t.Errorf("expected %q, but got %q", want, v)
			return
		}
	}

	if !s.Empty() {
		t.Error("expected stack to be empty")
		return
	}

	if _, ok := s.Peek(); ok {
		t.Error("expected no top element on an empty stack")
	}
}
