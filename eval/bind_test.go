package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JustAnOrangeCat/TinyMathParser/compiler"
	"github.com/JustAnOrangeCat/TinyMathParser/token"
)

func TestBind(t *testing.T) {
	e := New(nil)
	postfix := compile(t, compiler.New(nil), "x+1")

	if _, err := e.Evaluate(postfix); !errors.Is(err, token.ErrUnboundVariable) {
		t.Fatalf("expected unbound variable, but got %v", err)
	}

	if err := Bind(postfix, "x", 10); err != nil {
		t.Fatalf("bind: %v", err)
	}

	got, err := e.Evaluate(postfix)
	if err != nil {
		t.Fatal(err)
	}
	if got != 11 {
		t.Errorf("got %v, want 11", got)
	}

	want := token.Token{Type: token.NumericLiteral, Text: "x", Value: 10, Pos: 0}
	if diff := cmp.Diff(want, postfix[0]); diff != "" {
		t.Error(diff)
	}
}

func TestBindFirstOccurrenceOnly(t *testing.T) {
	e := New(nil)
	postfix := compile(t, compiler.New(nil), "x*x")

	if err := Bind(postfix, "x", 3); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Evaluate(postfix); !errors.Is(err, token.ErrUnboundVariable) {
		t.Fatalf("expected the second x to stay unbound, but got %v", err)
	}

	if err := Bind(postfix, "x", 3); err != nil {
		t.Fatal(err)
	}
	got, err := e.Evaluate(postfix)
	if err != nil {
		t.Fatal(err)
	}
	if got != 9 {
		t.Errorf("got %v, want 9", got)
	}
}

func TestBindErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		bind    []string
		wantErr *token.Error
	}{
		{"no such variable", "x+1", []string{"y"}, token.ErrNoSuchVariable},
		{"already bound", "x+1", []string{"x", "x"}, token.ErrNotAVariable},
		{"function name", "sin(x)", []string{"sin"}, token.ErrNotAVariable},
		{"operator symbol", "x+1", []string{"+"}, token.ErrNotAVariable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postfix := compile(t, compiler.New(nil), tt.input)

			var err error
			for _, name := range tt.bind {
				err = Bind(postfix, name, 1)
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, but got %v", tt.wantErr.Kind, err)
			}
		})
	}
}

func TestBindAll(t *testing.T) {
	postfix := compile(t, compiler.New(nil), "x*x+y-z")

	n := BindAll(postfix, map[string]float64{"x": 3, "y": 1, "w": 7})
	if n != 3 {
		t.Errorf("expected 3 bound tokens, but got %d", n)
	}

	if _, err := New(nil).Evaluate(postfix); !errors.Is(err, token.ErrUnboundVariable) {
		t.Fatalf("expected z to stay unbound, but got %v", err)
	}

	BindAll(postfix, map[string]float64{"z": 1})
	got, err := New(nil).Evaluate(postfix)
	if err != nil {
		t.Fatal(err)
	}
	if got != 9 {
		t.Errorf("got %v, want 9", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		want      string
	}{
		{12, DefaultPrecision, "12.000000"},
		{0.2, DefaultPrecision, "0.200000"},
		{0.2, -1, "0.2"},
		{-3, 2, "-3.00"},
		{1.0 / 3, 3, "0.333"},
		{42, 0, "42"},
		{math.Inf(1), 2, "+Inf"},
		{math.Inf(-1), -1, "-Inf"},
	}

	for _, tt := range tests {
		if got := Format(tt.value, tt.precision); got != tt.want {
			t.Errorf("Format(%v, %d) = %q, want %q", tt.value, tt.precision, got, tt.want)
		}
	}
}
