package token

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenString(t *testing.T) {
	tests := []struct {
		tk   Token
		want string
	}{
		{Token{Type: NumericLiteral, Text: "3", Value: 3}, "[Literal, Numeric] : 3"},
		{Token{Type: Operator, Text: "*"}, "[Operator] : *"},
		{Token{Type: ParenOpen, Text: "("}, "[Parenthesis, Open] : ("},
		{Token{Type: ParenClose, Text: ")"}, "[Parenthesis, Close] : )"},
		{Token{Type: Variable, Text: "x"}, "[Variable] : x"},
		{Token{Type: Function, Text: "sin"}, "[Function] : sin"},
		{Token{Text: "?"}, "[Unknown] : ?"},
	}

	for _, tt := range tests {
		if got := tt.tk.String(); got != tt.want {
			t.Errorf("expected %q, but got %q", tt.want, got)
		}
	}
}

func TestJoin(t *testing.T) {
	got := Join([]Token{
		{Type: NumericLiteral, Text: "3"},
		{Type: NumericLiteral, Text: "4"},
		{Type: Operator, Text: "*"},
	})
	if got != "3 4 *" {
		t.Errorf("expected %q, but got %q", "3 4 *", got)
	}

	if got := Join(nil); got != "" {
		t.Errorf("expected empty string, but got %q", got)
	}
}

func TestDefaultTableResolve(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name   string
		symbol string
		prefix bool
		want   OperatorInfo
		wantOk bool
	}{
		{name: "infix minus", symbol: "-", want: OperatorInfo{Precedence: 1, Arity: 2}, wantOk: true},
		{name: "prefix minus", symbol: "-", prefix: true, want: OperatorInfo{Precedence: 100, Arity: 1}, wantOk: true},
		{name: "infix star", symbol: "*", want: OperatorInfo{Precedence: 3, Arity: 2}, wantOk: true},
		{name: "star in prefix position falls back to infix", symbol: "*", prefix: true, want: OperatorInfo{Precedence: 3, Arity: 2}, wantOk: true},
		{name: "unknown", symbol: "**"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Resolve(tt.symbol, tt.prefix)
			if ok != tt.wantOk {
				t.Fatalf("expected ok=%v, but got %v", tt.wantOk, ok)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestTableExtendLeavesReceiverUntouched(t *testing.T) {
	base := DefaultTable()
	extended := base.Extend(
		Entry{Symbol: "**", OperatorInfo: OperatorInfo{Precedence: 4, Arity: 2}},
		Entry{Symbol: "+", OperatorInfo: OperatorInfo{Precedence: 2, Arity: 2}},
	)

	if base.Contains("**") {
		t.Error("base table gained an entry after Extend")
	}
	if !extended.Contains("**") {
		t.Error("extended table is missing '**'")
	}

	if op, _ := base.Resolve("+", false); op.Precedence != 1 {
		t.Errorf("expected base '+' precedence 1, but got %d", op.Precedence)
	}
	if op, _ := extended.Resolve("+", false); op.Precedence != 2 {
		t.Errorf("expected extended '+' precedence 2, but got %d", op.Precedence)
	}
	if op, _ := extended.Resolve("+", true); op.Arity != 1 {
		t.Errorf("expected prefix '+' to survive Extend, but got %+v", op)
	}
}

func TestTableEntriesOrder(t *testing.T) {
	got := DefaultTable().Entries()
	want := []Entry{
		{Symbol: "*", OperatorInfo: OperatorInfo{Precedence: 3, Arity: 2}},
		{Symbol: "/", OperatorInfo: OperatorInfo{Precedence: 3, Arity: 2}},
		{Symbol: "+", OperatorInfo: OperatorInfo{Precedence: 1, Arity: 2}},
		{Symbol: "-", OperatorInfo: OperatorInfo{Precedence: 1, Arity: 2}},
		{Symbol: "+", OperatorInfo: OperatorInfo{Precedence: 100, Arity: 1}},
		{Symbol: "-", OperatorInfo: OperatorInfo{Precedence: 100, Arity: 1}},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}

func TestErrorMatching(t *testing.T) {
	err := fmt.Errorf("evaluating %q: %w", "1+", NewError(StackUnderflow, "+", 1))

	if !errors.Is(err, ErrStackUnderflow) {
		t.Error("expected wrapped error to match ErrStackUnderflow")
	}
	if errors.Is(err, ErrEmptyInput) {
		t.Error("did not expect wrapped error to match ErrEmptyInput")
	}
	if k := KindOf(err); k != StackUnderflow {
		t.Errorf("expected kind %q, but got %q", StackUnderflow, k)
	}
	if k := KindOf(errors.New("plain")); k != "" {
		t.Errorf("expected no kind, but got %q", k)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{ErrEmptyInput, "no input provided"},
		{NewError(UnrecognizedOperator, "!", 2), "unrecognized operator '!' at position 2"},
		{NewError(UnbalancedParentheses, "", 0), "unbalanced parentheses at position 0"},
		{NewError(Kind("custom"), "", -1), "custom"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("expected %q, but got %q", tt.want, got)
		}
	}
}
