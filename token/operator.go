package token

import (
	"cmp"
	"slices"
)

// OperatorInfo holds what the converter and the evaluator need to know about
// an operator symbol.
type OperatorInfo struct {
	// Precedence ranks operators; higher binds tighter.
	Precedence int
	// Arity is 1 for prefix operators and 2 for infix ones.
	Arity int
}

// Entry registers a symbol in a Table.
type Entry struct {
	Symbol string
	OperatorInfo
}

// Table maps operator symbols to their precedence and arity. A symbol may
// carry one infix and one prefix meaning ("-"). A Table is never modified
// after construction, so it can be shared freely.
type Table struct {
	infix  map[string]OperatorInfo
	prefix map[string]OperatorInfo
}

var defaultEntries = []Entry{
	{Symbol: "*", OperatorInfo: OperatorInfo{Precedence: 3, Arity: 2}},
	{Symbol: "/", OperatorInfo: OperatorInfo{Precedence: 3, Arity: 2}},
	{Symbol: "+", OperatorInfo: OperatorInfo{Precedence: 1, Arity: 2}},
	{Symbol: "-", OperatorInfo: OperatorInfo{Precedence: 1, Arity: 2}},
	{Symbol: "+", OperatorInfo: OperatorInfo{Precedence: 100, Arity: 1}},
	{Symbol: "-", OperatorInfo: OperatorInfo{Precedence: 100, Arity: 1}},
}

// NewTable builds a table from entries. Later entries override earlier ones
// with the same symbol and arity.
func NewTable(entries ...Entry) *Table {
	t := &Table{
		infix:  make(map[string]OperatorInfo),
		prefix: make(map[string]OperatorInfo),
	}
	t.add(entries)

	return t
}

// DefaultTable returns the arithmetic operators + - * / and prefix + -.
func DefaultTable() *Table {
	return NewTable(defaultEntries...)
}

// Extend returns a copy of t with entries added or overridden.
func (t *Table) Extend(entries ...Entry) *Table {
	n := NewTable()
	for s, op := range t.infix {
		n.infix[s] = op
	}
	for s, op := range t.prefix {
		n.prefix[s] = op
	}
	n.add(entries)

	return n
}

func (t *Table) add(entries []Entry) {
	for _, e := range entries {
		if e.Arity == 1 {
			t.prefix[e.Symbol] = e.OperatorInfo
		} else {
			t.infix[e.Symbol] = e.OperatorInfo
		}
	}
}

// Contains reports whether symbol has any meaning in the table.
func (t *Table) Contains(symbol string) bool {
	_, in := t.infix[symbol]
	_, pre := t.prefix[symbol]

	return in || pre
}

// Resolve picks the meaning of symbol for its position. prefix is true when
// no operand precedes the symbol; a prefix entry is then preferred, otherwise
// the infix one. Either falls back to the other when it is missing.
func (t *Table) Resolve(symbol string, prefix bool) (OperatorInfo, bool) {
	first, second := t.infix, t.prefix
	if prefix {
		first, second = t.prefix, t.infix
	}

	if op, ok := first[symbol]; ok {
		return op, true
	}

	op, ok := second[symbol]
	return op, ok
}

// Entries lists every registered symbol: infix entries before prefix ones,
// then by descending precedence, then by symbol.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.infix)+len(t.prefix))
	for s, op := range t.infix {
		entries = append(entries, Entry{Symbol: s, OperatorInfo: op})
	}
	for s, op := range t.prefix {
		entries = append(entries, Entry{Symbol: s, OperatorInfo: op})
	}

	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Arity != b.Arity {
			return cmp.Compare(b.Arity, a.Arity)
		}
		if a.Precedence != b.Precedence {
			return cmp.Compare(b.Precedence, a.Precedence)
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})

	return entries
}
