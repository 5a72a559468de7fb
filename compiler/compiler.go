// Package compiler turns an arithmetic expression into a postfix token
// sequence: a character level tokenizer followed by a shunting-yard
// converter, both driven by a token.Table.
package compiler

import (
	"github.com/JustAnOrangeCat/TinyMathParser/token"
)

// Compiler holds the operator table. It keeps no per-call state, so a single
// Compiler can be reused and shared between goroutines.
type Compiler struct {
	table *token.Table
}

// New returns a Compiler using table, or token.DefaultTable() when table is nil.
func New(table *token.Table) *Compiler {
	if table == nil {
		table = token.DefaultTable()
	}

	return &Compiler{table: table}
}

func (c *Compiler) Table() *token.Table {
	return c.table
}

// Tokenize splits input into tokens.
func (c *Compiler) Tokenize(input string) ([]token.Token, error) {
	if input == "" {
		return nil, token.NewError(token.EmptyInput, "", -1)
	}

	return newTokenizer(c.table, input).run()
}

// Program is a compiled expression.
type Program struct {
	Source  string
	Tokens  []token.Token
	Postfix []token.Token
}

// Compile tokenizes input and converts it to postfix.
func (c *Compiler) Compile(input string) (*Program, error) {
	tokens, err := c.Tokenize(input)
	if err != nil {
		return nil, err
	}

	postfix, err := c.ToPostfix(tokens)
	if err != nil {
		return nil, err
	}

	return &Program{
		Source:  input,
		Tokens:  tokens,
		Postfix: postfix,
	}, nil
}

// Variables returns the names of the unbound variables in the postfix
// sequence, in order of first appearance.
func (p *Program) Variables() []string {
	seen := make(map[string]bool)
	names := []string{}

	for _, tk := range p.Postfix {
		if tk.Type == token.Variable && !seen[tk.Text] {
			seen[tk.Text] = true
			names = append(names, tk.Text)
		}
	}

	return names
}
