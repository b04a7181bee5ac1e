// Package regex compiles a small regular-expression dialect (literals,
// escapes, alternation, grouping, star, and plus) into ε-NFA recognizers
// via Thompson's construction.
package regex

import "github.com/YaNeVLAD/StateMachine/machine"

// Regex is a compiled pattern. It caches the syntax tree and the NFA table;
// Compile hands out recognizers copied from the cache.
type Regex struct {
	pattern string
	ast     Node
	tab     *machine.RecognizerTable
}

// New parses and builds pattern immediately. The empty pattern is valid and
// matches exactly the empty word.
func New(pattern string) (*Regex, error) {
	ast, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	b := &builder{}
	return &Regex{
		pattern: pattern,
		ast:     ast,
		tab:     b.build(ast),
	}, nil
}

// Pattern returns the source pattern.
func (r *Regex) Pattern() string {
	return r.pattern
}

// AST returns the cached syntax tree.
func (r *Regex) AST() Node {
	return r.ast
}

// Compile returns a fresh recognizer owning a copy of the cached NFA table.
func (r *Regex) Compile() *machine.Recognizer {
	return machine.NewRecognizer(r.tab)
}

// CompileDFA compiles, determinizes, and minimizes pattern in one step.
func CompileDFA(pattern string) (*machine.Recognizer, error) {
	re, err := New(pattern)
	if err != nil {
		return nil, err
	}
	return machine.MinimizeRecognizer(machine.Determinize(re.Compile())), nil
}
