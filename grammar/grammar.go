// Package grammar models regular grammars and converts them into
// recognizers.
package grammar

import (
	"sort"

	"github.com/YaNeVLAD/StateMachine/machine"
)

// Type distinguishes left-linear from right-linear grammars.
type Type string

const (
	LeftLinear  Type = "LEFT"
	RightLinear Type = "RIGHT"
)

// Rule is one production. An empty Terminal or NonTerminal means the part is
// absent; a rule with both absent is A → ε.
type Rule struct {
	From        string
	Terminal    string
	NonTerminal string
}

// Grammar is a regular grammar. Rules keep their declaration order.
type Grammar struct {
	Type         Type
	NonTerminals map[string]bool
	Terminals    map[string]bool
	Start        string
	Rules        []Rule
}

// NonTerminalList returns the non-terminals in ascending order.
func (g *Grammar) NonTerminalList() []string {
	return sortedKeys(g.NonTerminals)
}

// TerminalList returns the terminals in ascending order.
func (g *Grammar) TerminalList() []string {
	return sortedKeys(g.Terminals)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Synthetic states the conversion introduces: right-linear grammars get a
// single accepting state, left-linear grammars a single initial state.
const (
	syntheticFinal = "__qF"
	syntheticStart = "__qS"
)

// Recognizer converts g into a non-deterministic recognizer.
func (g *Grammar) Recognizer() *machine.Recognizer {
	if g.Type == LeftLinear {
		return g.leftLinearRecognizer()
	}
	return g.rightLinearRecognizer()
}

func (g *Grammar) rightLinearRecognizer() *machine.Recognizer {
	tab := newNFATable(g.NonTerminals)
	tab.States[syntheticFinal] = true
	tab.Initial = g.Start
	tab.Accepting[syntheticFinal] = true

	for _, r := range g.Rules {
		switch {
		case r.Terminal != "" && r.NonTerminal != "": // A → aB
			addEdge(tab, r.From, machine.NewInput(r.Terminal), r.NonTerminal)
		case r.Terminal != "": // A → a
			addEdge(tab, r.From, machine.NewInput(r.Terminal), syntheticFinal)
		case r.NonTerminal != "": // A → B
			addEdge(tab, r.From, machine.Epsilon(), r.NonTerminal)
		default: // A → ε
			if r.From == tab.Initial {
				tab.Accepting[tab.Initial] = true
			} else {
				addEdge(tab, r.From, machine.Epsilon(), syntheticFinal)
			}
		}
	}

	return machine.NewRecognizer(tab)
}

func (g *Grammar) leftLinearRecognizer() *machine.Recognizer {
	tab := newNFATable(g.NonTerminals)
	tab.States[syntheticStart] = true
	tab.Initial = syntheticStart
	tab.Accepting[g.Start] = true

	for _, r := range g.Rules {
		switch {
		case r.Terminal != "" && r.NonTerminal != "": // A → Ba
			addEdge(tab, r.NonTerminal, machine.NewInput(r.Terminal), r.From)
		case r.Terminal != "": // A → a
			addEdge(tab, syntheticStart, machine.NewInput(r.Terminal), r.From)
		case r.NonTerminal != "": // A → B
			addEdge(tab, r.NonTerminal, machine.Epsilon(), r.From)
		default: // A → ε
			if r.From == g.Start {
				tab.Accepting[syntheticStart] = true
			} else {
				addEdge(tab, syntheticStart, machine.Epsilon(), r.From)
			}
		}
	}

	return machine.NewRecognizer(tab)
}

func newNFATable(nonTerminals map[string]bool) *machine.RecognizerTable {
	tab := &machine.RecognizerTable{
		States:        map[string]bool{},
		Accepting:     map[string]bool{},
		Transitions:   map[machine.RecognizerKey][]string{},
		Deterministic: false,
	}
	for nt := range nonTerminals {
		tab.States[nt] = true
	}
	return tab
}

func addEdge(tab *machine.RecognizerTable, from string, in machine.Input, to string) {
	key := machine.RecognizerKey{From: from, Input: in}
	tab.Transitions[key] = append(tab.Transitions[key], to)
}
