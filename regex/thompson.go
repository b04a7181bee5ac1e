package regex

import (
	"strconv"

	"github.com/YaNeVLAD/StateMachine/machine"
)

// fragment is a partial ε-NFA with a single initial and a single accepting
// state, the shape every Thompson construction step produces and consumes.
type fragment struct {
	tab *machine.RecognizerTable
}

// builder allocates state names "q0", "q1", … from a counter scoped to one
// compilation.
type builder struct {
	counter int
}

func (b *builder) newStateName() string {
	name := "q" + strconv.Itoa(b.counter)
	b.counter++
	return name
}

// build lowers the syntax tree into an ε-NFA table.
func (b *builder) build(n Node) *machine.RecognizerTable {
	return b.visit(n).tab
}

func (b *builder) visit(n Node) fragment {
	switch node := n.(type) {
	case *SymbolNode:
		in := machine.Epsilon()
		if !node.Epsilon {
			in = machine.NewInput(string(node.Char))
		}
		return b.baseFragment(in)
	case *AltNode:
		return b.alternate(b.visit(node.Left), b.visit(node.Right))
	case *ConcatNode:
		return b.concatenate(b.visit(node.Left), b.visit(node.Right))
	case *StarNode:
		return b.kleeneStar(b.visit(node.Child))
	case *PlusNode:
		return b.kleenePlus(b.visit(node.Child))
	}
	return fragment{}
}

// baseFragment builds a two-state fragment whose single edge carries in.
func (b *builder) baseFragment(in machine.Input) fragment {
	start := b.newStateName()
	final := b.newStateName()

	tab := emptyNFATable()
	tab.States[start] = true
	tab.States[final] = true
	tab.Initial = start
	tab.Accepting[final] = true
	addEdge(tab, start, in, final)

	return fragment{tab: tab}
}

// alternate builds a new start with ε-edges into both operands and ε-edges
// from both operands' accepting states into a new final.
func (b *builder) alternate(l, r fragment) fragment {
	start := b.newStateName()
	final := b.newStateName()

	tab := mergeTables(l.tab, r.tab)
	tab.States[start] = true
	tab.States[final] = true
	tab.Initial = start
	tab.Accepting = map[string]bool{final: true}

	addEdge(tab, start, machine.Epsilon(), l.tab.Initial)
	addEdge(tab, start, machine.Epsilon(), r.tab.Initial)
	for id := range l.tab.Accepting {
		addEdge(tab, id, machine.Epsilon(), final)
	}
	for id := range r.tab.Accepting {
		addEdge(tab, id, machine.Epsilon(), final)
	}

	return fragment{tab: tab}
}

// concatenate links the left operand's accepting states into the right
// operand's initial state.
func (b *builder) concatenate(l, r fragment) fragment {
	tab := mergeTables(l.tab, r.tab)
	tab.Initial = l.tab.Initial
	tab.Accepting = map[string]bool{}
	for id := range r.tab.Accepting {
		tab.Accepting[id] = true
	}

	for id := range l.tab.Accepting {
		addEdge(tab, id, machine.Epsilon(), r.tab.Initial)
	}

	return fragment{tab: tab}
}

// kleeneStar allows skipping the operand entirely and looping it any number
// of times.
func (b *builder) kleeneStar(f fragment) fragment {
	start := b.newStateName()
	final := b.newStateName()

	tab := f.tab
	tab.States[start] = true
	tab.States[final] = true
	inner := tab.Initial
	tab.Initial = start
	accepting := tab.Accepting
	tab.Accepting = map[string]bool{final: true}

	addEdge(tab, start, machine.Epsilon(), final)
	addEdge(tab, start, machine.Epsilon(), inner)
	for id := range accepting {
		addEdge(tab, id, machine.Epsilon(), final)
		addEdge(tab, id, machine.Epsilon(), inner)
	}

	return fragment{tab: tab}
}

// kleenePlus is kleeneStar without the skip edge: the operand runs at least
// once.
func (b *builder) kleenePlus(f fragment) fragment {
	start := b.newStateName()
	final := b.newStateName()

	tab := f.tab
	tab.States[start] = true
	tab.States[final] = true
	inner := tab.Initial
	tab.Initial = start
	accepting := tab.Accepting
	tab.Accepting = map[string]bool{final: true}

	addEdge(tab, start, machine.Epsilon(), inner)
	for id := range accepting {
		addEdge(tab, id, machine.Epsilon(), final)
		addEdge(tab, id, machine.Epsilon(), inner)
	}

	return fragment{tab: tab}
}

func emptyNFATable() *machine.RecognizerTable {
	return &machine.RecognizerTable{
		States:        map[string]bool{},
		Accepting:     map[string]bool{},
		Transitions:   map[machine.RecognizerKey][]string{},
		Deterministic: false,
	}
}

func mergeTables(a, b *machine.RecognizerTable) *machine.RecognizerTable {
	tab := emptyNFATable()
	for id := range a.States {
		tab.States[id] = true
	}
	for id := range b.States {
		tab.States[id] = true
	}
	for k, targets := range a.Transitions {
		tab.Transitions[k] = append(tab.Transitions[k], targets...)
	}
	for k, targets := range b.Transitions {
		tab.Transitions[k] = append(tab.Transitions[k], targets...)
	}
	return tab
}

func addEdge(tab *machine.RecognizerTable, from string, in machine.Input, to string) {
	key := machine.RecognizerKey{From: from, Input: in}
	tab.Transitions[key] = append(tab.Transitions[key], to)
}
