package machine

import "sort"

// MealyKey addresses a Mealy transition by source state and input symbol.
type MealyKey struct {
	From  string
	Input string
}

// MealyTarget is the next state and the output a Mealy transition produces.
type MealyTarget struct {
	Next   string
	Output string
}

// MealyTable is the state table of a Mealy machine.
type MealyTable struct {
	States      map[string]bool
	Initial     string
	Current     string
	Transitions map[MealyKey]MealyTarget
}

// Clone returns a deep copy of the table.
func (t *MealyTable) Clone() *MealyTable {
	states := make(map[string]bool, len(t.States))
	for id := range t.States {
		states[id] = true
	}
	trans := make(map[MealyKey]MealyTarget, len(t.Transitions))
	for k, v := range t.Transitions {
		trans[k] = v
	}
	return &MealyTable{
		States:      states,
		Initial:     t.Initial,
		Current:     t.Current,
		Transitions: trans,
	}
}

// StateIDs returns all state ids in ascending order.
func (t *MealyTable) StateIDs() []string {
	ids := make([]string, 0, len(t.States))
	for id := range t.States {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// InputSymbols returns every input symbol appearing in the transition map, in
// ascending order.
func (t *MealyTable) InputSymbols() []string {
	seen := map[string]bool{}
	for k := range t.Transitions {
		seen[k.Input] = true
	}
	ins := make([]string, 0, len(seen))
	for in := range seen {
		ins = append(ins, in)
	}
	sort.Strings(ins)
	return ins
}

// Mealy is a machine producing one output per transition.
type Mealy struct {
	tab *MealyTable
}

// NewMealy returns a machine owning a copy of tab. The current state is set
// to tab.Current, or to the initial state when tab.Current is empty.
func NewMealy(tab *MealyTable) *Mealy {
	c := tab.Clone()
	if c.Current == "" {
		c.Current = c.Initial
	}
	return &Mealy{tab: c}
}

// State exposes the machine's table. Callers must treat it as read-only.
func (m *Mealy) State() *MealyTable {
	return m.tab
}

// HandleInput performs one step and returns the transition's output.
func (m *Mealy) HandleInput(in string) (string, error) {
	return handleInput[string, MealyTarget, string](m, in)
}

// HandleSequence feeds every input in order and returns the last output.
func (m *Mealy) HandleSequence(ins []string) (string, error) {
	return handleSequence[string, MealyTarget, string](m, ins)
}

func (m *Mealy) translate(in string) (MealyTarget, error) {
	t, ok := m.tab.Transitions[MealyKey{From: m.tab.Current, Input: in}]
	if !ok {
		return MealyTarget{}, &UndefinedTransitionError{State: m.tab.Current, Input: in}
	}
	return t, nil
}

func (m *Mealy) outputFrom(r MealyTarget) (string, error) {
	return r.Output, nil
}

func (m *Mealy) advance(r MealyTarget) {
	m.tab.Current = r.Next
}
