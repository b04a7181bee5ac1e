package machine

import "sort"

// MooreKey addresses a Moore transition by source state and input symbol.
type MooreKey struct {
	From  string
	Input string
}

// MooreTable is the state table of a Moore machine. Outputs maps a state id
// to the output the machine emits on entering that state; it is consulted
// lazily, so a missing entry surfaces only when execution reaches the state.
type MooreTable struct {
	States      map[string]bool
	Initial     string
	Current     string
	Transitions map[MooreKey]string
	Outputs     map[string]string
}

// Clone returns a deep copy of the table.
func (t *MooreTable) Clone() *MooreTable {
	states := make(map[string]bool, len(t.States))
	for id := range t.States {
		states[id] = true
	}
	trans := make(map[MooreKey]string, len(t.Transitions))
	for k, v := range t.Transitions {
		trans[k] = v
	}
	outs := make(map[string]string, len(t.Outputs))
	for k, v := range t.Outputs {
		outs[k] = v
	}
	return &MooreTable{
		States:      states,
		Initial:     t.Initial,
		Current:     t.Current,
		Transitions: trans,
		Outputs:     outs,
	}
}

// StateIDs returns all state ids in ascending order.
func (t *MooreTable) StateIDs() []string {
	ids := make([]string, 0, len(t.States))
	for id := range t.States {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// InputSymbols returns every input symbol appearing in the transition map, in
// ascending order.
func (t *MooreTable) InputSymbols() []string {
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

// Moore is a machine producing one output per state.
type Moore struct {
	tab *MooreTable
}

// NewMoore returns a machine owning a copy of tab. The current state is set
// to tab.Current, or to the initial state when tab.Current is empty.
func NewMoore(tab *MooreTable) *Moore {
	c := tab.Clone()
	if c.Current == "" {
		c.Current = c.Initial
	}
	return &Moore{tab: c}
}

// State exposes the machine's table. Callers must treat it as read-only.
func (m *Moore) State() *MooreTable {
	return m.tab
}

// HandleInput performs one step and returns the output of the state entered.
func (m *Moore) HandleInput(in string) (string, error) {
	return handleInput[string, string, string](m, in)
}

// HandleSequence feeds every input in order and returns the last output.
func (m *Moore) HandleSequence(ins []string) (string, error) {
	return handleSequence[string, string, string](m, ins)
}

func (m *Moore) translate(in string) (string, error) {
	next, ok := m.tab.Transitions[MooreKey{From: m.tab.Current, Input: in}]
	if !ok {
		return "", &UndefinedTransitionError{State: m.tab.Current, Input: in}
	}
	return next, nil
}

func (m *Moore) outputFrom(next string) (string, error) {
	out, ok := m.tab.Outputs[next]
	if !ok {
		return "", &UndefinedOutputError{State: next}
	}
	return out, nil
}

func (m *Moore) advance(next string) {
	m.tab.Current = next
}
