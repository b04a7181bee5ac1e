package machine

import "sort"

// InitialOutput is emitted by the synthetic start state a Mealy→Moore
// conversion introduces.
const InitialOutput = "INITIAL"

func mooreStateName(mealyState, mealyOutput string) string {
	return mealyState + " | " + mealyOutput
}

// MealyToMoore converts m into a Moore machine with identical I/O behavior:
// for any input word the Moore outputs are InitialOutput followed by the
// Mealy outputs. Every (next state, output) pair appearing as a transition
// target becomes one Moore state; a synthetic "<initial>_start" state is
// added in front.
func MealyToMoore(m *Mealy) *Moore {
	src := m.State()

	type pair struct {
		state  string
		output string
	}
	seen := map[pair]bool{}
	for _, t := range src.Transitions {
		seen[pair{state: t.Next, output: t.Output}] = true
	}
	pairs := make([]pair, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].state != pairs[j].state {
			return pairs[i].state < pairs[j].state
		}
		return pairs[i].output < pairs[j].output
	})

	dst := &MooreTable{
		States:      map[string]bool{},
		Transitions: map[MooreKey]string{},
		Outputs:     map[string]string{},
	}
	for _, p := range pairs {
		name := mooreStateName(p.state, p.output)
		dst.States[name] = true
		dst.Outputs[name] = p.output
	}

	startName := src.Initial + "_start"
	dst.States[startName] = true
	dst.Outputs[startName] = InitialOutput
	dst.Initial = startName
	dst.Current = startName

	for k, t := range src.Transitions {
		if k.From == src.Initial {
			dst.Transitions[MooreKey{From: startName, Input: k.Input}] = mooreStateName(t.Next, t.Output)
		}
	}
	for _, p := range pairs {
		from := mooreStateName(p.state, p.output)
		for k, t := range src.Transitions {
			if k.From == p.state {
				dst.Transitions[MooreKey{From: from, Input: k.Input}] = mooreStateName(t.Next, t.Output)
			}
		}
	}

	return &Moore{tab: dst}
}

// MooreToMealy converts m into a Mealy machine: each transition (s,a)→s'
// becomes (s,a)→(s', λ(s')). A target state without an output makes the
// source machine inconsistent.
func MooreToMealy(m *Moore) (*Mealy, error) {
	src := m.State()

	dst := &MealyTable{
		States:      map[string]bool{},
		Initial:     src.Initial,
		Current:     src.Initial,
		Transitions: map[MealyKey]MealyTarget{},
	}
	for id := range src.States {
		dst.States[id] = true
	}
	for k, next := range src.Transitions {
		out, ok := src.Outputs[next]
		if !ok {
			return nil, &InconsistentMachineError{Reason: "no output defined for state " + next}
		}
		dst.Transitions[MealyKey{From: k.From, Input: k.Input}] = MealyTarget{Next: next, Output: out}
	}

	return &Mealy{tab: dst}, nil
}

// RecognizerFromMealy copies the shape of m into a deterministic recognizer,
// dropping outputs. The accepting set is supplied by the caller.
func RecognizerFromMealy(m *Mealy, accepting []string) *Recognizer {
	src := m.State()

	tab := newRecognizerShape(src.States, src.Initial, src.Current, accepting)
	for k, t := range src.Transitions {
		key := RecognizerKey{From: k.From, Input: NewInput(k.Input)}
		tab.Transitions[key] = []string{t.Next}
	}
	return &Recognizer{tab: tab}
}

// RecognizerFromMoore copies the shape of m into a deterministic recognizer,
// dropping outputs. The accepting set is supplied by the caller.
func RecognizerFromMoore(m *Moore, accepting []string) *Recognizer {
	src := m.State()

	tab := newRecognizerShape(src.States, src.Initial, src.Current, accepting)
	for k, next := range src.Transitions {
		key := RecognizerKey{From: k.From, Input: NewInput(k.Input)}
		tab.Transitions[key] = []string{next}
	}
	return &Recognizer{tab: tab}
}

func newRecognizerShape(states map[string]bool, initial, current string, accepting []string) *RecognizerTable {
	tab := &RecognizerTable{
		States:        map[string]bool{},
		Initial:       initial,
		Current:       current,
		Accepting:     map[string]bool{},
		Transitions:   map[RecognizerKey][]string{},
		Deterministic: true,
	}
	for id := range states {
		tab.States[id] = true
	}
	for _, id := range accepting {
		tab.Accepting[id] = true
	}
	return tab
}
