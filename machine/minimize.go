package machine

import (
	"strconv"
	"strings"
)

// Oracle answers the flavor-specific questions the partition-refinement
// engine asks. Implementations must return AllStateIDs and AllInputs in a
// stable ascending order so refinement is reproducible.
type Oracle interface {
	AllStateIDs() []string
	AllInputs() []string

	// NextStateID reports the successor of id on input, or false when the
	// transition is undefined. Undefined successors refine into a
	// distinguished sink block.
	NextStateID(id, input string) (string, bool)

	// Are0Equivalent is the initial partition predicate.
	Are0Equivalent(a, b string) bool
}

// sinkIndex marks an undefined successor in a refinement signature.
const sinkIndex = -1

// refine computes the coarsest partition of the oracle's states that refines
// 0-equivalence and is stable under every input. Blocks are returned in
// creation order with members ascending, so block i names the minimized
// state "s<i>".
func refine(o Oracle) [][]string {
	ids := o.AllStateIDs()
	inputs := o.AllInputs()

	var partition [][]string
	for _, id := range ids {
		placed := false
		for i, block := range partition {
			if o.Are0Equivalent(id, block[0]) {
				partition[i] = append(block, id)
				placed = true
				break
			}
		}
		if !placed {
			partition = append(partition, []string{id})
		}
	}

	for {
		index := map[string]int{}
		for i, block := range partition {
			for _, id := range block {
				index[id] = i
			}
		}

		signature := func(id string) string {
			var b strings.Builder
			for _, in := range inputs {
				idx := sinkIndex
				if next, ok := o.NextStateID(id, in); ok {
					idx = index[next]
				}
				b.WriteString(strconv.Itoa(idx))
				b.WriteByte(',')
			}
			return b.String()
		}

		var next [][]string
		for _, block := range partition {
			if len(block) == 1 {
				next = append(next, block)
				continue
			}
			var order []string
			groups := map[string][]string{}
			for _, id := range block {
				sig := signature(id)
				if _, ok := groups[sig]; !ok {
					order = append(order, sig)
				}
				groups[sig] = append(groups[sig], id)
			}
			for _, sig := range order {
				next = append(next, groups[sig])
			}
		}

		if len(next) == len(partition) {
			return partition
		}
		partition = next
	}
}

func minimizedName(block int) string {
	return "s" + strconv.Itoa(block)
}

func blockIndex(partition [][]string) map[string]int {
	index := map[string]int{}
	for i, block := range partition {
		for _, id := range block {
			index[id] = i
		}
	}
	return index
}

type mealyOracle struct {
	tab *MealyTable
}

func (o *mealyOracle) AllStateIDs() []string { return o.tab.StateIDs() }
func (o *mealyOracle) AllInputs() []string   { return o.tab.InputSymbols() }

func (o *mealyOracle) NextStateID(id, input string) (string, bool) {
	t, ok := o.tab.Transitions[MealyKey{From: id, Input: input}]
	if !ok {
		return "", false
	}
	return t.Next, true
}

func (o *mealyOracle) Are0Equivalent(a, b string) bool {
	for _, in := range o.tab.InputSymbols() {
		ta, okA := o.tab.Transitions[MealyKey{From: a, Input: in}]
		tb, okB := o.tab.Transitions[MealyKey{From: b, Input: in}]
		if okA != okB {
			return false
		}
		if okA && ta.Output != tb.Output {
			return false
		}
	}
	return true
}

// MinimizeMealy returns the Mealy machine quotiented by output-equivalence,
// with canonical state names "s0", "s1", … in block-creation order.
func MinimizeMealy(m *Mealy) *Mealy {
	src := m.State()
	o := &mealyOracle{tab: src}
	partition := refine(o)
	index := blockIndex(partition)

	dst := &MealyTable{
		States:      map[string]bool{},
		Transitions: map[MealyKey]MealyTarget{},
	}
	for i, block := range partition {
		newID := minimizedName(i)
		dst.States[newID] = true
		rep := block[0]
		for _, in := range o.AllInputs() {
			t, ok := src.Transitions[MealyKey{From: rep, Input: in}]
			if !ok {
				continue
			}
			dst.Transitions[MealyKey{From: newID, Input: in}] = MealyTarget{
				Next:   minimizedName(index[t.Next]),
				Output: t.Output,
			}
		}
	}
	dst.Initial = minimizedName(index[src.Initial])
	dst.Current = dst.Initial

	return &Mealy{tab: dst}
}

type mooreOracle struct {
	tab *MooreTable
}

func (o *mooreOracle) AllStateIDs() []string { return o.tab.StateIDs() }
func (o *mooreOracle) AllInputs() []string   { return o.tab.InputSymbols() }

func (o *mooreOracle) NextStateID(id, input string) (string, bool) {
	next, ok := o.tab.Transitions[MooreKey{From: id, Input: input}]
	return next, ok
}

func (o *mooreOracle) Are0Equivalent(a, b string) bool {
	outA, okA := o.tab.Outputs[a]
	outB, okB := o.tab.Outputs[b]
	if okA != okB {
		return false
	}
	return outA == outB
}

// MinimizeMoore returns the Moore machine quotiented by output-equivalence,
// with canonical state names "s0", "s1", … in block-creation order.
func MinimizeMoore(m *Moore) *Moore {
	src := m.State()
	o := &mooreOracle{tab: src}
	partition := refine(o)
	index := blockIndex(partition)

	dst := &MooreTable{
		States:      map[string]bool{},
		Transitions: map[MooreKey]string{},
		Outputs:     map[string]string{},
	}
	for i, block := range partition {
		newID := minimizedName(i)
		dst.States[newID] = true
		rep := block[0]
		if out, ok := src.Outputs[rep]; ok {
			dst.Outputs[newID] = out
		}
		for _, in := range o.AllInputs() {
			next, ok := src.Transitions[MooreKey{From: rep, Input: in}]
			if !ok {
				continue
			}
			dst.Transitions[MooreKey{From: newID, Input: in}] = minimizedName(index[next])
		}
	}
	dst.Initial = minimizedName(index[src.Initial])
	dst.Current = dst.Initial

	return &Moore{tab: dst}
}

type recognizerOracle struct {
	tab *RecognizerTable
}

func (o *recognizerOracle) AllStateIDs() []string { return o.tab.StateIDs() }
func (o *recognizerOracle) AllInputs() []string   { return o.tab.Alphabet() }

func (o *recognizerOracle) NextStateID(id, input string) (string, bool) {
	targets, ok := o.tab.Transitions[RecognizerKey{From: id, Input: NewInput(input)}]
	if !ok || len(targets) == 0 {
		return "", false
	}
	return targets[0], true
}

func (o *recognizerOracle) Are0Equivalent(a, b string) bool {
	return o.tab.Accepting[a] == o.tab.Accepting[b]
}

// MinimizeRecognizer returns the recognizer quotiented by
// acceptance-equivalence, with canonical state names "s0", "s1", … in
// block-creation order. The input is expected to be deterministic; see
// Determinize.
func MinimizeRecognizer(r *Recognizer) *Recognizer {
	src := r.State()
	o := &recognizerOracle{tab: src}
	partition := refine(o)
	index := blockIndex(partition)

	dst := &RecognizerTable{
		States:        map[string]bool{},
		Accepting:     map[string]bool{},
		Transitions:   map[RecognizerKey][]string{},
		Deterministic: src.Deterministic,
	}
	for i, block := range partition {
		newID := minimizedName(i)
		dst.States[newID] = true
		rep := block[0]
		if src.Accepting[rep] {
			dst.Accepting[newID] = true
		}
		for _, in := range o.AllInputs() {
			next, ok := o.NextStateID(rep, in)
			if !ok {
				continue
			}
			key := RecognizerKey{From: newID, Input: NewInput(in)}
			dst.Transitions[key] = []string{minimizedName(index[next])}
		}
	}
	dst.Initial = minimizedName(index[src.Initial])
	dst.Current = dst.Initial

	return &Recognizer{tab: dst}
}
