package machine

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Determinize applies the subset construction to r and returns an equivalent
// deterministic recognizer without ε-transitions. A recognizer already marked
// deterministic is returned as an unchanged copy.
//
// A DFA state is named "s_" followed by the contained NFA ids in ascending
// order, so the construction is reproducible.
func Determinize(r *Recognizer) *Recognizer {
	if r.tab.Deterministic {
		return NewRecognizer(r.tab)
	}

	nfa := r.tab
	alphabet := nfa.Alphabet()

	dfa := &RecognizerTable{
		States:        map[string]bool{},
		Accepting:     map[string]bool{},
		Transitions:   map[RecognizerKey][]string{},
		Deterministic: true,
	}

	start := epsilonClosure(nfa, []string{nfa.Initial})
	dfa.Initial = subsetName(start)
	dfa.States[dfa.Initial] = true

	names := map[string]string{
		subsetKey(start): dfa.Initial,
	}
	worklist := [][]string{start}

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		currentName := names[subsetKey(current)]

		for _, id := range current {
			if nfa.Accepting[id] {
				dfa.Accepting[currentName] = true
				break
			}
		}

		for _, sym := range alphabet {
			next := epsilonClosure(nfa, move(nfa, current, sym))
			if len(next) == 0 {
				continue
			}

			nextName, ok := names[subsetKey(next)]
			if !ok {
				nextName = subsetName(next)
				names[subsetKey(next)] = nextName
				dfa.States[nextName] = true
				worklist = append(worklist, next)
			}

			key := RecognizerKey{From: currentName, Input: NewInput(sym)}
			dfa.Transitions[key] = []string{nextName}
		}
	}

	dfa.Current = dfa.Initial
	return &Recognizer{tab: dfa}
}

// epsilonClosure returns every state reachable from seed over ε-transitions,
// including seed itself, in ascending order. Visited tracking keeps ε-cycles
// finite.
func epsilonClosure(tab *RecognizerTable, seed []string) []string {
	visited := treeset.NewWithStringComparator()
	var visit func(id string)
	visit = func(id string) {
		if visited.Contains(id) {
			return
		}
		visited.Add(id)
		for _, next := range tab.Transitions[RecognizerKey{From: id, Input: Epsilon()}] {
			visit(next)
		}
	}
	for _, id := range seed {
		visit(id)
	}
	return setStrings(visited)
}

// move returns the union of δ(s, sym) over all s in from, in ascending order.
func move(tab *RecognizerTable, from []string, sym string) []string {
	targets := treeset.NewWithStringComparator()
	for _, id := range from {
		for _, next := range tab.Transitions[RecognizerKey{From: id, Input: NewInput(sym)}] {
			targets.Add(next)
		}
	}
	return setStrings(targets)
}

func setStrings(s *treeset.Set) []string {
	vals := s.Values()
	ids := make([]string, len(vals))
	for i, v := range vals {
		ids[i] = v.(string)
	}
	return ids
}

func subsetName(ids []string) string {
	return "s_" + strings.Join(ids, "")
}

// subsetKey joins ids with a separator that cannot occur in state names, so
// distinct subsets never collide even when their concatenations do.
func subsetKey(ids []string) string {
	return strings.Join(ids, "\x1f")
}
