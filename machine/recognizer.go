package machine

import "sort"

// RecognizerKey addresses recognizer transitions by source state and input.
// The input may be ε.
type RecognizerKey struct {
	From  string
	Input Input
}

// RecognizerTable is the state table of a recognizer. Transitions is a
// multimap: a key maps to every reachable target. A table with Deterministic
// set must have no ε keys and exactly one target per key.
type RecognizerTable struct {
	States        map[string]bool
	Initial       string
	Current       string
	Accepting     map[string]bool
	Transitions   map[RecognizerKey][]string
	Deterministic bool
}

// Clone returns a deep copy of the table.
func (t *RecognizerTable) Clone() *RecognizerTable {
	states := make(map[string]bool, len(t.States))
	for id := range t.States {
		states[id] = true
	}
	acc := make(map[string]bool, len(t.Accepting))
	for id := range t.Accepting {
		acc[id] = true
	}
	trans := make(map[RecognizerKey][]string, len(t.Transitions))
	for k, v := range t.Transitions {
		targets := make([]string, len(v))
		copy(targets, v)
		trans[k] = targets
	}
	return &RecognizerTable{
		States:        states,
		Initial:       t.Initial,
		Current:       t.Current,
		Accepting:     acc,
		Transitions:   trans,
		Deterministic: t.Deterministic,
	}
}

// StateIDs returns all state ids in ascending order.
func (t *RecognizerTable) StateIDs() []string {
	ids := make([]string, 0, len(t.States))
	for id := range t.States {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Alphabet returns every non-ε input symbol appearing in the transition map,
// in ascending order.
func (t *RecognizerTable) Alphabet() []string {
	seen := map[string]bool{}
	for k := range t.Transitions {
		if !k.Input.IsEpsilon() {
			seen[k.Input.Symbol()] = true
		}
	}
	syms := make([]string, 0, len(seen))
	for s := range seen {
		syms = append(syms, s)
	}
	sort.Strings(syms)
	return syms
}

// Recognizer is an acceptor with a set of accepting states. It may be a
// non-deterministic automaton with ε-transitions; execution follows the
// first target of each key, so only deterministic recognizers step reliably.
type Recognizer struct {
	tab *RecognizerTable
}

// NewRecognizer returns a recognizer owning a copy of tab. The current state
// is set to tab.Current, or to the initial state when tab.Current is empty.
func NewRecognizer(tab *RecognizerTable) *Recognizer {
	c := tab.Clone()
	if c.Current == "" {
		c.Current = c.Initial
	}
	return &Recognizer{tab: c}
}

// State exposes the recognizer's table. Callers must treat it as read-only.
func (r *Recognizer) State() *RecognizerTable {
	return r.tab
}

// Deterministic reports whether the table is marked deterministic.
func (r *Recognizer) Deterministic() bool {
	return r.tab.Deterministic
}

// IsAccepting reports whether id is an accepting state.
func (r *Recognizer) IsAccepting(id string) bool {
	return r.tab.Accepting[id]
}

// Step looks up the deterministic successor of from on in without touching
// the current state. It reports false when no transition is defined.
func (r *Recognizer) Step(from string, in Input) (string, bool) {
	targets, ok := r.tab.Transitions[RecognizerKey{From: from, Input: in}]
	if !ok || len(targets) == 0 {
		return "", false
	}
	return targets[0], true
}

// HandleInput performs one step and reports whether the machine entered an
// accepting state.
func (r *Recognizer) HandleInput(in Input) (bool, error) {
	return handleInput[Input, string, bool](r, in)
}

// HandleSequence feeds every input in order and reports whether the machine
// ended in an accepting state.
func (r *Recognizer) HandleSequence(ins []Input) (bool, error) {
	if _, err := handleSequence[Input, string, bool](r, ins); err != nil {
		return false, err
	}
	return r.IsAccepting(r.tab.Current), nil
}

func (r *Recognizer) translate(in Input) (string, error) {
	next, ok := r.Step(r.tab.Current, in)
	if !ok {
		return "", &UndefinedTransitionError{State: r.tab.Current, Input: in.String()}
	}
	return next, nil
}

func (r *Recognizer) outputFrom(next string) (bool, error) {
	return r.IsAccepting(next), nil
}

func (r *Recognizer) advance(next string) {
	r.tab.Current = next
}

// Recognize runs the recognizer over ins and reports acceptance. The current
// state is restored before returning, and any execution error (an input with
// no transition) yields false rather than an error.
func Recognize(r *Recognizer, ins []Input) bool {
	saved := r.tab.Current
	defer func() {
		r.tab.Current = saved
	}()
	accepted, err := r.HandleSequence(ins)
	if err != nil {
		return false
	}
	return accepted
}

// RecognizeWord is Recognize over the single-character inputs of word.
func RecognizeWord(r *Recognizer, word string) bool {
	return Recognize(r, Word(word))
}
