package machine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeterminize(t *testing.T) {
	eps := Epsilon()

	tests := []struct {
		caption  string
		nfa      *RecognizerTable
		accepted []string
		rejected []string
		states   []string
	}{
		{
			caption: "ε-transitions collapse into the closure of the start state",
			nfa: &RecognizerTable{
				States:    map[string]bool{"1": true, "2": true, "3": true},
				Initial:   "1",
				Accepting: map[string]bool{"3": true},
				Transitions: map[RecognizerKey][]string{
					{From: "1", Input: eps}:           {"2"},
					{From: "2", Input: NewInput("a")}: {"3"},
				},
			},
			accepted: []string{"a"},
			rejected: []string{"", "b", "aa"},
			states:   []string{"s_12", "s_3"},
		},
		{
			caption: "ε-only cycles terminate the closure",
			nfa: &RecognizerTable{
				States:    map[string]bool{"1": true, "2": true, "3": true},
				Initial:   "1",
				Accepting: map[string]bool{"3": true},
				Transitions: map[RecognizerKey][]string{
					{From: "1", Input: eps}:           {"2"},
					{From: "2", Input: eps}:           {"1"},
					{From: "1", Input: NewInput("a")}: {"3"},
				},
			},
			accepted: []string{"a"},
			rejected: []string{"", "aa"},
			states:   []string{"s_12", "s_3"},
		},
		{
			caption: "non-deterministic branches merge into subset states",
			nfa: &RecognizerTable{
				States:    map[string]bool{"1": true, "2": true, "3": true},
				Initial:   "1",
				Accepting: map[string]bool{"3": true},
				Transitions: map[RecognizerKey][]string{
					{From: "1", Input: NewInput("a")}: {"2", "3"},
					{From: "2", Input: NewInput("b")}: {"3"},
				},
			},
			accepted: []string{"a", "ab"},
			rejected: []string{"", "b", "abb"},
			states:   []string{"s_1", "s_23", "s_3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			nfa := NewRecognizer(tt.nfa)
			dfa := Determinize(nfa)

			if !dfa.Deterministic() {
				t.Fatal("result must be deterministic")
			}
			for key, targets := range dfa.State().Transitions {
				if key.Input.IsEpsilon() {
					t.Fatalf("result contains an ε-edge from %v", key.From)
				}
				if len(targets) != 1 {
					t.Fatalf("duplicate targets for %v on %v: %v", key.From, key.Input, targets)
				}
			}
			if diff := cmp.Diff(tt.states, dfa.State().StateIDs()); diff != "" {
				t.Errorf("unexpected state set:\n%v", diff)
			}
			for _, w := range tt.accepted {
				if !RecognizeWord(dfa, w) {
					t.Errorf("%q must be accepted", w)
				}
			}
			for _, w := range tt.rejected {
				if RecognizeWord(dfa, w) {
					t.Errorf("%q must be rejected", w)
				}
			}
		})
	}
}

func TestDeterminize_DeterministicInputIsCopied(t *testing.T) {
	r := NewRecognizer(testRecognizerTable())
	d := Determinize(r)

	if diff := cmp.Diff(r.State(), d.State(), cmp.AllowUnexported(Input{})); diff != "" {
		t.Fatalf("deterministic input must come back unchanged:\n%v", diff)
	}
	// Still a copy, not an alias.
	d.State().Accepting["q0"] = true
	if r.State().Accepting["q0"] {
		t.Fatal("result aliases the input table")
	}
}
