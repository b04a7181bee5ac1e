package machine

import "testing"

func testRecognizerTable() *RecognizerTable {
	return &RecognizerTable{
		States:    map[string]bool{"q0": true, "q1": true},
		Initial:   "q0",
		Accepting: map[string]bool{"q1": true},
		Transitions: map[RecognizerKey][]string{
			{From: "q0", Input: NewInput("a")}: {"q1"},
			{From: "q1", Input: NewInput("b")}: {"q0"},
		},
		Deterministic: true,
	}
}

func TestRecognizer_HandleInput(t *testing.T) {
	r := NewRecognizer(testRecognizerTable())

	accepted, err := r.HandleInput(NewInput("a"))
	if err != nil {
		t.Fatal(err)
	}
	if !accepted {
		t.Fatal("q1 must be accepting")
	}

	accepted, err = r.HandleInput(NewInput("b"))
	if err != nil {
		t.Fatal(err)
	}
	if accepted {
		t.Fatal("q0 must not be accepting")
	}
}

func TestRecognizer_HandleSequence(t *testing.T) {
	tests := []struct {
		caption  string
		word     string
		accepted bool
		err      bool
	}{
		{caption: "a ends in the accepting state", word: "a", accepted: true},
		{caption: "ab returns to the initial state", word: "ab", accepted: false},
		{caption: "aba accepts again", word: "aba", accepted: true},
		{caption: "the empty word ends where it started", word: "", accepted: false},
		{caption: "an undefined input fails", word: "b", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			r := NewRecognizer(testRecognizerTable())
			accepted, err := r.HandleSequence(Word(tt.word))
			if tt.err {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if accepted != tt.accepted {
				t.Fatalf("unexpected result for %q: want: %v, got: %v", tt.word, tt.accepted, accepted)
			}
		})
	}
}

func TestRecognize_RestoresState(t *testing.T) {
	r := NewRecognizer(testRecognizerTable())

	if !RecognizeWord(r, "a") {
		t.Fatal("a must be accepted")
	}
	if r.State().Current != "q0" {
		t.Fatalf("current state not restored: %v", r.State().Current)
	}

	// A word that dead-ends mid-run is rejected and still restores.
	if RecognizeWord(r, "ba") {
		t.Fatal("ba must be rejected")
	}
	if r.State().Current != "q0" {
		t.Fatalf("current state not restored after failure: %v", r.State().Current)
	}
}

func TestRecognizer_Step(t *testing.T) {
	r := NewRecognizer(testRecognizerTable())

	next, ok := r.Step("q0", NewInput("a"))
	if !ok || next != "q1" {
		t.Fatalf("unexpected step result: %v, %v", next, ok)
	}
	if _, ok := r.Step("q0", NewInput("b")); ok {
		t.Fatal("step must report undefined transitions")
	}
	// Step must not move the machine.
	if r.State().Current != "q0" {
		t.Fatalf("step moved the machine to %v", r.State().Current)
	}
}
