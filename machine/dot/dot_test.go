package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/YaNeVLAD/StateMachine/machine"
)

func TestReadMealy(t *testing.T) {
	src := `digraph MealyMachine {
    rankdir = LR;

    "s0";
    "s1";

    "s0" -> "s1" [label = "x1 / a"];
    "s1" -> "s0" [label = " x2 / b "];
}
`
	m, err := ReadMealy(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if m.State().Initial != "s0" {
		t.Fatalf("unexpected initial state: %v", m.State().Initial)
	}
	out, err := m.HandleInput("x1")
	if err != nil {
		t.Fatal(err)
	}
	if out != "a" {
		t.Fatalf("unexpected output: want: a, got: %v", out)
	}
	// The second label is trimmed on both sides of the slash.
	out, err = m.HandleInput("x2")
	if err != nil {
		t.Fatal(err)
	}
	if out != "b" {
		t.Fatalf("unexpected output: want: b, got: %v", out)
	}
}

func TestReadMealy_InvalidEdgeLabel(t *testing.T) {
	src := `s0 -> s1 [label = "no separator"];`
	if _, err := ReadMealy(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestMealyRoundTrip(t *testing.T) {
	tab := &machine.MealyTable{
		States:  map[string]bool{"s0": true, "s1": true},
		Initial: "s0",
		Transitions: map[machine.MealyKey]machine.MealyTarget{
			{From: "s0", Input: "x1"}: {Next: "s1", Output: "a"},
			{From: "s1", Input: "x2"}: {Next: "s0", Output: "b"},
		},
	}
	m := machine.NewMealy(tab)

	var buf bytes.Buffer
	if err := WriteMealy(&buf, m); err != nil {
		t.Fatal(err)
	}
	back, err := ReadMealy(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(m.State(), back.State()); diff != "" {
		t.Fatalf("round trip changed the table:\n%v", diff)
	}
}

func TestMooreRoundTrip(t *testing.T) {
	tab := &machine.MooreTable{
		States:  map[string]bool{"s0": true, "s1": true},
		Initial: "s0",
		Transitions: map[machine.MooreKey]string{
			{From: "s0", Input: "1"}: "s1",
			{From: "s1", Input: "2"}: "s0",
		},
		Outputs: map[string]string{"s0": "A", "s1": "B"},
	}
	m := machine.NewMoore(tab)

	var buf bytes.Buffer
	if err := WriteMoore(&buf, m); err != nil {
		t.Fatal(err)
	}
	back, err := ReadMoore(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(m.State(), back.State()); diff != "" {
		t.Fatalf("round trip changed the table:\n%v", diff)
	}
}

func TestWriteMoore_MissingOutput(t *testing.T) {
	tab := &machine.MooreTable{
		States:      map[string]bool{"s0": true},
		Initial:     "s0",
		Transitions: map[machine.MooreKey]string{},
		Outputs:     map[string]string{},
	}
	var buf bytes.Buffer
	if err := WriteMoore(&buf, machine.NewMoore(tab)); err == nil {
		t.Fatal("expected an error")
	}
}

func TestRecognizerRoundTrip(t *testing.T) {
	tab := &machine.RecognizerTable{
		States:    map[string]bool{"q0": true, "q1": true, "q2": true},
		Initial:   "q0",
		Accepting: map[string]bool{"q2": true},
		Transitions: map[machine.RecognizerKey][]string{
			{From: "q0", Input: machine.Epsilon()}:      {"q1"},
			{From: "q1", Input: machine.NewInput("a")}:  {"q2"},
			{From: "q1", Input: machine.NewInput("b")}:  {"q1", "q2"},
			{From: "q2", Input: machine.NewInput("ab")}: {"q0"},
		},
	}
	r := machine.NewRecognizer(tab)

	var buf bytes.Buffer
	if err := WriteRecognizer(&buf, r); err != nil {
		t.Fatal(err)
	}
	back, err := ReadRecognizer(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(r.State(), back.State(), cmp.AllowUnexported(machine.Input{})); diff != "" {
		t.Fatalf("round trip changed the table:\n%v", diff)
	}
	if back.Deterministic() {
		t.Fatal("ε-edges must mark the recognizer non-deterministic")
	}
}

func TestReadRecognizer(t *testing.T) {
	src := `digraph Recognizer {
    rankdir = LR;

    "q0" [final = false, shape = circle];
    "q1" [final = true, shape = doublecircle];

    "q0" -> "q1" [label = "a"];
    "q1" -> "q0";
}
`
	r, err := ReadRecognizer(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if r.State().Initial != "q0" {
		t.Fatalf("unexpected initial state: %v", r.State().Initial)
	}
	if !r.IsAccepting("q1") || r.IsAccepting("q0") {
		t.Fatal("unexpected accepting set")
	}
	if r.Deterministic() {
		t.Fatal("the unlabeled edge is an ε-edge")
	}
	targets := r.State().Transitions[machine.RecognizerKey{From: "q1", Input: machine.Epsilon()}]
	if len(targets) != 1 || targets[0] != "q0" {
		t.Fatalf("unexpected ε-targets: %v", targets)
	}
}
