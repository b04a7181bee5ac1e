package grammar

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/YaNeVLAD/StateMachine/machine"
)

const rightLinearSrc = `TYPE: RIGHT
NON-TERMINALS: S A
TERMINALS: a b
START: S
RULES:
S -> aA
S -> b
A -> aS
A ->
`

func TestLoad(t *testing.T) {
	g, err := Load(strings.NewReader(rightLinearSrc), "test")
	if err != nil {
		t.Fatal(err)
	}

	want := &Grammar{
		Type:         RightLinear,
		NonTerminals: map[string]bool{"S": true, "A": true},
		Terminals:    map[string]bool{"a": true, "b": true},
		Start:        "S",
		Rules: []Rule{
			{From: "S", Terminal: "a", NonTerminal: "A"},
			{From: "S", Terminal: "b"},
			{From: "A", Terminal: "a", NonTerminal: "S"},
			{From: "A"},
		},
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Fatalf("unexpected grammar:\n%v", diff)
	}
}

func TestLoad_MalformedRule(t *testing.T) {
	src := `TYPE: RIGHT
START: S
RULES:
S = aA
`
	_, err := Load(strings.NewReader(src), "test")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "4") {
		t.Fatalf("error must carry the row number: %v", err)
	}
}

func TestLoad_ParsesLeftLinearRHS(t *testing.T) {
	src := `TYPE: LEFT
NON-TERMINALS: S B
TERMINALS: a
START: S
RULES:
S -> Ba
B -> a
`
	g, err := Load(strings.NewReader(src), "test")
	if err != nil {
		t.Fatal(err)
	}
	if g.Rules[0].NonTerminal != "B" || g.Rules[0].Terminal != "a" {
		t.Fatalf("unexpected rule split: %+v", g.Rules[0])
	}
}

func TestSaveRoundTrip(t *testing.T) {
	g, err := Load(strings.NewReader(rightLinearSrc), "test")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Save(&buf, g); err != nil {
		t.Fatal(err)
	}
	back, err := Load(&buf, "round trip")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g, back); diff != "" {
		t.Fatalf("round trip changed the grammar:\n%v", diff)
	}
}

func TestRecognizer_RightLinear(t *testing.T) {
	g, err := Load(strings.NewReader(rightLinearSrc), "test")
	if err != nil {
		t.Fatal(err)
	}
	nfa := g.Recognizer()
	if nfa.Deterministic() {
		t.Fatal("grammar conversion must produce an NFA")
	}
	dfa := machine.Determinize(nfa)

	for _, w := range []string{"b", "a", "aaa", "aab"} {
		if !machine.RecognizeWord(dfa, w) {
			t.Errorf("%q must be accepted", w)
		}
	}
	for _, w := range []string{"ab", "aa", "ba", "c"} {
		if machine.RecognizeWord(dfa, w) {
			t.Errorf("%q must be rejected", w)
		}
	}
}

func TestRecognizer_RightLinearEpsilonAtStart(t *testing.T) {
	src := `TYPE: RIGHT
NON-TERMINALS: S
TERMINALS: a
START: S
RULES:
S -> aS
S ->
`
	g, err := Load(strings.NewReader(src), "test")
	if err != nil {
		t.Fatal(err)
	}
	dfa := machine.Determinize(g.Recognizer())

	for _, w := range []string{"", "a", "aaa"} {
		if !machine.RecognizeWord(dfa, w) {
			t.Errorf("%q must be accepted", w)
		}
	}
	if machine.RecognizeWord(dfa, "b") {
		t.Error("b must be rejected")
	}
}

func TestRecognizer_LeftLinear(t *testing.T) {
	// Words of a+ b: the start symbol is the accepting state, letters are
	// consumed from a synthetic initial state.
	src := `TYPE: LEFT
NON-TERMINALS: S A
TERMINALS: a b
START: S
RULES:
S -> Ab
A -> Aa
A -> a
`
	g, err := Load(strings.NewReader(src), "test")
	if err != nil {
		t.Fatal(err)
	}
	dfa := machine.Determinize(g.Recognizer())

	for _, w := range []string{"ab", "aab", "aaab"} {
		if !machine.RecognizeWord(dfa, w) {
			t.Errorf("%q must be accepted", w)
		}
	}
	for _, w := range []string{"", "a", "b", "ba", "abb"} {
		if machine.RecognizeWord(dfa, w) {
			t.Errorf("%q must be rejected", w)
		}
	}
}
