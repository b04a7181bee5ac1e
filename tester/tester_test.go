package tester

import (
	"strings"
	"testing"

	"github.com/YaNeVLAD/StateMachine/machine"
	"github.com/YaNeVLAD/StateMachine/regex"
)

func compileForms(t *testing.T, pattern string) []Subject {
	t.Helper()

	re, err := regex.New(pattern)
	if err != nil {
		t.Fatal(err)
	}
	nfa := re.Compile()
	dfa := machine.Determinize(nfa)
	min := machine.MinimizeRecognizer(dfa)
	return []Subject{
		{Name: "NFA", Recognizer: nfa},
		{Name: "DFA", Recognizer: dfa},
		{Name: "min-DFA", Recognizer: min},
	}
}

func TestRun(t *testing.T) {
	subjects := compileForms(t, "(a*b)*|(b*a)*")
	cases := []Case{
		{Word: "", Accept: true},
		{Word: "a", Accept: true},
		{Word: "b", Accept: true},
		{Word: "ab", Accept: true},
		{Word: "ba", Accept: true},
		{Word: "aab", Accept: true},
		{Word: "bba", Accept: true},
		{Word: "abab", Accept: true},
		{Word: "baba", Accept: true},
		{Word: "c"},
		{Word: "abc"},
	}

	results := Run(subjects, cases)
	if len(results) != len(subjects) {
		t.Fatalf("unexpected result count: %v", len(results))
	}
	for i, res := range results {
		if res.Name != subjects[i].Name {
			t.Errorf("results must keep the subject order: want: %v, got: %v", subjects[i].Name, res.Name)
		}
		if !res.Passed() {
			t.Errorf("%v", res)
		}
	}
}

func TestRun_ReportsFailures(t *testing.T) {
	subjects := compileForms(t, "a+")
	cases := []Case{
		{Word: "a", Accept: true},
		{Word: "", Accept: true}, // wrong on purpose
		{Word: "b"},
	}

	results := Run(subjects, cases)
	for _, res := range results {
		if res.Passed() {
			t.Fatalf("%v must fail the empty word", res.Name)
		}
		if len(res.Failures) != 1 {
			t.Fatalf("unexpected failures: %+v", res.Failures)
		}
		f := res.Failures[0]
		if f.Word != "" || !f.Want || f.Got {
			t.Fatalf("unexpected failure: %+v", f)
		}
		if !strings.HasPrefix(res.String(), "Failed "+res.Name+":") {
			t.Fatalf("unexpected result format: %v", res)
		}
	}
}

func TestRun_DoesNotMutateSubjects(t *testing.T) {
	subjects := compileForms(t, "ab")
	before := subjects[1].Recognizer.State().Current

	Run(subjects, []Case{{Word: "ab", Accept: true}})
	if subjects[1].Recognizer.State().Current != before {
		t.Fatal("run must execute on private copies")
	}
}

func TestLoadCases(t *testing.T) {
	src := `# suite
accept ab
reject
reject ba

accept
`
	cases, err := LoadCases(strings.NewReader(src), "suite")
	if err != nil {
		t.Fatal(err)
	}

	want := []Case{
		{Word: "ab", Accept: true},
		{Word: ""},
		{Word: "ba"},
		{Word: "", Accept: true},
	}
	if len(cases) != len(want) {
		t.Fatalf("unexpected cases: %+v", cases)
	}
	for i, c := range cases {
		if c != want[i] {
			t.Errorf("unexpected case at %v: want: %+v, got: %+v", i, want[i], c)
		}
	}
}

func TestLoadCases_Malformed(t *testing.T) {
	_, err := LoadCases(strings.NewReader("maybe ab\n"), "suite")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "suite:1:") {
		t.Fatalf("error must carry the position: %v", err)
	}
}
