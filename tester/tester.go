// Package tester runs word suites against recognizers and reports, per
// machine, every verdict that differs from the expectation. It is the
// harness behind `fsm test`: a pattern's NFA, DFA, and minimized DFA must
// all agree with the suite.
package tester

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	verr "github.com/YaNeVLAD/StateMachine/error"
	"github.com/YaNeVLAD/StateMachine/machine"
)

// Case is one word with its expected verdict.
type Case struct {
	Word   string
	Accept bool
}

// Subject is a named recognizer under test. Non-deterministic subjects are
// determinized before execution.
type Subject struct {
	Name       string
	Recognizer *machine.Recognizer
}

// Failure is one diverging verdict.
type Failure struct {
	Word string
	Want bool
	Got  bool
}

// Result collects a subject's failures.
type Result struct {
	Name     string
	Failures []*Failure
}

func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

func (r *Result) String() string {
	if r.Passed() {
		return fmt.Sprintf("Passed %v", r.Name)
	}
	const indent = "    "
	var b strings.Builder
	fmt.Fprintf(&b, "Failed %v:", r.Name)
	for _, f := range r.Failures {
		fmt.Fprintf(&b, "\n%v%q: want: %v, got: %v", indent, f.Word, verdict(f.Want), verdict(f.Got))
	}
	return b.String()
}

func verdict(accept bool) string {
	if accept {
		return "accept"
	}
	return "reject"
}

// Run executes every case against every subject. Subjects run concurrently
// on private copies of their machines; results keep the subject order.
func Run(subjects []Subject, cases []Case) []*Result {
	results := make([]*Result, len(subjects))
	var g errgroup.Group
	for i, s := range subjects {
		i, s := i, s
		g.Go(func() error {
			r := s.Recognizer
			if !r.Deterministic() {
				r = machine.Determinize(r)
			} else {
				r = machine.NewRecognizer(r.State())
			}
			res := &Result{Name: s.Name}
			for _, c := range cases {
				got := machine.RecognizeWord(r, c.Word)
				if got != c.Accept {
					res.Failures = append(res.Failures, &Failure{Word: c.Word, Want: c.Accept, Got: got})
				}
			}
			results[i] = res
			return nil
		})
	}
	// The group never returns an error; Wait only fences the goroutines.
	_ = g.Wait()
	return results
}

// LoadCases reads a suite, one case per line:
//
//	accept <word>
//	reject <word>
//
// A missing word is the empty word. Lines starting with # and blank lines
// are ignored.
func LoadCases(r io.Reader, sourceName string) ([]Case, error) {
	var cases []Case
	s := bufio.NewScanner(r)
	row := 0
	for s.Scan() {
		row++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, " ", 2)
		word := ""
		if len(fields) > 1 {
			word = strings.TrimSpace(fields[1])
		}
		switch fields[0] {
		case "accept":
			cases = append(cases, Case{Word: word, Accept: true})
		case "reject":
			cases = append(cases, Case{Word: word})
		default:
			return nil, verr.Wrap(sourceName, row, fmt.Errorf("a case must start with accept or reject: %v", line))
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

// LoadCasesFile is LoadCases over the contents of path.
func LoadCasesFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadCases(f, path)
}
