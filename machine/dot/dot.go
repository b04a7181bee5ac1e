// Package dot reads and writes machines in the GraphViz dot format.
//
// Reading is line-based: node lines (`ID [attrs]`) and edge lines
// (`ID -> ID [label = "…"]`) are recognized, everything else is ignored. The
// first node encountered becomes the initial state. Writing emits the
// initial state first and the rest in ascending order, so output is
// reproducible and round-trips.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/YaNeVLAD/StateMachine/machine"
)

var (
	nodeRe      = regexp.MustCompile(`^\s*(\w+|"[^"]+")\s*(?:\[([^\]]*)\])?\s*;*\s*$`)
	edgeRe      = regexp.MustCompile(`^\s*(\w+|"[^"]+")\s*->\s*(\w+|"[^"]+")\s*(?:\[\s*label\s*=\s*"([^"]*)"\s*\])?\s*;*\s*$`)
	mealyRe     = regexp.MustCompile(`^([^/]+)/(.+)$`)
	mooreNodeRe = regexp.MustCompile(`^([^/]*)/\s*(.*)$`)
	finalRe     = regexp.MustCompile(`final\s*=\s*true`)
	labelRe     = regexp.MustCompile(`label\s*=\s*"([^"]*)"`)
)

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

func quote(s string) string {
	return `"` + s + `"`
}

// ReadMealy parses a Mealy machine. Edge labels must have the form
// "input / output"; node labels are ignored.
func ReadMealy(r io.Reader) (*machine.Mealy, error) {
	tab := &machine.MealyTable{
		States:      map[string]bool{},
		Transitions: map[machine.MealyKey]machine.MealyTarget{},
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if m := edgeRe.FindStringSubmatch(line); m != nil {
			from := unquote(m[1])
			to := unquote(m[2])
			lm := mealyRe.FindStringSubmatch(m[3])
			if lm == nil {
				return nil, fmt.Errorf("invalid transition label format: %v", m[3])
			}
			in := strings.TrimSpace(lm[1])
			out := strings.TrimSpace(lm[2])
			tab.States[from] = true
			tab.States[to] = true
			tab.Transitions[machine.MealyKey{From: from, Input: in}] = machine.MealyTarget{Next: to, Output: out}
			continue
		}
		if m := nodeRe.FindStringSubmatch(line); m != nil {
			id := unquote(m[1])
			tab.States[id] = true
			if tab.Initial == "" {
				tab.Initial = id
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if tab.Initial == "" {
		return nil, fmt.Errorf("no states defined")
	}

	return machine.NewMealy(tab), nil
}

// WriteMealy emits m with "input / output" edge labels.
func WriteMealy(w io.Writer, m *machine.Mealy) error {
	tab := m.State()

	fmt.Fprintf(w, "digraph MealyMachine {\n")
	fmt.Fprintf(w, "    rankdir = LR;\n\n")

	for _, id := range orderedStates(tab.Initial, tab.StateIDs()) {
		fmt.Fprintf(w, "    %v;\n", quote(id))
	}
	fmt.Fprintf(w, "\n")

	keys := make([]machine.MealyKey, 0, len(tab.Transitions))
	for k := range tab.Transitions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].Input < keys[j].Input
	})
	for _, k := range keys {
		t := tab.Transitions[k]
		label := fmt.Sprintf("%v / %v", k.Input, t.Output)
		fmt.Fprintf(w, "    %v -> %v [label = %v];\n", quote(k.From), quote(t.Next), quote(label))
	}

	_, err := fmt.Fprintf(w, "}\n")
	return err
}

// ReadMoore parses a Moore machine. Node labels must have the form
// "display / output"; edge labels carry the input.
func ReadMoore(r io.Reader) (*machine.Moore, error) {
	tab := &machine.MooreTable{
		States:      map[string]bool{},
		Transitions: map[machine.MooreKey]string{},
		Outputs:     map[string]string{},
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if m := edgeRe.FindStringSubmatch(line); m != nil {
			from := unquote(m[1])
			to := unquote(m[2])
			in := m[3]
			tab.States[from] = true
			tab.States[to] = true
			tab.Transitions[machine.MooreKey{From: from, Input: in}] = to
			continue
		}
		if m := nodeRe.FindStringSubmatch(line); m != nil {
			id := unquote(m[1])
			lm := labelRe.FindStringSubmatch(m[2])
			if lm == nil {
				continue
			}
			nm := mooreNodeRe.FindStringSubmatch(lm[1])
			if nm == nil {
				return nil, fmt.Errorf("invalid node label format: %v", lm[1])
			}
			tab.States[id] = true
			tab.Outputs[id] = strings.TrimSpace(nm[2])
			if tab.Initial == "" {
				tab.Initial = id
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if tab.Initial == "" {
		return nil, fmt.Errorf("no states defined")
	}

	return machine.NewMoore(tab), nil
}

// WriteMoore emits m with "id / output" node labels. Every state must have
// an output.
func WriteMoore(w io.Writer, m *machine.Moore) error {
	tab := m.State()

	fmt.Fprintf(w, "digraph MooreMachine {\n")
	fmt.Fprintf(w, "    rankdir = LR;\n\n")

	for _, id := range orderedStates(tab.Initial, tab.StateIDs()) {
		out, ok := tab.Outputs[id]
		if !ok {
			return &machine.UndefinedOutputError{State: id}
		}
		label := fmt.Sprintf("%v / %v", id, out)
		fmt.Fprintf(w, "    %v [label = %v];\n", quote(id), quote(label))
	}
	fmt.Fprintf(w, "\n")

	keys := make([]machine.MooreKey, 0, len(tab.Transitions))
	for k := range tab.Transitions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].Input < keys[j].Input
	})
	for _, k := range keys {
		fmt.Fprintf(w, "    %v -> %v [label = %v];\n", quote(k.From), quote(tab.Transitions[k]), quote(k.Input))
	}

	_, err := fmt.Fprintf(w, "}\n")
	return err
}

// ReadRecognizer parses a recognizer. Nodes carrying `final = true` are
// accepting; an edge without a label is an ε-edge. The result is marked
// non-deterministic when it has ε-edges or duplicate (state, input) keys.
func ReadRecognizer(r io.Reader) (*machine.Recognizer, error) {
	tab := &machine.RecognizerTable{
		States:        map[string]bool{},
		Accepting:     map[string]bool{},
		Transitions:   map[machine.RecognizerKey][]string{},
		Deterministic: true,
	}

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if m := edgeRe.FindStringSubmatch(line); m != nil {
			from := unquote(m[1])
			to := unquote(m[2])
			in := machine.Epsilon()
			if labelRe.MatchString(line) {
				in = machine.NewInput(m[3])
			} else {
				tab.Deterministic = false
			}
			tab.States[from] = true
			tab.States[to] = true
			key := machine.RecognizerKey{From: from, Input: in}
			if len(tab.Transitions[key]) > 0 {
				tab.Deterministic = false
			}
			tab.Transitions[key] = append(tab.Transitions[key], to)
			continue
		}
		if m := nodeRe.FindStringSubmatch(line); m != nil {
			id := unquote(m[1])
			tab.States[id] = true
			if finalRe.MatchString(m[2]) {
				tab.Accepting[id] = true
			}
			if tab.Initial == "" {
				tab.Initial = id
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if tab.Initial == "" {
		return nil, fmt.Errorf("no states defined")
	}

	return machine.NewRecognizer(tab), nil
}

// WriteRecognizer emits r. Accepting states carry `final = true, shape =
// doublecircle`; ε-edges are written without a label attribute.
func WriteRecognizer(w io.Writer, r *machine.Recognizer) error {
	tab := r.State()

	fmt.Fprintf(w, "digraph Recognizer {\n")
	fmt.Fprintf(w, "    rankdir = LR;\n\n")

	fmt.Fprintf(w, "    // Start state pointer\n")
	fmt.Fprintf(w, "    %v;\n\n", quote(tab.Initial))

	fmt.Fprintf(w, "    // States\n")
	for _, id := range orderedStates(tab.Initial, tab.StateIDs()) {
		if tab.Accepting[id] {
			fmt.Fprintf(w, "    %v [final = true, shape = doublecircle];\n", quote(id))
		} else {
			fmt.Fprintf(w, "    %v [final = false, shape = circle];\n", quote(id))
		}
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "    // Transitions\n")
	keys := make([]machine.RecognizerKey, 0, len(tab.Transitions))
	for k := range tab.Transitions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		if keys[i].Input.IsEpsilon() != keys[j].Input.IsEpsilon() {
			return keys[i].Input.IsEpsilon()
		}
		return keys[i].Input.Symbol() < keys[j].Input.Symbol()
	})
	for _, k := range keys {
		targets := make([]string, len(tab.Transitions[k]))
		copy(targets, tab.Transitions[k])
		sort.Strings(targets)
		for _, to := range targets {
			if k.Input.IsEpsilon() {
				fmt.Fprintf(w, "    %v -> %v;\n", quote(k.From), quote(to))
			} else {
				fmt.Fprintf(w, "    %v -> %v [label = %v];\n", quote(k.From), quote(to), quote(k.Input.Symbol()))
			}
		}
	}

	_, err := fmt.Fprintf(w, "}\n")
	return err
}

// orderedStates places the initial state first and the rest in ascending
// order, so the initial state is the first node a reader encounters.
func orderedStates(initial string, ids []string) []string {
	ordered := make([]string, 0, len(ids))
	ordered = append(ordered, initial)
	for _, id := range ids {
		if id != initial {
			ordered = append(ordered, id)
		}
	}
	return ordered
}
