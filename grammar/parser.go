package grammar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	verr "github.com/YaNeVLAD/StateMachine/error"
)

// MalformedGrammarLineError reports a grammar file line that matched no
// expected shape.
type MalformedGrammarLineError struct {
	Line int
	Raw  string
}

func (e *MalformedGrammarLineError) Error() string {
	return fmt.Sprintf("malformed grammar line: %v", e.Raw)
}

// Load parses the line-oriented grammar format:
//
//	TYPE: LEFT|RIGHT
//	NON-TERMINALS: A B C …
//	TERMINALS: a b c …
//	START: A
//	RULES:
//	<lhs> -> <rhs>
//
// sourceName is used in error messages only.
func Load(r io.Reader, sourceName string) (*Grammar, error) {
	g := &Grammar{
		Type:         RightLinear,
		NonTerminals: map[string]bool{},
		Terminals:    map[string]bool{},
	}

	s := bufio.NewScanner(r)
	row := 0
	inRules := false
	for s.Scan() {
		row++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		if inRules {
			rule, err := parseRule(line, g.Type)
			if err != nil {
				return nil, verr.Wrap(sourceName, row, &MalformedGrammarLineError{Line: row, Raw: line})
			}
			g.Rules = append(g.Rules, rule)
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "TYPE:":
			if len(fields) > 1 && Type(fields[1]) == LeftLinear {
				g.Type = LeftLinear
			}
		case "NON-TERMINALS:":
			for _, nt := range fields[1:] {
				g.NonTerminals[nt] = true
			}
		case "TERMINALS:":
			for _, t := range fields[1:] {
				g.Terminals[t] = true
			}
		case "START:":
			if len(fields) > 1 {
				g.Start = fields[1]
			}
		case "RULES:":
			inRules = true
		default:
			return nil, verr.Wrap(sourceName, row, &MalformedGrammarLineError{Line: row, Raw: line})
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// LoadFile is Load over the contents of path.
func LoadFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, path)
}

// parseRule parses "<lhs> -> <rhs>". An absent rhs is ε; a single uppercase
// rhs is a unit rule; a single lowercase rhs is a terminal; a longer rhs is
// split into terminal and non-terminal in the order the grammar type
// dictates.
func parseRule(line string, typ Type) (Rule, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[1] != "->" || len(fields) > 3 {
		return Rule{}, fmt.Errorf("invalid rule format: %v", line)
	}
	rule := Rule{From: fields[0]}
	if len(fields) == 2 {
		return rule, nil // A -> ε
	}

	rhs := fields[2]
	if len(rhs) == 1 {
		if unicode.IsUpper(rune(rhs[0])) {
			rule.NonTerminal = rhs
		} else {
			rule.Terminal = rhs
		}
		return rule, nil
	}

	if typ == RightLinear {
		rule.Terminal = rhs[:1]
		rule.NonTerminal = rhs[1:]
	} else {
		rule.NonTerminal = rhs[:1]
		rule.Terminal = rhs[1:]
	}
	return rule, nil
}

// Save emits g in the format Load reads.
func Save(w io.Writer, g *Grammar) error {
	fmt.Fprintf(w, "TYPE: %v\n", g.Type)

	fmt.Fprintf(w, "NON-TERMINALS:")
	for _, nt := range g.NonTerminalList() {
		fmt.Fprintf(w, " %v", nt)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "TERMINALS:")
	for _, t := range g.TerminalList() {
		fmt.Fprintf(w, " %v", t)
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "START: %v\n", g.Start)

	fmt.Fprintf(w, "RULES:\n")
	for _, r := range g.Rules {
		fmt.Fprintf(w, "%v ->", r.From)
		if g.Type == RightLinear {
			if r.Terminal != "" {
				fmt.Fprintf(w, " %v%v", r.Terminal, r.NonTerminal)
			} else if r.NonTerminal != "" {
				fmt.Fprintf(w, " %v", r.NonTerminal)
			}
		} else {
			if r.NonTerminal != "" {
				fmt.Fprintf(w, " %v%v", r.NonTerminal, r.Terminal)
			} else if r.Terminal != "" {
				fmt.Fprintf(w, " %v", r.Terminal)
			}
		}
		fmt.Fprintf(w, "\n")
	}

	return nil
}
