package lexer

import (
	"fmt"

	"github.com/YaNeVLAD/StateMachine/compressor"
	"github.com/YaNeVLAD/StateMachine/machine"
)

// ruleProgram is a rule's recognizer lowered to a compressed transition
// table: one row per state plus the invalid row 0, one column per input
// byte. Scanning walks the table instead of the recognizer's string-keyed
// maps.
type ruleProgram struct {
	initial   int
	accepting []bool
	trans     *compressor.Table
}

const (
	invalidStateID = 0
	stateIDMin     = 1
	colCount       = 256
)

// compileRule lowers a deterministic recognizer. State ids are interned in
// ascending order starting at stateIDMin; id 0 stays invalid so the empty
// table entry means "no transition".
func compileRule(r *machine.Recognizer) (*ruleProgram, error) {
	tab := r.State()
	ids := tab.StateIDs()

	intern := make(map[string]int, len(ids))
	for i, id := range ids {
		intern[id] = stateIDMin + i
	}

	rowCount := len(ids) + 1
	entries := make([]int, rowCount*colCount)
	for key, targets := range tab.Transitions {
		if key.Input.IsEpsilon() {
			return nil, fmt.Errorf("recognizer has ε-transitions")
		}
		sym := key.Input.Symbol()
		if len(sym) != 1 {
			return nil, fmt.Errorf("transition symbol %q is not a single byte", sym)
		}
		entries[intern[key.From]*colCount+int(sym[0])] = intern[targets[0]]
	}

	accepting := make([]bool, rowCount)
	for id := range tab.Accepting {
		accepting[intern[id]] = true
	}

	trans, err := compressor.Compress(entries, colCount, invalidStateID)
	if err != nil {
		return nil, err
	}

	return &ruleProgram{
		initial:   intern[tab.Initial],
		accepting: accepting,
		trans:     trans,
	}, nil
}

// longestAccept simulates the program over src and returns the length of the
// longest prefix that ended in an accepting state, or 0 when there is none.
// The simulation stops at the first dead end; mid-rule failures are not
// surfaced.
func (p *ruleProgram) longestAccept(src string) int {
	state := p.initial
	last := 0
	for i := 0; i < len(src); i++ {
		next := p.trans.Lookup(state, int(src[i]))
		if next == invalidStateID {
			break
		}
		state = next
		if p.accepting[state] {
			last = i + 1
		}
	}
	return last
}
