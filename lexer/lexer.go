// Package lexer tokenizes source text by longest match against an ordered
// list of recognizer-backed rules.
package lexer

import (
	"fmt"

	"github.com/YaNeVLAD/StateMachine/machine"
	"github.com/YaNeVLAD/StateMachine/regex"
)

// Token is one lexeme cut out of the source. Line and Column are 1-based;
// Offset is the byte offset of the lexeme in the source.
type Token struct {
	Kind   string
	Lexeme string
	Line   int
	Column int
	Offset int
}

// Rule matches one token kind. Priority is the insertion index; when two
// rules match a prefix of equal length, the smaller Priority value (the
// earlier rule) wins.
type Rule struct {
	Kind     string
	Machine  *machine.Recognizer
	Skip     bool
	Priority int

	prog *ruleProgram
}

// Lexer scans a source string. The zero cursor is line 1, column 1.
type Lexer struct {
	source string
	rules  []*Rule

	offset int
	line   int
	column int

	peeked    *Token
	peekValid bool
}

// New returns a lexer over source with no rules.
func New(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
	}
}

// AddRule compiles pattern to a minimized DFA and appends it as the
// lowest-priority rule. Rules marked skip match and advance the cursor but
// never produce tokens.
func (l *Lexer) AddRule(kind, pattern string, skip bool) error {
	dfa, err := regex.CompileDFA(pattern)
	if err != nil {
		return err
	}
	return l.AddRecognizer(kind, dfa, skip)
}

// AddRecognizer appends a rule backed by an existing recognizer. A
// non-deterministic recognizer is determinized first. Every transition
// symbol must be a single byte.
func (l *Lexer) AddRecognizer(kind string, r *machine.Recognizer, skip bool) error {
	if !r.Deterministic() {
		r = machine.Determinize(r)
	}
	prog, err := compileRule(r)
	if err != nil {
		return fmt.Errorf("rule %v: %w", kind, err)
	}
	l.rules = append(l.rules, &Rule{
		Kind:     kind,
		Machine:  r,
		Skip:     skip,
		Priority: len(l.rules),
		prog:     prog,
	})
	l.peekValid = false
	l.peeked = nil
	return nil
}

// Rules returns the rule list in priority order.
func (l *Lexer) Rules() []*Rule {
	return l.rules
}

// SetSource replaces the source and resets the cursor and the peek buffer.
// The rule list is kept.
func (l *Lexer) SetSource(source string) {
	l.source = source
	l.offset = 0
	l.line = 1
	l.column = 1
	l.peeked = nil
	l.peekValid = false
}

// Next returns the next token, or nil at the end of the source.
func (l *Lexer) Next() (*Token, error) {
	if l.peekValid {
		tok := l.peeked
		l.peeked = nil
		l.peekValid = false
		return tok, nil
	}
	return l.scan()
}

// Peek returns the next token without consuming it; successive calls return
// the same token. At the end of the source it returns nil.
func (l *Lexer) Peek() (*Token, error) {
	if l.peekValid {
		return l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return nil, err
	}
	l.peeked = tok
	l.peekValid = true
	return tok, nil
}

// Tokenize drains the source and returns all tokens. An empty source yields
// no tokens and no error.
func (l *Lexer) Tokenize() ([]*Token, error) {
	var tokens []*Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// scan cuts one token starting at the cursor, looping over skip-rule
// matches. Rules that admit the empty word still never match zero
// characters.
func (l *Lexer) scan() (*Token, error) {
	for l.offset < len(l.source) {
		var best *Rule
		bestLen := 0
		for _, rule := range l.rules {
			n := rule.prog.longestAccept(l.source[l.offset:])
			if n > bestLen {
				best = rule
				bestLen = n
			}
		}
		if best == nil {
			return nil, &UnexpectedCharacterError{Line: l.line, Column: l.column}
		}

		line := l.line
		column := l.column
		offset := l.offset
		l.advance(bestLen)

		if best.Skip {
			continue
		}
		return &Token{
			Kind:   best.Kind,
			Lexeme: l.source[offset : offset+bestLen],
			Line:   line,
			Column: column,
			Offset: offset,
		}, nil
	}
	return nil, nil
}

func (l *Lexer) advance(length int) {
	for i := 0; i < length; i++ {
		if l.source[l.offset] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}
		l.offset++
	}
}

// UnexpectedCharacterError reports a cursor position no rule could match.
type UnexpectedCharacterError struct {
	Line   int
	Column int
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character at line %v, column %v", e.Line, e.Column)
}
