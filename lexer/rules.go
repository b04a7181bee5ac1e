package lexer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	verr "github.com/YaNeVLAD/StateMachine/error"
)

// LoadRules reads a rule file into l, one rule per line:
//
//	[%skip] <RULE_NAME> <regex>
//
// Lines starting with # and blank lines are ignored. sourceName is used in
// error messages only.
func (l *Lexer) LoadRules(r io.Reader, sourceName string) error {
	s := bufio.NewScanner(r)
	row := 0
	for s.Scan() {
		row++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		skip := false
		if rest, ok := cutWord(line, "%skip"); ok {
			skip = true
			line = rest
			if line == "" {
				return verr.Wrap(sourceName, row, fmt.Errorf("expected a token name after %%skip"))
			}
		}

		name, pattern := splitWord(line)
		if pattern == "" {
			return verr.Wrap(sourceName, row, fmt.Errorf("empty regex for token %v", name))
		}

		if err := l.AddRule(name, pattern, skip); err != nil {
			return verr.Wrap(sourceName, row, err)
		}
	}
	return s.Err()
}

// LoadRulesFile is LoadRules over the contents of path.
func (l *Lexer) LoadRulesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return l.LoadRules(f, path)
}

// cutWord strips a leading word and the whitespace after it, reporting
// whether the word was present.
func cutWord(line, word string) (string, bool) {
	if line == word {
		return "", true
	}
	if strings.HasPrefix(line, word+" ") || strings.HasPrefix(line, word+"\t") {
		return strings.TrimSpace(line[len(word):]), true
	}
	return line, false
}

// splitWord cuts a line into its first word and the trimmed remainder.
func splitWord(line string) (string, string) {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i+1:])
}
