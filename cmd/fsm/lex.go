package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/YaNeVLAD/StateMachine/lexer"
)

var lexFlags = struct {
	rules *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "lex",
		Short:   "Tokenize source text with a rule file",
		Example: `  fsm lex --rules rules.txt source.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runLex,
	}
	lexFlags.rules = cmd.Flags().String("rules", "", "lexer rule file path")
	cmd.MarkFlagRequired("rules")
	rootCmd.AddCommand(cmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	if err := l.LoadRulesFile(*lexFlags.rules); err != nil {
		return err
	}

	tokens, err := l.Tokenize()
	if err != nil {
		return err
	}
	for _, tok := range tokens {
		fmt.Printf("%v:%v\t%v\t%q\n", tok.Line, tok.Column, tok.Kind, tok.Lexeme)
	}
	return nil
}

// readSource returns the contents of the optional file argument, or stdin.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}
