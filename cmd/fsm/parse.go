package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YaNeVLAD/StateMachine/lang"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse",
		Short:   "Parse toy-language source text",
		Example: `  fsm parse program.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	lex, err := lang.NewLexer(source)
	if err != nil {
		return err
	}
	if err := lang.NewParser(lex).Parse(); err != nil {
		return err
	}

	fmt.Println("Program parsed successfully!")
	return nil
}
