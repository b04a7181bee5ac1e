package main

import (
	"github.com/spf13/cobra"

	"github.com/YaNeVLAD/StateMachine/grammar"
	"github.com/YaNeVLAD/StateMachine/machine"
	"github.com/YaNeVLAD/StateMachine/machine/dot"
)

var grammarFlags = struct {
	determinize *bool
	output      *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "grammar",
		Short:   "Convert a regular grammar file into a recognizer",
		Example: `  fsm grammar grammar.txt --determinize -o dfa.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runGrammar,
	}
	grammarFlags.determinize = cmd.Flags().Bool("determinize", false, "apply the subset construction to the result")
	grammarFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runGrammar(cmd *cobra.Command, args []string) error {
	g, err := grammar.LoadFile(args[0])
	if err != nil {
		return err
	}

	r := g.Recognizer()
	if *grammarFlags.determinize {
		r = machine.Determinize(r)
	}

	out, closeOut, err := openOutput(*grammarFlags.output)
	if err != nil {
		return err
	}
	defer closeOut()
	return dot.WriteRecognizer(out, r)
}
