package main

import (
	"github.com/spf13/cobra"

	"github.com/YaNeVLAD/StateMachine/machine"
	"github.com/YaNeVLAD/StateMachine/machine/dot"
)

var determinizeFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "determinize",
		Short:   "Apply the subset construction to a recognizer",
		Example: `  fsm determinize nfa.dot -o dfa.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runDeterminize,
	}
	determinizeFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runDeterminize(cmd *cobra.Command, args []string) error {
	out, closeOut, err := openOutput(*determinizeFlags.output)
	if err != nil {
		return err
	}
	defer closeOut()

	r, err := dot.ReadRecognizerFile(args[0])
	if err != nil {
		return err
	}
	return dot.WriteRecognizer(out, machine.Determinize(r))
}
