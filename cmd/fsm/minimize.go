package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YaNeVLAD/StateMachine/machine"
	"github.com/YaNeVLAD/StateMachine/machine/dot"
)

var minimizeFlags = struct {
	flavor *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "minimize",
		Short:   "Minimize a machine read from a dot file",
		Example: `  fsm minimize --type recognizer dfa.dot -o min.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runMinimize,
	}
	minimizeFlags.flavor = cmd.Flags().String("type", "recognizer", "machine flavor (mealy|moore|recognizer)")
	minimizeFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runMinimize(cmd *cobra.Command, args []string) error {
	out, closeOut, err := openOutput(*minimizeFlags.output)
	if err != nil {
		return err
	}
	defer closeOut()

	switch *minimizeFlags.flavor {
	case "mealy":
		m, err := dot.ReadMealyFile(args[0])
		if err != nil {
			return err
		}
		return dot.WriteMealy(out, machine.MinimizeMealy(m))
	case "moore":
		m, err := dot.ReadMooreFile(args[0])
		if err != nil {
			return err
		}
		return dot.WriteMoore(out, machine.MinimizeMoore(m))
	case "recognizer":
		r, err := dot.ReadRecognizerFile(args[0])
		if err != nil {
			return err
		}
		if !r.Deterministic() {
			r = machine.Determinize(r)
		}
		return dot.WriteRecognizer(out, machine.MinimizeRecognizer(r))
	default:
		return fmt.Errorf("unknown machine flavor: %v", *minimizeFlags.flavor)
	}
}
