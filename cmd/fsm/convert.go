package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YaNeVLAD/StateMachine/machine"
	"github.com/YaNeVLAD/StateMachine/machine/dot"
)

var convertFlags = struct {
	from   *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "convert",
		Short:   "Convert a Mealy machine to Moore or vice versa",
		Example: `  fsm convert --from mealy machine.dot -o moore.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runConvert,
	}
	convertFlags.from = cmd.Flags().String("from", "mealy", "flavor of the input machine (mealy|moore)")
	convertFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	out, closeOut, err := openOutput(*convertFlags.output)
	if err != nil {
		return err
	}
	defer closeOut()

	switch *convertFlags.from {
	case "mealy":
		mealy, err := dot.ReadMealyFile(args[0])
		if err != nil {
			return err
		}
		return dot.WriteMoore(out, machine.MealyToMoore(mealy))
	case "moore":
		moore, err := dot.ReadMooreFile(args[0])
		if err != nil {
			return err
		}
		mealy, err := machine.MooreToMealy(moore)
		if err != nil {
			return err
		}
		return dot.WriteMealy(out, mealy)
	default:
		return fmt.Errorf("unknown machine flavor: %v", *convertFlags.from)
	}
}

// openOutput returns the write target and a cleanup. An empty path means
// stdout.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
