package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YaNeVLAD/StateMachine/machine"
	"github.com/YaNeVLAD/StateMachine/machine/dot"
	"github.com/YaNeVLAD/StateMachine/regex"
)

var regexFlags = struct {
	form   *string
	output *string
	match  *[]string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "regex",
		Short: "Compile a regular expression into a recognizer",
		Example: `  fsm regex '(a|b)*abb' -o dfa.dot
  fsm regex 'a+' --match a --match aa --match b`,
		Args: cobra.ExactArgs(1),
		RunE: runRegex,
	}
	regexFlags.form = cmd.Flags().String("form", "min", "recognizer form to emit (nfa|dfa|min)")
	regexFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	regexFlags.match = cmd.Flags().StringArray("match", nil, "check a word instead of emitting dot")
	rootCmd.AddCommand(cmd)
}

func runRegex(cmd *cobra.Command, args []string) error {
	re, err := regex.New(args[0])
	if err != nil {
		return err
	}

	var r *machine.Recognizer
	switch *regexFlags.form {
	case "nfa":
		r = re.Compile()
	case "dfa":
		r = machine.Determinize(re.Compile())
	case "min":
		r = machine.MinimizeRecognizer(machine.Determinize(re.Compile()))
	default:
		return fmt.Errorf("unknown recognizer form: %v", *regexFlags.form)
	}

	if len(*regexFlags.match) > 0 {
		checker := r
		if !checker.Deterministic() {
			checker = machine.Determinize(checker)
		}
		for _, word := range *regexFlags.match {
			if machine.RecognizeWord(checker, word) {
				fmt.Printf("accept %v\n", word)
			} else {
				fmt.Printf("reject %v\n", word)
			}
		}
		return nil
	}

	out, closeOut, err := openOutput(*regexFlags.output)
	if err != nil {
		return err
	}
	defer closeOut()
	return dot.WriteRecognizer(out, r)
}
