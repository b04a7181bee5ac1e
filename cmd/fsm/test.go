package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YaNeVLAD/StateMachine/machine"
	"github.com/YaNeVLAD/StateMachine/regex"
	"github.com/YaNeVLAD/StateMachine/tester"
)

var testFlags = struct {
	pattern *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "test",
		Short:   "Run a word suite against a pattern's NFA, DFA, and minimized DFA",
		Example: `  fsm test --regex '(a|b)*abb' suite.txt`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTest,
	}
	testFlags.pattern = cmd.Flags().String("regex", "", "pattern whose recognizer forms are tested")
	cmd.MarkFlagRequired("regex")
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	cases, err := tester.LoadCasesFile(args[0])
	if err != nil {
		return err
	}

	re, err := regex.New(*testFlags.pattern)
	if err != nil {
		return err
	}
	nfa := re.Compile()
	dfa := machine.Determinize(nfa)
	min := machine.MinimizeRecognizer(dfa)

	results := tester.Run([]tester.Subject{
		{Name: "NFA", Recognizer: nfa},
		{Name: "DFA", Recognizer: dfa},
		{Name: "min-DFA", Recognizer: min},
	}, cases)

	failed := false
	for _, res := range results {
		fmt.Println(res)
		if !res.Passed() {
			failed = true
		}
	}
	if failed {
		return fmt.Errorf("test failed")
	}
	return nil
}
