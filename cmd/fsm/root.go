package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fsm",
	Short: "Build, transform, and run finite-state machines",
	Long: `fsm works with Mealy machines, Moore machines, and recognizers:
- Converts between machine flavors and reads/writes GraphViz dot files.
- Determinizes and minimizes recognizers.
- Compiles regular expressions and regular grammars into recognizers.
- Tokenizes and parses source text with recognizer-backed lexer rules.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
