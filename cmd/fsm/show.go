package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/YaNeVLAD/StateMachine/machine"
	"github.com/YaNeVLAD/StateMachine/machine/dot"
)

var showFlags = struct {
	flavor *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print a machine's transition table",
		Example: `  fsm show --type moore machine.dot`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	showFlags.flavor = cmd.Flags().String("type", "recognizer", "machine flavor (mealy|moore|recognizer)")
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	switch *showFlags.flavor {
	case "mealy":
		m, err := dot.ReadMealyFile(args[0])
		if err != nil {
			return err
		}
		return showMealy(m)
	case "moore":
		m, err := dot.ReadMooreFile(args[0])
		if err != nil {
			return err
		}
		return showMoore(m)
	case "recognizer":
		r, err := dot.ReadRecognizerFile(args[0])
		if err != nil {
			return err
		}
		return showRecognizer(r)
	default:
		return fmt.Errorf("unknown machine flavor: %v", *showFlags.flavor)
	}
}

func showMealy(m *machine.Mealy) error {
	tab := m.State()
	inputs := tab.InputSymbols()

	table := newTable(append([]string{"STATE"}, inputs...))
	for _, id := range tab.StateIDs() {
		row := []string{stateLabel(id, tab.Initial)}
		for _, in := range inputs {
			if t, ok := tab.Transitions[machine.MealyKey{From: id, Input: in}]; ok {
				row = append(row, fmt.Sprintf("%v / %v", t.Next, t.Output))
			} else {
				row = append(row, "-")
			}
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func showMoore(m *machine.Moore) error {
	tab := m.State()
	inputs := tab.InputSymbols()

	table := newTable(append([]string{"STATE", "OUTPUT"}, inputs...))
	for _, id := range tab.StateIDs() {
		row := []string{stateLabel(id, tab.Initial), tab.Outputs[id]}
		for _, in := range inputs {
			if next, ok := tab.Transitions[machine.MooreKey{From: id, Input: in}]; ok {
				row = append(row, next)
			} else {
				row = append(row, "-")
			}
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

func showRecognizer(r *machine.Recognizer) error {
	tab := r.State()
	symbols := tab.Alphabet()

	header := append([]string{"STATE", "ACCEPT"}, symbols...)
	header = append(header, "ε")
	table := newTable(header)
	for _, id := range tab.StateIDs() {
		accept := ""
		if tab.Accepting[id] {
			accept = "yes"
		}
		row := []string{stateLabel(id, tab.Initial), accept}
		for _, sym := range symbols {
			row = append(row, targetsCell(tab, id, machine.NewInput(sym)))
		}
		row = append(row, targetsCell(tab, id, machine.Epsilon()))
		table.Append(row)
	}
	table.Render()
	return nil
}

func targetsCell(tab *machine.RecognizerTable, id string, in machine.Input) string {
	targets := tab.Transitions[machine.RecognizerKey{From: id, Input: in}]
	if len(targets) == 0 {
		return "-"
	}
	return strings.Join(targets, ", ")
}

func stateLabel(id, initial string) string {
	if id == initial {
		return "-> " + id
	}
	return id
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	return table
}
