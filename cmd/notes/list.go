package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper/pkg/core"
)

// NewListCommand creates the list command.
func NewListCommand(a *app) *cobra.Command {
	var (
		match  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all notes in the datastore",
		Long: `List every note in stored order.
With --match only notes whose ID or name matches the glob pattern are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			svc, err := a.openService(cmd)
			if err != nil {
				return err
			}

			notes, err := svc.FindNotes(cmd.Context(), match)
			if err != nil {
				return report(cmd, err)
			}

			if output != outputText {
				if notes == nil {
					notes = []core.Note{}
				}
				return render(cmd.OutOrStdout(), output, notes)
			}

			if len(notes) == 0 {
				printInfo(cmd.OutOrStdout(), fmt.Sprintf("No notes match %q.", match))
				return nil
			}
			printNotes(cmd.OutOrStdout(), notes)
			return nil
		},
	}

	cmd.Flags().StringVarP(&match, "match", "m", "", "Glob pattern matched against note ID or name")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	return cmd
}

func printNotes(w io.Writer, notes []core.Note) {
	printInfo(w, "Reading all notes...")
	fmt.Fprintln(w)
	for _, note := range notes {
		fmt.Fprintln(w, note)
	}
	fmt.Fprintln(w)
	printInfo(w, "All notes have been read")
}
