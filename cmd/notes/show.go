package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(a *app) *cobra.Command {
	var (
		id     string
		output string
	)

	cmd := &cobra.Command{
		Use:     "show",
		Aliases: []string{"load"},
		Short:   "Show a note",
		Long:    `Show the first note with the given ID. A missing ID is prompted for.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			noteID, err := newPrompter(cmd).ask(id, "Please enter note ID to show:", "id")
			if err != nil {
				return err
			}

			svc, err := a.openService(cmd)
			if err != nil {
				return err
			}

			note, err := svc.GetNote(cmd.Context(), noteID)
			if err != nil {
				return report(cmd, err)
			}

			if output != outputText {
				return render(cmd.OutOrStdout(), output, note)
			}
			fmt.Fprintln(cmd.OutOrStdout(), note)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Note ID")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text, json or yaml")
	return cmd
}
