package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSaveCommand creates the save command.
func NewSaveCommand(a *app) *cobra.Command {
	var (
		id         string
		name       string
		generateID bool
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a new note",
		Long: `Save a new note with the given ID and name.
Missing values are prompted for. An ID that is already taken leaves the datastore untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" && generateID {
				id = uuid.NewString()
			}

			p := newPrompter(cmd)
			noteID, err := p.ask(id, "Please enter new note ID:", "id")
			if err != nil {
				return err
			}
			noteName, err := p.ask(name, "Please enter new note name:", "name")
			if err != nil {
				return err
			}

			svc, err := a.openService(cmd)
			if err != nil {
				return err
			}

			note, err := svc.SaveNote(cmd.Context(), noteID, noteName)
			if err != nil {
				return report(cmd, err)
			}

			printSuccess(cmd.OutOrStdout(), "The note was saved successfully!")
			a.logger.Debug("note saved", "id", note.ID, "store", svc.Store().Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Note ID")
	cmd.Flags().StringVar(&name, "name", "", "Note name")
	cmd.Flags().BoolVar(&generateID, "generate-id", false, "Generate a random UUID when --id is not given")
	return cmd
}
