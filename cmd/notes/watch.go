package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper/pkg/adapters/lifecycle"
	"github.com/aretw0/notekeeper/pkg/core"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "List the notes each time the datastore changes",
		Long: `Watch the datastore file and list its notes whenever another process changes it.
Stops on Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc, err := a.openService(cmd)
			if err != nil {
				return err
			}

			if err := listOnce(ctx, cmd, svc); err != nil {
				return err
			}

			events, err := svc.Watch(ctx)
			if err != nil {
				return fmt.Errorf("failed to watch datastore: %w", err)
			}
			source := lifecycle.NewSource(events)
			if err := source.Start(ctx); err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), fmt.Sprintf("Watching %s for changes. Press Ctrl+C to stop.", core.Filename(svc.Store().Name())))

			for e := range source.Events() {
				a.logger.Debug("datastore changed", "event", e)
				fmt.Fprintln(cmd.OutOrStdout(), e)

				// Listing a deleted datastore would recreate it.
				if event, ok := e.(core.Event); ok && event.Type == core.EventDelete {
					continue
				}
				if err := listOnce(ctx, cmd, svc); err != nil {
					if ctx.Err() != nil {
						break
					}
					printError(cmd.ErrOrStderr(), err)
				}
			}
			return nil
		},
	}
}

func listOnce(ctx context.Context, cmd *cobra.Command, svc *core.Service) error {
	notes, err := svc.ListNotes(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return report(cmd, err)
	}
	printNotes(cmd.OutOrStdout(), notes)
	return nil
}
