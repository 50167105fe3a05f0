package main

import (
	"fmt"
	"strconv"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper/pkg/adapters/fs"
	"github.com/aretw0/notekeeper/pkg/core"
)

type statusReport struct {
	Service core.ServiceState `json:"service" yaml:"service"`
	Storage any               `json:"storage,omitempty" yaml:"storage,omitempty"`
}

// statusNode is the tree rendered by introspection.TreeDiagram.
type statusNode struct {
	Name     string
	Status   string
	Metadata map[string]string
	Children []statusNode
}

// NewStatusCommand creates the status command.
func NewStatusCommand(a *app) *cobra.Command {
	var (
		diagram bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the datastore",
		Long: `Load the datastore and print the state of the service and its storage.
With --diagram the state is rendered as a Mermaid diagram.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputJSON && output != outputYAML {
				return fmt.Errorf("%w: unknown output format %q (want json or yaml)", core.ErrInvalidArgument, output)
			}

			svc, err := a.openService(cmd)
			if err != nil {
				return err
			}

			// Load once so the note count reflects the file.
			if _, err := svc.ListNotes(cmd.Context()); err != nil && !core.IsInformational(err) {
				return err
			}

			report := statusReport{Service: svc.State().(core.ServiceState)}
			if intro, ok := svc.Storage().(introspection.Introspectable); ok {
				report.Storage = intro.State()
			}

			if diagram {
				config := introspection.DefaultDiagramConfig()
				config.SecondaryID = "datastore"
				config.SecondaryLabel = "Datastore Topology"
				fmt.Fprintln(cmd.OutOrStdout(), introspection.TreeDiagram(buildStatusTree(report), config))
				return nil
			}
			return render(cmd.OutOrStdout(), output, report)
		},
	}

	cmd.Flags().BoolVar(&diagram, "diagram", false, "Render the state as a Mermaid diagram")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "Output format: json or yaml")
	return cmd
}

func buildStatusTree(report statusReport) statusNode {
	store := report.Service.Store

	// Status must match classes in introspection.DefaultStyles().
	storeStatus := "pending"
	if store.Loaded {
		storeStatus = "running"
	}

	storageNode := statusNode{
		Name:   "Storage",
		Status: "running",
		Metadata: map[string]string{
			"type": report.Service.StorageType,
		},
	}
	if state, ok := report.Storage.(fs.StorageState); ok {
		storageNode.Metadata["path"] = state.Path

		watcherStatus := "suspended"
		if state.WatcherActive {
			watcherStatus = "running"
		}
		storageNode.Children = []statusNode{
			{
				Name:     "Watcher",
				Status:   watcherStatus,
				Metadata: map[string]string{"type": "goroutine"},
			},
		}
	}

	return statusNode{
		Name:   "Service",
		Status: "running",
		Metadata: map[string]string{
			"type": "process",
		},
		Children: []statusNode{
			{
				Name:   "Store",
				Status: storeStatus,
				Metadata: map[string]string{
					"type":   "container",
					"file":   store.File,
					"notes":  strconv.Itoa(store.NoteCount),
					"pretty": strconv.FormatBool(store.Pretty),
				},
				Children: []statusNode{storageNode},
			},
		},
	}
}
