package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper"
	"github.com/aretw0/notekeeper/pkg/core"
)

// app carries the global flags and the state resolved before each command runs.
type app struct {
	dir        string
	store      string
	configFile string
	pretty     bool
	verbose    bool

	config *notekeeper.Config
	logger *slog.Logger
}

// NewRootCommand builds the notes command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "notes",
		Short: "Keep short notes in a local JSON datastore",
		Long: `notes saves, shows and lists notes kept in a single JSON file.
Each note has a unique ID and a name. The datastore lives in <dir>/<store>.json
and is created on first use.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.dir, "dir", "", "Base directory of the datastore (default: $NOTES_DIR, config dir or current directory)")
	flags.StringVar(&a.store, "store", "", "Datastore name; the file is <store>.json (default \"notes\")")
	flags.StringVar(&a.configFile, "config", "", "Config file (default: nearest .notes.yaml)")
	flags.BoolVar(&a.pretty, "pretty", false, "Write the datastore indented")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		NewSaveCommand(a),
		NewShowCommand(a),
		NewListCommand(a),
		NewWatchCommand(a),
		NewStatusCommand(a),
		NewVersionCommand(),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	configFile := a.configFile
	if configFile == "" {
		if wd, err := os.Getwd(); err == nil {
			if found, err := notekeeper.FindConfig(wd); err == nil {
				configFile = found
			}
		}
	}

	cfg, err := notekeeper.LoadConfig(configFile)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)
	a.config = cfg

	if configFile != "" {
		a.logger.Debug("loaded config", "file", configFile)
	}
	return nil
}

// openService wires the datastore. Flags take precedence over the environment
// and the config file.
func (a *app) openService(cmd *cobra.Command) (*core.Service, error) {
	dir := a.dir
	if dir == "" {
		dir = a.config.Dir
	}

	opts := a.config.Options()
	if a.store != "" {
		opts = append(opts, notekeeper.WithStore(a.store))
	}
	if cmd.Flags().Changed("pretty") {
		opts = append(opts, notekeeper.WithPretty(a.pretty))
	}
	opts = append(opts, notekeeper.WithLogger(a.logger))

	svc, err := notekeeper.New(dir, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to open datastore: %w", err)
	}
	return svc, nil
}

// report prints informational outcomes and lets failures through.
func report(cmd *cobra.Command, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, core.ErrEmptyStore):
		printInfo(cmd.OutOrStdout(), "The datastore does not contain any notes!")
	case errors.Is(err, core.ErrNotFound):
		printInfo(cmd.OutOrStdout(), "Could not find the note with specified ID!")
	case errors.Is(err, core.ErrDuplicateID):
		printInfo(cmd.OutOrStdout(), "A note with specified ID already exists!")
	default:
		return err
	}
	return nil
}
