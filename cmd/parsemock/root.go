package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ogreyling/parsemock/internal/config"
	"github.com/ogreyling/parsemock/internal/logging"
)

// createRootCommand creates the main root command that shows help by default.
func createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "parsemock",
		Short: "Mock parser backend test harness",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	// Add persistent config flag
	rootCmd.PersistentFlags().StringP("config", "c", "parsemock.yml", "Path to config file")

	// Add subcommands
	rootCmd.AddCommand(
		createServeCommand(),
		createSendCommand(),
		createGenerateCommand(),
		createFetchCommand(),
	)

	return rootCmd
}

// loadConfigFromCommand loads the config named by --config. A missing file
// is not an error: the harness defaults stand in, so the mock server keeps
// its no-flags, no-env contract.
func loadConfigFromCommand(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return config.DefaultConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// logWriter overrides the file-backed log destination. Tests point it at an
// in-memory writer so command runs never touch the host's XDG data dir.
var logWriter io.Writer

// initLogging attaches a logger to the command context, file-backed unless
// a writer has been injected.
func initLogging(cmd *cobra.Command, cfg *config.Config, component string) (context.Context, error) {
	ctx, err := logging.New(cmd.Context(), afero.NewOsFs(), logging.Config{
		Writer:    logWriter,
		Component: component,
		Level:     logging.ParseLevel(cfg.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return ctx, nil
}
