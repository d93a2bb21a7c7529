package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ogreyling/parsemock/internal/client"
)

// createFetchCommand creates the fetch command: download a URL to a temp
// file and print the path, one line, for shell composition.
func createFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch URL",
		Short: "Download a URL to a temp file and print its path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfigFromCommand(cmd)
			if err != nil {
				return err
			}

			ctx, err := initLogging(cmd, cfg, "fetch")
			if err != nil {
				return err
			}

			path, err := client.DownloadToTemp(ctx, afero.NewOsFs(), args[0])
			if err != nil {
				return fmt.Errorf("fetch failed: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			if err != nil {
				return fmt.Errorf("failed to print path: %w", err)
			}
			return nil
		},
	}
}
