package main

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ogreyling/parsemock/internal/client"
)

// createSendCommand creates the send command: ship a source file to the
// parser endpoint and print the JSON reply on stdout, byte-exact.
func createSendCommand() *cobra.Command {
	var (
		file string
		addr string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a source file to the parser endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Listen
			}

			ctx, err := initLogging(cmd, cfg, "client")
			if err != nil {
				return err
			}

			c := &client.Client{Addr: addr, DialTimeout: 5 * time.Second}
			reply, err := c.SendFile(ctx, afero.NewOsFs(), file)
			if err != nil {
				return fmt.Errorf("send failed: %w", err)
			}

			// Reply goes to stdout untouched so callers can assert on it.
			_, err = cmd.OutOrStdout().Write(reply)
			if err != nil {
				return fmt.Errorf("failed to write reply: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Source file to send")
	cmd.Flags().StringVar(&addr, "addr", "", "Parser endpoint address (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
