package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ogreyling/parsemock/internal/mockserver"
)

// createServeCommand creates the serve command running the one-shot
// responder: one connection, the canned reply, then exit.
func createServeCommand() *cobra.Command {
	var (
		listen        string
		acceptTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the one-shot mock parser server",
		Long: "Run the one-shot mock parser server. It accepts a single connection,\n" +
			"reads until the end-of-request terminator (or peer close), writes the\n" +
			"canned parse result, and exits.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd)
			if err != nil {
				return err
			}
			if listen == "" {
				listen = cfg.Listen
			}

			ctx, err := initLogging(cmd, cfg, "mockserver")
			if err != nil {
				return err
			}

			srv := &mockserver.Server{Addr: listen, AcceptTimeout: acceptTimeout}
			if err := srv.Listen(); err != nil {
				return err
			}

			status := color.New(color.FgGreen)
			_, _ = status.Fprintf(os.Stderr, "listening on %s (one-shot)\n", srv.BoundAddr())

			if err := srv.Serve(ctx); err != nil {
				return fmt.Errorf("serve failed: %w", err)
			}
			_, _ = status.Fprintln(os.Stderr, "served one connection, shutting down")
			return nil
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (default from config)")
	cmd.Flags().DurationVar(&acceptTimeout, "accept-timeout", 0,
		"Poll interval for accept; lets Ctrl-C style cancellation stop a server nobody dials")

	return cmd
}
