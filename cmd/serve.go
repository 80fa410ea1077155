package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var serveFlags overrides

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the profile page as a website",
	Long: `Starts the HTTP server. Interrupt or terminate the process to shut it
down; in-flight requests get the configured shutdown timeout to finish.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, logger, err := newSite(serveFlags)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		defer s.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return s.ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", "", "listen address (overrides server.addr)")
	serveCmd.Flags().StringVar(&serveFlags.theme, "theme", "", "color theme (overrides site.theme)")
	rootCmd.AddCommand(serveCmd)
}
