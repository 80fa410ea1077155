package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the routes served by the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, logger, err := newSite(overrides{oneShot: true})
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		defer s.Close()

		routes, err := s.Routes()
		if err != nil {
			return err
		}
		for _, r := range routes {
			fmt.Fprintln(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
