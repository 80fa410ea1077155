package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	renderFlags overrides
	renderOut   string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the page as a self-contained HTML file",
	Long: `Renders the page without a server. Navigation falls back to in-page
anchors and the stylesheet is inlined.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, logger, err := newSite(overrides{theme: renderFlags.theme, oneShot: true})
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		defer s.Close()

		if renderOut == "" || renderOut == "-" {
			return s.RenderStatic(cmd.Context(), cmd.OutOrStdout())
		}
		f, err := os.Create(renderOut)
		if err != nil {
			return fmt.Errorf("creating %s: %w", renderOut, err)
		}
		defer f.Close()
		if err := s.RenderStatic(cmd.Context(), f); err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("writing %s: %w", renderOut, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", renderOut)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&renderFlags.theme, "theme", "", "color theme (overrides site.theme)")
	rootCmd.AddCommand(renderCmd)
}
