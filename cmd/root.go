package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jackielii/facultypage/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "facultypage",
	Short: "Serve the academic profile page of Prof. T. Madhusudana Reddy",
	Long: `facultypage renders a single-page academic profile. The serve command
runs it as a website whose navigation bar tracks scrolling and the mobile
menu per visitor; render writes the page as one self-contained HTML file.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
