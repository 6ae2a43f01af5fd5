package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "xlgrab",
	Short: "xlgrab - spreadsheet region resolver",
	Long: `xlgrab resolves human-friendly addressing against xlsx sheets: cell areas,
keyword searches and offsets, alone or as YAML-described batches. It also
carries small workbook utilities for listing sheets, extracting regions and
flattening merged cells.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Add subcommands
	rootCmd.AddCommand(locateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(sheetsCmd)
	rootCmd.AddCommand(unmergeCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
