package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LoongMichael/xlgrab/pkg/workbook"
)

var sheetsCmd = &cobra.Command{
	Use:   "sheets <workbook>",
	Short: "List sheet names",
	Long:  "Display the sheet names of a workbook in workbook order",
	Args:  cobra.ExactArgs(1),
	RunE:  runSheets,
}

func runSheets(cmd *cobra.Command, args []string) error {
	wb, err := workbook.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	for _, name := range wb.Sheets() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
