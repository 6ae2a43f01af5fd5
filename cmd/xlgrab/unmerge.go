package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LoongMichael/xlgrab/pkg/workbook"
)

var (
	unmergeSheet  string
	unmergeOutput string
)

var unmergeCmd = &cobra.Command{
	Use:   "unmerge <workbook>",
	Short: "Dissolve merged cells, filling every covered cell",
	Long: `Unmerge every merged range on a sheet and write the range's value into
each cell it covered, so the sheet reads as a plain rectangular table.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnmerge,
}

func init() {
	unmergeCmd.Flags().StringVar(&unmergeSheet, "sheet", "", "Sheet name (defaults to the first sheet)")
	unmergeCmd.Flags().StringVarP(&unmergeOutput, "output", "o", "", "Write to this path instead of overwriting the workbook")
}

func runUnmerge(cmd *cobra.Command, args []string) error {
	wb, err := workbook.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	count, err := wb.UnmergeFill(unmergeSheet)
	if err != nil {
		return fmt.Errorf("unmerging: %w", err)
	}

	out := unmergeOutput
	if out == "" {
		out = args[0]
		err = wb.Save()
	} else {
		err = wb.SaveAs(out)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Unmerged %d ranges, saved to %s\n", count, out)
	return nil
}
