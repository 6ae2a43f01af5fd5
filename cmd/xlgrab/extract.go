package main

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LoongMichael/xlgrab/pkg/cell"
	"github.com/LoongMichael/xlgrab/pkg/header"
	"github.com/LoongMichael/xlgrab/pkg/workbook"
)

var extractHeader bool

var extractCmd = &cobra.Command{
	Use:   "extract <workbook> <sheet> <area> [area...]",
	Short: "Print regions of a sheet as CSV",
	Long: `Read rectangular areas of a sheet and print them as CSV. An area is an
"A1:C10" range; the end corner also accepts the sentinels "last" (down to
the last row), "lastcol" (across to the last column) and "lastlast" (to the
bottom-right corner), as in "A2:last". Several areas, given as separate
arguments or comma-separated in one, are concatenated top to bottom.`,
	Args: cobra.MinimumNArgs(3),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractHeader, "header", false, "Normalize the first row into unique column names")
}

func runExtract(cmd *cobra.Command, args []string) error {
	wb, err := workbook.Open(args[0])
	if err != nil {
		return err
	}
	defer wb.Close()

	g, err := wb.Grid(args[1])
	if err != nil {
		return err
	}

	var rows [][]string
	for _, arg := range args[2:] {
		for _, area := range strings.Split(arg, ",") {
			area = strings.TrimSpace(area)
			r, err := cell.ParseAreaIn(area, g.Rows(), g.Cols())
			if err != nil {
				return fmt.Errorf("parsing area: %w", err)
			}
			part := g.Region(r)
			if part == nil {
				return fmt.Errorf("area %s selects no cells", area)
			}
			rows = append(rows, part...)
		}
	}
	if extractHeader {
		rows[0] = header.Names(rows[0])
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}
