package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LoongMichael/xlgrab/pkg/locate"
	"github.com/LoongMichael/xlgrab/pkg/workbook"
)

var (
	locateOpsPath string
	locateSheet   string
	locateJSON    bool
)

var locateCmd = &cobra.Command{
	Use:   "locate <workbook>",
	Short: "Run a batch of addressing operations against a workbook",
	Long: `Load operations from a YAML file and resolve each one against a single
sheet of the workbook. Operations miss independently: a failed operation
shows as a miss while the rest of the batch resolves.`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	locateCmd.Flags().StringVar(&locateOpsPath, "ops", "", "Path to operations YAML file (required)")
	locateCmd.Flags().StringVar(&locateSheet, "sheet", "", "Sheet name (overrides the document's sheet, default first sheet)")
	locateCmd.Flags().BoolVar(&locateJSON, "json", false, "Output results as JSON")
	locateCmd.MarkFlagRequired("ops")
}

// stderrLogger surfaces dispatcher diagnostics on verbose runs. Misses are
// silent in the result table, so this is where they explain themselves.
type stderrLogger struct{}

func (stderrLogger) Log(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func runLocate(cmd *cobra.Command, args []string) error {
	target := args[0]

	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("workbook does not exist: %s", target)
	}

	doc, err := locate.LoadDocumentFile(locateOpsPath)
	if err != nil {
		return fmt.Errorf("loading operations: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return fmt.Errorf("validating operations: %w", err)
	}

	sheet := locateSheet
	if sheet == "" {
		sheet = doc.Sheet
	}

	var logger locate.DebugLogger
	if verbose {
		logger = stderrLogger{}
	}

	results := locate.NewDispatcher(workbook.Loader{}, logger).Run(target, sheet, doc.Operations)

	if locateJSON {
		return outputResultsJSON(cmd, results)
	}
	return outputResultsHuman(cmd, results)
}
