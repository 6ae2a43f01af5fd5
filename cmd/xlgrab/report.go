package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LoongMichael/xlgrab/pkg/locate"
)

// styles holds color formatters for the human result listing
type styles struct {
	name    *color.Color
	value   *color.Color
	miss    *color.Color
	heading *color.Color
}

// newStyles creates color formatters for locate output
// enabled=false respects --no-color flag and NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		name:    color.New(color.Bold, color.FgHiBlue),
		value:   color.New(color.FgHiGreen),
		miss:    color.New(color.FgYellow),
		heading: color.New(color.Bold),
	}

	if !enabled {
		// Disable colors on all formatters
		s.name.DisableColor()
		s.value.DisableColor()
		s.miss.DisableColor()
		s.heading.DisableColor()
	}

	return s
}

func colorEnabled() bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func outputResultsJSON(cmd *cobra.Command, results map[string]*locate.Result) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func outputResultsHuman(cmd *cobra.Command, results map[string]*locate.Result) error {
	out := cmd.OutOrStdout()
	s := newStyles(colorEnabled())

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	hits := 0
	for _, name := range names {
		r := results[name]
		if r == nil {
			fmt.Fprintf(out, "%s: %s\n", s.name.Sprint(name), s.miss.Sprint("(miss)"))
			continue
		}
		hits++
		switch {
		case r.Rows != nil:
			fmt.Fprintf(out, "%s: %s\n", s.name.Sprint(name), s.value.Sprintf("rows %d-%d", r.Rows.Start, r.Rows.End))
		case r.Cols != nil:
			fmt.Fprintf(out, "%s: %s\n", s.name.Sprint(name), s.value.Sprintf("cols %d-%d", r.Cols.Start, r.Cols.End))
		case r.Region != nil:
			fmt.Fprintf(out, "%s: %s\n", s.name.Sprint(name), s.value.Sprint(r.Region.String()))
		case r.Regions != nil:
			fmt.Fprintf(out, "%s: %s\n", s.name.Sprint(name), s.value.Sprintf("%d regions", len(r.Regions)))
			items := make([]string, 0, len(r.Regions))
			for item := range r.Regions {
				items = append(items, item)
			}
			sort.Strings(items)
			for _, item := range items {
				reg := r.Regions[item]
				fmt.Fprintf(out, "    %s: %s\n", s.name.Sprint(item), s.value.Sprint(reg.String()))
			}
		}
	}

	fmt.Fprintf(out, "\n%s\n", s.heading.Sprintf("Resolved %d/%d operations", hits, len(results)))
	return nil
}
