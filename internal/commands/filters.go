package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tillview-dev/tillview/internal/report"
)

func newFiltersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List the available day filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, f := range report.Filters() {
				fmt.Fprintf(out, "%-32s %s\n", f, f.Describe())
			}
			return nil
		},
	}
}
