package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tillview-dev/tillview/internal/runlog"
)

func newRunsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recorded analyze runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			entries, err := runlog.Read(cfg.Log.Dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No runs recorded.")
				return nil
			}

			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s  rows %d/%d parsed, %d skipped, %d days\n",
					e.Timestamp.Format(time.RFC3339), e.File,
					e.RowsParsed, e.RowsTotal, e.RowsSkipped, e.DaysReported)
			}
			return nil
		},
	}
}
