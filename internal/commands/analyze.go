package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tillview-dev/tillview/internal/cashbook"
	"github.com/tillview-dev/tillview/internal/model"
	"github.com/tillview-dev/tillview/internal/report"
	"github.com/tillview-dev/tillview/internal/runlog"
)

const flagDateFormat = "02.01.2006"

func newAnalyzeCommand() *cobra.Command {
	var from string
	var to string
	var filterNames []string
	var details bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Summarize a cash-book export day by day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], from, to, filterNames, details)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "start date (DD.MM.YYYY); defaults to the configured range before --to")
	cmd.Flags().StringVar(&to, "to", "", "end date (DD.MM.YYYY); defaults to today")
	cmd.Flags().StringArrayVar(&filterNames, "filter", nil, "day filter, repeatable (see 'tillview filters')")
	cmd.Flags().BoolVar(&details, "details", false, "print each day's movements")

	return cmd
}

func runAnalyze(cmd *cobra.Command, file, from, to string, filterNames []string, details bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(filterNames) == 0 {
		filterNames = cfg.Report.Filters
	}
	filters, err := report.ParseFilterSet(filterNames)
	if err != nil {
		return err
	}

	end := time.Now().UTC()
	if to != "" {
		end, err = time.Parse(flagDateFormat, to)
		if err != nil {
			return fmt.Errorf("parsing --to: %w", err)
		}
	}

	start := end.AddDate(0, 0, -(cfg.Report.DefaultDays - 1))
	if from != "" {
		start, err = time.Parse(flagDateFormat, from)
		if err != nil {
			return fmt.Errorf("parsing --from: %w", err)
		}
	}
	if start.After(end) {
		return fmt.Errorf("start date %s is after end date %s", start.Format(flagDateFormat), end.Format(flagDateFormat))
	}

	res, err := cashbook.ParseFile(file)
	if err != nil {
		return err
	}

	for _, s := range res.Skipped {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: line %d skipped: %s\n", s.Line, s.Reason)
	}

	summaries := report.Analyze(res.Movements, start, end, filters)
	printSummaries(cmd, summaries, details)

	if cfg.Log.Enabled {
		entry := runlog.NewEntry(file)
		entry.RowsTotal = res.Rows
		entry.RowsParsed = len(res.Movements)
		// Only rows dropped with a diagnostic count as skipped; short rows
		// fold into the total without a warning, and the log agrees.
		entry.RowsSkipped = len(res.Skipped)
		entry.DaysReported = len(summaries)
		if err := runlog.Append(cfg.Log.Dir, []runlog.Entry{entry}); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: recording run: %v\n", err)
		}
	}

	return nil
}

func printSummaries(cmd *cobra.Command, summaries []model.DailySummary, details bool) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-10s  %12s  %12s  %12s  %12s  %10s  %s\n",
		"Datum", "Anfang", "Einnahmen", "Ausgaben", "Schluss", "Differenz", "Ereignisse")

	for _, s := range summaries {
		fmt.Fprintf(out, "%-10s  %12s  %12s  %12s  %12s  %10s  %s\n",
			s.Date.Format(flagDateFormat),
			s.OpeningBalance.StringFixed(2),
			s.TotalIncome.StringFixed(2),
			s.TotalExpense.StringFixed(2),
			s.ClosingBalance.StringFixed(2),
			s.Discrepancies.StringFixed(2),
			eventNames(s))

		if details {
			for _, m := range s.Transactions {
				fmt.Fprintf(out, "    %s  %-22s  +%s  %s  Saldo %s\n",
					m.Timestamp.Format("15:04"),
					m.RawName,
					m.Income.StringFixed(2),
					m.Expense.StringFixed(2),
					m.Balance.StringFixed(2))
			}
		}
	}
}

// eventNames joins the day's recognized event names, deduplicated in
// chronological order.
func eventNames(s model.DailySummary) string {
	seen := make(map[model.EventCategory]bool)
	var names []string
	for _, e := range s.Events {
		if seen[e.Category] {
			continue
		}
		seen[e.Category] = true
		names = append(names, e.Name)
	}
	return strings.Join(names, ", ")
}
