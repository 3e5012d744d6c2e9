package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tillview-dev/tillview/internal/glossary"
)

func newTermsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "terms",
		Short: "Explain the cash-book terminology",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, t := range glossary.Terms() {
				fmt.Fprintf(out, "%s\n  %s\n\n", t.Name, t.Description)
			}
			return nil
		},
	}
}
