package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tillview-dev/tillview/internal/buildinfo"
	"github.com/tillview-dev/tillview/internal/config"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "tillview",
		Short:   "Cash-book reconciliation reports for POS exports",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newFiltersCommand())
	rootCmd.AddCommand(newTermsCommand())
	rootCmd.AddCommand(newRunsCommand())

	return rootCmd
}

// loadConfig reads tillview.yaml from the working directory, falling back
// to defaults when the file is absent.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.FileName)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, err
}
