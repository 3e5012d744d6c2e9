package main

import (
	"os"

	"github.com/tillview-dev/tillview/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
