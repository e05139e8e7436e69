package main

import (
	"os"

	"github.com/plview-dev/plview/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
