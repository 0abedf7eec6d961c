package main

import (
	"os"

	"github.com/skarbnik-dev/skarbnik/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
