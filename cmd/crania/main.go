package main

import (
	"os"

	"github.com/crania-dev/crania/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
