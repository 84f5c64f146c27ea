package main

import (
	"os"
	"path/filepath"

	"gosets/cmd/setexpr/commands"
)

func main() {
	home := os.ExpandEnv(filepath.Join("$HOME", ".setexpr"))
	if err := commands.RootCommand(home).Execute(); err != nil {
		os.Exit(1)
	}
}
