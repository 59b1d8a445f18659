package main

import (
	"os"

	"cloak/cmd/cloak/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
