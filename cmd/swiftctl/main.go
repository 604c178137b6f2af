package main

import (
	"os"

	"github.com/swiftstream/site/cmd/swiftctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
