package main

import (
	"os"

	"github.com/tkalab/tka/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
