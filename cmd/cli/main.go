package main

import (
	"os"

	"genmaint-cost/cmd/cli/cmd"
	"genmaint-cost/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
