package main

import (
	"os"

	"github.com/riskstream-systems/riskstream-stack/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
