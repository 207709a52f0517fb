package main

import (
	"os"

	"github.com/quantyard/lgd/cmd/lgd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
