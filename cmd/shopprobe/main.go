package main

import (
	"os"

	"github.com/aherreros/shopprobe/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
