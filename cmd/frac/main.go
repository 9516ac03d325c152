package main

import (
	"os"

	"github.com/lacquerai/frac/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
