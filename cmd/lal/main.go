package main

import (
	"os"

	"github.com/lal-lang/lal/cmd/lal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
