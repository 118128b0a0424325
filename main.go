package main

import (
	"os"

	"github.com/jsprint/jsprint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
