package main

import (
	"os"

	"github.com/grovetools/p4mux/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
