package cmd

import (
	"github.com/grovetools/p4mux/cli"
)

// Execute runs the root command. Errors reaching here are fatal; they are
// printed to stderr and the caller exits non-zero.
func Execute() error {
	rootCmd := NewRootCmd()
	executed, err := rootCmd.ExecuteC()
	if err != nil {
		cli.PrintError(executed, err)
	}
	return err
}
