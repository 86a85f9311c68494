package cli

import (
	"github.com/grovetools/p4mux/logging"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the component logger for a command run. --verbose forces
// debug level and --json switches to structured output.
func NewLogger(component string, cfg logging.Config, opts CommandOptions) *logrus.Entry {
	if opts.Verbose {
		cfg.Level = "debug"
	}
	if opts.JSONOutput {
		cfg.Format.Preset = "json"
	}
	return logging.NewLogger(component, cfg)
}
