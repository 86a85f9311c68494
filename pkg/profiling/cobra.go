package profiling

import (
	"os"

	"github.com/spf13/cobra"
)

// CobraProfiler wires the --timing flag into a cobra command.
type CobraProfiler struct {
	enabled bool
	timer   *Timer
}

// NewCobraProfiler creates a new profiler for Cobra integration.
func NewCobraProfiler() *CobraProfiler {
	return &CobraProfiler{}
}

// AddFlags adds the timing flag to the given Cobra command.
func (p *CobraProfiler) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&p.enabled, "timing", false, "Print a timing summary of p4 queries to stderr")
}

// Timer returns the active timer, or nil when --timing was not given.
func (p *CobraProfiler) Timer() *Timer {
	if p.enabled && p.timer == nil {
		p.timer = New()
	}
	return p.timer
}

// PostRun is intended to be used as a Cobra PersistentPostRun hook.
func (p *CobraProfiler) PostRun(cmd *cobra.Command, args []string) {
	if p.timer != nil {
		p.timer.Summarize(os.Stderr)
	}
}
