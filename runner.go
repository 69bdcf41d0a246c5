// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treeunit

import (
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
)

// Flag gates whether a [Runner] executes anything.  The zero value is
// enabled.
type Flag struct{ disabled atomic.Bool }

// Enable lets subsequent runs execute their tree.
func (f *Flag) Enable() { f.disabled.Store(false) }

// Disable makes subsequent runs skip their tree.
func (f *Flag) Disable() { f.disabled.Store(true) }

// Enabled reports if runs currently execute their tree.
func (f *Flag) Enabled() bool { return !f.disabled.Load() }

// defaultFlag is used by the package functions and by runners without
// a flag of their own.
var defaultFlag Flag

// Enable enables the process wide run flag.
func Enable() { defaultFlag.Enable() }

// Disable disables the process wide run flag.
func Disable() { defaultFlag.Disable() }

// Status tells if a run executed its tree.
type Status int

const (
	// Completed reports that a tree was executed.
	Completed Status = iota
	// Skipped reports that a disabled flag prevented execution.
	Skipped
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Runner executes test trees.  Its zero value uses the process wide
// run flag, reports to stdout and doesn't log.
type Runner struct {

	// Flag gates the runner's runs; nil means the process wide flag.
	Flag *Flag

	// Out receives the report; nil means os.Stdout.
	Out io.Writer

	// Logger receives a log entry per run; nil means no logging.
	Logger *zap.Logger
}

// Run executes given root node at depth zero and returns Completed
// along with the root's aggregated result.  If the runner's flag is
// disabled nothing is executed or written and Skipped is returned.
func (r *Runner) Run(root Node) (Status, Result) {
	flag, log := r.flag(), r.logger()
	if !flag.Enabled() {
		log.Debug("run skipped", zap.String("root", root.Name()))
		return Skipped, Result{}
	}
	res := root.Execute(r.out(), 0)
	log.Info("run completed",
		zap.String("root", root.Name()),
		zap.Int("passed", res.Passed),
		zap.Int("failed", res.Failed))
	return Completed, res
}

func (r *Runner) flag() *Flag {
	if r.Flag == nil {
		return &defaultFlag
	}
	return r.Flag
}

func (r *Runner) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Run executes given root node reporting to stdout unless the process
// wide run flag is disabled.
func Run(root Node) Status {
	status, _ := (&Runner{}).Run(root)
	return status
}
