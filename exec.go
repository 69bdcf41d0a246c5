// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treeunit

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	running   = "* Running \"%s\"... "
	passed    = "OK"
	failed    = "FAILED:"
	separator = "-------------------------------------"
	summary   = "SUITE SUMMARY (%s)"
	tally     = "%d/%d tests passed."
	failures  = "There were %d failures."
)

// failIndent is the number of columns a leaf's failure description is
// indented relative to the leaf's report line.
const failIndent = 4

func indentation(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(" ", depth)
}

// writeln writes given line indented by given depth terminated by a
// new-line.
func writeln(w io.Writer, depth int, line string) {
	fmt.Fprintf(w, "%s%s\n", indentation(depth), line)
}

// Execute reports the leaf's name, runs its body and reports if it
// passed or how it failed.  Any panic raised by the body is recovered.
func (t *Test) Execute(w io.Writer, depth int) Result {
	fmt.Fprintf(w, indentation(depth)+running, t.name)
	msg, hasFailed := Capture(t.body)
	if !hasFailed {
		fmt.Fprintln(w, passed)
		return Result{Passed: 1}
	}
	fmt.Fprintln(w, failed)
	for _, line := range strings.Split(msg, "\n") {
		writeln(w, depth+failIndent, line)
	}
	return Result{Failed: 1, Message: msg}
}

// Capture runs given body and reports if it panicked along with the
// description of the panic.  A panic with a [*Failure] (or an error
// wrapping one) is described by its message; any other panic value is
// described by its type.  A body which panics with nil has failed as
// well.
func Capture(body func()) (description string, hasFailed bool) {
	completed := false
	defer func() {
		if completed {
			return
		}
		description, hasFailed = describe(recover()), true
	}()
	if body != nil {
		body()
	}
	completed = true
	return "", false
}

func describe(v interface{}) string {
	switch v := v.(type) {
	case *Failure:
		return v.Message
	case error:
		var f *Failure
		if errors.As(v, &f) {
			return f.Message
		}
	}
	return fmt.Sprintf("%T", v)
}

// Execute reports the suite's name, executes its children one after
// another indented by [Indent] and reports a summary of their results.
func (s *Suite) Execute(w io.Writer, depth int) Result {
	fmt.Fprintf(w, indentation(depth)+running+"\n", s.name)
	var r Result
	for _, c := range s.children {
		cr := c.Execute(w, depth+Indent)
		r.Passed += cr.Passed
		r.Failed += cr.Failed
	}
	s.report(w, depth+Indent, r)
	return r
}

func (s *Suite) report(w io.Writer, depth int, r Result) {
	fmt.Fprintln(w)
	writeln(w, depth, separator)
	writeln(w, depth, fmt.Sprintf(summary, s.name))
	writeln(w, depth, fmt.Sprintf(tally, r.Passed, r.Total()))
	if r.Failed != 0 {
		writeln(w, depth, fmt.Sprintf(failures, r.Failed))
	}
	writeln(w, depth, separator)
	fmt.Fprintln(w)
}
