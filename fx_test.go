// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treeunit_test

import (
	"bytes"
	"strings"

	"github.com/slukits/treeunit"
)

// fxLog records the names of executed leaf tests in execution order.
type fxLog struct{ names []string }

func (l *fxLog) String() string { return strings.Join(l.names, ",") }

// pass returns a passing leaf logging its execution to l.
func (l *fxLog) pass(name string) *treeunit.Test {
	return treeunit.NewTest(name, func() { l.names = append(l.names, name) })
}

// fail returns a leaf logging its execution to l and failing with given
// message.
func (l *fxLog) fail(name, message string) *treeunit.Test {
	return treeunit.NewTest(name, func() {
		l.names = append(l.names, name)
		treeunit.Fail(message)
	})
}

// fxExecute executes given node at given depth and returns its result
// together with its report.
func fxExecute(n treeunit.Node, depth int) (treeunit.Result, string) {
	buf := &bytes.Buffer{}
	r := n.Execute(buf, depth)
	return r, buf.String()
}

// fxTree returns a suite with three levels of nesting holding five
// leaves, two of them failing.
func fxTree(l *fxLog) *treeunit.Suite {
	return treeunit.NewSuite("root",
		l.pass("a"),
		treeunit.NewSuite("level 1",
			l.fail("b", "b failed"),
			treeunit.NewSuite("level 2",
				l.pass("c"),
				l.fail("d", "d failed"),
			),
			treeunit.NewSuite("empty"),
		),
		l.pass("e"),
	)
}
