// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treeunit

import (
	"io"

	"golang.org/x/exp/slices"
)

// Indent is the number of columns a suite's children are indented
// relative to the suite's own report line.
const Indent = 4

// Node is either a leaf test created by [NewTest] or a suite created
// by [NewSuite].  Execute writes a node's report lines indented by
// given depth to given writer and returns the node's aggregated
// result.
type Node interface {
	Name() string
	Execute(w io.Writer, depth int) Result
	node()
}

// Result is the outcome of executing a node.  A leaf test's result has
// either Passed or Failed set to 1 while Message holds the failure
// description of a failed leaf.  A suite's result is the sum of its
// children's results and its Message is always empty.
type Result struct {
	Passed, Failed int
	Message        string
}

// Total returns the number of executed leaf tests.
func (r Result) Total() int { return r.Passed + r.Failed }

// Test is a leaf of a test tree.
type Test struct {
	name string
	body func()
}

// NewTest returns a leaf test with given name executing given body
// which signals a failure by panicking.
func NewTest(name string, body func()) *Test {
	return &Test{name: name, body: body}
}

// Name returns the leaf's name.
func (t *Test) Name() string { return t.name }

func (t *Test) node() {}

// Suite is a named and ordered collection of leaf tests and nested
// suites.
type Suite struct {
	name     string
	children []Node
}

// NewSuite returns a suite with given name executing given children in
// given order.  The suite holds its own copy of the children.
func NewSuite(name string, children ...Node) *Suite {
	return &Suite{name: name, children: slices.Clone(children)}
}

// Name returns the suite's name.
func (s *Suite) Name() string { return s.name }

// Children returns a copy of the suite's children.
func (s *Suite) Children() []Node { return slices.Clone(s.children) }

func (s *Suite) node() {}

// Leaves returns the number of leaf tests in the tree rooted at given
// node.
func Leaves(n Node) int {
	switch n := n.(type) {
	case *Test:
		return 1
	case *Suite:
		count := 0
		for _, c := range n.children {
			count += Leaves(c)
		}
		return count
	}
	return 0
}
