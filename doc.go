// Package treeunit is a small hierarchical unit-testing harness.  A
// leaf [Test] is a named function which may fail by panicking, a
// [Suite] is a named and ordered list of leaf tests and nested suites:
//
//	import "github.com/slukits/treeunit"
//
//	root := treeunit.NewSuite("arithmetic",
//	    treeunit.NewTest("adds", func() {
//	        treeunit.AssertEqual(4, 2+2)
//	    }),
//	    treeunit.NewSuite("floats",
//	        treeunit.NewTest("divides", func() {
//	            treeunit.AssertEqualFP(0.1, 1.0/10)
//	        }),
//	    ),
//	)
//
//	treeunit.Run(root)
//
// Run executes the tree sequentially and prints an indented report:
//
//	* Running "arithmetic"...
//	    * Running "adds"... OK
//	    * Running "floats"...
//	        * Running "divides"... OK
//
//	        -------------------------------------
//	        SUITE SUMMARY (floats)
//	        1/1 tests passed.
//	        -------------------------------------
//
//
//	    -------------------------------------
//	    SUITE SUMMARY (arithmetic)
//	    2/2 tests passed.
//	    -------------------------------------
//
// Every panic raised while a leaf's body runs is recovered at that
// leaf, i.e. a failing test never keeps its siblings from running.  A
// panic carrying a [*Failure], which is what the Assert* functions
// raise, is reported by its message; any other panic value is reported
// by its type.
//
// The package functions [Run], [Enable] and [Disable] work on a
// process wide run flag.  A [Runner] with its own [Flag], writer and
// logger can be built directly or from a YAML [Config].
package treeunit
