package main

import (
	"errors"
	"fmt"

	tu "github.com/slukits/treeunit"
)

// fails asserts that given body fails with given description.
func fails(description string, body func()) {
	got, failed := tu.Capture(body)
	tu.Assert(failed, "expected failure:", description)
	tu.AssertEqual(description, got)
}

// passes asserts that given body doesn't fail.
func passes(body func()) {
	got, failed := tu.Capture(body)
	tu.Assert(!failed, "unexpected failure:", got)
}

type point struct{ x, y int }

func selfCheck() tu.Node {
	return tu.NewSuite("treeunit",
		tu.NewSuite("assert",
			tu.NewTest("passes on true", func() {
				passes(func() { tu.Assert(true) })
			}),
			tu.NewTest("fails on false with default message", func() {
				fails("Assertion failed", func() { tu.Assert(false) })
			}),
			tu.NewTest("fails on false with given message", func() {
				fails("not ready", func() { tu.Assert(false, "not ready") })
			}),
			tu.NewTest("negation fails on true", func() {
				fails("Assertion failed", func() { tu.AssertNot(true) })
				passes(func() { tu.AssertNot(false) })
			}),
		),
		tu.NewSuite("assert equal",
			tu.NewTest("passes on deeply equal values", func() {
				passes(func() {
					tu.AssertEqual([]point{{1, 2}}, []point{{1, 2}})
				})
			}),
			tu.NewTest("fails on different values", func() {
				_, failed := tu.Capture(func() {
					tu.AssertEqual(point{1, 2}, point{2, 1})
				})
				tu.Assert(failed)
			}),
			tu.NewTest("passes within default precision", func() {
				passes(func() { tu.AssertEqualFP(1.0, 1.0+1e-12) })
			}),
			tu.NewTest("fails outside default precision", func() {
				_, failed := tu.Capture(func() { tu.AssertEqualFP(1.0, 1.01) })
				tu.Assert(failed)
			}),
		),
		tu.NewSuite("interception",
			tu.NewTest("reports a failure's message", func() {
				fails("boom", func() { tu.Fail("boom") })
			}),
			tu.NewTest("reports a wrapped failure's message", func() {
				fails("boom", func() {
					panic(fmt.Errorf("wrapped: %w", &tu.Failure{Message: "boom"}))
				})
			}),
			tu.NewTest("reports other panics by type", func() {
				fails("*errors.errorString", func() {
					panic(errors.New("boom"))
				})
				fails("string", func() { panic("boom") })
			}),
			tu.NewTest("reports a runtime error by type", func() {
				_, failed := tu.Capture(func() {
					var m map[string]int
					m["boom"]++
				})
				tu.Assert(failed)
			}),
		),
	)
}
