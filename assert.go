// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treeunit

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Failure is the panic value of a failed assertion.  A leaf test which
// panics with a Failure is reported with the failure's message.
type Failure struct{ Message string }

func (f *Failure) Error() string { return f.Message }

// Fail fails the currently running leaf test with given message.
func Fail(message string) { panic(&Failure{Message: message}) }

// assertErr default message for a failed Assert.
const assertErr = "Assertion failed"

// Assert fails the running leaf test iff given value is false.  Given
// message parts are joined by a space and default to "Assertion
// failed".
func Assert(value bool, message ...string) {
	if value {
		return
	}
	msg := assertErr
	if len(message) > 0 {
		msg = strings.Join(message, " ")
	}
	Fail(msg)
}

// AssertNot fails the running leaf test iff given value is true.
func AssertNot(value bool) { Assert(!value) }

// equalErr is the format-string of a failed AssertEqual.
const equalErr = "Expected %v, got %v\n%s"

// exportAll makes cmp compare unexported struct fields as well.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// AssertEqual fails the running leaf test iff given values are not
// deeply equal, unexported struct fields included.  The failure message
// shows both values and their diff.
func AssertEqual(expected, actual interface{}) {
	if cmp.Equal(expected, actual, exportAll) {
		return
	}
	Fail(fmt.Sprintf(equalErr, expected, actual, strings.TrimRight(
		"(-expected +actual):\n"+cmp.Diff(expected, actual, exportAll),
		"\n")))
}

// DefaultPrecision is AssertEqualFP's tolerance if none is given.
const DefaultPrecision = 1e-9

// equalFPErr is the format-string of a failed AssertEqualFP.
const equalFPErr = "Expected %v, got %v (precision %v)"

// AssertEqualFP fails the running leaf test iff given values differ by
// more than given precision which defaults to [DefaultPrecision].  NaN
// is never approximately equal to anything.
func AssertEqualFP(expected, actual float64, precision ...float64) {
	p := DefaultPrecision
	if len(precision) > 0 {
		p = precision[0]
	}
	if actual == expected || math.Abs(actual-expected) <= p {
		return
	}
	Fail(fmt.Sprintf(equalFPErr, expected, actual, p))
}
