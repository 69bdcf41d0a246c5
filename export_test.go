// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package treeunit

// Separator frames a suite's summary.
const Separator = separator

// FailIndent is the indentation of a failure description relative to
// its leaf's report line.
const FailIndent = failIndent

// AssertErr default message of a failed Assert.
const AssertErr = assertErr

// Indentation returns the indentation string of given depth.
var Indentation = indentation
