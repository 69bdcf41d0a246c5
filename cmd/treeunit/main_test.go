package main

import (
	"bytes"
	"strings"
	"testing"

	tu "github.com/slukits/treeunit"
)

func Test_the_self_check_passes(t *testing.T) {
	buf := &bytes.Buffer{}
	root := selfCheck()
	status, res := (&tu.Runner{Flag: &tu.Flag{}, Out: buf}).Run(root)
	if status != tu.Completed {
		t.Fatalf("expected completed run; got %s", status)
	}
	if res.Failed != 0 || res.Passed != tu.Leaves(root) {
		t.Errorf("expected %d passing tests; got %+v:\n%s",
			tu.Leaves(root), res, buf.String())
	}
	if !strings.HasPrefix(buf.String(), `* Running "treeunit"... `) {
		t.Errorf("expected report of the treeunit suite; got:\n%s", buf)
	}
}
