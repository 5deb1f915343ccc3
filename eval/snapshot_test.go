/*
File    : mini-script/eval/snapshot_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Snapshot tests for the end-to-end scenarios a Mini Script program produces
on stdout, grounded on the teacher pack's CWBudde-go-dws fixture_test.go
(run source -> capture stdout -> snaps.MatchSnapshot), pared down from its
multi-hundred-fixture directory harness to the handful of whole-program
scenarios this language actually has.
*/
package eval

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/akashmaji946/mini-script/parser"
)

func runSnapshot(t *testing.T, name string, src string) {
	t.Helper()
	p, err := parser.NewParser(src, name+".ms")
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	stmts := p.Parse()
	if p.HasErrors() {
		t.Fatalf("parse errors: %v", p.GetErrors())
	}

	var out bytes.Buffer
	ev := New(&out)
	if err := ev.Run(stmts, name+".ms"); err != nil {
		snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", name), out.String()+"ERROR: "+err.Error())
		return
	}
	snaps.MatchSnapshot(t, fmt.Sprintf("%s_output", name), out.String())
}

func TestSnapshot_ArithmeticAndPrint(t *testing.T) {
	runSnapshot(t, "arithmetic", `x = 10; y = 20; print x + y;`)
}

func TestSnapshot_ControlFlow(t *testing.T) {
	runSnapshot(t, "control_flow", `i = 1; while (i <= 3) { print i; i = i + 1; }`)
}

func TestSnapshot_FunctionAndRecursion(t *testing.T) {
	runSnapshot(t, "recursion", `
		function f(n) { if (n <= 1) { return 1; } return n * f(n - 1); }
		print f(5);
	`)
}

func TestSnapshot_Closure(t *testing.T) {
	runSnapshot(t, "closure", `
		function make() {
			var c = 0;
			function inc() { c = c + 1; return c; }
			return inc;
		}
		var g = make();
		print g();
		print g();
	`)
}

func TestSnapshot_ListIndexing(t *testing.T) {
	runSnapshot(t, "list_indexing", `
		xs = [10, 20, 30];
		print xs[1];
		xs[1] = 99;
		print xs[1];
		print len(xs);
	`)
}

func TestSnapshot_UndefinedVariableError(t *testing.T) {
	runSnapshot(t, "undefined_variable", `print undef;`)
}
