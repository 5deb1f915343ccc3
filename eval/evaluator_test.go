/*
File    : mini-script/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/mini-script/parser"
)

func runProgram(t *testing.T, src string) (string, error) {
	t.Helper()
	p, err := parser.NewParser(src, "test.ms")
	assert.NoError(t, err)
	stmts := p.Parse()
	assert.False(t, p.HasErrors(), "unexpected parse errors: %v", p.GetErrors())

	var out bytes.Buffer
	ev := New(&out)
	err = ev.Run(stmts, "test.ms")
	return out.String(), err
}

func TestPrint_ArithmeticPrecedence(t *testing.T) {
	out, err := runProgram(t, `print 1 + 2 * 3;`)
	assert.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, err := runProgram(t, `print "foo" + "bar";`)
	assert.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestDivisionByZeroIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `print 1 / 0;`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestWhileLoop(t *testing.T) {
	out, err := runProgram(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestForLoopDesugaring(t *testing.T) {
	out, err := runProgram(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	assert.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestFunctionCallAndReturn(t *testing.T) {
	out, err := runProgram(t, `
		function add(a, b) {
			return a + b;
		}
		print add(2, 3);
	`)
	assert.NoError(t, err)
	assert.Equal(t, "5\n", out)
}

func TestRecursion(t *testing.T) {
	out, err := runProgram(t, `
		function fact(n) {
			if (n <= 1) {
				return 1;
			}
			return n * fact(n - 1);
		}
		print fact(5);
	`)
	assert.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

// TestClosureCapturesSharedMutableBinding verifies spec §3.6's requirement:
// a closure sees the SAME mutable binding across calls, not a snapshot at
// creation time.
func TestClosureCapturesSharedMutableBinding(t *testing.T) {
	out, err := runProgram(t, `
		function makeCounter() {
			var count = 0;
			function increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	assert.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestListIndexGetAndSet(t *testing.T) {
	out, err := runProgram(t, `
		var xs = [1, 2, 3];
		xs[1] = 99;
		print xs[1];
		print xs;
	`)
	assert.NoError(t, err)
	assert.Equal(t, "99\n[1, 99, 3]\n", out)
}

func TestListIndexOutOfRangeIsRuntimeError(t *testing.T) {
	_, err := runProgram(t, `
		var xs = [1, 2];
		print xs[5];
	`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestAssertFailureMessage(t *testing.T) {
	_, err := runProgram(t, `assert 1 > 2, "one is not greater than two";`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "one is not greater than two")
}

func TestShortCircuitOr(t *testing.T) {
	out, err := runProgram(t, `
		function boom() {
			assert false, "should not be called";
			return true;
		}
		print true || boom();
	`)
	assert.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestImplicitGlobalOnBareAssignment(t *testing.T) {
	out, err := runProgram(t, `
		function setGlobal() {
			total = 42;
		}
		setGlobal();
		print total;
	`)
	assert.NoError(t, err)
	assert.Equal(t, "42\n", out)
}

func TestBuiltinLen(t *testing.T) {
	out, err := runProgram(t, `print len([1, 2, 3]);`)
	assert.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

// TestForLoopVariableNotVisibleAfterLoop verifies spec §8's "for-loop
// scoping" property: the `var` bound in a for-loop's init clause lives in
// the desugared wrapping block and disappears with it once the loop
// statement finishes.
func TestForLoopVariableNotVisibleAfterLoop(t *testing.T) {
	_, err := runProgram(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
		print i;
	`)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable 'i'")
}

// TestImportErrorNamesModuleFileNotCaller verifies spec §8's "module
// isolation of filename" property: a runtime error raised while executing
// an imported module's top-level code attributes to the module's own
// file, not the file that imported it.
func TestImportErrorNamesModuleFileNotCaller(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "broken.ms")
	assert.NoError(t, os.WriteFile(modPath, []byte(`print undefinedInModule;`), 0644))

	mainPath := filepath.Join(dir, "main.ms")
	src := `import "broken";`
	assert.NoError(t, os.WriteFile(mainPath, []byte(src), 0644))

	p, err := parser.NewParser(src, mainPath)
	assert.NoError(t, err)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())

	var out bytes.Buffer
	ev := New(&out)
	err = ev.Run(stmts, mainPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), modPath)
	assert.NotContains(t, err.Error(), mainPath)
}

func TestImportExecutesAgainstGlobals(t *testing.T) {
	dir := t.TempDir()
	modPath := filepath.Join(dir, "util.ms")
	assert.NoError(t, os.WriteFile(modPath, []byte(`function double(x) { return x * 2; }`), 0644))

	mainPath := filepath.Join(dir, "main.ms")
	src := `
		import "util";
		print double(21);
	`
	assert.NoError(t, os.WriteFile(mainPath, []byte(src), 0644))

	p, err := parser.NewParser(src, mainPath)
	assert.NoError(t, err)
	stmts := p.Parse()
	assert.False(t, p.HasErrors())

	var out bytes.Buffer
	ev := New(&out)
	err = ev.Run(stmts, mainPath)
	assert.NoError(t, err)
	assert.Equal(t, "42\n", out.String())
}
