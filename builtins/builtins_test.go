/*
File    : mini-script/builtins/builtins_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/mini-script/values"
)

func TestLen_String(t *testing.T) {
	v, err := Call("len", []values.Value{values.String{Value: "hello"}}, 1)
	assert.NoError(t, err)
	assert.Equal(t, values.Number{Value: 5}, v)
}

func TestLen_List(t *testing.T) {
	list := &values.List{Elements: []values.Value{values.Number{Value: 1}, values.Number{Value: 2}}}
	v, err := Call("len", []values.Value{list}, 1)
	assert.NoError(t, err)
	assert.Equal(t, values.Number{Value: 2}, v)
}

func TestLen_WrongTypeErrors(t *testing.T) {
	_, err := Call("len", []values.Value{values.Number{Value: 1}}, 1)
	assert.Error(t, err)
}

func TestTimeWeekdayMatchesGoConvention(t *testing.T) {
	// 2024-01-07 00:00:00 UTC is a Sunday.
	v, err := Call("time_parse", []values.Value{
		values.String{Value: "2024-01-07 00:00:00"},
		values.String{Value: "%Y-%m-%d %H:%M:%S"},
	}, 1)
	assert.NoError(t, err)
	weekday, err := Call("time_weekday", []values.Value{v}, 1)
	assert.NoError(t, err)
	assert.Equal(t, values.Number{Value: 0}, weekday)
}

func TestTimeFormatRoundTrip(t *testing.T) {
	ts, err := Call("time_parse", []values.Value{
		values.String{Value: "2024-03-15"},
		values.String{Value: "%Y-%m-%d"},
	}, 1)
	assert.NoError(t, err)
	formatted, err := Call("time_format", []values.Value{ts, values.String{Value: "%Y-%m-%d"}}, 1)
	assert.NoError(t, err)
	assert.Equal(t, values.String{Value: "2024-03-15"}, formatted)
}

func TestTimeParseReturnsNilOnFailure(t *testing.T) {
	v, err := Call("time_parse", []values.Value{
		values.String{Value: "not-a-date"},
		values.String{Value: "%Y-%m-%d"},
	}, 1)
	assert.NoError(t, err)
	assert.Equal(t, values.NilValue, v)
}

func TestFileWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch.txt")
	defer os.Remove(path)

	f, err := Call("fopen", []values.Value{values.String{Value: path}, values.String{Value: "w"}}, 1)
	assert.NoError(t, err)
	_, err = Call("fwriteline", []values.Value{f, values.String{Value: "hello"}}, 1)
	assert.NoError(t, err)
	_, err = Call("fclose", []values.Value{f}, 1)
	assert.NoError(t, err)

	f2, err := Call("fopen", []values.Value{values.String{Value: path}, values.String{Value: "r"}}, 1)
	assert.NoError(t, err)
	line, err := Call("freadline", []values.Value{f2}, 1)
	assert.NoError(t, err)
	assert.Equal(t, values.String{Value: "hello"}, line)

	eof, err := Call("freadline", []values.Value{f2}, 1)
	assert.NoError(t, err)
	assert.Equal(t, values.NilValue, eof)
}

func TestFexistsAndFsize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch2.txt")
	defer os.Remove(path)

	missing, _ := Call("fexists", []values.Value{values.String{Value: path}}, 1)
	assert.Equal(t, values.Boolean{Value: false}, missing)

	f, _ := Call("fopen", []values.Value{values.String{Value: path}, values.String{Value: "w"}}, 1)
	Call("fwrite", []values.Value{f, values.String{Value: "1234"}}, 1)
	Call("fclose", []values.Value{f}, 1)

	present, _ := Call("fexists", []values.Value{values.String{Value: path}}, 1)
	assert.Equal(t, values.Boolean{Value: true}, present)

	size, _ := Call("fsize", []values.Value{values.String{Value: path}}, 1)
	assert.Equal(t, values.Number{Value: 4}, size)
}

func TestUseAfterCloseIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scratch3.txt")
	defer os.Remove(path)

	f, _ := Call("fopen", []values.Value{values.String{Value: path}, values.String{Value: "w"}}, 1)
	Call("fclose", []values.Value{f}, 1)
	_, err := Call("fwrite", []values.Value{f, values.String{Value: "x"}}, 1)
	assert.Error(t, err)
}

func TestFopenMissingFileForReadReturnsNil(t *testing.T) {
	v, err := Call("fopen", []values.Value{values.String{Value: "/nonexistent/path.txt"}, values.String{Value: "r"}}, 1)
	assert.NoError(t, err)
	assert.Equal(t, values.NilValue, v)
}

func TestFreadWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whole.txt")
	defer os.Remove(path)

	f, _ := Call("fopen", []values.Value{values.String{Value: path}, values.String{Value: "w"}}, 1)
	Call("fwrite", []values.Value{f, values.String{Value: "line one\nline two"}}, 1)
	Call("fclose", []values.Value{f}, 1)

	f2, _ := Call("fopen", []values.Value{values.String{Value: path}, values.String{Value: "r"}}, 1)
	content, err := Call("fread", []values.Value{f2}, 1)
	assert.NoError(t, err)
	assert.Equal(t, values.String{Value: "line one\nline two"}, content)
}
