package maincmd_test

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/mna/fncatalog/internal/filetest"
	"github.com/mna/fncatalog/internal/maincmd"
	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpdateMaincmdTests = flag.Bool("test.update-maincmd-tests", false, "If set, replace expected maincmd test results with actual results.")

func runMain(t *testing.T, args ...string) (mainer.ExitCode, string, string) {
	t.Helper()

	var buf, ebuf bytes.Buffer
	stdio := mainer.Stdio{
		Stdout: &buf,
		Stderr: &ebuf,
	}
	c := maincmd.Cmd{BuildVersion: "1.0", BuildDate: "2024-01-02"}
	code := c.Main(append([]string{"fncatalog"}, args...), stdio)
	return code, buf.String(), ebuf.String()
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	err := maincmd.ListCatalog(context.Background(), mainer.Stdio{Stdout: &buf})
	require.NoError(t, err)
	filetest.DiffOutput(t, "list", buf.String(), "testdata", testUpdateMaincmdTests)

	code, out, _ := runMain(t, "list")
	assert.Equal(t, mainer.Success, code)
	assert.Equal(t, buf.String(), out)
}

func TestCall(t *testing.T) {
	cases := []struct {
		args   []string
		code   mainer.ExitCode
		out    string
		errOut string
	}{
		{[]string{"call", "add", "2", "2"}, mainer.Success, "4\n", ""},
		{[]string{"call", "add", "50", "39"}, mainer.Success, "89\n", ""},
		{[]string{"call", "subtract", "50", "39"}, mainer.Success, "11\n", ""},
		{[]string{"call", "multiply", "0", "11"}, mainer.Success, "0\n", ""},
		{[]string{"call", "getBook"}, mainer.Success, "true\n", ""},
		{[]string{"call", "firstletter", "hello"}, mainer.Success, "\"h\"\n", ""},
		{[]string{"call", "stringLowerUpper", "HeLlO"}, mainer.Success, "\"hello\"\n", "does not start with a\n"},
		{[]string{"call", "stringLowerUpper", "and goodBYE"}, mainer.Success, "\"AND GOODBYE\"\n", "starts with a\n"},
		{[]string{"-q", "call", "stringLowerUpper", "and goodBYE"}, mainer.Success, "\"AND GOODBYE\"\n", ""},
		{[]string{"new", "shoes", "6.5", "adidas"}, mainer.Success, "shoes {size: 6.5, mark: \"adidas\"}\n", ""},
		{[]string{"call", "shoes", "6.5", "adidas"}, mainer.Failure, "", "shoes: constructor must be invoked with new\n"},
		{[]string{"new", "add", "1", "2"}, mainer.Failure, "", "invalid new of function: not a constructor\n"},
		{[]string{"call", "firstletter", ""}, mainer.Failure, "", "firstletter: index out of range: empty string\n"},
		{[]string{"call", "add", "1"}, mainer.Failure, "", "add: want 2, got 1: wrong number of arguments\n"},
		{[]string{"call", "divide", "4", "2"}, mainer.Failure, "", "undefined: divide\n"},
	}
	for _, c := range cases {
		t.Run(c.args[len(c.args)-1], func(t *testing.T) {
			code, out, errOut := runMain(t, c.args...)
			assert.Equal(t, c.code, code)
			assert.Equal(t, c.out, out)
			assert.Equal(t, c.errOut, errOut)
		})
	}
}

func TestCheck(t *testing.T) {
	code, out, errOut := runMain(t, "--no-color", "check")
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out, "--- PASS: new pair 1\n")
	assert.Contains(t, out, "ok: 7 cases passed\n")
	assert.Equal(t, "does not start with a\nstarts with a\n", errOut)

	code, out, _ = runMain(t, "--no-color", "--parallel", "3", "check", "statement")
	assert.Equal(t, mainer.Success, code)
	assert.Equal(t, "=== statement\n--- PASS: simple statement\n--- PASS: complex statement\nok: 2 cases passed\n", out)

	code, _, errOut = runMain(t, "check", "lambda")
	assert.Equal(t, mainer.Failure, code)
	assert.Equal(t, "unknown group: lambda\n", errOut)

	code, _, errOut = runMain(t, "--cases", "testdata/no-such-file.yaml", "check")
	assert.Equal(t, mainer.Failure, code)
	assert.Contains(t, errOut, "no-such-file.yaml")
}

func TestInvalidArgs(t *testing.T) {
	cases := [][]string{
		{},
		{"nope"},
		{"call"},
		{"new"},
		{"list", "add"},
		{"--parallel", "2", "list"},
		{"--no-color", "call", "add", "1", "2"},
		{"--parallel", "-1", "check"},
	}
	for _, args := range cases {
		code, _, errOut := runMain(t, args...)
		assert.Equal(t, mainer.InvalidArgs, code, "%v", args)
		assert.Contains(t, errOut, "invalid arguments", "%v", args)
	}
}

func TestHelpVersion(t *testing.T) {
	code, out, _ := runMain(t, "--version")
	assert.Equal(t, mainer.Success, code)
	assert.Equal(t, "fncatalog 1.0 2024-01-02\n", out)

	code, out, _ = runMain(t, "-h")
	assert.Equal(t, mainer.Success, code)
	assert.Contains(t, out, "usage: fncatalog")
}
