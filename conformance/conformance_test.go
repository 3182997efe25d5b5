package conformance_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mna/fncatalog/conformance"
	"github.com/mna/fncatalog/internal/filetest"
	"github.com/mna/fncatalog/internal/maincmd"
	"github.com/mna/fncatalog/lang/machine"
	"github.com/mna/fncatalog/lang/types"
	"github.com/mna/mainer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

var testUpdateCheckTests = flag.Bool("test.update-check-tests", false, "If set, replace expected check test results with actual results.")

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	srcDir, resultDir := filepath.Join("testdata", "in"), filepath.Join("testdata", "out")

	for _, name := range filetest.SourceFiles(t, srcDir, ".yaml") {
		t.Run(name, func(t *testing.T) {
			var buf, ebuf bytes.Buffer
			stdio := mainer.Stdio{
				Stdout: &buf,
				Stderr: &ebuf,
			}

			// error is ignored, failures are part of the report
			_ = maincmd.CheckSuite(ctx, stdio, maincmd.NewLogger(&ebuf, false), maincmd.CheckOptions{
				CasesFile: filepath.Join(srcDir, name),
			})
			filetest.DiffOutput(t, name, buf.String(), resultDir, testUpdateCheckTests)
			filetest.DiffErrors(t, name, ebuf.String(), resultDir, testUpdateCheckTests)
		})
	}
}

func TestDefaultSuite(t *testing.T) {
	s := conformance.Default()

	var groups []string
	for _, g := range s.Groups {
		groups = append(groups, g.Name)
	}
	assert.Equal(t, []string{"arrow", "statement", "expression", "constructor"}, groups)
	assert.Equal(t, 7, s.Len())

	var r conformance.Runner
	for _, res := range r.Run(context.Background(), s) {
		assert.NoError(t, res.Err, "%s/%s", res.Group, res.Case)
	}
}

func TestRunParallel(t *testing.T) {
	s := conformance.Default()
	seq := (&conformance.Runner{Logger: zap.NewNop()}).Run(context.Background(), s)
	par := (&conformance.Runner{Logger: zap.NewNop(), Parallel: 4}).Run(context.Background(), s)

	if diff := cmp.Diff(seq, par); diff != "" {
		t.Errorf("parallel results differ (-seq +par):\n%s", diff)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := (&conformance.Runner{Parallel: 2}).Run(ctx, conformance.Default())
	require.Len(t, results, 7)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
	}
}

func TestRunCaseIsolation(t *testing.T) {
	// a broken add makes its case fail without affecting the others
	exports := machine.NewMap(2)
	require.NoError(t, exports.SetKey("add", machine.NewBuiltin("add", 2, func(*machine.Thread, types.Tuple) (types.Value, error) {
		return types.Float(0), nil
	})))
	require.NoError(t, exports.SetKey("getBook", machine.NewBuiltin("getBook", 0, func(*machine.Thread, types.Tuple) (types.Value, error) {
		return types.True, nil
	})))

	s, err := conformance.Default().Filter("arrow", "statement")
	require.NoError(t, err)

	r := conformance.Runner{Exports: exports}
	results := r.Run(context.Background(), s)
	require.Len(t, results, 4)

	var mm *conformance.Mismatch
	require.ErrorAs(t, results[0].Err, &mm)
	assert.Equal(t, "add(2, 2)", mm.Expr)
	assert.Equal(t, types.Float(0), mm.Got)
	assert.Equal(t, types.Float(4), mm.Want)

	assert.EqualError(t, results[1].Err, "undefined: stringLowerUpper")
	assert.EqualError(t, results[2].Err, "undefined: subtract")
	assert.True(t, results[3].Passed())
}

func TestFilter(t *testing.T) {
	s := conformance.Default()

	fs, err := s.Filter()
	require.NoError(t, err)
	assert.Same(t, s, fs)

	fs, err = s.Filter("constructor", "arrow")
	require.NoError(t, err)
	require.Len(t, fs.Groups, 2)
	assert.Equal(t, "arrow", fs.Groups[0].Name)
	assert.Equal(t, "constructor", fs.Groups[1].Name)

	_, err = s.Filter("arrow", "lambda", "method")
	assert.EqualError(t, err, "unknown group: lambda, method")
}

func TestLoadInvalid(t *testing.T) {
	cases := []struct {
		name, src, err string
	}{
		{"empty", "", "empty suite"},
		{"unknown field", "groups: [{name: a, cases: [{name: b, checks: [{call: add, wnt: 1}]}]}]", "decode suite"},
		{"no group name", "groups: [{cases: []}]", "group 1: missing name"},
		{"duplicate group", "groups: [{name: a}, {name: a}]", "group a: duplicate name"},
		{"no case name", "groups: [{name: a, cases: [{checks: []}]}]", "group a: case 1: missing name"},
		{"duplicate case", "groups: [{name: a, cases: [{name: b, checks: [{call: f}]}, {name: b, checks: [{call: f}]}]}]", "group a: case b: duplicate name"},
		{"no check", "groups: [{name: a, cases: [{name: b}]}]", "group a: case b: no check"},
		{"no call", "groups: [{name: a, cases: [{name: b, checks: [{want: 1}]}]}]", "group a: case b: check 1: one of call or new is required"},
		{"call and new", "groups: [{name: a, cases: [{name: b, checks: [{call: f, new: g}]}]}]", "group a: case b: check 1: call and new are mutually exclusive"},
		{"attr on call", "groups: [{name: a, cases: [{name: b, checks: [{call: f, attr: x}]}]}]", "group a: case b: check 1: attr is only valid with new"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := conformance.Load(strings.NewReader(c.src))
			assert.ErrorContains(t, err, c.err)
		})
	}
}

func TestReportColor(t *testing.T) {
	results := []conformance.Result{{Group: "g", Case: "c"}}

	var plain, colored bytes.Buffer
	assert.Equal(t, 0, conformance.Report(&plain, results, false))
	assert.Equal(t, 0, conformance.Report(&colored, results, true))
	assert.Equal(t, "=== g\n--- PASS: c\nok: 1 cases passed\n", plain.String())
	assert.Contains(t, colored.String(), "\x1b[")
}
