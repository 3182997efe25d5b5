package conformance

import (
	"context"
	"fmt"

	"github.com/mna/fncatalog/catalog"
	"github.com/mna/fncatalog/lang/machine"
	"github.com/mna/fncatalog/lang/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Mismatch is the error reported when a check's result differs from its
// expected value.
type Mismatch struct {
	Expr string
	Got  types.Value
	Want types.Value
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("%s: got %s, want %s", m.Expr, m.Got, m.Want)
}

// Result is the outcome of a case. Err is nil if all checks passed, a
// *Mismatch if a check failed its assertion, or any other error if a check
// could not be executed.
type Result struct {
	Group string
	Case  string
	Err   error
}

// Passed returns true if the case passed.
func (r Result) Passed() bool { return r.Err == nil }

// Runner executes the cases of a suite.
type Runner struct {
	// Exports is the table of functions available to checks. If nil,
	// catalog.Exports is used.
	Exports *machine.Map

	// Logger receives the diagnostics emitted by the functions under test. If
	// nil, the global zap logger is used.
	Logger *zap.Logger

	// Parallel is the maximum number of cases run concurrently. A value <= 1
	// runs the cases sequentially, in order.
	Parallel int
}

// Run executes all cases of the suite and returns their results in
// declaration order. A failing case does not prevent the other cases from
// running. If ctx is cancelled, the remaining cases fail with the context's
// error.
func (r *Runner) Run(ctx context.Context, s *Suite) []Result {
	type job struct {
		group string
		c     Case
	}

	jobs := make([]job, 0, s.Len())
	for _, g := range s.Groups {
		for _, c := range g.Cases {
			jobs = append(jobs, job{group: g.Name, c: c})
		}
	}

	results := make([]Result, len(jobs))
	if r.Parallel <= 1 {
		for i, j := range jobs {
			results[i] = r.runCase(ctx, j.group, j.c)
		}
		return results
	}

	var g errgroup.Group
	g.SetLimit(r.Parallel)
	for i, j := range jobs {
		g.Go(func() error {
			results[i] = r.runCase(ctx, j.group, j.c)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *Runner) runCase(ctx context.Context, group string, c Case) Result {
	res := Result{Group: group, Case: c.Name}

	th := machine.NewThread(ctx, group+"/"+c.Name)
	th.Logger = r.Logger
	for _, k := range c.Checks {
		if err := r.runCheck(th, k); err != nil {
			res.Err = err
			break
		}
	}
	return res
}

func (r *Runner) runCheck(th *machine.Thread, k Check) error {
	exports := r.Exports
	if exports == nil {
		exports = catalog.Exports()
	}

	name := k.Call
	if name == "" {
		name = k.New
	}
	fn, ok := exports.Get(types.String(name))
	if !ok {
		return errors.Errorf("undefined: %s", name)
	}

	args := make(types.Tuple, 0, len(k.Args))
	for i, a := range k.Args {
		v, err := types.FromGo(a)
		if err != nil {
			return errors.Wrapf(err, "%s: argument %d", name, i+1)
		}
		args = append(args, v)
	}
	want, err := types.FromGo(k.Want)
	if err != nil {
		return errors.Wrapf(err, "%s: expected value", name)
	}

	var got types.Value
	if k.Call != "" {
		got, err = machine.Call(th, fn, args)
	} else {
		var obj *types.Object
		obj, err = machine.New(th, fn, args)
		if err == nil {
			got = obj
			if k.Attr != "" {
				got, err = obj.Attr(k.Attr)
			}
		}
	}
	if err != nil {
		return err
	}

	eq, err := machine.Equal(got, want)
	if err != nil {
		return err
	}
	if !eq {
		return &Mismatch{Expr: k.expr(args), Got: got, Want: want}
	}
	return nil
}
