package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/fncatalog/conformance"
	"github.com/mna/mainer"
	"go.uber.org/zap"
)

func (c *Cmd) Check(ctx context.Context, stdio mainer.Stdio, args []string) error {
	opts := CheckOptions{
		CasesFile: c.Cases,
		Parallel:  c.Parallel,
		Color:     !c.NoColor,
		Groups:    args,
	}
	return CheckSuite(ctx, stdio, c.log, opts)
}

// CheckOptions configures a run of the conformance suite.
type CheckOptions struct {
	CasesFile string   // if empty, the built-in suite is used
	Groups    []string // if empty, all groups are run
	Parallel  int
	Color     bool
}

// CheckSuite runs the conformance suite and prints a report to stdio.Stdout.
// It returns an error if the suite cannot be loaded or if any case fails.
func CheckSuite(ctx context.Context, stdio mainer.Stdio, log *zap.Logger, opts CheckOptions) error {
	suite := conformance.Default()
	if opts.CasesFile != "" {
		s, err := conformance.LoadFile(opts.CasesFile)
		if err != nil {
			return printError(stdio, err)
		}
		suite = s
	}

	suite, err := suite.Filter(opts.Groups...)
	if err != nil {
		return printError(stdio, err)
	}

	r := conformance.Runner{
		Logger:   log,
		Parallel: opts.Parallel,
	}
	results := r.Run(ctx, suite)
	if n := conformance.Report(stdio.Stdout, results, opts.Color); n > 0 {
		// the report already lists the failures
		return fmt.Errorf("%d cases failed", n)
	}
	return nil
}
