package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/fncatalog/catalog"
	"github.com/mna/fncatalog/lang/machine"
	"github.com/mna/fncatalog/lang/types"
	"github.com/mna/mainer"
	"go.uber.org/zap"
)

func (c *Cmd) Call(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CallFunction(ctx, stdio, c.log, false, args[0], args[1:]...)
}

func (c *Cmd) New(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CallFunction(ctx, stdio, c.log, true, args[0], args[1:]...)
}

// CallFunction invokes the catalog function name with the literal arguments
// and prints the result to stdio.Stdout. If isNew is true, the function is
// invoked with the new-instance protocol, otherwise with an ordinary call.
// Diagnostics emitted by the function are written to log.
func CallFunction(ctx context.Context, stdio mainer.Stdio, log *zap.Logger, isNew bool, name string, literals ...string) error {
	e, ok := catalog.Lookup(name)
	if !ok {
		return printError(stdio, fmt.Errorf("undefined: %s", name))
	}

	args := make(types.Tuple, 0, len(literals))
	for _, lit := range literals {
		args = append(args, types.ParseLiteral(lit))
	}

	th := machine.NewThread(ctx, name)
	th.Logger = log

	var (
		res types.Value
		err error
	)
	if isNew {
		res, err = machine.New(th, e.Value, args)
	} else {
		res, err = machine.Call(th, e.Value, args)
	}
	if err != nil {
		return printError(stdio, err)
	}
	fmt.Fprintln(stdio.Stdout, res)
	return nil
}
