package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/fncatalog/catalog"
	"github.com/mna/mainer"
)

func (c *Cmd) List(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ListCatalog(ctx, stdio)
}

// ListCatalog prints the catalog functions in registration order, with their
// idiom and arity.
func ListCatalog(_ context.Context, stdio mainer.Stdio) error {
	for _, e := range catalog.Entries() {
		fmt.Fprintf(stdio.Stdout, "%-18s %-12s %d\n", e.Name, e.Idiom, e.Arity)
	}
	return nil
}
