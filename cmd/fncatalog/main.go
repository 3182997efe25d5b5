// Command fncatalog lists and calls the functions of the catalog, and runs
// the conformance suite against them.
package main

import (
	"os"

	"github.com/mna/fncatalog/internal/maincmd"
	"github.com/mna/mainer"
)

var (
	// placeholder values, replaced on build
	version   = "{v}" // must be N.N[.N]
	buildDate = "{d}" // must be YYYY-mm-DD
)

func main() {
	c := maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	stdio := mainer.CurrentStdio()
	os.Exit(int(c.Main(os.Args, stdio)))
}
