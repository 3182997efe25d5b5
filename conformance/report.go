package conformance

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Report writes a human-readable report of results to w, grouped by group
// name, and returns the number of failed cases. Colors are used only if
// colored is true.
func Report(w io.Writer, results []Result, colored bool) int {
	pass, fail, head := color.New(color.FgGreen), color.New(color.FgRed, color.Bold), color.New(color.Bold)
	for _, c := range []*color.Color{pass, fail, head} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var failed int
	var group string
	for i, r := range results {
		if i == 0 || r.Group != group {
			group = r.Group
			fmt.Fprintf(w, "=== %s\n", head.Sprint(group))
		}
		if r.Passed() {
			fmt.Fprintf(w, "--- %s: %s\n", pass.Sprint("PASS"), r.Case)
			continue
		}
		failed++
		fmt.Fprintf(w, "--- %s: %s\n", fail.Sprint("FAIL"), r.Case)
		fmt.Fprintf(w, "    %s\n", r.Err)
	}

	if failed > 0 {
		fmt.Fprintf(w, "%s: %d of %d cases failed\n", fail.Sprint("FAIL"), failed, len(results))
	} else {
		fmt.Fprintf(w, "%s: %d cases passed\n", pass.Sprint("ok"), len(results))
	}
	return failed
}
