// Command ovnidx looks up overnight rate indices and derives their fixing,
// publication, effective and maturity dates.
package main

import (
	"fmt"
	"os"

	"github.com/meenmo/rateindex/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ovnidx:", err)
		os.Exit(1)
	}
}
