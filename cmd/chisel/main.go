// Command chisel is developer tooling for the chisel modeling command
// protocol: payload validation, plan compilation, schema export, and
// journal inspection.
package main

import (
	"fmt"
	"os"

	"github.com/chiselcad/chisel/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
