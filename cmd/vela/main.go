// Command vela is a thin pass-through CLI over the four pkg/vela library
// entry points. It does not attempt a REPL, banner, or any input-source
// selection beyond "read this one argument as source text"; that surface
// belongs to a fuller front-end collaborator, not this package.
package main

import (
	"fmt"
	"os"

	"github.com/vela-lang/vela/cmd/vela/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
