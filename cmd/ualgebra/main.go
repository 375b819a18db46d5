// Command ualgebra is a thin comparison harness over the closure,
// lattice and tct packages: it reads a finite algebra from a YAML file
// and emits normalized YAML reports suitable for diffing against other
// implementations.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ualgebra:", err)
		os.Exit(1)
	}
}
