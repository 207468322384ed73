// parseek searches text files for keywords in parallel, under either a
// goroutine pool or a set of isolated worker processes.
package main

import (
	"fmt"
	"os"

	"github.com/parseek/parseek/cmd/parseek/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
