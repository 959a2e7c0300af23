// Command guikit lays out and exercises the toolbar windows from the
// command line.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/guikit/cmd/guikit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
