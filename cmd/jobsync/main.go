// Command jobsync is a terminal chat with the JobSync AI career assistant.
package main

import (
	"fmt"
	"os"
)

// main is the program entry point.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
