package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to a process exit code.
func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "sitecarbon: %v\n", err)
		return 1
	}
	return 0
}
