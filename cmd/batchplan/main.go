// Command batchplan computes batch plans from flags or a YAML request file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "batchplan:", err)
		os.Exit(1)
	}
}
