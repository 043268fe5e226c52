// Command tww reads a DIMACS-like graph on stdin and writes a
// contraction sequence witnessing a heuristic twin-width bound on
// stdout.
package main

import (
	"fmt"
	"os"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

func run(stdin *os.File, stdout, stderr *os.File, args []string) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
