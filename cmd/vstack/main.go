package main

import (
	"io"
	"os"

	"visibilitystack-cli/internal/cli"
)

// run executes the CLI with argv (without the program name) and returns the
// process exit code.
func run(argv []string, stdout, stderr io.Writer) int {
	cmd := cli.NewRootCmd()
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
