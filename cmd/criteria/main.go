// Command criteria validates criteria documents and runs them as SQL or
// in-memory queries.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/criteria/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		os.Exit(cli.ExitSuccess)
	}

	// Commands report their own failures as ExitErrors. Anything else is a
	// flag or argument error that cobra left unprinted.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	os.Exit(cli.GetExitCode(err))
}
