// Command parameterx builds a parameter store from the command line and
// prints its entries.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/parameterx/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err == nil {
		return
	}

	// ExitErrors were already written by the command's formatter.
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.GetExitCode(err))
}
