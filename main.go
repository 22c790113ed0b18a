package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tbtb-research/riset/cmd"
	"github.com/tbtb-research/riset/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		// Commands report their own failures; only cobra's errors are left to print
		var reported *cli.CommandError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	os.Exit(cli.ExitCodeOf(err))
}
