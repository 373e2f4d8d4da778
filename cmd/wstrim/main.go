package main

import (
	"errors"
	"fmt"
	"os"

	"wstrim/internal/cli"
	_ "wstrim/internal/commands"
)

func main() {
	args := os.Args[1:]

	// A recognized first argument selects a command; anything else is
	// treated as a path filter for the default fix pipeline, so the
	// bare pre-commit-hook invocation works unchanged.
	var cmd cli.Command
	var cmdArgs []string
	if len(args) > 0 {
		if c, ok := cli.GetCommand(args[0]); ok {
			cmd = c
			cmdArgs = args[1:]
		}
	}
	if cmd == nil {
		c, ok := cli.GetCommand("fix")
		if !ok {
			fmt.Fprintln(os.Stderr, "error fix command not registered")
			os.Exit(1)
		}
		cmd = c
		cmdArgs = args
	}

	if err := cmd.Run(&cli.Context{Args: cmdArgs}); err != nil {
		if !errors.Is(err, cli.ErrSilentExit) {
			fmt.Fprintf(os.Stderr, "error %s\n", err)
		}
		os.Exit(1)
	}
}
