package commands

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/exp/maps"

	"wstrim/internal/cli"
	"wstrim/internal/gitx"
	"wstrim/internal/scan"
)

// CheckCommand is the dry-run form of fix: it lists every staged line
// with trailing whitespace and exits nonzero if any exist, without
// touching the working tree or the index.
type CheckCommand struct{}

func (c *CheckCommand) Name() string  { return "check" }
func (c *CheckCommand) Usage() string { return "check [pattern...]" }
func (c *CheckCommand) Description() string {
	return "List staged lines with trailing whitespace"
}
func (c *CheckCommand) DetailedDescription() string {
	return `Scan the staged changes and print one "path:line" per flagged line.
Exits with status 1 when anything is flagged, 0 when clean. Nothing is
modified.`
}
func (c *CheckCommand) Aliases() []string { return []string{"c"} }

func (c *CheckCommand) Run(ctx *cli.Context) error {
	n, err := Check(ctx.Repo, ctx.Args, os.Stdout)
	if err != nil {
		return err
	}
	if n > 0 {
		return cli.ErrSilentExit
	}
	return nil
}

// Check scans and writes the flagged path:line pairs, returning how
// many lines were flagged.
func Check(repo *gitx.Repo, filters []string, w io.Writer) (int, error) {
	flagged, err := scan.Scan(repo, filters)
	if err != nil {
		return 0, err
	}

	names := maps.Keys(flagged)
	sort.Strings(names)

	count := 0
	for _, name := range names {
		for _, lineNo := range flagged[name] {
			fmt.Fprintf(w, "%s:%d\n", name, lineNo)
			count++
		}
	}
	return count, nil
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&CheckCommand{}, cli.WithRepoOpen()))
}
