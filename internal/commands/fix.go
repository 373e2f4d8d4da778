package commands

import (
	"golang.org/x/exp/maps"

	"wstrim/internal/cli"
	"wstrim/internal/gitx"
	"wstrim/internal/rewrite"
	"wstrim/internal/scan"
)

// FixCommand trims trailing whitespace from staged lines and re-stages
// the cleaned files. It is the default command, so hook-style
// zero-argument invocation runs it over everything staged.
type FixCommand struct{}

func (c *FixCommand) Name() string  { return "fix" }
func (c *FixCommand) Usage() string { return "fix [pattern...]" }
func (c *FixCommand) Description() string {
	return "Trim trailing whitespace on staged lines and re-stage"
}
func (c *FixCommand) DetailedDescription() string {
	return `Diff the staged changes against the last commit, strip trailing
spaces and tabs from the changed lines, and add the cleaned files back
to the index. Optional trailing patterns restrict which paths are
scanned. Succeeds silently; meant to run as a pre-commit hook.`
}
func (c *FixCommand) Aliases() []string { return []string{"f"} }

func (c *FixCommand) Run(ctx *cli.Context) error {
	return Fix(ctx.Repo, ctx.Args)
}

// Fix runs the full pipeline: scan, rewrite, re-stage.
func Fix(repo *gitx.Repo, filters []string) error {
	flagged, err := scan.Scan(repo, filters)
	if err != nil {
		return err
	}
	if len(flagged) == 0 {
		return nil
	}

	if err := rewrite.Rewrite(repo.Root(), flagged); err != nil {
		return err
	}

	return repo.Restage(maps.Keys(flagged))
}

func init() {
	cli.RegisterCommand(cli.ApplyMiddlewares(&FixCommand{}, cli.WithRepoOpen()))
}
