package cli

import (
	"os"

	"wstrim/internal/gitx"
	"wstrim/internal/wserr"
)

type Middleware func(Command) Command

type WrappedCommand struct {
	Command
	Wrap func(ctx *Context) error
}

func (w *WrappedCommand) Run(ctx *Context) error {
	if w.Wrap != nil {
		return w.Wrap(ctx)
	}
	return w.Command.Run(ctx)
}

// ApplyMiddlewares wraps a command with any number of middlewares
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithRepoOpen discovers the enclosing repository from the current
// working directory and injects it into the context before the
// command runs. A context that already carries a repository (tests)
// is passed through untouched.
func WithRepoOpen() Middleware {
	return func(cmd Command) Command {
		return &WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *Context) error {
				if ctx.Repo == nil {
					cwd, err := os.Getwd()
					if err != nil {
						return &wserr.IoError{Err: err}
					}
					repo, err := gitx.Open(cwd)
					if err != nil {
						return err
					}
					ctx.Repo = repo
				}
				return cmd.Run(ctx)
			},
		}
	}
}
