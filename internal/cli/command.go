package cli

import (
	"errors"

	"wstrim/internal/gitx"
)

// ErrSilentExit signals a nonzero exit with no diagnostic line; the
// command has already written its findings to the output stream.
var ErrSilentExit = errors.New("silent exit")

// Command represents a cli command
type Command interface {
	Name() string
	Usage() string
	Description() string
	DetailedDescription() string
	Aliases() []string
	Run(ctx *Context) error
}

// Context represents a cli context
type Context struct {
	Args []string
	Repo *gitx.Repo
}
